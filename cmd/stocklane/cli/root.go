// Package cli implements the terminal commands of the stocklane binary.
package cli

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/stocklane/stocklane/internal/accounting"
	"github.com/stocklane/stocklane/internal/auth"
	"github.com/stocklane/stocklane/internal/catalog"
	"github.com/stocklane/stocklane/internal/contacts"
	"github.com/stocklane/stocklane/internal/expenses"
	"github.com/stocklane/stocklane/internal/money"
	"github.com/stocklane/stocklane/internal/purchases"
	"github.com/stocklane/stocklane/internal/quotations"
	"github.com/stocklane/stocklane/internal/reports"
	"github.com/stocklane/stocklane/internal/returns"
	"github.com/stocklane/stocklane/internal/sales"
	"github.com/stocklane/stocklane/internal/session"
)

// Deps groups the services the commands operate on.
type Deps struct {
	Logger     *slog.Logger
	Sessions   *session.Store
	Auth       *auth.Service
	Catalog    *catalog.Service
	Contacts   *contacts.Service
	Purchases  *purchases.Service
	Sales      *sales.Service
	Quotations *quotations.Service
	Returns    *returns.Service
	Expenses   *expenses.Service
	Accounting *accounting.Service
	Reports    *reports.Service
}

// Runner dispatches subcommands.
type Runner struct {
	deps Deps
}

// NewRunner constructs a Runner.
func NewRunner(deps Deps) *Runner {
	return &Runner{deps: deps}
}

const usage = `usage: stocklane <command> [flags]

commands:
  login       -user NAME -pass SECRET
  logout
  products    [-term TEXT] [-page N]
  contacts    [-type customer|supplier|dealer] [-term TEXT]
  sales       [-page N]
  purchases   [-page N]
  dashboard   -from YYYY-MM-DD -to YYYY-MM-DD
  export      -report stock|dues|topproducts|sales|purchases -out FILE [-from DATE -to DATE]
`

// Run executes one command and returns the process exit code.
func (r *Runner) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return 2
	}
	var err error
	switch args[0] {
	case "login":
		err = r.login(ctx, args[1:])
	case "logout":
		err = r.deps.Auth.Logout(ctx)
	case "products":
		err = r.products(ctx, args[1:])
	case "contacts":
		err = r.contacts(ctx, args[1:])
	case "sales":
		err = r.sales(ctx, args[1:])
	case "purchases":
		err = r.purchases(ctx, args[1:])
	case "dashboard":
		err = r.dashboard(ctx, args[1:])
	case "export":
		err = r.export(ctx, args[1:])
	default:
		fmt.Fprint(os.Stderr, usage)
		return 2
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}

func (r *Runner) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	user := fs.String("user", "", "username")
	pass := fs.String("pass", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	resp, err := r.deps.Auth.Login(ctx, auth.Credentials{Username: *user, Password: *pass})
	if err != nil {
		return err
	}
	fmt.Printf("logged in as %s (%s)\n", resp.Name, resp.Role)
	return nil
}

func (r *Runner) products(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("products", flag.ContinueOnError)
	term := fs.String("term", "", "search term")
	page := fs.Int("page", 1, "page number")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rows, pagination, err := r.deps.Catalog.ListProducts(ctx, *page, 20, *term)
	if err != nil {
		return err
	}
	for _, p := range rows {
		fmt.Printf("%6d  %-30s %10s  stock %g\n", p.ID, p.Name, money.Format(p.SellPrice), p.Stock)
	}
	fmt.Printf("page %d/%d (%d products)\n", pagination.Page, pagination.TotalPages, pagination.Total)
	return nil
}

func (r *Runner) contacts(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("contacts", flag.ContinueOnError)
	typ := fs.String("type", "customer", "contact type")
	term := fs.String("term", "", "search term")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rows, pagination, err := r.deps.Contacts.List(ctx, contacts.ContactType(*typ), 1, 20, *term)
	if err != nil {
		return err
	}
	for _, c := range rows {
		fmt.Printf("%6d  %-30s %-14s due %s\n", c.ID, c.Name, c.Phone, money.Format(c.Balance))
	}
	fmt.Printf("%d contacts\n", pagination.Total)
	return nil
}

func (r *Runner) sales(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("sales", flag.ContinueOnError)
	page := fs.Int("page", 1, "page number")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rows, pagination, err := r.deps.Sales.List(ctx, *page, 20, "")
	if err != nil {
		return err
	}
	for _, s := range rows {
		fmt.Printf("%6d  %-24s %10s paid %10s due %10s  %s\n",
			s.ID, s.Customer, money.Format(s.GrandTotal), money.Format(s.Paid), money.Format(s.DueAmount), s.Date)
	}
	fmt.Printf("page %d/%d\n", pagination.Page, pagination.TotalPages)
	return nil
}

func (r *Runner) purchases(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("purchases", flag.ContinueOnError)
	page := fs.Int("page", 1, "page number")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rows, pagination, err := r.deps.Purchases.List(ctx, *page, 20, "")
	if err != nil {
		return err
	}
	for _, p := range rows {
		fmt.Printf("%6d  %-24s %10s paid %10s due %10s  %s\n",
			p.ID, p.Supplier, money.Format(p.GrandTotal), money.Format(p.Paid), money.Format(p.DueAmount), p.Date)
	}
	fmt.Printf("page %d/%d\n", pagination.Page, pagination.TotalPages)
	return nil
}

func (r *Runner) dashboard(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	from := fs.String("from", "", "range start")
	to := fs.String("to", "", "range end")
	if err := fs.Parse(args); err != nil {
		return err
	}
	dash, err := r.deps.Reports.FetchDashboard(ctx, *from, *to)
	if err != nil {
		return err
	}
	fmt.Println("sales:")
	for _, row := range dash.Sales {
		fmt.Printf("  %-20s %10s\n", row.Label, money.Format(row.GrandTotal))
	}
	fmt.Println("purchases:")
	for _, row := range dash.Purchases {
		fmt.Printf("  %-20s %10s\n", row.Label, money.Format(row.GrandTotal))
	}
	fmt.Println("top products:")
	for _, row := range dash.TopProducts {
		fmt.Printf("  %-20s sold %g\n", row.Name, row.QtySold)
	}
	fmt.Println("outstanding dues:")
	for _, row := range dash.Dues {
		fmt.Printf("  %-20s %10s\n", row.Name, money.Format(row.Due))
	}
	return nil
}

func (r *Runner) export(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	report := fs.String("report", "stock", "report to export")
	out := fs.String("out", "report.xlsx", "output file")
	from := fs.String("from", "", "range start")
	to := fs.String("to", "", "range end")
	if err := fs.Parse(args); err != nil {
		return err
	}
	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer f.Close()

	switch *report {
	case "stock":
		rows, err := r.deps.Reports.Stock(ctx)
		if err != nil {
			return err
		}
		return reports.ExportStock(f, rows)
	case "dues":
		rows, err := r.deps.Reports.OutstandingDues(ctx)
		if err != nil {
			return err
		}
		return reports.ExportDues(f, rows)
	case "topproducts":
		rows, err := r.deps.Reports.TopProducts(ctx, *from, *to)
		if err != nil {
			return err
		}
		return reports.ExportTopProducts(f, rows)
	case "sales":
		rows, err := r.deps.Reports.SalesSummary(ctx, *from, *to)
		if err != nil {
			return err
		}
		return reports.ExportSummary(f, "Period", rows)
	case "purchases":
		rows, err := r.deps.Reports.PurchaseSummary(ctx, *from, *to)
		if err != nil {
			return err
		}
		return reports.ExportSummary(f, "Period", rows)
	default:
		return fmt.Errorf("unknown report %q", *report)
	}
}
