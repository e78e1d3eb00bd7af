package reports

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/stocklane/stocklane/internal/money"
)

const exportSheet = "Sheet1"

// ExportExcel writes a fetched table as an xlsx workbook.
func ExportExcel(w io.Writer, headers []string, rows [][]any) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(exportSheet, cell, h); err != nil {
			return err
		}
	}
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return err
			}
		}
	}
	_, err := f.WriteTo(w)
	return err
}

// ExportStock writes the stock report with formatted money columns.
func ExportStock(w io.Writer, rows []StockRow) error {
	table := make([][]any, 0, len(rows))
	for _, r := range rows {
		table = append(table, []any{
			r.ProductID, r.Name, r.Category, r.Stock,
			money.Format(r.CostPrice), money.Format(r.Value),
		})
	}
	return ExportExcel(w, []string{"ID", "Product", "Category", "Stock", "Cost", "Value"}, table)
}

// ExportSummary writes a sales or purchase summary.
func ExportSummary(w io.Writer, title string, rows []SummaryRow) error {
	table := make([][]any, 0, len(rows))
	for _, r := range rows {
		table = append(table, []any{
			r.Label, r.Count,
			money.Format(r.Total), money.Format(r.Discount),
			money.Format(r.GrandTotal), money.Format(r.Paid), money.Format(r.Due),
		})
	}
	headers := []string{title, "Count", "Total", "Discount", "Grand Total", "Paid", "Due"}
	return ExportExcel(w, headers, table)
}

// ExportDues writes the outstanding-dues report.
func ExportDues(w io.Writer, rows []DueRow) error {
	table := make([][]any, 0, len(rows))
	for _, r := range rows {
		table = append(table, []any{r.ContactID, r.Name, r.Phone, money.Format(r.Due)})
	}
	return ExportExcel(w, []string{"ID", "Contact", "Phone", "Due"}, table)
}

// ExportTopProducts writes the best-sellers report.
func ExportTopProducts(w io.Writer, rows []TopProductRow) error {
	table := make([][]any, 0, len(rows))
	for _, r := range rows {
		table = append(table, []any{r.ProductID, r.Name, r.QtySold, money.Format(r.Total)})
	}
	return ExportExcel(w, []string{"ID", "Product", "Qty Sold", "Total"}, table)
}
