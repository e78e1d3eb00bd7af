// Package draft implements the shared transaction-entry state used by the
// purchase, sale, quotation and return screens: the line model, the
// derived-totals engine and the draft lifecycle.
package draft

import (
	"time"

	"github.com/google/uuid"
)

// Kind discriminates the transaction type of a draft.
type Kind string

const (
	KindPurchase       Kind = "PURCHASE"
	KindSale           Kind = "SALE"
	KindQuotation      Kind = "QUOTATION"
	KindSaleReturn     Kind = "SALE_RETURN"
	KindPurchaseReturn Kind = "PURCHASE_RETURN"
)

// UsesCost reports whether lines default to the product's cost price
// rather than its selling price.
func (k Kind) UsesCost() bool {
	return k == KindPurchase || k == KindPurchaseReturn
}

// GuardsStock reports whether line quantities are checked against
// available stock.
func (k Kind) GuardsStock() bool {
	return k == KindSale
}

// UsesPriorBalance reports whether the contact's existing dues compound
// into the grand total. Only sale drafts do; the purchase flow never
// applied the analogous treatment for suppliers.
func (k Kind) UsesPriorBalance() bool {
	return k == KindSale
}

// State is the draft lifecycle position.
type State string

const (
	StateEmpty      State = "EMPTY"
	StateEditing    State = "EDITING"
	StateSubmitting State = "SUBMITTING"
)

// Contact is the snapshot of the selected customer/supplier/dealer.
type Contact struct {
	ID      int64
	Name    string
	Phone   string
	Type    string
	Balance float64
}

// Draft holds one in-progress transaction. It lives only as long as the
// screen: created empty, mutated by every input, discarded on successful
// submission, retained on failure so the user can retry.
type Draft struct {
	ID      string
	Kind    Kind
	Contact *Contact
	Lines   []Line
	Note    string
	Date    time.Time
	Totals  Totals

	// OriginID references the sale or purchase a return draft was
	// loaded from; zero for other kinds.
	OriginID int64

	state State
}

// New creates an empty draft of the given kind dated now.
func New(kind Kind) *Draft {
	return &Draft{
		ID:    uuid.NewString(),
		Kind:  kind,
		Date:  time.Now(),
		state: StateEmpty,
	}
}

// State returns the current lifecycle state.
func (d *Draft) State() State {
	return d.state
}

func (d *Draft) touch() {
	if d.state == StateEmpty {
		d.state = StateEditing
	}
}

// SetContact selects the counterparty. For kinds that compound prior
// balance the contact's dues flow into the totals immediately.
func (d *Draft) SetContact(c Contact) {
	d.Contact = &c
	d.Totals.PriorBalance = c.Balance
	d.touch()
	d.recompute()
}

// SetNote records the free-text note.
func (d *Draft) SetNote(note string) {
	d.Note = note
	d.touch()
}

// SetDate overrides the default draft date.
func (d *Draft) SetDate(t time.Time) {
	d.Date = t
	d.touch()
}

// Validate runs the pre-submit checks shared by every kind plus the
// kind-specific ones. The draft is never mutated by validation.
func (d *Draft) Validate() error {
	if d.Contact == nil {
		return ErrMissingContact
	}
	if len(d.Lines) == 0 {
		return ErrEmptyLines
	}
	if d.Kind == KindPurchase {
		for i := range d.Lines {
			if d.Lines[i].Quantity > 0 && d.Lines[i].UnitPrice <= 0 {
				return ErrZeroCost
			}
		}
	}
	return nil
}

// BeginSubmit validates and moves the draft into SUBMITTING. A draft that
// fails validation stays exactly as it was.
func (d *Draft) BeginSubmit() error {
	if err := d.Validate(); err != nil {
		return err
	}
	d.state = StateSubmitting
	return nil
}

// FailSubmit returns a failed submission to EDITING with all values kept
// for retry.
func (d *Draft) FailSubmit() {
	d.state = StateEditing
}

// Reset discards the draft after a successful submission: fresh ID, empty
// lines, zeroed totals, date reset to now.
func (d *Draft) Reset() {
	*d = Draft{
		ID:    uuid.NewString(),
		Kind:  d.Kind,
		Date:  time.Now(),
		state: StateEmpty,
	}
}
