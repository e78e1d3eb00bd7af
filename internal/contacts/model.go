package contacts

import "github.com/stocklane/stocklane/internal/draft"

// ContactType discriminates customers, suppliers and dealers.
type ContactType string

const (
	TypeCustomer ContactType = "customer"
	TypeSupplier ContactType = "supplier"
	TypeDealer   ContactType = "dealer"
)

// Contact mirrors the backend's contact record. Balance is the running
// due amount the backend maintains across transactions.
type Contact struct {
	ID      int64       `json:"contactID"`
	Name    string      `json:"name"`
	Phone   string      `json:"phone"`
	Address string      `json:"address"`
	Type    ContactType `json:"type"`
	Balance float64     `json:"balance"`
}

// Snapshot copies the fields a draft keeps at selection time.
func (c Contact) Snapshot() draft.Contact {
	return draft.Contact{
		ID:      c.ID,
		Name:    c.Name,
		Phone:   c.Phone,
		Type:    string(c.Type),
		Balance: c.Balance,
	}
}
