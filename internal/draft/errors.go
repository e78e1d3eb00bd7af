package draft

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingContact indicates no customer/supplier was selected.
	ErrMissingContact = errors.New("no contact selected")
	// ErrEmptyLines indicates submission of a draft without products.
	ErrEmptyLines = errors.New("no products added")
	// ErrOutOfStock indicates the product has no available stock.
	ErrOutOfStock = errors.New("product is out of stock")
	// ErrStockExceeded indicates the quantity would exceed available stock.
	ErrStockExceeded = errors.New("quantity exceeds available stock")
	// ErrZeroCost indicates a purchase line with quantity but no unit cost.
	ErrZeroCost = errors.New("unit cost required for purchased products")
	// ErrLineIndex indicates an out-of-range line index.
	ErrLineIndex = errors.New("line index out of range")
	// ErrUnknownField indicates an unsupported field name in an update.
	ErrUnknownField = errors.New("unknown line field")
)

// DuplicateSerialError reports a serial number appearing twice, either
// within the set being assigned or on another line of the same draft.
type DuplicateSerialError struct {
	Serial string
}

func (e *DuplicateSerialError) Error() string {
	return fmt.Sprintf("duplicate serial number %q", e.Serial)
}
