package returns

// Origin is the already-posted transaction a return is issued against.
type Origin struct {
	ID        int64        `json:"id"`
	ContactID int64        `json:"contactID"`
	Contact   string       `json:"contact"`
	Lines     []OriginLine `json:"products"`
}

// OriginLine is one row of the original transaction; LineID is the
// backend's identifier for that row.
type OriginLine struct {
	LineID    int64    `json:"productLineID"`
	ProductID int64    `json:"productID"`
	Name      string   `json:"name"`
	Qty       float64  `json:"qty"`
	Price     float64  `json:"price"`
	SerialNos []string `json:"serialNos"`
}

// SaleReturnPayload is the body shape of the sale return endpoint.
type SaleReturnPayload struct {
	SaleReturn SaleReturnHeader `json:"SaleReturn"`
	Products   []ReturnProduct  `json:"ReturnProduct"`
}

type SaleReturnHeader struct {
	ContactID int64   `json:"contactID"`
	SaleID    int64   `json:"saleID"`
	Total     float64 `json:"total"`
	Note      string  `json:"note"`
}

// PurchaseReturnPayload is the body shape of the purchase return endpoint.
type PurchaseReturnPayload struct {
	PurchaseReturn PurchaseReturnHeader `json:"PurchaseReturn"`
	Products       []ReturnProduct      `json:"ReturnProduct"`
}

type PurchaseReturnHeader struct {
	ContactID  int64   `json:"contactID"`
	PurchaseID int64   `json:"purchaseID"`
	Total      float64 `json:"total"`
	Note       string  `json:"note"`
}

// ReturnProduct is one returned row, pointing back at its original line.
type ReturnProduct struct {
	ProductID     int64    `json:"productID"`
	ProductLineID int64    `json:"productLineID"`
	Qty           float64  `json:"qty"`
	Amount        float64  `json:"amount"`
	Total         float64  `json:"total"`
	SerialNos     []string `json:"serialNos"`
}
