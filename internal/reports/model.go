package reports

// SummaryRow is one line of the sales or purchase summary reports.
type SummaryRow struct {
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Total      float64 `json:"total"`
	Discount   float64 `json:"discount"`
	GrandTotal float64 `json:"grandTotal"`
	Paid       float64 `json:"paid"`
	Due        float64 `json:"dueAmount"`
}

// StockRow is one line of the stock report.
type StockRow struct {
	ProductID int64   `json:"productID"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Stock     float64 `json:"stock"`
	CostPrice float64 `json:"costPrice"`
	Value     float64 `json:"value"`
}

// TopProductRow is one line of the top-products report.
type TopProductRow struct {
	ProductID int64   `json:"productID"`
	Name      string  `json:"name"`
	QtySold   float64 `json:"qtySold"`
	Total     float64 `json:"total"`
}

// DueRow is one line of the outstanding-dues report.
type DueRow struct {
	ContactID int64   `json:"contactID"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Due       float64 `json:"dueAmount"`
}

// Dashboard aggregates the summary blocks shown on the landing screen.
type Dashboard struct {
	Sales       []SummaryRow
	Purchases   []SummaryRow
	TopProducts []TopProductRow
	Dues        []DueRow
}
