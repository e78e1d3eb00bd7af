package catalog

// SaveProductRequest is the body for product create/update calls.
type SaveProductRequest struct {
	ID          int64   `json:"productID,omitempty"`
	Name        string  `json:"name" validate:"required"`
	CategoryID  int64   `json:"categoryID" validate:"required,gt=0"`
	BrandID     int64   `json:"brandID" validate:"gte=0"`
	UnitID      int64   `json:"unitID" validate:"gte=0"`
	SellPrice   float64 `json:"sellPrice" validate:"gte=0"`
	CostPrice   float64 `json:"costPrice" validate:"gte=0"`
	DealerPrice float64 `json:"dp" validate:"gte=0"`
	MRP         float64 `json:"mrp" validate:"gte=0"`
	Warranty    float64 `json:"warranty" validate:"gte=0"`
}

// SaveNameRequest covers the name-only entities: category, brand, unit.
type SaveNameRequest struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name" validate:"required"`
}
