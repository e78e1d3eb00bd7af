package catalog

import "github.com/stocklane/stocklane/internal/draft"

// Product mirrors the backend's product record.
type Product struct {
	ID          int64   `json:"productID"`
	Name        string  `json:"name"`
	CategoryID  int64   `json:"categoryID"`
	Category    string  `json:"category"`
	BrandID     int64   `json:"brandID"`
	Brand       string  `json:"brand"`
	UnitID      int64   `json:"unitID"`
	Unit        string  `json:"unit"`
	SellPrice   float64 `json:"sellPrice"`
	CostPrice   float64 `json:"costPrice"`
	DealerPrice float64 `json:"dp"`
	MRP         float64 `json:"mrp"`
	Stock       float64 `json:"stock"`
	Warranty    float64 `json:"warranty"`
}

// Snapshot copies the fields a draft keeps at selection time.
func (p Product) Snapshot() draft.Product {
	return draft.Product{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Brand:       p.Brand,
		Unit:        p.Unit,
		SellPrice:   p.SellPrice,
		CostPrice:   p.CostPrice,
		DealerPrice: p.DealerPrice,
		MRP:         p.MRP,
		Stock:       p.Stock,
		Warranty:    p.Warranty,
	}
}

// Category is a product grouping.
type Category struct {
	ID   int64  `json:"categoryID"`
	Name string `json:"name"`
}

// Brand is a product manufacturer label.
type Brand struct {
	ID   int64  `json:"brandID"`
	Name string `json:"name"`
}

// Unit is a unit of measure.
type Unit struct {
	ID   int64  `json:"unitID"`
	Name string `json:"name"`
}
