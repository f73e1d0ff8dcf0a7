package models

// Product is a catalog entry. The catalog is read-only at runtime.
type Product struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Slug        string  `json:"slug" db:"slug"`
	Volume      string  `json:"volume" db:"volume"`
	Price       float64 `json:"price" db:"price"`
	Image       string  `json:"image" db:"image"`
	Description string  `json:"description" db:"description"`
	Category    string  `json:"category" db:"category"`
	Brand       string  `json:"brand" db:"brand"`
	InStock     bool    `json:"inStock" db:"in_stock"`
}
