package models

// CategoryOther collects services whose catalog entry carries no category.
const CategoryOther = "Other"

// ServiceEntry is a single service from the provider catalog after
// normalization: price is always numeric here.
type ServiceEntry struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Min         int     `json:"min,omitempty"`
	Max         int     `json:"max,omitempty"`
	Refill      bool    `json:"refill,omitempty"`
	Description string  `json:"description,omitempty"`
}

// Catalog is the provider service list grouped by category.
type Catalog map[string][]ServiceEntry
