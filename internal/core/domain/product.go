package domain

import "time"

// Product is a catalog entry. Price is optional (a listing may be published
// before pricing is decided); UpdatedAt is nil until the first update.
type Product struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Price       *float64   `json:"price"`
	Description string     `json:"description"`
	ImageURL    string     `json:"imageUrl"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}
