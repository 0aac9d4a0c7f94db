package domain

import "time"

// Product represents a product in the catalog. Price carries two fraction
// digits and Rating one, both as decimal strings so no float rounding leaks
// into the API.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Image       string    `json:"image"`
	Rating      string    `json:"rating"`
	ReviewCount int       `json:"review_count"`
	Badge       *string   `json:"badge,omitempty"`
	Sizes       []string  `json:"sizes"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
