package domain

import "time"

// Review represents a customer review. Ratings always roll up into the
// storefront's single rateable product; reviews therefore carry no product
// reference of their own.
type Review struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"created_at"`
}
