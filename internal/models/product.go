package models

import "time"

type Product struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Currency    string    `json:"currency"`
	UnitAmount  int64     `json:"unitAmount"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PriceSnapshot is the authoritative price of a product as resolved from the
// catalog at checkout time. UnitAmount is in minor currency units (cents).
// Client-submitted prices are never consulted; this is the single source of
// truth for money.
type PriceSnapshot struct {
	ProductID  string `json:"productId"`
	Name       string `json:"name"`
	UnitAmount int64  `json:"unitAmount"`
	Currency   string `json:"currency"`
	Active     bool   `json:"active"`
}

type ProductFilter struct {
	Search string
}
