package models

type ShippingAddress struct {
	Email        string `json:"email"        validate:"required,email"`
	Name         string `json:"name"         validate:"required"`
	AddressLine1 string `json:"addressLine1" validate:"required"`
	AddressLine2 string `json:"addressLine2" validate:"omitempty"`
	City         string `json:"city"         validate:"required"`
	State        string `json:"state"        validate:"omitempty"`
	PostalCode   string `json:"postalCode"   validate:"required"`
	Country      string `json:"country"      validate:"required,iso3166_1_alpha2"`
}

// CheckoutRequest carries the client's cart snapshot. Only productId/quantity
// pairs are trusted; prices and discounts are re-resolved server-side.
type CheckoutRequest struct {
	Items     []CartLine      `json:"items"     validate:"required,min=1,max=20,dive"`
	Address   ShippingAddress `json:"address"   validate:"required"`
	PromoCode string          `json:"promoCode" validate:"omitempty,max=64"`
}

type CheckoutResult struct {
	URL string `json:"url"`

	// Totals as priced server-side, in minor units. Advisory for display; the
	// payment session itself carries the itemized amounts.
	Subtotal       int64 `json:"subtotal"`
	DiscountAmount int64 `json:"discountAmount"`
	Total          int64 `json:"total"`

	// DroppedProductIDs lists submitted lines that referenced missing or
	// delisted products and were excluded from pricing.
	DroppedProductIDs []string `json:"droppedProductIds,omitempty"`
}
