package models

type DiscountKind string

const (
	DiscountPercentage DiscountKind = "percentage"
	DiscountFixed      DiscountKind = "fixed"
)

// DiscountResult is the outcome of validating a promo code. Amount is a
// percentage in [0,100] for percentage discounts and a minor-unit amount for
// fixed discounts. A zero-value result means "no discount".
type DiscountResult struct {
	Valid  bool         `json:"valid"`
	Kind   DiscountKind `json:"discountType,omitempty"`
	Amount float64      `json:"discount,omitempty"`

	// PromotionCodeID identifies the underlying promotion code at the coupon
	// service, so checkout can attach the discount by reference instead of
	// sending a client-supplied number. Never exposed to clients.
	PromotionCodeID string `json:"-"`
}

type PromoValidationResponse struct {
	Valid        bool    `json:"valid"`
	Discount     float64 `json:"discount,omitempty"`
	DiscountType string  `json:"discountType,omitempty"`
	Error        string  `json:"error,omitempty"`
}
