package models

const (
	// MaxLineQuantity is the per-line quantity cap. Quantities above it are
	// clamped, never rejected, on cart mutations.
	MaxLineQuantity = 10

	// MaxCartLines caps the number of distinct products in one cart.
	MaxCartLines = 20
)

// CartLine is one (product, quantity) pair. A cart holds at most one line per
// product; insertion order is preserved for display.
type CartLine struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"  validate:"required,min=1,max=10"`
}

type AddItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"  validate:"omitempty,min=1"`
}

type UpdateQuantityRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"  validate:"min=0"`
}

type SaveEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type CartResponse struct {
	Lines     []CartLine `json:"lines"`
	ItemCount int        `json:"itemCount"`
}

// ItemCount is the badge number shown next to the cart icon: the sum of all
// line quantities, not the number of lines.
func ItemCount(lines []CartLine) int {
	count := 0
	for _, line := range lines {
		count += line.Quantity
	}

	return count
}
