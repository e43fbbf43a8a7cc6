// Package promo validates user-entered promo codes against the payment
// provider's promotion codes. Everything here fails closed: a broken or slow
// lookup resolves to Invalid, never to an applied discount.
package promo

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/shopverse/storefront/internal/models"
	stripeClient "github.com/shopverse/storefront/pkg/stripe"
)

// MinCodeLength is the shortest code worth a lookup. Anything shorter is
// rejected client-side without touching the network.
const MinCodeLength = 3

// Normalize uppercases the code and strips every character outside [A-Z0-9].
// It runs before any other processing, on both the live input and the
// server-side re-validation path.
func Normalize(code string) string {
	var b strings.Builder

	for _, r := range strings.ToUpper(code) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}

	return b.String()
}

type Validator struct {
	client  stripeClient.Client
	enabled bool
	timeout time.Duration
}

// NewValidator builds a validator. The enabled switch is captured once here;
// a disabled validator never issues lookups.
func NewValidator(client stripeClient.Client, enabled bool, timeout time.Duration) *Validator {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	return &Validator{client: client, enabled: enabled, timeout: timeout}
}

func (v *Validator) Enabled() bool {
	return v.enabled
}

// Validate resolves a raw code to a DiscountResult. It never returns an
// error: disabled feature, short code, no match, inactive code, expired
// coupon, a coupon carrying no discount value, and any lookup failure all
// resolve to Invalid.
func (v *Validator) Validate(ctx context.Context, rawCode string) models.DiscountResult {
	invalid := models.DiscountResult{Valid: false}

	if !v.enabled {
		return invalid
	}

	code := Normalize(rawCode)
	if len(code) < MinCodeLength {
		return invalid
	}

	lookupCtx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	promotion, err := v.client.FindPromotionCode(lookupCtx, code)
	if err != nil {
		slog.Warn("Promo code lookup failed", slog.String("code", code), slog.String("error", err.Error()))
		return invalid
	}

	if promotion == nil || !promotion.Active {
		return invalid
	}

	coupon := promotion.Coupon
	if coupon == nil || !coupon.Valid {
		return invalid
	}

	switch {
	case coupon.PercentOff > 0:
		return models.DiscountResult{
			Valid:           true,
			Kind:            models.DiscountPercentage,
			Amount:          coupon.PercentOff,
			PromotionCodeID: promotion.ID,
		}
	case coupon.AmountOff > 0:
		return models.DiscountResult{
			Valid:           true,
			Kind:            models.DiscountFixed,
			Amount:          float64(coupon.AmountOff),
			PromotionCodeID: promotion.ID,
		}
	default:
		// Nominally active but carries no discount value. Useless for
		// pricing, so it is not eligible.
		return invalid
	}
}
