package stripe

import (
	"context"
	"log/slog"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/checkout/session"
	"github.com/stripe/stripe-go/v81/promotioncode"
)

// Client is the narrow contract the storefront holds against the payment
// provider: look up a promotion code, create a hosted checkout session.
type Client interface {
	FindPromotionCode(ctx context.Context, code string) (*stripe.PromotionCode, error)
	CreateCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type stripeClient struct{}

func NewStripeClient(apiKey string) Client {
	stripe.Key = apiKey

	return &stripeClient{}
}

// FindPromotionCode lists active promotion codes matching the given code,
// limited to one match. A nil result with a nil error means no match.
// If the provider ever reports more than one match, the first is used and
// the ambiguity is logged as unexpected.
func (s *stripeClient) FindPromotionCode(ctx context.Context, code string) (*stripe.PromotionCode, error) {
	params := &stripe.PromotionCodeListParams{
		Code:   stripe.String(code),
		Active: stripe.Bool(true),
	}
	params.Context = ctx
	params.Limit = stripe.Int64(1)

	iter := promotioncode.List(params)

	var match *stripe.PromotionCode

	for iter.Next() {
		if match == nil {
			match = iter.PromotionCode()
			continue
		}

		slog.Warn("Multiple promotion codes matched a single code",
			slog.String("code", code),
			slog.String("ignored_id", iter.PromotionCode().ID))
	}

	if err := iter.Err(); err != nil {
		return nil, err
	}

	return match, nil
}

// CreateCheckoutSession implements Client.
func (s *stripeClient) CreateCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	params.Context = ctx

	return session.New(params)
}
