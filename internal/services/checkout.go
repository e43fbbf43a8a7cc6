package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/shopverse/storefront/internal/config"
	"github.com/shopverse/storefront/internal/errors"
	"github.com/shopverse/storefront/internal/metrics"
	"github.com/shopverse/storefront/internal/models"
	"github.com/shopverse/storefront/internal/pricing"
	"github.com/shopverse/storefront/internal/promo"
	repository "github.com/shopverse/storefront/internal/repositories"
	"github.com/shopverse/storefront/internal/utils"
	stripeClient "github.com/shopverse/storefront/pkg/stripe"
	"github.com/stripe/stripe-go/v81"
	"golang.org/x/sync/errgroup"
)

// PromoValidator is the server-side re-validation dependency. The checkout
// path never trusts a client-asserted discount; it always re-validates the
// raw code itself.
type PromoValidator interface {
	Validate(ctx context.Context, rawCode string) models.DiscountResult
}

var _ PromoValidator = (*promo.Validator)(nil)

// CheckoutService is the trust boundary between the client's cart snapshot
// and real money. It takes only productId/quantity pairs and an address,
// re-resolves prices from the catalog, re-validates the promo code, and only
// then asks the payment provider for a hosted session.
type CheckoutService struct {
	products  repository.ProductRepository
	promo     PromoValidator
	stripe    stripeClient.Client
	cfg       *config.Stripe
	sanitizer *bluemonday.Policy
}

func NewCheckoutService(products repository.ProductRepository, validator PromoValidator, client stripeClient.Client, cfg *config.Stripe) *CheckoutService {
	return &CheckoutService{
		products:  products,
		promo:     validator,
		stripe:    client,
		cfg:       cfg,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *CheckoutService) Checkout(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutResult, error) {
	if err := validateLines(req.Items); err != nil {
		metrics.RecordCheckout(metrics.CheckoutOutcomeRejected)
		return nil, err
	}

	address := s.sanitizeAddress(req.Address)

	// Catalog resolution and promo re-validation are independent read-only
	// lookups; run them concurrently, but both must land before pricing.
	var (
		snapshots map[string]models.PriceSnapshot
		discount  models.DiscountResult
	)

	g, groupCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		lookupCtx, cancel := utils.WithLookupTimeout(groupCtx)
		defer cancel()

		ids := make([]string, 0, len(req.Items))
		for _, line := range req.Items {
			ids = append(ids, line.ProductID)
		}

		var err error
		snapshots, err = s.products.FindByIDs(lookupCtx, ids)

		return err
	})

	if req.PromoCode != "" {
		g.Go(func() error {
			// Fail closed: a validator problem means no discount, not a
			// failed checkout.
			discount = s.promo.Validate(groupCtx, req.PromoCode)
			metrics.RecordPromoValidation(discount.Valid)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		metrics.RecordCheckout(metrics.CheckoutOutcomeFailed)
		return nil, errors.DatabaseError("Failed to resolve product prices").WithError(err)
	}

	quote := pricing.ComputeTotal(req.Items, snapshots, &discount)

	if quote.Total == 0 || len(quote.InvalidProductIDs) == len(req.Items) {
		metrics.RecordCheckout(metrics.CheckoutOutcomeRejected)
		return nil, errors.NothingToPurchaseError("Nothing to purchase")
	}

	currency, err := uniformCurrency(req.Items, snapshots)
	if err != nil {
		metrics.RecordCheckout(metrics.CheckoutOutcomeRejected)
		return nil, err
	}

	params := s.sessionParams(req.Items, snapshots, &discount, address)

	session, err := s.stripe.CreateCheckoutSession(ctx, params)
	if err != nil {
		slog.Error("Payment session creation failed",
			slog.String("currency", currency),
			slog.Int64("total", quote.Total),
			slog.String("error", err.Error()))
		metrics.RecordCheckout(metrics.CheckoutOutcomeFailed)

		return nil, errors.CheckoutFailedError("Unable to start checkout").WithError(err)
	}

	metrics.RecordCheckout(metrics.CheckoutOutcomeCreated)

	return &models.CheckoutResult{
		URL:               session.URL,
		Subtotal:          quote.Subtotal,
		DiscountAmount:    quote.DiscountAmount,
		Total:             quote.Total,
		DroppedProductIDs: quote.InvalidProductIDs,
	}, nil
}

// validateLines enforces the cart shape invariants before any pricing or
// network work: 1-20 distinct lines, quantities in [1,10].
func validateLines(lines []models.CartLine) error {
	if len(lines) == 0 {
		return errors.NothingToPurchaseError("Nothing to purchase")
	}

	if len(lines) > models.MaxCartLines {
		return errors.CartLimitExceededError(
			fmt.Sprintf("Cart exceeds %d distinct products", models.MaxCartLines))
	}

	seen := make(map[string]bool, len(lines))

	for _, line := range lines {
		if line.Quantity < 1 || line.Quantity > models.MaxLineQuantity {
			return errors.InvalidQuantityError(
				fmt.Sprintf("Quantity for product %s must be between 1 and %d", line.ProductID, models.MaxLineQuantity))
		}

		if seen[line.ProductID] {
			return errors.BadRequestError("Duplicate product in cart: " + line.ProductID)
		}

		seen[line.ProductID] = true
	}

	return nil
}

func uniformCurrency(lines []models.CartLine, snapshots map[string]models.PriceSnapshot) (string, error) {
	currency := ""

	for _, line := range lines {
		snapshot, ok := snapshots[line.ProductID]
		if !ok || !snapshot.Active {
			continue
		}

		if currency == "" {
			currency = snapshot.Currency
		} else if currency != snapshot.Currency {
			return "", errors.BadRequestError("Cart mixes currencies")
		}
	}

	return currency, nil
}

// sessionParams builds the hosted session request: per-line amounts so the
// provider's own display matches the storefront, the discount attached by
// promotion-code reference, and a fresh idempotency key for this attempt.
func (s *CheckoutService) sessionParams(lines []models.CartLine, snapshots map[string]models.PriceSnapshot, discount *models.DiscountResult, address models.ShippingAddress) *stripe.CheckoutSessionParams {
	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:    stripe.String(s.cfg.SuccessURL),
		CancelURL:     stripe.String(s.cfg.CancelURL),
		CustomerEmail: stripe.String(address.Email),
	}

	for _, line := range lines {
		snapshot, ok := snapshots[line.ProductID]
		if !ok || !snapshot.Active {
			continue
		}

		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(int64(line.Quantity)),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(snapshot.Currency),
				UnitAmount: stripe.Int64(snapshot.UnitAmount),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(snapshot.Name),
				},
			},
		})
	}

	if discount.Valid && discount.PromotionCodeID != "" {
		params.Discounts = []*stripe.CheckoutSessionDiscountParams{
			{PromotionCode: stripe.String(discount.PromotionCodeID)},
		}
	}

	params.AddMetadata("customer_name", address.Name)
	params.AddMetadata("shipping_city", address.City)
	params.AddMetadata("shipping_country", address.Country)
	params.SetIdempotencyKey(uuid.NewString())

	return params
}

func (s *CheckoutService) sanitizeAddress(address models.ShippingAddress) models.ShippingAddress {
	address.Name = s.sanitizer.Sanitize(address.Name)
	address.AddressLine1 = s.sanitizer.Sanitize(address.AddressLine1)
	address.AddressLine2 = s.sanitizer.Sanitize(address.AddressLine2)
	address.City = s.sanitizer.Sanitize(address.City)
	address.State = s.sanitizer.Sanitize(address.State)
	address.PostalCode = s.sanitizer.Sanitize(address.PostalCode)

	return address
}
