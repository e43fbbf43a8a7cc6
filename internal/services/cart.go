package service

import (
	"context"

	"github.com/shopverse/storefront/internal/events"
	"github.com/shopverse/storefront/internal/models"
	repository "github.com/shopverse/storefront/internal/repositories"
)

// CartService wraps the persisted cart store and announces every visible
// mutation on the events hub. It inherits the store's fail-soft behavior:
// cart operations never fail, they converge on whatever state storage holds.
type CartService struct {
	store  repository.CartStore
	events *events.CartEvents
}

func NewCartService(store repository.CartStore, hub *events.CartEvents) *CartService {
	return &CartService{store: store, events: hub}
}

func (s *CartService) GetCart(ctx context.Context, sessionID string) models.CartResponse {
	lines := s.store.GetCart(ctx, sessionID)

	return models.CartResponse{Lines: lines, ItemCount: models.ItemCount(lines)}
}

func (s *CartService) AddItem(ctx context.Context, sessionID string, req *models.AddItemRequest) models.CartResponse {
	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	lines := s.store.AddItem(ctx, sessionID, req.ProductID, quantity)

	return s.notify(sessionID, lines)
}

func (s *CartService) UpdateQuantity(ctx context.Context, sessionID string, req *models.UpdateQuantityRequest) models.CartResponse {
	lines := s.store.UpdateQuantity(ctx, sessionID, req.ProductID, req.Quantity)

	return s.notify(sessionID, lines)
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID, productID string) models.CartResponse {
	lines := s.store.RemoveItem(ctx, sessionID, productID)

	return s.notify(sessionID, lines)
}

func (s *CartService) Clear(ctx context.Context, sessionID string) {
	s.store.Clear(ctx, sessionID)

	s.notify(sessionID, nil)
}

func (s *CartService) Email(ctx context.Context, sessionID string) string {
	return s.store.Email(ctx, sessionID)
}

func (s *CartService) SaveEmail(ctx context.Context, sessionID, email string) {
	s.store.SaveEmail(ctx, sessionID, email)
}

func (s *CartService) notify(sessionID string, lines []models.CartLine) models.CartResponse {
	response := models.CartResponse{Lines: lines, ItemCount: models.ItemCount(lines)}

	s.events.Publish(events.CartChange{
		SessionID: sessionID,
		Lines:     lines,
		ItemCount: response.ItemCount,
	})

	return response
}
