package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopverse/storefront/internal/config"
	"github.com/shopverse/storefront/internal/models"
)

// CartStore owns the durable cart of one anonymous session. It fails soft on
// every storage problem: an unavailable backend or a corrupt value reads as
// an empty cart, and a failed write logs and keeps the computed cart in the
// response. Callers never see a storage error.
type CartStore interface {
	GetCart(ctx context.Context, sessionID string) []models.CartLine
	AddItem(ctx context.Context, sessionID, productID string, quantity int) []models.CartLine
	UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) []models.CartLine
	RemoveItem(ctx context.Context, sessionID, productID string) []models.CartLine
	Clear(ctx context.Context, sessionID string)
	Email(ctx context.Context, sessionID string) string
	SaveEmail(ctx context.Context, sessionID, email string)
}

type redisCartStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCartStore(client *redis.Client, cfg *config.CartConfig) CartStore {
	return &redisCartStore{client: client, ttl: cfg.TTL}
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

func emailKey(sessionID string) string {
	return "cart:email:" + sessionID
}

func (s *redisCartStore) GetCart(ctx context.Context, sessionID string) []models.CartLine {

	data, err := s.client.Get(ctx, cartKey(sessionID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("Cart storage unavailable, treating as empty",
				slog.String("session_id", sessionID), slog.String("error", err.Error()))
		}

		return []models.CartLine{}
	}

	var lines []models.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		slog.Warn("Persisted cart is unparsable, treating as empty",
			slog.String("session_id", sessionID), slog.String("error", err.Error()))

		return []models.CartLine{}
	}

	return normalizeLines(lines)
}

func (s *redisCartStore) AddItem(ctx context.Context, sessionID, productID string, quantity int) []models.CartLine {
	if quantity < 1 {
		quantity = 1
	}

	lines := s.GetCart(ctx, sessionID)

	found := false

	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity = clampQuantity(lines[i].Quantity + quantity)
			found = true

			break
		}
	}

	if !found {
		lines = append(lines, models.CartLine{ProductID: productID, Quantity: clampQuantity(quantity)})
	}

	if len(lines) > models.MaxCartLines {
		lines = lines[:models.MaxCartLines]
	}

	s.setCart(ctx, sessionID, lines)

	return lines
}

func (s *redisCartStore) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) []models.CartLine {
	lines := s.GetCart(ctx, sessionID)

	if quantity <= 0 {
		lines = removeLine(lines, productID)
	} else {
		for i := range lines {
			if lines[i].ProductID == productID {
				lines[i].Quantity = clampQuantity(quantity)

				break
			}
		}
	}

	s.setCart(ctx, sessionID, lines)

	return lines
}

func (s *redisCartStore) RemoveItem(ctx context.Context, sessionID, productID string) []models.CartLine {
	lines := removeLine(s.GetCart(ctx, sessionID), productID)

	s.setCart(ctx, sessionID, lines)

	return lines
}

func (s *redisCartStore) Clear(ctx context.Context, sessionID string) {
	if err := s.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		slog.Warn("Failed to clear persisted cart",
			slog.String("session_id", sessionID), slog.String("error", err.Error()))
	}
}

func (s *redisCartStore) Email(ctx context.Context, sessionID string) string {
	email, err := s.client.Get(ctx, emailKey(sessionID)).Result()
	if err != nil {
		return ""
	}

	return email
}

func (s *redisCartStore) SaveEmail(ctx context.Context, sessionID, email string) {
	if err := s.client.Set(ctx, emailKey(sessionID), email, s.ttl).Err(); err != nil {
		slog.Warn("Failed to persist customer email",
			slog.String("session_id", sessionID), slog.String("error", err.Error()))
	}
}

// setCart writes the whole cart value in one shot. Mutations are always
// read-modify-write of the full value, never partial updates.
func (s *redisCartStore) setCart(ctx context.Context, sessionID string, lines []models.CartLine) {
	data, err := json.Marshal(lines)
	if err != nil {
		slog.Error("Failed to marshal cart", slog.String("session_id", sessionID), slog.String("error", err.Error()))

		return
	}

	if err := s.client.Set(ctx, cartKey(sessionID), data, s.ttl).Err(); err != nil {
		slog.Warn("Failed to persist cart",
			slog.String("session_id", sessionID), slog.String("error", err.Error()))
	}
}

func clampQuantity(quantity int) int {
	if quantity > models.MaxLineQuantity {
		return models.MaxLineQuantity
	}

	return quantity
}

func removeLine(lines []models.CartLine, productID string) []models.CartLine {
	kept := lines[:0]

	for _, line := range lines {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}

	return kept
}

// normalizeLines re-establishes the cart invariants on anything read back
// from storage: no empty product IDs, quantities within [1,10], one line per
// product (first wins), at most 20 lines, insertion order preserved.
func normalizeLines(lines []models.CartLine) []models.CartLine {
	seen := make(map[string]bool, len(lines))
	kept := make([]models.CartLine, 0, len(lines))

	for _, line := range lines {
		if line.ProductID == "" || line.Quantity < 1 || seen[line.ProductID] {
			continue
		}

		seen[line.ProductID] = true
		line.Quantity = clampQuantity(line.Quantity)
		kept = append(kept, line)

		if len(kept) == models.MaxCartLines {
			break
		}
	}

	return kept
}
