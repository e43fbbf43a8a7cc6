package repository_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/shopverse/storefront/internal/config"
	"github.com/shopverse/storefront/internal/models"
	repository "github.com/shopverse/storefront/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionID = "sess_abc123"

func setupCartStore(t *testing.T) (repository.CartStore, redismock.ClientMock, time.Duration) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	ttl := 720 * time.Hour
	store := repository.NewCartStore(client, &config.CartConfig{TTL: ttl})

	return store, mock, ttl
}

func mustMarshal(t *testing.T, lines []models.CartLine) []byte {
	t.Helper()

	data, err := json.Marshal(lines)
	require.NoError(t, err)

	return data
}

func TestGetCart(t *testing.T) {
	ctx := t.Context()

	t.Run("Missing Key Reads As Empty", func(t *testing.T) {
		store, mock, _ := setupCartStore(t)
		mock.ExpectGet("cart:" + testSessionID).RedisNil()

		lines := store.GetCart(ctx, testSessionID)

		assert.Empty(t, lines)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Storage Error Reads As Empty", func(t *testing.T) {
		store, mock, _ := setupCartStore(t)
		mock.ExpectGet("cart:" + testSessionID).SetErr(errors.New("connection refused"))

		lines := store.GetCart(ctx, testSessionID)

		assert.Empty(t, lines)
	})

	t.Run("Corrupt Value Reads As Empty", func(t *testing.T) {
		store, mock, _ := setupCartStore(t)
		mock.ExpectGet("cart:" + testSessionID).SetVal("{not json")

		lines := store.GetCart(ctx, testSessionID)

		assert.Empty(t, lines)
	})

	t.Run("Round Trip Preserves Lines And Order", func(t *testing.T) {
		store, mock, _ := setupCartStore(t)
		stored := []models.CartLine{
			{ProductID: "prod_b", Quantity: 2},
			{ProductID: "prod_a", Quantity: 1},
		}
		mock.ExpectGet("cart:" + testSessionID).SetVal(string(mustMarshal(t, stored)))

		lines := store.GetCart(ctx, testSessionID)

		assert.Equal(t, stored, lines)
	})

	t.Run("Normalizes Out Of Range Values On Read", func(t *testing.T) {
		store, mock, _ := setupCartStore(t)
		stored := []models.CartLine{
			{ProductID: "prod_a", Quantity: 99},
			{ProductID: "prod_a", Quantity: 3},
			{ProductID: "", Quantity: 1},
			{ProductID: "prod_b", Quantity: 0},
			{ProductID: "prod_c", Quantity: 2},
		}
		mock.ExpectGet("cart:" + testSessionID).SetVal(string(mustMarshal(t, stored)))

		lines := store.GetCart(ctx, testSessionID)

		assert.Equal(t, []models.CartLine{
			{ProductID: "prod_a", Quantity: 10},
			{ProductID: "prod_c", Quantity: 2},
		}, lines)
	})
}

func TestAddItem(t *testing.T) {
	ctx := t.Context()

	t.Run("Appends New Line", func(t *testing.T) {
		store, mock, ttl := setupCartStore(t)
		mock.ExpectGet("cart:" + testSessionID).RedisNil()
		mock.ExpectSet("cart:"+testSessionID,
			mustMarshal(t, []models.CartLine{{ProductID: "prod_a", Quantity: 2}}), ttl).SetVal("OK")

		lines := store.AddItem(ctx, testSessionID, "prod_a", 2)

		assert.Equal(t, []models.CartLine{{ProductID: "prod_a", Quantity: 2}}, lines)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Increments Existing Line With Clamp", func(t *testing.T) {
		store, mock, ttl := setupCartStore(t)
		stored := []models.CartLine{{ProductID: "prod_a", Quantity: 6}}
		mock.ExpectGet("cart:" + testSessionID).SetVal(string(mustMarshal(t, stored)))
		mock.ExpectSet("cart:"+testSessionID,
			mustMarshal(t, []models.CartLine{{ProductID: "prod_a", Quantity: 10}}), ttl).SetVal("OK")

		lines := store.AddItem(ctx, testSessionID, "prod_a", 6)

		assert.Equal(t, 10, lines[0].Quantity)
		assert.Len(t, lines, 1)
	})

	t.Run("Adding Twice Yields One Line At Min Of Double And Cap", func(t *testing.T) {
		store, mock, ttl := setupCartStore(t)

		first := []models.CartLine{{ProductID: "prod_a", Quantity: 4}}
		mock.ExpectGet("cart:" + testSessionID).RedisNil()
		mock.ExpectSet("cart:"+testSessionID, mustMarshal(t, first), ttl).SetVal("OK")

		second := []models.CartLine{{ProductID: "prod_a", Quantity: 8}}
		mock.ExpectGet("cart:" + testSessionID).SetVal(string(mustMarshal(t, first)))
		mock.ExpectSet("cart:"+testSessionID, mustMarshal(t, second), ttl).SetVal("OK")

		store.AddItem(ctx, testSessionID, "prod_a", 4)
		lines := store.AddItem(ctx, testSessionID, "prod_a", 4)

		assert.Equal(t, second, lines)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Quantity Below One Is Treated As One", func(t *testing.T) {
		store, mock, ttl := setupCartStore(t)
		mock.ExpectGet("cart:" + testSessionID).RedisNil()
		mock.ExpectSet("cart:"+testSessionID,
			mustMarshal(t, []models.CartLine{{ProductID: "prod_a", Quantity: 1}}), ttl).SetVal("OK")

		lines := store.AddItem(ctx, testSessionID, "prod_a", 0)

		assert.Equal(t, 1, lines[0].Quantity)
	})

	t.Run("Cart Is Truncated To Line Cap", func(t *testing.T) {
		store, mock, ttl := setupCartStore(t)

		full := make([]models.CartLine, 0, models.MaxCartLines)
		for i := 0; i < models.MaxCartLines; i++ {
			full = append(full, models.CartLine{ProductID: fmt.Sprintf("prod_%02d", i), Quantity: 1})
		}

		mock.ExpectGet("cart:" + testSessionID).SetVal(string(mustMarshal(t, full)))
		mock.ExpectSet("cart:"+testSessionID, mustMarshal(t, full), ttl).SetVal("OK")

		lines := store.AddItem(ctx, testSessionID, "prod_overflow", 1)

		assert.Len(t, lines, models.MaxCartLines)
		for _, line := range lines {
			assert.NotEqual(t, "prod_overflow", line.ProductID)
		}
	})

	t.Run("Write Failure Still Returns Computed Cart", func(t *testing.T) {
		store, mock, ttl := setupCartStore(t)
		mock.ExpectGet("cart:" + testSessionID).RedisNil()
		mock.ExpectSet("cart:"+testSessionID,
			mustMarshal(t, []models.CartLine{{ProductID: "prod_a", Quantity: 1}}), ttl).
			SetErr(errors.New("write failed"))

		lines := store.AddItem(ctx, testSessionID, "prod_a", 1)

		assert.Equal(t, []models.CartLine{{ProductID: "prod_a", Quantity: 1}}, lines)
	})
}

func TestUpdateQuantity(t *testing.T) {
	ctx := t.Context()

	t.Run("Sets Quantity With Clamp", func(t *testing.T) {
		store, mock, ttl := setupCartStore(t)
		stored := []models.CartLine{{ProductID: "prod_a", Quantity: 2}}
		mock.ExpectGet("cart:" + testSessionID).SetVal(string(mustMarshal(t, stored)))
		mock.ExpectSet("cart:"+testSessionID,
			mustMarshal(t, []models.CartLine{{ProductID: "prod_a", Quantity: 10}}), ttl).SetVal("OK")

		lines := store.UpdateQuantity(ctx, testSessionID, "prod_a", 25)

		assert.Equal(t, 10, lines[0].Quantity)
	})

	t.Run("Zero Quantity Removes Line", func(t *testing.T) {
		store, mock, ttl := setupCartStore(t)
		stored := []models.CartLine{
			{ProductID: "prod_a", Quantity: 2},
			{ProductID: "prod_b", Quantity: 1},
		}
		mock.ExpectGet("cart:" + testSessionID).SetVal(string(mustMarshal(t, stored)))
		mock.ExpectSet("cart:"+testSessionID,
			mustMarshal(t, []models.CartLine{{ProductID: "prod_b", Quantity: 1}}), ttl).SetVal("OK")

		lines := store.UpdateQuantity(ctx, testSessionID, "prod_a", 0)

		assert.Equal(t, []models.CartLine{{ProductID: "prod_b", Quantity: 1}}, lines)
	})

	t.Run("Removing Absent Line Is Idempotent", func(t *testing.T) {
		store, mock, ttl := setupCartStore(t)
		stored := []models.CartLine{{ProductID: "prod_b", Quantity: 1}}
		mock.ExpectGet("cart:" + testSessionID).SetVal(string(mustMarshal(t, stored)))
		mock.ExpectSet("cart:"+testSessionID, mustMarshal(t, stored), ttl).SetVal("OK")

		lines := store.UpdateQuantity(ctx, testSessionID, "prod_ghost", 0)

		assert.Equal(t, stored, lines)
	})
}

func TestRemoveItem(t *testing.T) {
	ctx := t.Context()

	store, mock, ttl := setupCartStore(t)
	stored := []models.CartLine{
		{ProductID: "prod_a", Quantity: 2},
		{ProductID: "prod_b", Quantity: 1},
	}
	mock.ExpectGet("cart:" + testSessionID).SetVal(string(mustMarshal(t, stored)))
	mock.ExpectSet("cart:"+testSessionID,
		mustMarshal(t, []models.CartLine{{ProductID: "prod_a", Quantity: 2}}), ttl).SetVal("OK")

	lines := store.RemoveItem(ctx, testSessionID, "prod_b")

	assert.Equal(t, []models.CartLine{{ProductID: "prod_a", Quantity: 2}}, lines)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClear(t *testing.T) {
	ctx := t.Context()

	store, mock, _ := setupCartStore(t)
	mock.ExpectDel("cart:" + testSessionID).SetVal(1)

	store.Clear(ctx, testSessionID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEmail(t *testing.T) {
	ctx := t.Context()

	t.Run("Save And Read", func(t *testing.T) {
		store, mock, ttl := setupCartStore(t)
		mock.ExpectSet("cart:email:"+testSessionID, "jane@example.com", ttl).SetVal("OK")
		mock.ExpectGet("cart:email:" + testSessionID).SetVal("jane@example.com")

		store.SaveEmail(ctx, testSessionID, "jane@example.com")

		assert.Equal(t, "jane@example.com", store.Email(ctx, testSessionID))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing Email Reads As Empty String", func(t *testing.T) {
		store, mock, _ := setupCartStore(t)
		mock.ExpectGet("cart:email:" + testSessionID).RedisNil()

		assert.Equal(t, "", store.Email(ctx, testSessionID))
	})
}
