package cache_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/shopverse/storefront/internal/cache"
	"github.com/shopverse/storefront/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEntry struct {
	Name       string `json:"name"`
	UnitAmount int64  `json:"unitAmount"`
}

func setup(t *testing.T) (cache.Cache, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	cfg := &config.CacheConfig{
		DefaultTTL: 5 * time.Minute,
	}

	return cache.NewRedisCache(client, cfg), mock
}

func TestKey(t *testing.T) {
	assert.Equal(t, "products:item:prod_1", cache.Key(cache.ProductKeyPrefix, "prod_1"))
}

func TestGet(t *testing.T) {
	ctx := t.Context()
	testKey := cache.Key(cache.ProductKeyPrefix, "prod_1")
	testValue := testEntry{Name: "Aurora Headphones", UnitAmount: 15900}
	jsonData, err := json.Marshal(testValue)
	require.NoError(t, err)

	t.Run("Success - Key Found", func(t *testing.T) {
		redisCache, mock := setup(t)

		var result testEntry

		mock.ExpectGet(testKey).SetVal(string(jsonData))

		found, err := redisCache.Get(ctx, testKey, &result)

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, testValue, result)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Miss - Key Not Found", func(t *testing.T) {
		redisCache, mock := setup(t)

		var result testEntry

		mock.ExpectGet(testKey).RedisNil()

		found, err := redisCache.Get(ctx, testKey, &result)

		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Error - Redis Failure", func(t *testing.T) {
		redisCache, mock := setup(t)

		var result testEntry

		mock.ExpectGet(testKey).SetErr(errors.New("redis down"))

		found, err := redisCache.Get(ctx, testKey, &result)

		require.Error(t, err)
		assert.False(t, found)
	})

	t.Run("Error - Corrupt Payload", func(t *testing.T) {
		redisCache, mock := setup(t)

		var result testEntry

		mock.ExpectGet(testKey).SetVal("{broken")

		found, err := redisCache.Get(ctx, testKey, &result)

		require.Error(t, err)
		assert.False(t, found)
	})
}

func TestSet(t *testing.T) {
	ctx := t.Context()
	testKey := cache.Key(cache.ProductKeyPrefix, "prod_1")
	testValue := testEntry{Name: "Aurora Headphones", UnitAmount: 15900}
	jsonData, err := json.Marshal(testValue)
	require.NoError(t, err)

	t.Run("Success - Explicit TTL", func(t *testing.T) {
		redisCache, mock := setup(t)

		mock.ExpectSet(testKey, jsonData, time.Minute).SetVal("OK")

		err := redisCache.Set(ctx, testKey, testValue, time.Minute)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Falls Back To Default TTL", func(t *testing.T) {
		redisCache, mock := setup(t)

		mock.ExpectSet(testKey, jsonData, 5*time.Minute).SetVal("OK")

		err := redisCache.Set(ctx, testKey, testValue, 0)

		require.NoError(t, err)
	})

	t.Run("Error - Redis Failure", func(t *testing.T) {
		redisCache, mock := setup(t)

		mock.ExpectSet(testKey, jsonData, time.Minute).SetErr(errors.New("redis down"))

		err := redisCache.Set(ctx, testKey, testValue, time.Minute)

		require.Error(t, err)
	})
}

func TestDelete(t *testing.T) {
	ctx := t.Context()
	testKey := cache.Key(cache.ProductListKeyPrefix, "page1")

	t.Run("Success", func(t *testing.T) {
		redisCache, mock := setup(t)

		mock.ExpectDel(testKey).SetVal(1)

		require.NoError(t, redisCache.Delete(ctx, testKey))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error", func(t *testing.T) {
		redisCache, mock := setup(t)

		mock.ExpectDel(testKey).SetErr(errors.New("redis down"))

		require.Error(t, redisCache.Delete(ctx, testKey))
	})
}
