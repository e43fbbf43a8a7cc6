package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopverse/storefront/internal/cache"
	"github.com/shopverse/storefront/internal/config"
	"github.com/shopverse/storefront/internal/errors"
	"github.com/shopverse/storefront/internal/models"
	repository "github.com/shopverse/storefront/internal/repositories"
)

const (
	defaultPageSize = 12
	maxPageSize     = 50
)

type productPage struct {
	Products []*models.Product `json:"products"`
	Total    int               `json:"total"`
}

// ProductService serves the browsing catalog. Listings go through the cache;
// checkout price resolution deliberately does NOT — authoritative pricing
// always reads the catalog store directly.
type ProductService struct {
	repo  repository.ProductRepository
	cache cache.Cache
	cfg   *config.CacheConfig
}

func NewProductService(repo repository.ProductRepository, productCache cache.Cache, cfg *config.CacheConfig) *ProductService {
	return &ProductService{repo: repo, cache: productCache, cfg: cfg}
}

func (s *ProductService) ListActive(ctx context.Context, filter models.ProductFilter, page, size int) (*models.PaginatedResponse, error) {
	if page < 1 {
		page = 1
	}

	if size < 1 || size > maxPageSize {
		size = defaultPageSize
	}

	key := cache.Key(cache.ProductListKeyPrefix, fmt.Sprintf("%q:%d:%d", filter.Search, page, size))

	var cached productPage

	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		slog.Warn("Product cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	if found {
		return paginated(cached.Products, cached.Total, page, size), nil
	}

	products, total, err := s.repo.FindActiveProducts(ctx, filter, page, size)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	if err := s.cache.Set(ctx, key, productPage{Products: products, Total: total}, s.cfg.ProductTTL); err != nil {
		slog.Warn("Product cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	return paginated(products, total, page, size), nil
}

func paginated(products []*models.Product, total, page, size int) *models.PaginatedResponse {
	return &models.PaginatedResponse{
		Data:     products,
		Total:    total,
		Page:     page,
		PageSize: size,
	}
}
