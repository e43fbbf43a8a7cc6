package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/shopverse/storefront/internal/models"
	"github.com/shopverse/storefront/internal/utils"
)

// ProductRepository is the read-only catalog collaborator. The checkout path
// treats it as the single source of truth for prices and never writes
// through it.
type ProductRepository interface {
	FindActiveProducts(ctx context.Context, filter models.ProductFilter, page, size int) ([]*models.Product, int, error)
	FindByIDs(ctx context.Context, ids []string) (map[string]models.PriceSnapshot, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

func (r *productRepository) FindActiveProducts(ctx context.Context, filter models.ProductFilter, page, size int) ([]*models.Product, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, slug, name, description, image_url, currency, unit_amount, active, created_at, updated_at
		FROM products
		WHERE active = TRUE AND ($1 = '' OR name ILIKE '%' || $1 || '%')
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	offset := (page - 1) * size

	rows, err := r.DB.QueryContext(dbCtx, query, filter.Search, size, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var products []*models.Product

	for rows.Next() {
		product := &models.Product{}

		err := rows.Scan(&product.ID, &product.Slug, &product.Name, &product.Description,
			&product.ImageURL, &product.Currency, &product.UnitAmount, &product.Active,
			&product.CreatedAt, &product.UpdatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning product row: %w", err)
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating product rows: %w", err)
	}

	countQuery := `
		SELECT COUNT(*)
		FROM products
		WHERE active = TRUE AND ($1 = '' OR name ILIKE '%' || $1 || '%')
	`

	var total int
	if err := r.DB.QueryRowContext(dbCtx, countQuery, filter.Search).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting products: %w", err)
	}

	return products, total, nil
}

// FindByIDs resolves authoritative price snapshots for the given product IDs.
// Unknown IDs are simply absent from the result; inactive products come back
// with Active = false so the caller can drop those lines.
func (r *productRepository) FindByIDs(ctx context.Context, ids []string) (map[string]models.PriceSnapshot, error) {
	snapshots := make(map[string]models.PriceSnapshot, len(ids))

	if len(ids) == 0 {
		return snapshots, nil
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, unit_amount, currency, active
		FROM products
		WHERE id = ANY($1)
	`

	rows, err := r.DB.QueryContext(dbCtx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("querying price snapshots: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var snapshot models.PriceSnapshot

		err := rows.Scan(&snapshot.ProductID, &snapshot.Name, &snapshot.UnitAmount,
			&snapshot.Currency, &snapshot.Active)
		if err != nil {
			return nil, fmt.Errorf("scanning price snapshot: %w", err)
		}

		snapshots[snapshot.ProductID] = snapshot
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating price snapshots: %w", err)
	}

	return snapshots, nil
}
