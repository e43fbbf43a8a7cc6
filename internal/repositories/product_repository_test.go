package repository_test

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopverse/storefront/internal/models"
	repository "github.com/shopverse/storefront/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductRepo(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewProductRepo(db)
	assert.NotNil(t, repo, "NewProductRepo should return a non-nil repository")
}

func TestProductRepository(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewProductRepo(db)
	ctx := t.Context()

	productColumns := []string{"id", "slug", "name", "description", "image_url", "currency", "unit_amount", "active", "created_at", "updated_at"}
	snapshotColumns := []string{"id", "name", "unit_amount", "currency", "active"}

	t.Run("FindActiveProducts", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			now := time.Now()

			mock.ExpectQuery(`SELECT id, slug, name, description, image_url, currency, unit_amount, active, created_at, updated_at`).
				WithArgs("", 12, 0).
				WillReturnRows(sqlmock.NewRows(productColumns).
					AddRow("prod_1", "aurora-headphones", "Aurora Headphones", "Wireless over-ear.", "https://img/1", "usd", int64(15900), true, now, now).
					AddRow("prod_2", "nebula-backpack", "Nebula Backpack", "Everyday carry.", "https://img/2", "usd", int64(9800), true, now, now))

			mock.ExpectQuery(`SELECT COUNT\(\*\)`).
				WithArgs("").
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

			products, total, err := repo.FindActiveProducts(ctx, models.ProductFilter{}, 1, 12)

			require.NoError(t, err)
			assert.Equal(t, 2, total)
			require.Len(t, products, 2)
			assert.Equal(t, "prod_1", products[0].ID)
			assert.Equal(t, int64(15900), products[0].UnitAmount)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Search Filter Is Passed Through", func(t *testing.T) {
			now := time.Now()

			mock.ExpectQuery(`SELECT id, slug, name`).
				WithArgs("backpack", 12, 0).
				WillReturnRows(sqlmock.NewRows(productColumns).
					AddRow("prod_2", "nebula-backpack", "Nebula Backpack", "Everyday carry.", "https://img/2", "usd", int64(9800), true, now, now))

			mock.ExpectQuery(`SELECT COUNT\(\*\)`).
				WithArgs("backpack").
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

			products, total, err := repo.FindActiveProducts(ctx, models.ProductFilter{Search: "backpack"}, 1, 12)

			require.NoError(t, err)
			assert.Equal(t, 1, total)
			require.Len(t, products, 1)
			assert.Equal(t, "Nebula Backpack", products[0].Name)
		})

		t.Run("Query Error", func(t *testing.T) {
			dbError := errors.New("database unavailable")

			mock.ExpectQuery(`SELECT id, slug, name`).
				WithArgs("", 12, 0).
				WillReturnError(dbError)

			products, total, err := repo.FindActiveProducts(ctx, models.ProductFilter{}, 1, 12)

			require.Error(t, err)
			assert.ErrorIs(t, err, dbError)
			assert.Nil(t, products)
			assert.Zero(t, total)
		})
	})

	t.Run("FindByIDs", func(t *testing.T) {
		t.Run("Resolves Snapshots Including Inactive", func(t *testing.T) {
			ids := []string{"prod_1", "prod_retired", "prod_ghost"}

			expectedSQL := regexp.QuoteMeta(`SELECT id, name, unit_amount, currency, active FROM products WHERE id = ANY($1)`)

			mock.ExpectQuery(expectedSQL).
				WithArgs(pq.Array(ids)).
				WillReturnRows(sqlmock.NewRows(snapshotColumns).
					AddRow("prod_1", "Aurora Headphones", int64(15900), "usd", true).
					AddRow("prod_retired", "Retired Gadget", int64(5000), "usd", false))

			snapshots, err := repo.FindByIDs(ctx, ids)

			require.NoError(t, err)
			assert.Len(t, snapshots, 2)
			assert.True(t, snapshots["prod_1"].Active)
			assert.False(t, snapshots["prod_retired"].Active)
			assert.NotContains(t, snapshots, "prod_ghost")
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Empty Input Skips Query", func(t *testing.T) {
			snapshots, err := repo.FindByIDs(ctx, nil)

			require.NoError(t, err)
			assert.Empty(t, snapshots)
		})

		t.Run("Query Error", func(t *testing.T) {
			dbError := errors.New("connection reset")

			mock.ExpectQuery(`SELECT id, name, unit_amount`).
				WithArgs(pq.Array([]string{"prod_1"})).
				WillReturnError(dbError)

			snapshots, err := repo.FindByIDs(ctx, []string{"prod_1"})

			require.Error(t, err)
			assert.Nil(t, snapshots)
		})
	})
}
