package repositories_test

import (
	"context"
	"testing"
	"time"

	"catalog/internal/config"
	"catalog/internal/database"
	"catalog/internal/models"
	"catalog/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory SQLite database with the catalog schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		DSN:    "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func createCategory(t *testing.T, repo repositories.CategoryRepository, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name, IsActive: true}
	require.NoError(t, repo.Create(context.Background(), category))
	return category
}

type productFixture struct {
	name        string
	description string
	price       string
	stock       int
}

// clock hands out strictly increasing creation dates.
var clock = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func createProduct(t *testing.T, repo repositories.ProductRepository, categoryID uint, f productFixture) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:          f.name,
		Price:         decimal.RequireFromString(f.price),
		CategoryID:    categoryID,
		StockQuantity: f.stock,
		CreatedDate:   clock,
		IsActive:      true,
	}
	clock = clock.Add(time.Minute)
	if f.description != "" {
		description := f.description
		product.Description = &description
	}
	require.NoError(t, repo.Create(context.Background(), product))
	return product
}

func productNames(products []models.Product) []string {
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}
	return names
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
