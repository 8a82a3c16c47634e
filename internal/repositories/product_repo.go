package repositories

import (
	"context"

	"catalog/internal/models"
)

// ProductRepository defines the interface for product data access.
// Every read except GetByIDIncludingInactive applies the active filter, and
// every read fills CategoryName through an explicit join.
type ProductRepository interface {
	GetAllActive(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	GetByIDIncludingInactive(ctx context.Context, id uint) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	SoftDelete(ctx context.Context, id uint) error
	Search(ctx context.Context, req models.ProductSearchRequest) ([]models.Product, int64, error)
}
