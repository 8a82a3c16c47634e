package services

import (
	"context"
	"errors"
	"time"

	"catalog/internal/models"
	"catalog/internal/repositories"
)

// ProductService handles business logic related to products.
type ProductService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	publisher    EventPublisher
	now          func() time.Time
}

// NewProductService creates a new ProductService. publisher may be nil.
func NewProductService(productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository, publisher EventPublisher) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		publisher:    publisher,
		now:          func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

// GetAllActiveProducts lists active products ordered by name.
func (s *ProductService) GetAllActiveProducts(ctx context.Context) ([]models.ProductDto, error) {
	products, err := s.productRepo.GetAllActive(ctx)
	if err != nil {
		return nil, err
	}
	return toProductDtos(products), nil
}

// GetProductByID returns an active product with its category name.
func (s *ProductService) GetProductByID(ctx context.Context, id uint) (*models.ProductDto, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, notFoundf("Product with ID %d was not found", id)
		}
		return nil, err
	}
	dto := toProductDto(product)
	return &dto, nil
}

// CreateProduct persists a new active product in an active category.
// Nothing is written when the category check fails.
func (s *ProductService) CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.ProductDto, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}
	if err := s.requireActiveCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		CategoryID:    req.CategoryID,
		StockQuantity: req.StockQuantity,
		CreatedDate:   s.now(),
		IsActive:      true,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	dto := toProductDto(product)
	emitEvent(s.publisher, EventProductCreated, product.ID, dto)
	return &dto, nil
}

// UpdateProduct replaces every mutable field of an active product,
// including its active flag.
func (s *ProductService) UpdateProduct(ctx context.Context, id uint, req models.UpdateProductRequest) (*models.ProductDto, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, notFoundf("Product with ID %d not found", id)
		}
		return nil, err
	}
	if err := s.requireActiveCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.CategoryID = req.CategoryID
	product.StockQuantity = req.StockQuantity
	product.IsActive = req.Active()

	if err := s.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, notFoundf("Product with ID %d not found", id)
		}
		return nil, err
	}

	dto := toProductDto(product)
	emitEvent(s.publisher, EventProductUpdated, product.ID, dto)
	return &dto, nil
}

// SoftDeleteProduct deactivates an active product.
func (s *ProductService) SoftDeleteProduct(ctx context.Context, id uint) error {
	if err := s.productRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return notFoundf("Product with ID %d was not found", id)
		}
		return err
	}

	emitEvent(s.publisher, EventProductDeleted, id, nil)
	return nil
}

// SearchProducts filters, sorts and pages active products.
func (s *ProductService) SearchProducts(ctx context.Context, req models.ProductSearchRequest) (models.PagedResult[models.ProductDto], error) {
	req = req.Normalize()
	products, total, err := s.productRepo.Search(ctx, req)
	if err != nil {
		return models.PagedResult[models.ProductDto]{}, err
	}
	return models.NewPagedResult(toProductDtos(products), total, req.PageNumber, req.PageSize), nil
}

func (s *ProductService) requireActiveCategory(ctx context.Context, categoryID uint) error {
	exists, err := s.categoryRepo.Exists(ctx, categoryID)
	if err != nil {
		return err
	}
	if !exists {
		return notFoundf("Category with ID %d not found", categoryID)
	}
	return nil
}

func toProductDtos(products []models.Product) []models.ProductDto {
	dtos := make([]models.ProductDto, 0, len(products))
	for i := range products {
		dtos = append(dtos, toProductDto(&products[i]))
	}
	return dtos
}

func toProductDto(product *models.Product) models.ProductDto {
	return models.ProductDto{
		ID:            product.ID,
		Name:          product.Name,
		Description:   product.Description,
		Price:         product.Price,
		CategoryID:    product.CategoryID,
		CategoryName:  product.CategoryName,
		StockQuantity: product.StockQuantity,
		CreatedDate:   product.CreatedDate,
		IsActive:      product.IsActive,
	}
}
