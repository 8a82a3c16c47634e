package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"catalog/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// withCategory selects product rows joined with their category name.
func (r *GORMProductRepository) withCategory(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Product{}).
		Select("products.*, categories.name AS category_name").
		Joins("JOIN categories ON categories.id = products.category_id")
}

// GetAllActive retrieves all active products ordered by name.
func (r *GORMProductRepository) GetAllActive(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.withCategory(ctx).
		Where("products.is_active = ?", true).
		Order("products.name ASC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get active products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single active product by its ID.
func (r *GORMProductRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	return findProduct(r.withCategory(ctx).Where("products.id = ? AND products.is_active = ?", id, true), id)
}

// GetByIDIncludingInactive looks a product up by primary key without the active filter.
func (r *GORMProductRepository) GetByIDIncludingInactive(ctx context.Context, id uint) (*models.Product, error) {
	return findProduct(r.withCategory(ctx).Where("products.id = ?", id), id)
}

func findProduct(query *gorm.DB, id uint) (*models.Product, error) {
	var product models.Product
	if err := query.Take(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return &product, nil
}

// Create inserts a new product and loads its category name.
func (r *GORMProductRepository) Create(ctx context.Context, product *models.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return r.loadCategoryName(ctx, product)
}

// Update replaces the mutable fields of an existing product. CreatedDate is
// never written.
func (r *GORMProductRepository) Update(ctx context.Context, product *models.Product) error {
	res := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", product.ID).
		Select("name", "description", "price", "category_id", "stock_quantity", "is_active").
		Updates(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %d not found for update: %w", product.ID, ErrNotFound)
	}
	return r.loadCategoryName(ctx, product)
}

// SoftDelete flips an active product to inactive.
func (r *GORMProductRepository) SoftDelete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %d not found for deletion: %w", id, ErrNotFound)
	}
	return nil
}

func (r *GORMProductRepository) loadCategoryName(ctx context.Context, product *models.Product) error {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("id = ?", product.CategoryID).
		Pluck("name", &names).Error
	if err != nil {
		return fmt.Errorf("failed to load category for product %d: %w", product.ID, err)
	}
	if len(names) > 0 {
		product.CategoryName = names[0]
	}
	return nil
}

// Search returns one page of active products matching req together with the
// number of matches before pagination.
func (r *GORMProductRepository) Search(ctx context.Context, req models.ProductSearchRequest) ([]models.Product, int64, error) {
	req = req.Normalize()
	filters := searchFilters(req)

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Product{}).Scopes(filters).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	var products []models.Product
	err := r.withCategory(ctx).
		Scopes(filters).
		Order(searchOrder(req)).
		Offset(req.Offset()).
		Limit(req.PageSize).
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search products: %w", err)
	}
	return products, total, nil
}

// searchFilters composes the search predicates. Every whitespace-separated
// token must appear in the name or the description; a NULL description never
// matches. inStock=false applies no stock filter.
func searchFilters(req models.ProductSearchRequest) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("products.is_active = ?", true)

		for _, term := range req.SearchTerms() {
			pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
			db = db.Where(
				`(LOWER(products.name) LIKE ? ESCAPE '\' OR LOWER(products.description) LIKE ? ESCAPE '\')`,
				pattern, pattern,
			)
		}

		if req.CategoryID != nil {
			db = db.Where("products.category_id = ?", *req.CategoryID)
		}
		if req.MinPrice != nil {
			db = db.Where("products.price >= ?", *req.MinPrice)
		}
		if req.MaxPrice != nil {
			db = db.Where("products.price <= ?", *req.MaxPrice)
		}
		if req.InStock != nil && *req.InStock {
			db = db.Where("products.stock_quantity > ?", 0)
		}
		return db
	}
}

var sortColumns = map[string]string{
	models.SortByName:    "name",
	models.SortByPrice:   "price",
	models.SortByCreated: "created_date",
}

// searchOrder expects a normalized request.
func searchOrder(req models.ProductSearchRequest) clause.OrderByColumn {
	column, ok := sortColumns[req.SortBy]
	if !ok {
		column = sortColumns[models.SortByName]
	}
	return clause.OrderByColumn{
		Column: clause.Column{Table: "products", Name: column},
		Desc:   req.SortOrder == models.SortDesc,
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE wildcards in user input match literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
