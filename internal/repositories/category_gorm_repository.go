package repositories

import (
	"context"
	"errors"
	"fmt"

	"catalog/internal/models"

	"gorm.io/gorm"
)

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{
		db: db,
	}
}

// GetAllActive retrieves all active categories ordered by name, each with
// the number of active products it holds.
func (r *GORMCategoryRepository) GetAllActive(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get active categories: %w", err)
	}
	if err := r.fillProductCounts(ctx, categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetByID retrieves a single active category by its ID.
func (r *GORMCategoryRepository) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	return r.findOne(ctx, r.db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true), id)
}

// GetByIDIncludingInactive looks a category up by primary key without the active filter.
func (r *GORMCategoryRepository) GetByIDIncludingInactive(ctx context.Context, id uint) (*models.Category, error) {
	return r.findOne(ctx, r.db.WithContext(ctx).Where("id = ?", id), id)
}

func (r *GORMCategoryRepository) findOne(ctx context.Context, query *gorm.DB, id uint) (*models.Category, error) {
	var category models.Category
	if err := query.Take(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get category by ID %d: %w", id, err)
	}
	categories := []models.Category{category}
	if err := r.fillProductCounts(ctx, categories); err != nil {
		return nil, err
	}
	return &categories[0], nil
}

// Exists reports whether an active category with the given ID exists.
func (r *GORMCategoryRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("id = ? AND is_active = ?", id, true).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check category %d: %w", id, err)
	}
	return count > 0, nil
}

// Create inserts a new category.
func (r *GORMCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// Update writes name and description of an existing category. IsActive is
// left untouched.
func (r *GORMCategoryRepository) Update(ctx context.Context, category *models.Category) error {
	res := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("id = ?", category.ID).
		Select("name", "description").
		Updates(category)
	if res.Error != nil {
		return fmt.Errorf("failed to update category: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("category with ID %d not found for update: %w", category.ID, ErrNotFound)
	}
	return nil
}

// SoftDelete deactivates a category. It fails with ErrNotFound when the
// category is absent or already inactive and with ErrCategoryInUse while
// active products still reference it.
func (r *GORMCategoryRepository) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.Take(&category, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("category with ID %d not found for deletion: %w", id, ErrNotFound)
			}
			return fmt.Errorf("failed to get category %d: %w", id, err)
		}
		if !category.IsActive {
			return fmt.Errorf("category with ID %d is already inactive: %w", id, ErrNotFound)
		}

		var active int64
		err := tx.Model(&models.Product{}).
			Where("category_id = ? AND is_active = ?", id, true).
			Count(&active).Error
		if err != nil {
			return fmt.Errorf("failed to count products of category %d: %w", id, err)
		}
		if active > 0 {
			return fmt.Errorf("cannot delete category '%s' because it contains %d active products: %w",
				category.Name, active, ErrCategoryInUse)
		}

		if err := tx.Model(&models.Category{}).Where("id = ?", id).Update("is_active", false).Error; err != nil {
			return fmt.Errorf("failed to delete category %d: %w", id, err)
		}
		return nil
	})
}

type categoryProductCount struct {
	CategoryID uint
	Total      int64
}

// fillProductCounts sets ProductCount on each category with one grouped query.
func (r *GORMCategoryRepository) fillProductCounts(ctx context.Context, categories []models.Category) error {
	if len(categories) == 0 {
		return nil
	}
	ids := make([]uint, len(categories))
	for i := range categories {
		ids[i] = categories[i].ID
	}

	var rows []categoryProductCount
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Select("category_id, COUNT(*) AS total").
		Where("is_active = ? AND category_id IN ?", true, ids).
		Group("category_id").
		Scan(&rows).Error
	if err != nil {
		return fmt.Errorf("failed to count active products per category: %w", err)
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.CategoryID] = row.Total
	}
	for i := range categories {
		categories[i].ProductCount = counts[categories[i].ID]
	}
	return nil
}
