package services

import (
	"context"
	"errors"

	"catalog/internal/models"
	"catalog/internal/repositories"
)

// CategoryService handles business logic related to categories.
type CategoryService struct {
	repo      repositories.CategoryRepository
	publisher EventPublisher
}

// NewCategoryService creates a new CategoryService. publisher may be nil.
func NewCategoryService(repo repositories.CategoryRepository, publisher EventPublisher) *CategoryService {
	return &CategoryService{
		repo:      repo,
		publisher: publisher,
	}
}

// GetAllActiveCategories lists active categories ordered by name.
func (s *CategoryService) GetAllActiveCategories(ctx context.Context) ([]models.CategoryDto, error) {
	categories, err := s.repo.GetAllActive(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]models.CategoryDto, 0, len(categories))
	for i := range categories {
		dtos = append(dtos, toCategoryDto(&categories[i]))
	}
	return dtos, nil
}

// GetCategoryByID returns an active category.
func (s *CategoryService) GetCategoryByID(ctx context.Context, id uint) (*models.CategoryDto, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, notFoundf("Category with ID %d was not found", id)
		}
		return nil, err
	}
	dto := toCategoryDto(category)
	return &dto, nil
}

// CreateCategory persists a new active category.
func (s *CategoryService) CreateCategory(ctx context.Context, req models.CategoryRequest) (*models.CategoryDto, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}

	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}

	dto := toCategoryDto(category)
	emitEvent(s.publisher, EventCategoryCreated, category.ID, dto)
	return &dto, nil
}

// UpdateCategory replaces name and description of an active category.
func (s *CategoryService) UpdateCategory(ctx context.Context, id uint, req models.CategoryRequest) (*models.CategoryDto, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}

	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, notFoundf("Category with ID %d was not found", id)
		}
		return nil, err
	}

	category.Name = req.Name
	category.Description = req.Description
	if err := s.repo.Update(ctx, category); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, notFoundf("Category with ID %d was not found", id)
		}
		return nil, err
	}

	dto := toCategoryDto(category)
	emitEvent(s.publisher, EventCategoryUpdated, category.ID, dto)
	return &dto, nil
}

// SoftDeleteCategory deactivates a category that no active product references.
func (s *CategoryService) SoftDeleteCategory(ctx context.Context, id uint) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return notFoundf("Category with ID %d was not found or cannot be deleted", id)
		case errors.Is(err, repositories.ErrCategoryInUse):
			return invalidStatef("Cannot delete category with ID %d because it contains active products", id)
		}
		return err
	}

	emitEvent(s.publisher, EventCategoryDeleted, id, nil)
	return nil
}

func toCategoryDto(category *models.Category) models.CategoryDto {
	return models.CategoryDto{
		ID:           category.ID,
		Name:         category.Name,
		Description:  category.Description,
		IsActive:     category.IsActive,
		ProductCount: category.ProductCount,
	}
}
