package services_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_GetAllActiveCategories(t *testing.T) {
	repo := new(MockCategoryRepository)
	service := services.NewCategoryService(repo, nil)

	repo.On("GetAllActive", mock.Anything).Return([]models.Category{
		{ID: 1, Name: "Books", IsActive: true, ProductCount: 4},
		{ID: 2, Name: "Sports", IsActive: true},
	}, nil).Once()

	categories, err := service.GetAllActiveCategories(context.Background())

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, int64(4), categories[0].ProductCount)
	assert.Equal(t, "Sports", categories[1].Name)
	repo.AssertExpectations(t)
}

func TestCategoryService_GetCategoryByID_NotFound(t *testing.T) {
	repo := new(MockCategoryRepository)
	service := services.NewCategoryService(repo, nil)

	repo.On("GetByID", mock.Anything, uint(3)).Return(nil, fmt.Errorf("category with ID 3: %w", repositories.ErrNotFound)).Once()

	category, err := service.GetCategoryByID(context.Background(), 3)

	assert.Nil(t, category)
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.Equal(t, "Category with ID 3 was not found", err.Error())
}

func TestCategoryService_CreateCategory(t *testing.T) {
	repo := new(MockCategoryRepository)
	publisher := new(MockPublisher)
	service := services.NewCategoryService(repo, publisher)
	description := "Books and educational materials"

	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *models.Category) bool {
		return c.Name == "Books" && c.IsActive
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Category).ID = 7
	}).Return(nil).Once()
	publisher.On("Publish", services.EventCategoryCreated, mock.Anything).Return(nil).Once()

	category, err := service.CreateCategory(context.Background(), models.CategoryRequest{Name: "Books", Description: &description})

	require.NoError(t, err)
	assert.Equal(t, uint(7), category.ID)
	assert.True(t, category.IsActive)
	assert.Equal(t, int64(0), category.ProductCount)
	assert.Equal(t, &description, category.Description)
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCategoryService_CreateCategory_Validation(t *testing.T) {
	repo := new(MockCategoryRepository)
	service := services.NewCategoryService(repo, nil)
	longDescription := strings.Repeat("d", 201)

	_, err := service.CreateCategory(context.Background(), models.CategoryRequest{Name: ""})
	assert.ErrorIs(t, err, services.ErrValidation)
	assert.Equal(t, "Field 'name' is required", err.Error())

	_, err = service.CreateCategory(context.Background(), models.CategoryRequest{Name: strings.Repeat("n", 51)})
	assert.ErrorIs(t, err, services.ErrValidation)
	assert.Equal(t, "Field 'name' cannot exceed 50 characters", err.Error())

	_, err = service.CreateCategory(context.Background(), models.CategoryRequest{Name: "Books", Description: &longDescription})
	assert.ErrorIs(t, err, services.ErrValidation)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCategoryService_UpdateCategory(t *testing.T) {
	repo := new(MockCategoryRepository)
	service := services.NewCategoryService(repo, nil)

	repo.On("GetByID", mock.Anything, uint(2)).Return(&models.Category{ID: 2, Name: "Clothes", IsActive: true, ProductCount: 3}, nil).Once()
	repo.On("Update", mock.Anything, mock.MatchedBy(func(c *models.Category) bool {
		return c.ID == 2 && c.Name == "Clothing" && c.Description == nil
	})).Return(nil).Once()

	category, err := service.UpdateCategory(context.Background(), 2, models.CategoryRequest{Name: "Clothing"})

	require.NoError(t, err)
	assert.Equal(t, "Clothing", category.Name)
	assert.Equal(t, int64(3), category.ProductCount)
	repo.AssertExpectations(t)

	repo.On("GetByID", mock.Anything, uint(9)).Return(nil, repositories.ErrNotFound).Once()
	_, err = service.UpdateCategory(context.Background(), 9, models.CategoryRequest{Name: "Clothing"})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCategoryService_SoftDeleteCategory(t *testing.T) {
	repo := new(MockCategoryRepository)
	service := services.NewCategoryService(repo, nil)

	repo.On("SoftDelete", mock.Anything, uint(1)).Return(nil).Once()
	assert.NoError(t, service.SoftDeleteCategory(context.Background(), 1))

	repo.On("SoftDelete", mock.Anything, uint(2)).
		Return(fmt.Errorf("cannot delete category 'Books' because it contains 3 active products: %w", repositories.ErrCategoryInUse)).Once()
	err := service.SoftDeleteCategory(context.Background(), 2)
	assert.ErrorIs(t, err, services.ErrInvalidState)
	assert.Equal(t, "Cannot delete category with ID 2 because it contains active products", err.Error())

	repo.On("SoftDelete", mock.Anything, uint(3)).Return(repositories.ErrNotFound).Once()
	err = service.SoftDeleteCategory(context.Background(), 3)
	assert.ErrorIs(t, err, services.ErrNotFound)

	repo.AssertExpectations(t)
}
