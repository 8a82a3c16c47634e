package repositories_test

import (
	"context"
	"testing"

	"catalog/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGORMCategoryRepository_GetAllActiveCountsActiveProducts(t *testing.T) {
	db := newTestDB(t)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	ctx := context.Background()

	sports := createCategory(t, categoryRepo, "Sports")
	books := createCategory(t, categoryRepo, "Books")
	empty := createCategory(t, categoryRepo, "Garden")

	createProduct(t, productRepo, sports.ID, productFixture{"Yoga Mat", "", "29.99", 1})
	createProduct(t, productRepo, sports.ID, productFixture{"Basketball", "", "34.99", 1})
	retired := createProduct(t, productRepo, sports.ID, productFixture{"Dumbbells", "", "199.99", 1})
	require.NoError(t, productRepo.SoftDelete(ctx, retired.ID))
	createProduct(t, productRepo, books.ID, productFixture{"Cookbook", "", "24.99", 1})

	categories, err := categoryRepo.GetAllActive(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 3)

	counts := map[string]int64{}
	var names []string
	for _, c := range categories {
		counts[c.Name] = c.ProductCount
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Books", "Garden", "Sports"}, names)
	assert.Equal(t, int64(2), counts["Sports"])
	assert.Equal(t, int64(1), counts["Books"])
	assert.Equal(t, int64(0), counts[empty.Name])

	one, err := categoryRepo.GetByID(ctx, sports.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), one.ProductCount)
}

func TestGORMCategoryRepository_SoftDeleteGuardsActiveProducts(t *testing.T) {
	db := newTestDB(t)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	ctx := context.Background()

	category := createCategory(t, categoryRepo, "Electronics")
	product := createProduct(t, productRepo, category.ID, productFixture{"Laptop", "", "999.99", 1})

	err := categoryRepo.SoftDelete(ctx, category.ID)
	assert.ErrorIs(t, err, repositories.ErrCategoryInUse)

	stillActive, err := categoryRepo.Exists(ctx, category.ID)
	require.NoError(t, err)
	assert.True(t, stillActive)

	require.NoError(t, productRepo.SoftDelete(ctx, product.ID))
	require.NoError(t, categoryRepo.SoftDelete(ctx, category.ID))

	exists, err := categoryRepo.Exists(ctx, category.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = categoryRepo.GetByID(ctx, category.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	raw, err := categoryRepo.GetByIDIncludingInactive(ctx, category.ID)
	require.NoError(t, err)
	assert.False(t, raw.IsActive)

	all, err := categoryRepo.GetAllActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	assert.ErrorIs(t, categoryRepo.SoftDelete(ctx, category.ID), repositories.ErrNotFound)
	assert.ErrorIs(t, categoryRepo.SoftDelete(ctx, category.ID+100), repositories.ErrNotFound)
}

func TestGORMCategoryRepository_Update(t *testing.T) {
	db := newTestDB(t)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	ctx := context.Background()

	category := createCategory(t, categoryRepo, "Clothes")
	description := "Apparel and fashion items"
	category.Name = "Clothing"
	category.Description = &description
	require.NoError(t, categoryRepo.Update(ctx, category))

	stored, err := categoryRepo.GetByID(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Clothing", stored.Name)
	require.NotNil(t, stored.Description)
	assert.Equal(t, description, *stored.Description)
	assert.True(t, stored.IsActive)

	category.ID += 100
	assert.ErrorIs(t, categoryRepo.Update(ctx, category), repositories.ErrNotFound)
}
