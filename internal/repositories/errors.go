package repositories

import "errors"

var (
	// ErrNotFound is returned when a row is absent or filtered out as inactive.
	ErrNotFound = errors.New("record not found")

	// ErrCategoryInUse is returned when deactivating a category that still has active products.
	ErrCategoryInUse = errors.New("category has active products")
)
