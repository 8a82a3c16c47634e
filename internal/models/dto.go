package models

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CategoryRequest is the body of category create and update calls.
type CategoryRequest struct {
	Name        string  `json:"name" validate:"required,max=50"`
	Description *string `json:"description" validate:"omitempty,max=200"`
}

// CreateProductRequest is the body of a product create call.
type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required,max=100"`
	Description   *string         `json:"description" validate:"omitempty,max=500"`
	Price         decimal.Decimal `json:"price" validate:"required,gt=0"`
	CategoryID    uint            `json:"categoryId" validate:"required,min=1"`
	StockQuantity int             `json:"stockQuantity" validate:"gte=0"`
}

// UpdateProductRequest replaces every mutable field of a product.
// A missing isActive keeps the product active.
type UpdateProductRequest struct {
	Name          string          `json:"name" validate:"required,max=100"`
	Description   *string         `json:"description" validate:"omitempty,max=500"`
	Price         decimal.Decimal `json:"price" validate:"required,gt=0"`
	CategoryID    uint            `json:"categoryId" validate:"required,min=1"`
	StockQuantity int             `json:"stockQuantity" validate:"gte=0"`
	IsActive      *bool           `json:"isActive"`
}

// Active reports the requested activity flag, defaulting to true.
func (r UpdateProductRequest) Active() bool {
	return r.IsActive == nil || *r.IsActive
}

// Sort fields and directions accepted by product search.
const (
	SortByName    = "name"
	SortByPrice   = "price"
	SortByCreated = "created"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// Search paging defaults.
const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
)

// ProductSearchRequest carries the optional filters of a product search.
// Nil pointers mean "no filter".
type ProductSearchRequest struct {
	SearchTerm *string          `json:"searchTerm,omitempty"`
	CategoryID *uint            `json:"categoryId,omitempty"`
	MinPrice   *decimal.Decimal `json:"minPrice,omitempty"`
	MaxPrice   *decimal.Decimal `json:"maxPrice,omitempty"`
	InStock    *bool            `json:"inStock,omitempty"`
	SortBy     string           `json:"sortBy"`
	SortOrder  string           `json:"sortOrder"`
	PageNumber int              `json:"pageNumber"`
	PageSize   int              `json:"pageSize"`
}

// NewProductSearchRequest returns a request with default sorting and paging.
func NewProductSearchRequest() ProductSearchRequest {
	return ProductSearchRequest{
		SortBy:     SortByName,
		SortOrder:  SortAsc,
		PageNumber: DefaultPageNumber,
		PageSize:   DefaultPageSize,
	}
}

// Normalize resolves sort options case-insensitively and clamps paging to
// at least one. An unknown sort field sorts by name ascending whatever the
// requested direction; an unknown direction means ascending.
func (r ProductSearchRequest) Normalize() ProductSearchRequest {
	knownField := true
	switch strings.ToLower(strings.TrimSpace(r.SortBy)) {
	case SortByName:
		r.SortBy = SortByName
	case SortByPrice:
		r.SortBy = SortByPrice
	case SortByCreated:
		r.SortBy = SortByCreated
	default:
		r.SortBy = SortByName
		knownField = false
	}

	if knownField && strings.EqualFold(strings.TrimSpace(r.SortOrder), SortDesc) {
		r.SortOrder = SortDesc
	} else {
		r.SortOrder = SortAsc
	}

	if r.PageNumber < 1 {
		r.PageNumber = DefaultPageNumber
	}
	if r.PageSize < 1 {
		r.PageSize = 1
	}
	return r
}

// Offset is the number of rows skipped before the requested page. It
// saturates at math.MaxInt instead of overflowing, so a page far past the
// end stays empty. Expects a normalized request.
func (r ProductSearchRequest) Offset() int {
	if r.PageNumber <= 1 || r.PageSize < 1 {
		return 0
	}
	if r.PageNumber-1 > math.MaxInt/r.PageSize {
		return math.MaxInt
	}
	return (r.PageNumber - 1) * r.PageSize
}

// SearchTerms splits the search term on whitespace, dropping empty tokens.
func (r ProductSearchRequest) SearchTerms() []string {
	if r.SearchTerm == nil {
		return nil
	}
	return strings.Fields(*r.SearchTerm)
}

// CategoryDto is the API shape of a category.
type CategoryDto struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	IsActive     bool    `json:"isActive"`
	ProductCount int64   `json:"productCount"`
}

// ProductDto is the API shape of a product.
type ProductDto struct {
	ID            uint            `json:"id"`
	Name          string          `json:"name"`
	Description   *string         `json:"description"`
	Price         decimal.Decimal `json:"price"`
	CategoryID    uint            `json:"categoryId"`
	CategoryName  string          `json:"categoryName"`
	StockQuantity int             `json:"stockQuantity"`
	CreatedDate   time.Time       `json:"createdDate"`
	IsActive      bool            `json:"isActive"`
}

// PagedResult is one page of a larger result set.
type PagedResult[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	PageNumber int   `json:"pageNumber"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

// NewPagedResult builds a page and derives TotalPages from the total count.
func NewPagedResult[T any](items []T, totalCount int64, pageNumber, pageSize int) PagedResult[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if pageSize > 0 {
		size := int64(pageSize)
		totalPages = int(totalCount / size)
		if totalCount%size != 0 {
			totalPages++
		}
	}
	return PagedResult[T]{
		Items:      items,
		TotalCount: totalCount,
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
