package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductSearchRequest_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   ProductSearchRequest
		want ProductSearchRequest
	}{
		{
			name: "defaults stay",
			in:   NewProductSearchRequest(),
			want: ProductSearchRequest{SortBy: SortByName, SortOrder: SortAsc, PageNumber: 1, PageSize: 10},
		},
		{
			name: "case-insensitive sort options",
			in:   ProductSearchRequest{SortBy: " Created ", SortOrder: "DeSc", PageNumber: 3, PageSize: 25},
			want: ProductSearchRequest{SortBy: SortByCreated, SortOrder: SortDesc, PageNumber: 3, PageSize: 25},
		},
		{
			name: "unknown sort options fall back",
			in:   ProductSearchRequest{SortBy: "stock", SortOrder: "random", PageNumber: 1, PageSize: 10},
			want: ProductSearchRequest{SortBy: SortByName, SortOrder: SortAsc, PageNumber: 1, PageSize: 10},
		},
		{
			name: "unknown sort field ignores the direction",
			in:   ProductSearchRequest{SortBy: "bogus", SortOrder: "desc", PageNumber: 1, PageSize: 10},
			want: ProductSearchRequest{SortBy: SortByName, SortOrder: SortAsc, PageNumber: 1, PageSize: 10},
		},
		{
			name: "name sort keeps the direction",
			in:   ProductSearchRequest{SortBy: "NAME", SortOrder: "desc", PageNumber: 1, PageSize: 10},
			want: ProductSearchRequest{SortBy: SortByName, SortOrder: SortDesc, PageNumber: 1, PageSize: 10},
		},
		{
			name: "paging is clamped to one but not capped",
			in:   ProductSearchRequest{SortBy: SortByPrice, PageNumber: -2, PageSize: 1000},
			want: ProductSearchRequest{SortBy: SortByPrice, SortOrder: SortAsc, PageNumber: 1, PageSize: 1000},
		},
		{
			name: "zero page size becomes one",
			in:   ProductSearchRequest{PageNumber: 2, PageSize: 0},
			want: ProductSearchRequest{SortBy: SortByName, SortOrder: SortAsc, PageNumber: 2, PageSize: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestProductSearchRequest_OffsetAndTerms(t *testing.T) {
	term := "  gaming\tlaptop  "
	req := ProductSearchRequest{SearchTerm: &term, PageNumber: 3, PageSize: 20}

	assert.Equal(t, 40, req.Offset())
	assert.Equal(t, []string{"gaming", "laptop"}, req.SearchTerms())
	assert.Nil(t, ProductSearchRequest{}.SearchTerms())
}

func TestProductSearchRequest_OffsetSaturates(t *testing.T) {
	assert.Equal(t, 0, ProductSearchRequest{PageNumber: 1, PageSize: 10}.Offset())

	huge := ProductSearchRequest{PageNumber: math.MaxInt, PageSize: 10}.Normalize()
	assert.Equal(t, math.MaxInt, huge.PageNumber)
	assert.Equal(t, math.MaxInt, huge.Offset())

	wide := ProductSearchRequest{PageNumber: 3, PageSize: math.MaxInt}.Normalize()
	assert.Equal(t, math.MaxInt, wide.Offset())

	edge := ProductSearchRequest{PageNumber: 2, PageSize: math.MaxInt}.Normalize()
	assert.Equal(t, math.MaxInt, edge.Offset())
}

func TestNewPagedResult(t *testing.T) {
	page := NewPagedResult([]int{1, 2}, 4, 1, 2)
	assert.Equal(t, 2, page.TotalPages)

	page = NewPagedResult([]int{1}, 5, 3, 2)
	assert.Equal(t, 3, page.TotalPages)

	page = NewPagedResult([]int{1}, 5, 1, math.MaxInt)
	assert.Equal(t, 1, page.TotalPages)

	empty := NewPagedResult[int](nil, 0, 1, 10)
	assert.Equal(t, 0, empty.TotalPages)
	assert.NotNil(t, empty.Items)

	body, err := json.Marshal(empty)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[],"totalCount":0,"pageNumber":1,"pageSize":10,"totalPages":0}`, string(body))
}

func TestProductDto_PriceIsJSONNumber(t *testing.T) {
	body, err := json.Marshal(ProductDto{Price: decimal.RequireFromString("49.99")})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, 49.99, decoded["price"])
}
