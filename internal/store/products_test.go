package store

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestProductStoreGetAndDelete(t *testing.T) {
	s := NewProductStore()
	p := s.Create("Laptop", price("999.99"), "Electronics", 10)
	assert.Equal(t, 1, p.ID)

	got, err := s.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Laptop", got.Name)
	assert.True(t, got.Price.Equal(price("999.99")))

	_, err = s.Get(42)
	assert.ErrorIs(t, err, ErrProductNotFound)

	require.NoError(t, s.Delete(p.ID))
	_, err = s.Get(p.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.ErrorIs(t, s.Delete(p.ID), ErrProductNotFound)

	// IDs are never reused, even after a delete
	next := s.Create("Phone", price("599.99"), "Electronics", 5)
	assert.Equal(t, 2, next.ID)
}

func TestProductStoreFilters(t *testing.T) {
	s := NewProductStore()
	s.Create("Laptop", price("999.99"), "Electronics", 10)
	s.Create("Phone", price("599.99"), "Electronics", 15)
	s.Create("Book", price("19.99"), "Books", 50)
	s.Create("Lap Desk", price("39.99"), "Furniture", 5)

	// Case-insensitive substring match on name
	items, total := s.List(Query{Search: "lap", Page: 1, PageSize: 10})
	require.Equal(t, 2, total)
	assert.Equal(t, "Laptop", items[0].Name)
	assert.Equal(t, "Lap Desk", items[1].Name)

	// Case-insensitive exact match on category
	items, total = s.List(Query{Category: "electronics", Page: 1, PageSize: 10})
	require.Equal(t, 2, total)
	assert.Equal(t, "Laptop", items[0].Name)
	assert.Equal(t, "Phone", items[1].Name)

	// Both filters together
	items, total = s.List(Query{Search: "phone", Category: "Electronics", Page: 1, PageSize: 10})
	require.Equal(t, 1, total)
	assert.Equal(t, "Phone", items[0].Name)

	// Category match is exact, not substring
	_, total = s.List(Query{Category: "Electro", Page: 1, PageSize: 10})
	assert.Zero(t, total)
}

// Concatenating every page must reproduce the filtered sequence in
// order, without duplication, and the page count is ceil(total/size).
func TestProductStorePaginationProperty(t *testing.T) {
	s := NewProductStore()
	const n = 23
	for i := 0; i < n; i++ {
		s.Create(fmt.Sprintf("Widget %02d", i), price("1.00"), "Widgets", 1)
	}

	for _, size := range []int{1, 4, 10, 23, 50} {
		_, total := s.List(Query{Page: 1, PageSize: size})
		require.Equal(t, n, total)
		totalPages := (total + size - 1) / size

		var seen []string
		for page := 1; page <= totalPages; page++ {
			items, _ := s.List(Query{Page: page, PageSize: size})
			assert.LessOrEqual(t, len(items), size)
			for _, p := range items {
				seen = append(seen, p.Name)
			}
		}
		require.Len(t, seen, n, "pageSize %d", size)
		for i, name := range seen {
			assert.Equal(t, fmt.Sprintf("Widget %02d", i), name)
		}

		// A page past the end is empty, not an error
		items, _ := s.List(Query{Page: totalPages + 1, PageSize: size})
		assert.Empty(t, items)
	}
}

func TestProductStorePartialUpdate(t *testing.T) {
	s := NewProductStore()
	p := s.Create("Laptop", price("999.99"), "Electronics", 10)

	newPrice := price("899.99")
	newStock := 7
	got, err := s.Update(p.ID, UpdateFields{Price: &newPrice, Stock: &newStock})
	require.NoError(t, err)

	// Provided fields overwrite, omitted fields keep prior values
	assert.Equal(t, "Laptop", got.Name)
	assert.Equal(t, "Electronics", got.Category)
	assert.True(t, got.Price.Equal(newPrice))
	assert.Equal(t, 7, got.Stock)

	name := "Laptop Pro"
	got, err = s.Update(p.ID, UpdateFields{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Laptop Pro", got.Name)
	assert.True(t, got.Price.Equal(newPrice))

	_, err = s.Update(99, UpdateFields{Name: &name})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductStoreCategories(t *testing.T) {
	s := NewProductStore()
	assert.Empty(t, s.Categories())

	s.Create("Laptop", price("999.99"), "Electronics", 10)
	s.Create("Book", price("19.99"), "Books", 50)
	s.Create("Phone", price("599.99"), "Electronics", 15)
	s.Create("T-Shirt", price("29.99"), "Clothing", 30)

	// Distinct values in order of first occurrence
	assert.Equal(t, []string{"Electronics", "Books", "Clothing"}, s.Categories())
}
