package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartStoreAddMergesQuantities(t *testing.T) {
	s := NewCartStore()

	// Absent cart reads as empty
	assert.Empty(t, s.Items(7))

	s.Add(7, 1, 2)
	s.Add(7, 1, 3)
	s.Add(7, 2, 1)

	items := s.Items(7)
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].ProductID)
	assert.Equal(t, 5, items[0].Quantity) // 2 + 3, one line
	assert.Equal(t, 2, items[1].ProductID)
	assert.Equal(t, 1, items[1].Quantity)

	// Carts are per-user
	assert.Empty(t, s.Items(8))
}

func TestCartStoreUpdateQuantity(t *testing.T) {
	s := NewCartStore()
	s.Add(7, 1, 2)
	s.Add(7, 2, 4)

	require.NoError(t, s.UpdateQuantity(7, 2, 9))
	items := s.Items(7)
	require.Len(t, items, 2)
	assert.Equal(t, 9, items[1].Quantity)

	// Zero or negative quantity removes the line
	require.NoError(t, s.UpdateQuantity(7, 1, 0))
	items = s.Items(7)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].ProductID)

	assert.ErrorIs(t, s.UpdateQuantity(7, 1, 3), ErrItemNotFound)
	assert.ErrorIs(t, s.UpdateQuantity(99, 1, 3), ErrCartNotFound)
}

func TestCartStoreRemoveAndClear(t *testing.T) {
	s := NewCartStore()

	assert.ErrorIs(t, s.Remove(7, 1), ErrCartNotFound)

	s.Add(7, 1, 2)
	s.Add(7, 2, 1)

	assert.ErrorIs(t, s.Remove(7, 3), ErrItemNotFound)
	require.NoError(t, s.Remove(7, 1))
	items := s.Items(7)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].ProductID)

	s.Clear(7)
	assert.Empty(t, s.Items(7))

	// A cleared cart still exists, so item lookups fail with ErrItemNotFound
	assert.ErrorIs(t, s.Remove(7, 2), ErrItemNotFound)
}

func TestCartStoreItemsReturnsCopy(t *testing.T) {
	s := NewCartStore()
	s.Add(7, 1, 2)

	items := s.Items(7)
	items[0].Quantity = 100

	fresh := s.Items(7)
	assert.Equal(t, 2, fresh[0].Quantity)
}
