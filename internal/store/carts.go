package store

import (
	"errors"
	"sync"

	"github.com/Shamanthak-23-A/ecommerce-api/internal/domain"
)

var (
	ErrCartNotFound = errors.New("cart not found")
	ErrItemNotFound = errors.New("item not found in cart")
)

// CartStore maps user IDs to their cart lines. A user without a cart is
// indistinguishable from a user with an empty one on reads.
type CartStore struct {
	mu    sync.RWMutex
	carts map[int][]domain.CartItem
}

func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[int][]domain.CartItem)}
}

// Items returns a copy of the user's cart lines in insertion order.
func (s *CartStore) Items(userID int) []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := s.carts[userID]
	out := make([]domain.CartItem, len(items))
	copy(out, items)
	return out
}

// Add puts quantity units of a product into the user's cart. If the
// product is already in the cart its quantity is incremented, otherwise
// a new line is appended. Product existence is the caller's concern.
func (s *CartStore) Add(userID, productID, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.carts[userID]
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity += quantity
			return
		}
	}
	s.carts[userID] = append(items, domain.CartItem{ProductID: productID, Quantity: quantity})
}

// UpdateQuantity replaces a line's quantity. A quantity of zero or less
// removes the line instead.
func (s *CartStore) UpdateQuantity(userID, productID, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, ok := s.carts[userID]
	if !ok {
		return ErrCartNotFound
	}
	for i := range items {
		if items[i].ProductID != productID {
			continue
		}
		if quantity <= 0 {
			s.carts[userID] = append(items[:i], items[i+1:]...)
		} else {
			items[i].Quantity = quantity
		}
		return nil
	}
	return ErrItemNotFound
}

// Remove deletes a line from the user's cart.
func (s *CartStore) Remove(userID, productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, ok := s.carts[userID]
	if !ok {
		return ErrCartNotFound
	}
	for i := range items {
		if items[i].ProductID == productID {
			s.carts[userID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

// Clear resets the user's cart to empty. Called after a successful
// order placement.
func (s *CartStore) Clear(userID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[userID] = []domain.CartItem{}
}
