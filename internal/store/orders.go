package store

import (
	"sync"
	"time"

	"github.com/Shamanthak-23-A/ecommerce-api/internal/domain"
	"github.com/shopspring/decimal"
)

// OrderStore is an append-only list of placed orders. Order IDs are
// monotonic; orders are immutable once created.
type OrderStore struct {
	mu     sync.RWMutex
	orders []domain.Order
	nextID int
}

func NewOrderStore() *OrderStore {
	return &OrderStore{nextID: 1}
}

// Create appends a new pending order from already-snapshotted items.
func (s *OrderStore) Create(userID int, items []domain.OrderItem, total decimal.Decimal) *domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := domain.Order{
		ID:          s.nextID,
		UserID:      userID,
		Items:       items,
		TotalAmount: total,
		Status:      domain.OrderStatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	s.nextID++
	s.orders = append(s.orders, o)
	return &o
}

// ListByUser returns the user's orders in placement order.
func (s *OrderStore) ListByUser(userID int) []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Order, 0)
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

// ListAll returns every order regardless of owner.
func (s *OrderStore) ListAll() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}
