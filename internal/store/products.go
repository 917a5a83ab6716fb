package store

import (
	"errors"
	"strings"
	"sync"

	"github.com/Shamanthak-23-A/ecommerce-api/internal/domain"
	"github.com/shopspring/decimal"
)

var ErrProductNotFound = errors.New("product not found")

// Query filters and paginates a product listing. Filters apply before
// pagination; pages are contiguous slices of the filtered sequence in
// insertion order.
type Query struct {
	Search   string // Case-insensitive substring match on name
	Category string // Case-insensitive exact match on category
	Page     int    // 1-based page number
	PageSize int    // Items per page
}

// UpdateFields is a partial product update. Nil fields keep their
// current value.
type UpdateFields struct {
	Name     *string
	Price    *decimal.Decimal
	Category *string
	Stock    *int
}

// ProductStore holds the catalog. Product IDs are monotonic and never
// reused, even after deletes.
type ProductStore struct {
	mu       sync.RWMutex
	products []domain.Product
	nextID   int
}

func NewProductStore() *ProductStore {
	return &ProductStore{nextID: 1}
}

// List returns one page of the filtered catalog plus the total
// filtered count.
func (s *ProductStore) List(q Query) ([]domain.Product, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if q.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(q.Search)) {
			continue
		}
		if q.Category != "" && !strings.EqualFold(p.Category, q.Category) {
			continue
		}
		filtered = append(filtered, p)
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	size := q.PageSize
	if size < 1 {
		size = 10
	}
	start := (page - 1) * size
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + size
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end], len(filtered)
}

// Get returns the product with the given ID.
func (s *ProductStore) Get(id int) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}

// Create appends a new product and assigns it the next ID.
func (s *ProductStore) Create(name string, price decimal.Decimal, category string, stock int) *domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := domain.Product{
		ID:       s.nextID,
		Name:     name,
		Price:    price,
		Category: category,
		Stock:    stock,
	}
	s.nextID++
	s.products = append(s.products, p)
	return &p
}

// Update overwrites the fields present in f; omitted fields keep their
// prior values.
func (s *ProductStore) Update(id int, f UpdateFields) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		if f.Name != nil {
			s.products[i].Name = *f.Name
		}
		if f.Price != nil {
			s.products[i].Price = *f.Price
		}
		if f.Category != nil {
			s.products[i].Category = *f.Category
		}
		if f.Stock != nil {
			s.products[i].Stock = *f.Stock
		}
		p := s.products[i]
		return &p, nil
	}
	return nil, ErrProductNotFound
}

// Delete removes a product permanently. The ID is not reused.
func (s *ProductStore) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

// Categories returns the distinct category values across all products,
// in order of first occurrence.
func (s *ProductStore) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[string]bool, len(s.products))
	out := make([]string, 0, len(s.products))
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}
