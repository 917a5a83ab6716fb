package domain

import "github.com/shopspring/decimal"

// Product Model
type Product struct {
	ID       int             `json:"id"`       // Unique, monotonic product ID
	Name     string          `json:"name"`     // Product name
	Price    decimal.Decimal `json:"price"`    // Non-negative unit price
	Category string          `json:"category"` // Category label
	Stock    int             `json:"stock"`    // Non-negative stock count
}
