package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatusPending is the only status an order takes in this system;
// cancel/fulfill/ship transitions are not implemented.
const OrderStatusPending = "pending"

// OrderItem is a snapshot of a cart line at checkout time.
// Later catalog changes never affect it.
type OrderItem struct {
	ProductID   int             `json:"productId"`   // Product at placement time
	ProductName string          `json:"productName"` // Name snapshot
	Price       decimal.Decimal `json:"price"`       // Unit price snapshot
	Quantity    int             `json:"quantity"`    // Quantity ordered
	Total       decimal.Decimal `json:"total"`       // Price * quantity
}

// Order Model. Immutable once created.
type Order struct {
	ID          int             `json:"id"`          // Unique, monotonic order ID
	UserID      int             `json:"userId"`      // Owning user
	Items       []OrderItem     `json:"items"`       // Snapshotted line items
	TotalAmount decimal.Decimal `json:"totalAmount"` // Sum of line totals
	Status      string          `json:"status"`      // Always "pending"
	CreatedAt   time.Time       `json:"createdAt"`   // Placement timestamp
}
