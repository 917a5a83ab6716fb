package api

import (
	"net/http" // HTTP status codes

	"github.com/Shamanthak-23-A/ecommerce-api/internal/domain"
	"github.com/Shamanthak-23-A/ecommerce-api/internal/middleware"
	"github.com/Shamanthak-23-A/ecommerce-api/internal/store"

	"github.com/gin-gonic/gin" // Gin web framework
	"github.com/shopspring/decimal"
)

// PlaceOrderHandler turns the caller's cart into a pending order.
// Line items snapshot the product name and price at placement time, so
// later catalog changes never touch a placed order. The cart is cleared
// on success.
func PlaceOrderHandler(carts *store.CartStore, products *store.ProductStore, orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c) // Authenticated caller
		items := carts.Items(userID)
		if len(items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}
		orderItems := make([]domain.OrderItem, 0, len(items))
		totalAmount := decimal.Zero
		for _, item := range items {
			p, err := products.Get(item.ProductID)
			if err != nil {
				// Product deleted since add-time: nothing to snapshot
				continue
			}
			lineTotal := p.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			orderItems = append(orderItems, domain.OrderItem{
				ProductID:   p.ID,
				ProductName: p.Name,
				Price:       p.Price,
				Quantity:    item.Quantity,
				Total:       lineTotal,
			})
			totalAmount = totalAmount.Add(lineTotal)
		}
		// A cart whose every product vanished counts as empty
		if len(orderItems) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}
		order := orders.Create(userID, orderItems, totalAmount)
		// Clear cart after order
		carts.Clear(userID)
		c.JSON(http.StatusCreated, order)
	}
}

// ListOrdersHandler returns the caller's orders in placement order
func ListOrdersHandler(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, orders.ListByUser(middleware.UserID(c)))
	}
}

// ListAllOrdersHandler returns every order (admin only)
func ListAllOrdersHandler(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, orders.ListAll())
	}
}
