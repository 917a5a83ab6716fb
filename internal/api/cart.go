package api

import (
	"errors"
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"github.com/Shamanthak-23-A/ecommerce-api/internal/domain"
	"github.com/Shamanthak-23-A/ecommerce-api/internal/middleware"
	"github.com/Shamanthak-23-A/ecommerce-api/internal/store"

	"github.com/gin-gonic/gin" // Gin web framework
	"github.com/shopspring/decimal"
)

// Request struct for adding a cart line
type AddToCartRequest struct {
	ProductID int  `json:"productId" binding:"required"` // Product to add
	Quantity  *int `json:"quantity"`                     // Optional, defaults to 1
}

// Request struct for updating a cart line
type UpdateCartRequest struct {
	ProductID int  `json:"productId" binding:"required"` // Product line to update
	Quantity  *int `json:"quantity" binding:"required"`  // New quantity; <= 0 removes the line
}

// CartLineResponse is one cart line joined with live product data.
// Product is null when the referenced product no longer exists; such
// lines contribute 0 to the cart total.
type CartLineResponse struct {
	ProductID int             `json:"productId"`
	Quantity  int             `json:"quantity"`
	Product   *domain.Product `json:"product"`
	Total     decimal.Decimal `json:"total"`
}

// GetCartHandler returns the caller's cart joined with current product
// data plus per-line and overall totals
func GetCartHandler(carts *store.CartStore, products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c) // Authenticated caller
		items := carts.Items(userID)   // Absent cart reads as empty
		lines := make([]CartLineResponse, 0, len(items))
		totalAmount := decimal.Zero
		for _, item := range items {
			line := CartLineResponse{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Total:     decimal.Zero,
			}
			// Join with the live product; vanished products report null
			if p, err := products.Get(item.ProductID); err == nil {
				line.Product = p
				line.Total = p.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			}
			totalAmount = totalAmount.Add(line.Total)
			lines = append(lines, line)
		}
		c.JSON(http.StatusOK, gin.H{"items": lines, "totalAmount": totalAmount})
	}
}

// AddToCartHandler puts a product into the caller's cart, merging with
// an existing line for the same product
func AddToCartHandler(carts *store.CartStore, products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddToCartRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		quantity := 1 // Default quantity
		if req.Quantity != nil {
			quantity = *req.Quantity
		}
		if quantity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be positive"})
			return
		}
		// The product must exist at add-time
		if _, err := products.Get(req.ProductID); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		carts.Add(middleware.UserID(c), req.ProductID, quantity)
		c.JSON(http.StatusOK, gin.H{"message": "Item added to cart"})
	}
}

// UpdateCartHandler replaces a line's quantity; zero or less removes it
func UpdateCartHandler(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateCartRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if err := carts.UpdateQuantity(middleware.UserID(c), req.ProductID, *req.Quantity); err != nil {
			respondCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart updated"})
	}
}

// RemoveFromCartHandler deletes one line from the caller's cart
func RemoveFromCartHandler(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("productId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}
		if err := carts.Remove(middleware.UserID(c), productID); err != nil {
			respondCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
	}
}

// respondCartError maps cart store errors to HTTP responses
func respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrCartNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
	case errors.Is(err, store.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found in cart"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
	}
}
