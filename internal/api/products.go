package api

import (
	"errors"
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"github.com/Shamanthak-23-A/ecommerce-api/internal/store"

	"github.com/gin-gonic/gin" // Gin web framework
	"github.com/shopspring/decimal"
)

// Request struct for product creation
type CreateProductRequest struct {
	Name     string          `json:"name" binding:"required"`     // Product name
	Price    decimal.Decimal `json:"price"`                       // Unit price
	Category string          `json:"category" binding:"required"` // Category label
	Stock    int             `json:"stock"`                       // Stock count
}

// Request struct for partial product update; nil means "keep current value"
type UpdateProductRequest struct {
	Name     *string          `json:"name"`
	Price    *decimal.Decimal `json:"price"`
	Category *string          `json:"category"`
	Stock    *int             `json:"stock"`
}

// intQuery parses an integer query parameter with a default; ok is
// false on malformed input.
func intQuery(c *gin.Context, key string, def int) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ListProductsHandler returns one page of the catalog with optional
// search and category filters
func ListProductsHandler(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, ok := intQuery(c, "page", 1)
		if !ok || page < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
			return
		}
		limit, ok := intQuery(c, "limit", 10)
		if !ok || limit < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		items, total := products.List(store.Query{
			Search:   c.Query("search"),
			Category: c.Query("category"),
			Page:     page,
			PageSize: limit,
		})
		// The total number of pages (ceiling division)
		totalPages := (total + limit - 1) / limit
		c.JSON(http.StatusOK, gin.H{
			"products":      items,      // Page contents
			"totalProducts": total,      // Total filtered count
			"currentPage":   page,       // Current page
			"totalPages":    totalPages, // Total pages
		})
	}
}

// GetProductHandler returns a single product by ID
func GetProductHandler(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}
		p, err := products.Get(id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// CreateProductHandler adds a catalog entry (admin only)
func CreateProductHandler(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Price and stock must be non-negative
		if req.Price.IsNegative() || req.Stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price and stock must be non-negative"})
			return
		}
		p := products.Create(req.Name, req.Price, req.Category, req.Stock)
		c.JSON(http.StatusCreated, p)
	}
}

// UpdateProductHandler partially updates a product (admin only);
// omitted fields keep their current values
func UpdateProductHandler(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}
		var req UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if req.Price != nil && req.Price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price and stock must be non-negative"})
			return
		}
		if req.Stock != nil && *req.Stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price and stock must be non-negative"})
			return
		}
		p, err := products.Update(id, store.UpdateFields{
			Name:     req.Name,
			Price:    req.Price,
			Category: req.Category,
			Stock:    req.Stock,
		})
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// DeleteProductHandler removes a product permanently (admin only)
func DeleteProductHandler(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}
		if err := products.Delete(id); err != nil {
			if errors.Is(err, store.ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}

// ListCategoriesHandler returns the distinct category values
func ListCategoriesHandler(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, products.Categories())
	}
}
