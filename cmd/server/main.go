package main

import (
	"log" // log package is needed for logging

	"github.com/Shamanthak-23-A/ecommerce-api/internal/api"        // Custom package for API handlers
	"github.com/Shamanthak-23-A/ecommerce-api/internal/config"     // Custom package for configuration
	"github.com/Shamanthak-23-A/ecommerce-api/internal/domain"     // Custom package for domain models
	"github.com/Shamanthak-23-A/ecommerce-api/internal/middleware" // Custom package for middleware
	"github.com/Shamanthak-23-A/ecommerce-api/internal/store"      // Custom package for in-memory stores

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/shopspring/decimal" // Exact decimal arithmetic for money
	"github.com/sirupsen/logrus"    // Logrus for structured logging
	"golang.org/x/crypto/bcrypt"    // Password hashing for seed users
)

// seed loads the demo users and catalog so the API is usable out of the box
func seed(users *store.UserStore, products *store.ProductStore) {
	// Demo accounts: admin/admin123 and customer/customer123
	for _, u := range []struct {
		username, password, role string
	}{
		{"admin", "admin123", domain.RoleAdmin},
		{"customer", "customer123", domain.RoleCustomer},
	} {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			logrus.Fatalf("failed to hash seed password: %v", err)
		}
		if _, err := users.Create(u.username, string(hash), u.role); err != nil {
			logrus.Fatalf("failed to seed user %s: %v", u.username, err)
		}
	}
	// Demo catalog
	for _, p := range []struct {
		name     string
		price    string
		category string
		stock    int
	}{
		{"Laptop", "999.99", "Electronics", 10},
		{"Phone", "599.99", "Electronics", 15},
		{"Book", "19.99", "Books", 50},
		{"Headphones", "149.99", "Electronics", 20},
		{"T-Shirt", "29.99", "Clothing", 30},
	} {
		products.Create(p.name, decimal.RequireFromString(p.price), p.category, p.stock)
	}
}

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Serialize prices as plain JSON numbers, not quoted strings
	decimal.MarshalJSONWithoutQuotes = true

	// Construct the in-memory stores; all state lives and dies with the process
	users := store.NewUserStore()
	products := store.NewProductStore()
	carts := store.NewCartStore()
	orders := store.NewOrderStore()

	// Seed demo data unless disabled
	if cfg.SeedData {
		seed(users, products)
		logrus.Info("seeded demo users and catalog")
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.New() // Gin router instance
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger())

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Auth gates
	authRequired := middleware.JWTAuthMiddleware(cfg.JWTSecret)
	adminOnly := middleware.AdminOnlyMiddleware()

	// Public routes
	apiGroup := r.Group("/api")
	apiGroup.POST("/register", api.RegisterHandler(users))                // Registration endpoint
	apiGroup.POST("/login", api.LoginHandler(users, cfg.JWTSecret))       // Login endpoint
	apiGroup.GET("/products", api.ListProductsHandler(products))          // Catalog listing endpoint
	apiGroup.GET("/products/:id", api.GetProductHandler(products))        // Single product endpoint
	apiGroup.GET("/categories", api.ListCategoriesHandler(products))      // Category listing endpoint

	// Authenticated routes (valid bearer token required)
	authGroup := apiGroup.Group("")
	authGroup.Use(authRequired)
	authGroup.GET("/cart", api.GetCartHandler(carts, products))             // Cart view endpoint
	authGroup.POST("/cart/add", api.AddToCartHandler(carts, products))      // Add to cart endpoint
	authGroup.PUT("/cart/update", api.UpdateCartHandler(carts))             // Update cart line endpoint
	authGroup.DELETE("/cart/remove/:productId", api.RemoveFromCartHandler(carts)) // Remove cart line endpoint
	authGroup.POST("/orders", api.PlaceOrderHandler(carts, products, orders))     // Checkout endpoint
	authGroup.GET("/orders", api.ListOrdersHandler(orders))                 // Own order history endpoint

	// Admin routes (valid token with admin role required)
	adminGroup := apiGroup.Group("")
	adminGroup.Use(authRequired, adminOnly)
	adminGroup.POST("/products", api.CreateProductHandler(products))         // Create product endpoint
	adminGroup.PUT("/products/:id", api.UpdateProductHandler(products))      // Update product endpoint
	adminGroup.DELETE("/products/:id", api.DeleteProductHandler(products))   // Delete product endpoint
	adminGroup.GET("/admin/orders", api.ListAllOrdersHandler(orders))        // All orders endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	if err := r.Run(":" + cfg.AppPort); err != nil {
		logrus.Fatalf("server stopped: %v", err) // Fatal error if the server fails
	}
}
