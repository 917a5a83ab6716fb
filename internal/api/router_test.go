package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/Shamanthak-23-A/ecommerce-api/internal/domain"
	"github.com/Shamanthak-23-A/ecommerce-api/internal/middleware"
	"github.com/Shamanthak-23-A/ecommerce-api/internal/store"
	"github.com/Shamanthak-23-A/ecommerce-api/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

// testEnv is an in-process instance of the API with fresh stores,
// wired with the same routes and gates as cmd/server.
type testEnv struct {
	router   *gin.Engine
	users    *store.UserStore
	products *store.ProductStore
	carts    *store.CartStore
	orders   *store.OrderStore
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)
	e := &testEnv{
		users:    store.NewUserStore(),
		products: store.NewProductStore(),
		carts:    store.NewCartStore(),
		orders:   store.NewOrderStore(),
	}

	authRequired := middleware.JWTAuthMiddleware(testSecret)
	adminOnly := middleware.AdminOnlyMiddleware()

	r := gin.New()
	apiGroup := r.Group("/api")
	apiGroup.POST("/register", RegisterHandler(e.users))
	apiGroup.POST("/login", LoginHandler(e.users, testSecret))
	apiGroup.GET("/products", ListProductsHandler(e.products))
	apiGroup.GET("/products/:id", GetProductHandler(e.products))
	apiGroup.GET("/categories", ListCategoriesHandler(e.products))

	authGroup := apiGroup.Group("")
	authGroup.Use(authRequired)
	authGroup.GET("/cart", GetCartHandler(e.carts, e.products))
	authGroup.POST("/cart/add", AddToCartHandler(e.carts, e.products))
	authGroup.PUT("/cart/update", UpdateCartHandler(e.carts))
	authGroup.DELETE("/cart/remove/:productId", RemoveFromCartHandler(e.carts))
	authGroup.POST("/orders", PlaceOrderHandler(e.carts, e.products, e.orders))
	authGroup.GET("/orders", ListOrdersHandler(e.orders))

	adminGroup := apiGroup.Group("")
	adminGroup.Use(authRequired, adminOnly)
	adminGroup.POST("/products", CreateProductHandler(e.products))
	adminGroup.PUT("/products/:id", UpdateProductHandler(e.products))
	adminGroup.DELETE("/products/:id", DeleteProductHandler(e.products))
	adminGroup.GET("/admin/orders", ListAllOrdersHandler(e.orders))

	e.router = r
	return e
}

// seedUser registers a user directly in the store and returns it with
// a valid token.
func (e *testEnv) seedUser(t *testing.T, username, password, role string) (*domain.User, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user, err := e.users.Create(username, string(hash), role)
	require.NoError(t, err)
	token, err := utils.GenerateJWT(user, testSecret)
	require.NoError(t, err)
	return user, token
}

// do runs one request through the router. A non-empty token is sent as
// a bearer credential; a non-nil body is sent as JSON.
func (e *testEnv) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// decode unmarshals a response body into out.
func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), "body: %s", w.Body.String())
}
