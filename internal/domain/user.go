package domain

// User roles
const (
	RoleAdmin    = "admin"    // Full catalog and order management
	RoleCustomer = "customer" // Self-service cart and orders
)

// User Model
type User struct {
	ID       int    `json:"id"`       // Unique, monotonic user ID
	Username string `json:"username"` // Unique username
	Password string `json:"-"`        // Bcrypt password hash, never serialized
	Role     string `json:"role"`     // Role: admin or customer
}
