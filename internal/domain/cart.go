package domain

// CartItem is one product/quantity line in a user's cart.
// A cart is an ordered slice of these, keyed by user ID in the cart store.
type CartItem struct {
	ProductID int `json:"productId"` // Reference to a product (checked at add-time)
	Quantity  int `json:"quantity"`  // Positive quantity
}
