package models

// CartItem is one line in the cart: the product it was added from plus a
// quantity. Embedding keeps the persisted JSON flat, so the stored record is
// the product's fields with a "quantity" alongside them.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}
