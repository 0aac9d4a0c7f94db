package domain

// CartItem represents a single entry in a shopping cart. A nil UserID marks
// a guest (anonymous) item. ProductID is a loose reference; the repository
// does not enforce that the product exists.
type CartItem struct {
	ID        int64  `json:"id"`
	UserID    *int64 `json:"user_id,omitempty"`
	ProductID int64  `json:"product_id"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

// CartLine is a cart item joined with its product, when the product still
// exists. Product is nil for dangling references.
type CartLine struct {
	CartItem
	Product *Product `json:"product,omitempty"`
}

// SameSelection reports whether the item matches the given owner, product,
// and size triple. A nil owner only matches another nil owner.
func (c *CartItem) SameSelection(userID *int64, productID int64, size string) bool {
	if c.ProductID != productID || c.Size != size {
		return false
	}
	if c.UserID == nil || userID == nil {
		return c.UserID == nil && userID == nil
	}
	return *c.UserID == *userID
}
