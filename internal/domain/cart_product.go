package domain

// CartProduct is a cart membership row. The (CartID, ProductID) pair is the
// composite key, so a product appears in a cart at most once; repeat adds
// bump Quantity instead of inserting new rows.
type CartProduct struct {
	CartID    int64
	ProductID int64
	Quantity  int32 // always >= 1
	IsBought  bool
}

func NewCartProduct(cartID, productID int64, quantity int32) *CartProduct {
	return &CartProduct{
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
	}
}
