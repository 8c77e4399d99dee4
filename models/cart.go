package models

import "time"

// CartRow is a cart_items row with its product's title and price joined
// on, as returned by get-cart-items.
type CartRow struct {
	ID        string         `json:"id,omitempty"`
	UserID    string         `json:"user_id"`
	ProductID string         `json:"product_id"`
	Quantity  int            `json:"quantity"`
	CreatedAt *time.Time     `json:"created_at,omitempty"`
	Product   ProductSummary `json:"product"`
}

// CartLine is the checkout projection of a cart item: the quantity plus
// the joined product fields an order snapshot needs. Product is nil when
// the referenced row no longer exists.
type CartLine struct {
	ProductID string       `json:"product_id"`
	Quantity  int          `json:"quantity"`
	Product   *CartProduct `json:"products"`
}

type CartProduct struct {
	Stock    int     `json:"stock"`
	Price    float64 `json:"price"`
	Title    string  `json:"title"`
	SellerID string  `json:"seller_id"`
}
