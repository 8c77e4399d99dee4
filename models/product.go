package models

import "time"

type Product struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Price       float64    `json:"price"`
	Stock       int        `json:"stock"`
	SellerID    string     `json:"seller_id"`
	ImageURL    string     `json:"image_url,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	Seller      *SellerRef `json:"seller,omitempty"` // joined profiles(name)
}

// SellerRef carries the seller name joined onto product listings.
type SellerRef struct {
	Name string `json:"name"`
}

// ProductSummary is the {title, price} projection joined onto cart rows
// and selling-history rows.
type ProductSummary struct {
	Title string  `json:"title"`
	Price float64 `json:"price"`
}

// ProductInput is the create-product request body.
type ProductInput struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	Stock       int     `json:"stock"`
	SellerID    string  `json:"seller_id" binding:"required"`
	ImageURL    string  `json:"image_url"`
}
