// Package supa wraps the Supabase platform: GoTrue for identity,
// PostgREST for table reads/writes and named RPCs. Handlers depend on
// the Auth and Store interfaces so tests can swap in fakes.
package supa

import (
	"context"
	"encoding/json"

	"github.com/ojeshwigautam/Port-Kart-Server/models"
)

// Auth is the slice of the platform's auth subsystem the API uses.
// Payloads are passed through verbatim, the platform owns their shape.
type Auth interface {
	SignUp(ctx context.Context, email, password string) (json.RawMessage, error)
	SignIn(ctx context.Context, email, password string) (json.RawMessage, error)
	UserFromToken(ctx context.Context, token string) (json.RawMessage, error)
}

// Store is every table read/write and RPC the handlers issue. Cart
// mutations and stock arithmetic are named RPCs so uniqueness, upserts
// and the non-negative stock guard are enforced server-side.
type Store interface {
	InsertProfile(ctx context.Context, p models.Profile) ([]models.Profile, error)
	ProfileByID(ctx context.Context, userID string) (models.ProfileSummary, error)
	CountProfiles(ctx context.Context) (int64, error)
	SellerInviteActive(ctx context.Context, code string) (bool, error)

	ListProducts(ctx context.Context) ([]models.Product, error)
	InsertProduct(ctx context.Context, in models.ProductInput) ([]models.Product, error)
	DeleteProduct(ctx context.Context, productID string) ([]models.Product, error)
	AdjustStock(ctx context.Context, productID string, delta int) (json.RawMessage, error)
	DecrementStock(ctx context.Context, productID string, quantity int) error

	CartRows(ctx context.Context, userID string) ([]models.CartRow, error)
	CartLines(ctx context.Context, userID string) ([]models.CartLine, error)
	AddToCart(ctx context.Context, userID, productID string) (json.RawMessage, error)
	UpdateCartQuantity(ctx context.Context, userID, productID string, quantity int) (json.RawMessage, error)
	RemoveFromCart(ctx context.Context, userID, productID string) (json.RawMessage, error)
	ClearCart(ctx context.Context, userID string) error

	InsertOrders(ctx context.Context, orders []models.Order) error
	OrdersByUser(ctx context.Context, userID string) ([]models.Order, error)

	ProductsBySeller(ctx context.Context, sellerID string) ([]models.Product, error)
	SalesBySeller(ctx context.Context, sellerID string) ([]models.SellerSale, error)
}
