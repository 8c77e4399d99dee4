// Package supatest provides an in-memory fake of the supa interfaces for
// handler tests. Every method records its name so tests can assert that
// validation failures never reach the platform.
package supatest

import (
	"context"
	"encoding/json"

	"github.com/ojeshwigautam/Port-Kart-Server/models"
)

// Fake implements supa.Auth and supa.Store. Unset function fields return
// zero values and no error.
type Fake struct {
	Calls []string

	SignUpFn        func(email, password string) (json.RawMessage, error)
	SignInFn        func(email, password string) (json.RawMessage, error)
	UserFromTokenFn func(token string) (json.RawMessage, error)

	InsertProfileFn      func(p models.Profile) ([]models.Profile, error)
	ProfileByIDFn        func(userID string) (models.ProfileSummary, error)
	CountProfilesFn      func() (int64, error)
	SellerInviteActiveFn func(code string) (bool, error)

	ListProductsFn   func() ([]models.Product, error)
	InsertProductFn  func(in models.ProductInput) ([]models.Product, error)
	DeleteProductFn  func(productID string) ([]models.Product, error)
	AdjustStockFn    func(productID string, delta int) (json.RawMessage, error)
	DecrementStockFn func(productID string, quantity int) error

	CartRowsFn           func(userID string) ([]models.CartRow, error)
	CartLinesFn          func(userID string) ([]models.CartLine, error)
	AddToCartFn          func(userID, productID string) (json.RawMessage, error)
	UpdateCartQuantityFn func(userID, productID string, quantity int) (json.RawMessage, error)
	RemoveFromCartFn     func(userID, productID string) (json.RawMessage, error)
	ClearCartFn          func(userID string) error

	InsertOrdersFn func(orders []models.Order) error
	OrdersByUserFn func(userID string) ([]models.Order, error)

	ProductsBySellerFn func(sellerID string) ([]models.Product, error)
	SalesBySellerFn    func(sellerID string) ([]models.SellerSale, error)
}

func (f *Fake) record(name string) {
	f.Calls = append(f.Calls, name)
}

// CallCount returns how many times the named method was invoked.
func (f *Fake) CallCount(name string) int {
	n := 0
	for _, c := range f.Calls {
		if c == name {
			n++
		}
	}
	return n
}

func (f *Fake) SignUp(_ context.Context, email, password string) (json.RawMessage, error) {
	f.record("SignUp")
	if f.SignUpFn != nil {
		return f.SignUpFn(email, password)
	}
	return nil, nil
}

func (f *Fake) SignIn(_ context.Context, email, password string) (json.RawMessage, error) {
	f.record("SignIn")
	if f.SignInFn != nil {
		return f.SignInFn(email, password)
	}
	return nil, nil
}

func (f *Fake) UserFromToken(_ context.Context, token string) (json.RawMessage, error) {
	f.record("UserFromToken")
	if f.UserFromTokenFn != nil {
		return f.UserFromTokenFn(token)
	}
	return nil, nil
}

func (f *Fake) InsertProfile(_ context.Context, p models.Profile) ([]models.Profile, error) {
	f.record("InsertProfile")
	if f.InsertProfileFn != nil {
		return f.InsertProfileFn(p)
	}
	return []models.Profile{p}, nil
}

func (f *Fake) ProfileByID(_ context.Context, userID string) (models.ProfileSummary, error) {
	f.record("ProfileByID")
	if f.ProfileByIDFn != nil {
		return f.ProfileByIDFn(userID)
	}
	return models.ProfileSummary{}, nil
}

func (f *Fake) CountProfiles(_ context.Context) (int64, error) {
	f.record("CountProfiles")
	if f.CountProfilesFn != nil {
		return f.CountProfilesFn()
	}
	return 0, nil
}

func (f *Fake) SellerInviteActive(_ context.Context, code string) (bool, error) {
	f.record("SellerInviteActive")
	if f.SellerInviteActiveFn != nil {
		return f.SellerInviteActiveFn(code)
	}
	return false, nil
}

func (f *Fake) ListProducts(_ context.Context) ([]models.Product, error) {
	f.record("ListProducts")
	if f.ListProductsFn != nil {
		return f.ListProductsFn()
	}
	return nil, nil
}

func (f *Fake) InsertProduct(_ context.Context, in models.ProductInput) ([]models.Product, error) {
	f.record("InsertProduct")
	if f.InsertProductFn != nil {
		return f.InsertProductFn(in)
	}
	return nil, nil
}

func (f *Fake) DeleteProduct(_ context.Context, productID string) ([]models.Product, error) {
	f.record("DeleteProduct")
	if f.DeleteProductFn != nil {
		return f.DeleteProductFn(productID)
	}
	return nil, nil
}

func (f *Fake) AdjustStock(_ context.Context, productID string, delta int) (json.RawMessage, error) {
	f.record("AdjustStock")
	if f.AdjustStockFn != nil {
		return f.AdjustStockFn(productID, delta)
	}
	return nil, nil
}

func (f *Fake) DecrementStock(_ context.Context, productID string, quantity int) error {
	f.record("DecrementStock")
	if f.DecrementStockFn != nil {
		return f.DecrementStockFn(productID, quantity)
	}
	return nil
}

func (f *Fake) CartRows(_ context.Context, userID string) ([]models.CartRow, error) {
	f.record("CartRows")
	if f.CartRowsFn != nil {
		return f.CartRowsFn(userID)
	}
	return nil, nil
}

func (f *Fake) CartLines(_ context.Context, userID string) ([]models.CartLine, error) {
	f.record("CartLines")
	if f.CartLinesFn != nil {
		return f.CartLinesFn(userID)
	}
	return nil, nil
}

func (f *Fake) AddToCart(_ context.Context, userID, productID string) (json.RawMessage, error) {
	f.record("AddToCart")
	if f.AddToCartFn != nil {
		return f.AddToCartFn(userID, productID)
	}
	return nil, nil
}

func (f *Fake) UpdateCartQuantity(_ context.Context, userID, productID string, quantity int) (json.RawMessage, error) {
	f.record("UpdateCartQuantity")
	if f.UpdateCartQuantityFn != nil {
		return f.UpdateCartQuantityFn(userID, productID, quantity)
	}
	return nil, nil
}

func (f *Fake) RemoveFromCart(_ context.Context, userID, productID string) (json.RawMessage, error) {
	f.record("RemoveFromCart")
	if f.RemoveFromCartFn != nil {
		return f.RemoveFromCartFn(userID, productID)
	}
	return nil, nil
}

func (f *Fake) ClearCart(_ context.Context, userID string) error {
	f.record("ClearCart")
	if f.ClearCartFn != nil {
		return f.ClearCartFn(userID)
	}
	return nil
}

func (f *Fake) InsertOrders(_ context.Context, orders []models.Order) error {
	f.record("InsertOrders")
	if f.InsertOrdersFn != nil {
		return f.InsertOrdersFn(orders)
	}
	return nil
}

func (f *Fake) OrdersByUser(_ context.Context, userID string) ([]models.Order, error) {
	f.record("OrdersByUser")
	if f.OrdersByUserFn != nil {
		return f.OrdersByUserFn(userID)
	}
	return nil, nil
}

func (f *Fake) ProductsBySeller(_ context.Context, sellerID string) ([]models.Product, error) {
	f.record("ProductsBySeller")
	if f.ProductsBySellerFn != nil {
		return f.ProductsBySellerFn(sellerID)
	}
	return nil, nil
}

func (f *Fake) SalesBySeller(_ context.Context, sellerID string) ([]models.SellerSale, error) {
	f.record("SalesBySeller")
	if f.SalesBySellerFn != nil {
		return f.SalesBySellerFn(sellerID)
	}
	return nil, nil
}
