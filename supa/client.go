package supa

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"
	"github.com/supabase-community/postgrest-go"

	"github.com/ojeshwigautam/Port-Kart-Server/config"
	"github.com/ojeshwigautam/Port-Kart-Server/models"
)

// Client talks to a Supabase project with the service key. It implements
// both Auth and Store.
type Client struct {
	rest *postgrest.Client
	auth gotrue.Client

	// Rpc reports failures through the shared ClientError field on the
	// postgrest client, so RPC calls must not interleave.
	rpcMu sync.Mutex
}

func NewClient(cfg config.Config) *Client {
	base := strings.TrimRight(cfg.SupabaseURL, "/")

	rest := postgrest.NewClient(base+"/rest/v1", "public", map[string]string{
		"apikey": cfg.SupabaseKey,
	})
	rest.SetAuthToken(cfg.SupabaseKey)

	auth := gotrue.New("portkart", cfg.SupabaseKey).
		WithCustomGoTrueURL(base + "/auth/v1")

	return &Client{rest: rest, auth: auth}
}

// ---------- Auth ----------

func (c *Client) SignUp(_ context.Context, email, password string) (json.RawMessage, error) {
	resp, err := c.auth.Signup(types.SignupRequest{Email: email, Password: password})
	if err != nil {
		return nil, authErr(http.StatusBadRequest, err)
	}
	return json.Marshal(resp)
}

func (c *Client) SignIn(_ context.Context, email, password string) (json.RawMessage, error) {
	resp, err := c.auth.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, authErr(http.StatusBadRequest, err)
	}
	return json.Marshal(resp)
}

func (c *Client) UserFromToken(_ context.Context, token string) (json.RawMessage, error) {
	resp, err := c.auth.WithToken(token).GetUser()
	if err != nil {
		return nil, authErr(http.StatusUnauthorized, err)
	}
	return json.Marshal(resp)
}

// ---------- Profiles ----------

func (c *Client) InsertProfile(_ context.Context, p models.Profile) ([]models.Profile, error) {
	var out []models.Profile
	_, err := c.rest.From("profiles").
		Insert([]models.Profile{p}, false, "", "representation", "").
		ExecuteTo(&out)
	return out, upstreamErr(err)
}

func (c *Client) ProfileByID(_ context.Context, userID string) (models.ProfileSummary, error) {
	var out models.ProfileSummary
	_, err := c.rest.From("profiles").
		Select("name, role", "", false).
		Eq("id", userID).
		Single().
		ExecuteTo(&out)
	return out, upstreamErr(err)
}

func (c *Client) CountProfiles(_ context.Context) (int64, error) {
	_, count, err := c.rest.From("profiles").
		Select("*", "exact", true).
		Execute()
	return count, upstreamErr(err)
}

func (c *Client) SellerInviteActive(_ context.Context, code string) (bool, error) {
	var rows []struct {
		Code string `json:"code"`
	}
	_, err := c.rest.From("seller_invites").
		Select("code", "", false).
		Eq("code", code).
		Eq("active", "true").
		ExecuteTo(&rows)
	if err != nil {
		return false, upstreamErr(err)
	}
	return len(rows) > 0, nil
}

// ---------- Products ----------

func (c *Client) ListProducts(_ context.Context) ([]models.Product, error) {
	var out []models.Product
	_, err := c.rest.From("products").
		Select("*, seller:profiles(name)", "", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		ExecuteTo(&out)
	return out, upstreamErr(err)
}

func (c *Client) InsertProduct(_ context.Context, in models.ProductInput) ([]models.Product, error) {
	var out []models.Product
	_, err := c.rest.From("products").
		Insert([]models.ProductInput{in}, false, "", "representation", "").
		ExecuteTo(&out)
	return out, upstreamErr(err)
}

func (c *Client) DeleteProduct(_ context.Context, productID string) ([]models.Product, error) {
	var out []models.Product
	_, err := c.rest.From("products").
		Delete("representation", "").
		Eq("id", productID).
		ExecuteTo(&out)
	return out, upstreamErr(err)
}

// AdjustStock applies a signed delta through the adjust_stock RPC and
// returns the updated row.
func (c *Client) AdjustStock(_ context.Context, productID string, delta int) (json.RawMessage, error) {
	return c.rpc("adjust_stock", map[string]any{"pid": productID, "delta": delta})
}

// DecrementStock runs the decrement_stock RPC, which performs
// stock = stock - qty guarded by stock >= qty in a single statement.
func (c *Client) DecrementStock(_ context.Context, productID string, quantity int) error {
	_, err := c.rpc("decrement_stock", map[string]any{"pid": productID, "qty": quantity})
	return err
}

// ---------- Cart ----------

func (c *Client) CartRows(_ context.Context, userID string) ([]models.CartRow, error) {
	var out []models.CartRow
	_, err := c.rest.From("cart_items").
		Select("*, product:products(title, price)", "", false).
		Eq("user_id", userID).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		ExecuteTo(&out)
	return out, upstreamErr(err)
}

func (c *Client) CartLines(_ context.Context, userID string) ([]models.CartLine, error) {
	var out []models.CartLine
	_, err := c.rest.From("cart_items").
		Select("product_id, quantity, products(stock, price, title, seller_id)", "", false).
		Eq("user_id", userID).
		ExecuteTo(&out)
	return out, upstreamErr(err)
}

func (c *Client) AddToCart(_ context.Context, userID, productID string) (json.RawMessage, error) {
	return c.rpc("add_to_cart", map[string]any{"uid": userID, "pid": productID})
}

func (c *Client) UpdateCartQuantity(_ context.Context, userID, productID string, quantity int) (json.RawMessage, error) {
	return c.rpc("update_cart_quantity", map[string]any{"uid": userID, "pid": productID, "qty": quantity})
}

func (c *Client) RemoveFromCart(_ context.Context, userID, productID string) (json.RawMessage, error) {
	return c.rpc("remove_from_cart", map[string]any{"uid": userID, "pid": productID})
}

func (c *Client) ClearCart(_ context.Context, userID string) error {
	_, _, err := c.rest.From("cart_items").
		Delete("", "").
		Eq("user_id", userID).
		Execute()
	return upstreamErr(err)
}

// ---------- Orders ----------

func (c *Client) InsertOrders(_ context.Context, orders []models.Order) error {
	_, _, err := c.rest.From("orders").
		Insert(orders, false, "", "", "").
		Execute()
	return upstreamErr(err)
}

func (c *Client) OrdersByUser(_ context.Context, userID string) ([]models.Order, error) {
	var out []models.Order
	_, err := c.rest.From("orders").
		Select("*", "", false).
		Eq("user_id", userID).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		ExecuteTo(&out)
	return out, upstreamErr(err)
}

// ---------- Seller ----------

func (c *Client) ProductsBySeller(_ context.Context, sellerID string) ([]models.Product, error) {
	var out []models.Product
	_, err := c.rest.From("products").
		Select("*", "", false).
		Eq("seller_id", sellerID).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		ExecuteTo(&out)
	return out, upstreamErr(err)
}

func (c *Client) SalesBySeller(_ context.Context, sellerID string) ([]models.SellerSale, error) {
	var out []models.SellerSale
	_, err := c.rest.From("orders").
		Select("*, products(title, price)", "", false).
		Eq("seller_id", sellerID).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		ExecuteTo(&out)
	return out, upstreamErr(err)
}

// rpcFailure is the PostgREST error object. Rpc does not inspect the
// response status, so on a 4xx/5xx this shape comes back as the result
// body with ClientError still nil.
type rpcFailure struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// rpc invokes a named remote procedure and translates both transport
// failures (ClientError) and PostgREST error bodies into *Error.
func (c *Client) rpc(name string, params map[string]any) (json.RawMessage, error) {
	c.rpcMu.Lock()
	defer c.rpcMu.Unlock()

	c.rest.ClientError = nil
	res := c.rest.Rpc(name, "", params)
	if err := c.rest.ClientError; err != nil {
		c.rest.ClientError = nil
		return nil, upstreamErr(err)
	}

	var failure rpcFailure
	if json.Unmarshal([]byte(res), &failure) == nil && failure.Code != "" && failure.Message != "" {
		return nil, &Error{Status: http.StatusBadRequest, Message: failure.Message}
	}

	if res == "" {
		return json.RawMessage("null"), nil
	}
	return json.RawMessage(res), nil
}
