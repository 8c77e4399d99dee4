package cartControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ojeshwigautam/Port-Kart-Server/models"
	"github.com/ojeshwigautam/Port-Kart-Server/supa"
	"github.com/ojeshwigautam/Port-Kart-Server/supa/supatest"
)

func setupRouter(fake *supatest.Fake) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/cart/get-cart-items", GetCartItems(fake))
	r.POST("/api/cart/add-to-cart", AddToCart(fake))
	r.POST("/api/cart/update-cart-quantity", UpdateCartQuantity(fake))
	r.POST("/api/cart/remove-from-cart", RemoveFromCart(fake))
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// Every cart endpoint answers 400, not 500, when required fields are
// missing, and never reaches the platform.
func TestCartValidationIsBadRequest(t *testing.T) {
	cases := []struct {
		path string
		body string
	}{
		{"/api/cart/get-cart-items", `{}`},
		{"/api/cart/add-to-cart", `{}`},
		{"/api/cart/add-to-cart", `{"userId":"u1"}`},
		{"/api/cart/add-to-cart", `{"productId":"p1"}`},
		{"/api/cart/update-cart-quantity", `{"userId":"u1","productId":"p1"}`},
		{"/api/cart/remove-from-cart", `{"userId":"u1"}`},
	}

	for _, tc := range cases {
		fake := &supatest.Fake{}
		r := setupRouter(fake)

		w := postJSON(r, tc.path, tc.body)

		assert.Equal(t, http.StatusBadRequest, w.Code, "%s %s", tc.path, tc.body)
		assert.Empty(t, fake.Calls, "%s %s", tc.path, tc.body)
	}
}

func TestGetCartItemsReturnsJoinedRows(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	fake := &supatest.Fake{
		CartRowsFn: func(userID string) ([]models.CartRow, error) {
			assert.Equal(t, "u1", userID)
			return []models.CartRow{{
				UserID:    "u1",
				ProductID: "p1",
				Quantity:  2,
				CreatedAt: &created,
				Product:   models.ProductSummary{Title: "Spyglass", Price: 19.99},
			}}, nil
		},
	}
	r := setupRouter(fake)

	w := postJSON(r, "/api/cart/get-cart-items", `{"userId":"u1"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var rows []models.CartRow
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Spyglass", rows[0].Product.Title)
}

func TestAddToCartDelegatesToRPC(t *testing.T) {
	fake := &supatest.Fake{
		AddToCartFn: func(userID, productID string) (json.RawMessage, error) {
			assert.Equal(t, "u1", userID)
			assert.Equal(t, "p1", productID)
			return json.RawMessage(`{"user_id":"u1","product_id":"p1","quantity":1}`), nil
		},
	}
	r := setupRouter(fake)

	w := postJSON(r, "/api/cart/add-to-cart", `{"userId":"u1","productId":"p1"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":"u1","product_id":"p1","quantity":1}`, w.Body.String())
	assert.Equal(t, []string{"AddToCart"}, fake.Calls)
}

func TestUpdateCartQuantityDelegatesToRPC(t *testing.T) {
	fake := &supatest.Fake{
		UpdateCartQuantityFn: func(userID, productID string, quantity int) (json.RawMessage, error) {
			assert.Equal(t, 3, quantity)
			return json.RawMessage(`{"quantity":3}`), nil
		},
	}
	r := setupRouter(fake)

	w := postJSON(r, "/api/cart/update-cart-quantity",
		`{"userId":"u1","productId":"p1","quantity":3}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"quantity":3}`, w.Body.String())
}

// Quantity zero is a present value, not a missing field: it is forwarded
// to the RPC, which uses it to drop the line.
func TestUpdateCartQuantityZeroPassesThrough(t *testing.T) {
	var got int
	fake := &supatest.Fake{
		UpdateCartQuantityFn: func(userID, productID string, quantity int) (json.RawMessage, error) {
			got = quantity
			return json.RawMessage(`null`), nil
		},
	}
	r := setupRouter(fake)

	w := postJSON(r, "/api/cart/update-cart-quantity",
		`{"userId":"u1","productId":"p1","quantity":0}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, got)
	assert.Equal(t, 1, fake.CallCount("UpdateCartQuantity"))
}

func TestRemoveFromCartUpstreamError(t *testing.T) {
	fake := &supatest.Fake{
		RemoveFromCartFn: func(userID, productID string) (json.RawMessage, error) {
			return nil, &supa.Error{Status: http.StatusBadRequest, Message: "item not in cart"}
		},
	}
	r := setupRouter(fake)

	w := postJSON(r, "/api/cart/remove-from-cart", `{"userId":"u1","productId":"p1"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"item not in cart"}`, w.Body.String())
}
