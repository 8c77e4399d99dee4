package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ojeshwigautam/Port-Kart-Server/supa"
)

// Cart mutations are named platform RPCs rather than raw row writes, so
// the (user, product) uniqueness and upsert rules live server-side.

type UserIDInput struct {
	UserID string `json:"userId" binding:"required"`
}

type CartItemInput struct {
	UserID    string `json:"userId" binding:"required"`
	ProductID string `json:"productId" binding:"required"`
}

type CartQuantityInput struct {
	UserID    string `json:"userId" binding:"required"`
	ProductID string `json:"productId" binding:"required"`
	Quantity  *int   `json:"quantity" binding:"required"` // zero clears the line server-side
}

// POST /api/cart/get-cart-items
func GetCartItems(store supa.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UserIDInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
			return
		}

		rows, err := store.CartRows(c.Request.Context(), input.UserID)
		if err != nil {
			supa.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, rows)
	}
}

// POST /api/cart/add-to-cart
func AddToCart(store supa.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User ID and Product ID are required"})
			return
		}

		data, err := store.AddToCart(c.Request.Context(), input.UserID, input.ProductID)
		if err != nil {
			supa.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, data)
	}
}

// POST /api/cart/update-cart-quantity
func UpdateCartQuantity(store supa.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User ID, Product ID and Quantity are required"})
			return
		}

		data, err := store.UpdateCartQuantity(c.Request.Context(), input.UserID, input.ProductID, *input.Quantity)
		if err != nil {
			supa.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, data)
	}
}

// POST /api/cart/remove-from-cart
func RemoveFromCart(store supa.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User ID and Product ID are required"})
			return
		}

		data, err := store.RemoveFromCart(c.Request.Context(), input.UserID, input.ProductID)
		if err != nil {
			supa.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, data)
	}
}
