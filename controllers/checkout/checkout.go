package checkoutControllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ojeshwigautam/Port-Kart-Server/models"
	"github.com/ojeshwigautam/Port-Kart-Server/supa"
)

type CheckoutInput struct {
	UserID  string `json:"userId" binding:"required"`
	Address string `json:"address" binding:"required"`
}

// POST /api/checkout/checkout
//
// Order placement is all-or-nothing up to the bulk insert: a failure
// there aborts the checkout with stock and cart untouched. After the
// orders exist, stock decrements and the cart clear are best-effort —
// failures are logged and the customer still gets a confirmation.
func Checkout(store supa.Store, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CheckoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User ID and Address are required"})
			return
		}

		lines, err := store.CartLines(c.Request.Context(), input.UserID)
		if err != nil {
			supa.RespondError(c, err)
			return
		}
		if len(lines) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Ye can't checkout an empty cart, Sailor!"})
			return
		}

		orders := make([]models.Order, 0, len(lines))
		for _, line := range lines {
			if line.Product == nil {
				logger.Error().
					Str("product_id", line.ProductID).
					Str("user_id", input.UserID).
					Msg("cart line references a missing product")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
				return
			}
			orders = append(orders, models.Order{
				UserID:      input.UserID,
				ProductID:   line.ProductID,
				Quantity:    line.Quantity,
				TotalPrice:  models.LineTotal(line.Product.Price, line.Quantity),
				Address:     input.Address,
				ProductName: line.Product.Title,
				SellerID:    line.Product.SellerID,
			})
		}

		if err := store.InsertOrders(c.Request.Context(), orders); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order: " + err.Error()})
			return
		}

		for _, line := range lines {
			if err := store.DecrementStock(c.Request.Context(), line.ProductID, line.Quantity); err != nil {
				logger.Error().Err(err).
					Str("product_id", line.ProductID).
					Msg("stock update failed after order placement")
			}
		}

		if err := store.ClearCart(c.Request.Context(), input.UserID); err != nil {
			logger.Error().Err(err).
				Str("user_id", input.UserID).
				Msg("failed to clear cart after order placement")
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": fmt.Sprintf("Order placed! We be sailin' to %s.", input.Address),
		})
	}
}
