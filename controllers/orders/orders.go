package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ojeshwigautam/Port-Kart-Server/models"
	"github.com/ojeshwigautam/Port-Kart-Server/supa"
)

type UserIDInput struct {
	UserID string `json:"userId" binding:"required"`
}

// POST /api/orders/get-orders
func GetOrders(store supa.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UserIDInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
			return
		}

		orders, err := store.OrdersByUser(c.Request.Context(), input.UserID)
		if err != nil {
			supa.RespondError(c, err)
			return
		}
		if orders == nil {
			orders = []models.Order{}
		}

		c.JSON(http.StatusOK, orders)
	}
}
