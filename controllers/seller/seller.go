package sellerControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ojeshwigautam/Port-Kart-Server/models"
	"github.com/ojeshwigautam/Port-Kart-Server/supa"
)

type SellerIDInput struct {
	SellerID string `json:"sellerId" binding:"required"`
}

// POST /api/seller/get-my-products
func GetMyProducts(store supa.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SellerIDInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Seller ID is required"})
			return
		}

		products, err := store.ProductsBySeller(c.Request.Context(), input.SellerID)
		if err != nil {
			supa.RespondError(c, err)
			return
		}
		if products == nil {
			products = []models.Product{}
		}

		c.JSON(http.StatusOK, products)
	}
}

// POST /api/seller/get-selling-history
func GetSellingHistory(store supa.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SellerIDInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Seller ID is required"})
			return
		}

		sales, err := store.SalesBySeller(c.Request.Context(), input.SellerID)
		if err != nil {
			supa.RespondError(c, err)
			return
		}
		if sales == nil {
			sales = []models.SellerSale{}
		}

		c.JSON(http.StatusOK, sales)
	}
}
