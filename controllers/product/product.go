package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ojeshwigautam/Port-Kart-Server/models"
	"github.com/ojeshwigautam/Port-Kart-Server/supa"
)

type UpdateStockInput struct {
	ProductID string `json:"productId" binding:"required"`
	Change    *int   `json:"change" binding:"required"` // signed delta, pointer so 0 is still "present"
}

type ProductIDInput struct {
	ProductID string `json:"productId" binding:"required"`
}

// GET /api/products/get-products
func GetProducts(store supa.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := store.ListProducts(c.Request.Context())
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

// POST /api/products/create-product
func CreateProduct(store supa.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product data is required"})
			return
		}

		rows, err := store.InsertProduct(c.Request.Context(), input)
		if err != nil {
			supa.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, rows)
	}
}

// POST /api/products/update-product-stock
//
// The signed delta is applied by the adjust_stock RPC in one statement,
// so concurrent adjustments cannot lose updates.
func UpdateProductStock(store supa.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateStockInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID and change are required"})
			return
		}

		data, err := store.AdjustStock(c.Request.Context(), input.ProductID, *input.Change)
		if err != nil {
			supa.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, data)
	}
}

// POST /api/products/delete-product
func DeleteProduct(store supa.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductIDInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		rows, err := store.DeleteProduct(c.Request.Context(), input.ProductID)
		if err != nil {
			supa.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, rows)
	}
}
