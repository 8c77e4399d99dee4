package routes

import (
	"github.com/gin-gonic/gin"

	productControllers "github.com/ojeshwigautam/Port-Kart-Server/controllers/product"
	"github.com/ojeshwigautam/Port-Kart-Server/supa"
)

// SetupProductRoutes registers all "/api/products/*" endpoints.
func SetupProductRoutes(r *gin.Engine, store supa.Store) {
	productGroup := r.Group("/api/products")
	{
		productGroup.GET("/get-products", productControllers.GetProducts(store))
		productGroup.POST("/create-product", productControllers.CreateProduct(store))
		productGroup.POST("/update-product-stock", productControllers.UpdateProductStock(store))
		productGroup.POST("/delete-product", productControllers.DeleteProduct(store))
	}
}
