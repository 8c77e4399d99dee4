package routes

import (
	"github.com/gin-gonic/gin"

	sellerControllers "github.com/ojeshwigautam/Port-Kart-Server/controllers/seller"
	"github.com/ojeshwigautam/Port-Kart-Server/supa"
)

// SetupSellerRoutes registers all "/api/seller/*" endpoints.
func SetupSellerRoutes(r *gin.Engine, store supa.Store) {
	sellerGroup := r.Group("/api/seller")
	{
		sellerGroup.POST("/get-my-products", sellerControllers.GetMyProducts(store))
		sellerGroup.POST("/get-selling-history", sellerControllers.GetSellingHistory(store))
		sellerGroup.GET("/export-selling-history", sellerControllers.ExportSellingHistory(store))
	}
}
