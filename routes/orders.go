package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/ojeshwigautam/Port-Kart-Server/controllers/orders"
	"github.com/ojeshwigautam/Port-Kart-Server/supa"
)

// SetupOrderRoutes registers all "/api/orders/*" endpoints.
func SetupOrderRoutes(r *gin.Engine, store supa.Store) {
	orderGroup := r.Group("/api/orders")
	{
		orderGroup.POST("/get-orders", orderControllers.GetOrders(store))
	}
}
