package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	checkoutControllers "github.com/ojeshwigautam/Port-Kart-Server/controllers/checkout"
	"github.com/ojeshwigautam/Port-Kart-Server/supa"
)

// SetupCheckoutRoutes registers the "/api/checkout/*" endpoint.
func SetupCheckoutRoutes(r *gin.Engine, store supa.Store, logger zerolog.Logger) {
	checkoutGroup := r.Group("/api/checkout")
	{
		checkoutGroup.POST("/checkout", checkoutControllers.Checkout(store, logger))
	}
}
