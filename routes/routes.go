package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ojeshwigautam/Port-Kart-Server/supa"
)

// SetupRoutes wires every "/api/*" route group plus the liveness probe.
func SetupRoutes(r *gin.Engine, auth supa.Auth, store supa.Store, sellerSecret string, logger zerolog.Logger) {
	SetupAuthRoutes(r, auth)
	SetupProfileRoutes(r, store, sellerSecret)
	SetupCartRoutes(r, store)
	SetupCheckoutRoutes(r, store, logger)
	SetupOrderRoutes(r, store)
	SetupProductRoutes(r, store)
	SetupSellerRoutes(r, store)

	// Liveness probe, independent of upstream availability.
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
