package routes

import (
	"github.com/gin-gonic/gin"

	profileControllers "github.com/ojeshwigautam/Port-Kart-Server/controllers/profile"
	"github.com/ojeshwigautam/Port-Kart-Server/supa"
)

// SetupProfileRoutes registers all "/api/profile/*" endpoints.
func SetupProfileRoutes(r *gin.Engine, store supa.Store, sellerSecret string) {
	profileGroup := r.Group("/api/profile")
	{
		profileGroup.POST("/create-user-profile", profileControllers.CreateUserProfile(store, sellerSecret))
		profileGroup.GET("/get-total-users", profileControllers.GetTotalUsers(store))
		profileGroup.POST("/get-user-profile", profileControllers.GetUserProfile(store))
	}
}
