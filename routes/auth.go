package routes

import (
	"github.com/gin-gonic/gin"

	authControllers "github.com/ojeshwigautam/Port-Kart-Server/controllers/auth"
	"github.com/ojeshwigautam/Port-Kart-Server/supa"
)

// SetupAuthRoutes registers all "/api/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, auth supa.Auth) {
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/signup", authControllers.SignUp(auth))
		authGroup.POST("/login", authControllers.Login(auth))
		authGroup.GET("/me", authControllers.GetCurrentUser(auth))
		authGroup.POST("/logout", authControllers.Logout())
	}
}
