package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/ojeshwigautam/Port-Kart-Server/controllers/cart"
	"github.com/ojeshwigautam/Port-Kart-Server/supa"
)

// SetupCartRoutes registers all "/api/cart/*" endpoints.
func SetupCartRoutes(r *gin.Engine, store supa.Store) {
	cartGroup := r.Group("/api/cart")
	{
		cartGroup.POST("/get-cart-items", cartControllers.GetCartItems(store))
		cartGroup.POST("/add-to-cart", cartControllers.AddToCart(store))
		cartGroup.POST("/update-cart-quantity", cartControllers.UpdateCartQuantity(store))
		cartGroup.POST("/remove-from-cart", cartControllers.RemoveFromCart(store))
	}
}
