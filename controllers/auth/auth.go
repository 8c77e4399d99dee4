package authControllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ojeshwigautam/Port-Kart-Server/supa"
)

type CredentialsInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/signup
func SignUp(auth supa.Auth) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CredentialsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
			return
		}

		session, err := auth.SignUp(c.Request.Context(), input.Email, input.Password)
		if err != nil {
			supa.RespondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, session)
	}
}

// POST /api/auth/login
func Login(auth supa.Auth) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CredentialsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
			return
		}

		session, err := auth.SignIn(c.Request.Context(), input.Email, input.Password)
		if err != nil {
			supa.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, session)
	}
}

// GET /api/auth/me
func GetCurrentUser(auth supa.Auth) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token missing"})
			return
		}

		user, err := auth.UserFromToken(c.Request.Context(), token)
		if err != nil {
			supa.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// POST /api/auth/logout
//
// Tokens live on the client, so logout is just an acknowledgement that
// lets the frontend clear its stored credentials.
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}
