package profileControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ojeshwigautam/Port-Kart-Server/models"
	"github.com/ojeshwigautam/Port-Kart-Server/supa"
)

type CreateProfileInput struct {
	ID         string `json:"id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Role       string `json:"role"`
	SellerCode string `json:"sellerCode"`
}

type UserIDInput struct {
	UserID string `json:"userId" binding:"required"`
}

// POST /api/profile/create-user-profile
//
// Only the "seller" role is privileged; anything else the client sends
// is coerced to "customer". Seller registration is gated by an
// invitation code: either an active seller_invites row or the static
// SELLER_SECRET fallback.
func CreateUserProfile(store supa.Store, sellerSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Credentials are required"})
			return
		}

		role := models.RoleCustomer
		if input.Role == models.RoleSeller {
			if input.SellerCode == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Seller code is required for seller registration"})
				return
			}

			ok := sellerSecret != "" && input.SellerCode == sellerSecret
			if !ok {
				active, err := store.SellerInviteActive(c.Request.Context(), input.SellerCode)
				if err != nil {
					supa.RespondError(c, err)
					return
				}
				ok = active
			}
			if !ok {
				c.JSON(http.StatusForbidden, gin.H{"error": "Invalid seller code"})
				return
			}
			role = models.RoleSeller
		}

		profile := models.Profile{
			ID:    input.ID,
			Name:  input.Name,
			Email: input.Email,
			Role:  role,
		}
		rows, err := store.InsertProfile(c.Request.Context(), profile)
		if err != nil {
			supa.RespondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, rows)
	}
}

// POST /api/profile/get-user-profile
func GetUserProfile(store supa.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UserIDInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
			return
		}

		// Single-row read: zero or multiple matches surface as an
		// upstream error, never as an empty success.
		profile, err := store.ProfileByID(c.Request.Context(), input.UserID)
		if err != nil {
			supa.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, profile)
	}
}

// GET /api/profile/get-total-users
func GetTotalUsers(store supa.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := store.CountProfiles(c.Request.Context())
		if err != nil {
			supa.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"count": count})
	}
}
