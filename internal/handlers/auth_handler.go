package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"starwars_api/internal/middlewares"
	"starwars_api/internal/responses"
	"starwars_api/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	session, ok := middlewares.CurrentSession(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	if err := h.authService.Logout(c.Request.Context(), session); err != nil {
		internalError(c, err, "Failed to revoke token")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{"access_token": ""}, "Logged out successfully")
}
