package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"starwars_api/internal/handlers"
)

// Handlers groups everything RegisterRoutes wires. AuthHandler is nil when no token
// store is configured, and the logout route is then not registered.
type Handlers struct {
	People   *handlers.PeopleHandler
	Planet   *handlers.PlanetHandler
	User     *handlers.UserHandler
	Favorite *handlers.FavoriteHandler
	Auth     *handlers.AuthHandler
}

func RegisterRoutes(router *gin.Engine, h Handlers, authenticate gin.HandlerFunc) {
	api := router.Group("/")

	NewPeopleRoutes(h.People).RegisterRoutes(api)
	NewPlanetRoutes(h.Planet).RegisterRoutes(api)
	NewUserRoutes(h.User, h.Favorite, authenticate).RegisterRoutes(api)
	NewFavoriteRoutes(h.Favorite, authenticate).RegisterRoutes(api)
	if h.Auth != nil {
		NewAuthRoutes(h.Auth, authenticate).RegisterRoutes(api)
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
