package routes

import (
	"github.com/gin-gonic/gin"

	"starwars_api/internal/handlers"
)

type UserRoutes struct {
	userHandler     *handlers.UserHandler
	favoriteHandler *handlers.FavoriteHandler
	authenticate    gin.HandlerFunc
}

func NewUserRoutes(userHandler *handlers.UserHandler, favoriteHandler *handlers.FavoriteHandler, authenticate gin.HandlerFunc) *UserRoutes {
	return &UserRoutes{
		userHandler:     userHandler,
		favoriteHandler: favoriteHandler,
		authenticate:    authenticate,
	}
}

func (r *UserRoutes) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("", r.userHandler.ListUsers)

		// The caller's own favorites
		users.GET("/favorites", r.authenticate, r.favoriteHandler.ListFavorites)
	}
}
