package routes

import (
	"github.com/gin-gonic/gin"

	"starwars_api/internal/handlers"
)

type FavoriteRoutes struct {
	handler      *handlers.FavoriteHandler
	authenticate gin.HandlerFunc
}

func NewFavoriteRoutes(handler *handlers.FavoriteHandler, authenticate gin.HandlerFunc) *FavoriteRoutes {
	return &FavoriteRoutes{handler: handler, authenticate: authenticate}
}

func (r *FavoriteRoutes) RegisterRoutes(router *gin.RouterGroup) {
	favorite := router.Group("/favorite")
	favorite.Use(r.authenticate) // Favorites always belong to the authenticated caller
	{
		favorite.POST("/planet/:planet_id", r.handler.AddFavoritePlanet)
		favorite.DELETE("/planet/:planet_id", r.handler.DeleteFavoritePlanet)

		favorite.POST("/people/:people_id", r.handler.AddFavoritePeople)
		favorite.DELETE("/people/:people_id", r.handler.DeleteFavoritePeople)
	}
}
