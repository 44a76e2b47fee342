package routes

import (
	"github.com/gin-gonic/gin"

	"starwars_api/internal/handlers"
)

type PlanetRoutes struct {
	handler *handlers.PlanetHandler
}

func NewPlanetRoutes(handler *handlers.PlanetHandler) *PlanetRoutes {
	return &PlanetRoutes{handler: handler}
}

func (r *PlanetRoutes) RegisterRoutes(router *gin.RouterGroup) {
	planets := router.Group("/planets")
	{
		planets.GET("", r.handler.ListPlanets)
		planets.GET("/:planet_id", r.handler.GetPlanet)
		planets.POST("", r.handler.CreatePlanet)
	}
}
