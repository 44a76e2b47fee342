package routes

import (
	"github.com/gin-gonic/gin"

	"starwars_api/internal/handlers"
)

type PeopleRoutes struct {
	handler *handlers.PeopleHandler
}

func NewPeopleRoutes(handler *handlers.PeopleHandler) *PeopleRoutes {
	return &PeopleRoutes{handler: handler}
}

func (r *PeopleRoutes) RegisterRoutes(router *gin.RouterGroup) {
	people := router.Group("/people")
	{
		people.GET("", r.handler.ListPeople)
		people.GET("/:people_id", r.handler.GetPeople)
		people.POST("", r.handler.CreatePeople)
	}
}
