package routes

import (
	"github.com/gin-gonic/gin"

	"starwars_api/internal/handlers"
)

type AuthRoutes struct {
	handler      *handlers.AuthHandler
	authenticate gin.HandlerFunc
}

func NewAuthRoutes(handler *handlers.AuthHandler, authenticate gin.HandlerFunc) *AuthRoutes {
	return &AuthRoutes{handler: handler, authenticate: authenticate}
}

func (r *AuthRoutes) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	auth.Use(r.authenticate)
	{
		auth.POST("/logout", r.handler.Logout)
	}
}
