package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"starwars_api/internal/config"
	"starwars_api/internal/handlers"
	"starwars_api/internal/middlewares"
	"starwars_api/internal/repositories"
	"starwars_api/internal/routes"
	"starwars_api/internal/services"
)

// Deps are the long-lived handles the router is built from. Tokens may be nil.
type Deps struct {
	Config *config.Config
	DB     *gorm.DB
	Logger zerolog.Logger
	Tokens services.TokenStore
}

// NewRouter wires repositories, services and handlers onto a gin engine.
func NewRouter(deps Deps) *gin.Engine {
	cfg := deps.Config

	router := gin.New()
	router.Use(
		middlewares.RequestID(),
		middlewares.Logger(deps.Logger),
		middlewares.Recovery(deps.Logger),
		cors.New(corsConfig(cfg.CORSAllowedOrigins)),
	)

	// Dependency injection
	userRepo := repositories.NewUserRepository(deps.DB)
	peopleRepo := repositories.NewPeopleRepository(deps.DB)
	planetRepo := repositories.NewPlanetRepository(deps.DB)
	favoriteRepo := repositories.NewFavoriteRepository(deps.DB)

	peopleService := services.NewPeopleService(peopleRepo)
	planetService := services.NewPlanetService(planetRepo)
	userService := services.NewUserService(userRepo)
	favoriteService := services.NewFavoriteService(favoriteRepo, userRepo, planetRepo, peopleRepo)

	h := routes.Handlers{
		People:   handlers.NewPeopleHandler(peopleService),
		Planet:   handlers.NewPlanetHandler(planetService),
		User:     handlers.NewUserHandler(userService),
		Favorite: handlers.NewFavoriteHandler(favoriteService),
	}

	var blacklist middlewares.TokenBlacklist
	if deps.Tokens != nil {
		blacklist = deps.Tokens
		h.Auth = handlers.NewAuthHandler(services.NewAuthService(deps.Tokens))
	}
	authenticate := middlewares.Authenticate([]byte(cfg.AccessTokenSecret), blacklist)

	routes.RegisterRoutes(router, h, authenticate)

	return router
}

// NewServer creates the HTTP server for router.
func NewServer(cfg *config.Config, router http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		IdleTimeout:       time.Minute,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
	}
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowHeaders = append(c.AllowHeaders, "Authorization", middlewares.RequestIDHeader)
	c.ExposeHeaders = []string{middlewares.RequestIDHeader}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}
