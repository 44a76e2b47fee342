package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"starwars_api/internal/models"
	"starwars_api/internal/responses"
	"starwars_api/internal/services"
	"starwars_api/internal/utils"
)

type PlanetHandler struct {
	planetService *services.PlanetService
}

func NewPlanetHandler(planetService *services.PlanetService) *PlanetHandler {
	return &PlanetHandler{planetService: planetService}
}

// ListPlanets handles GET /planets
func (h *PlanetHandler) ListPlanets(c *gin.Context) {
	planets, err := h.planetService.GetAllPlanets(c.Request.Context())
	if err != nil {
		internalError(c, err, "Failed to retrieve planets")
		return
	}

	responses.Success(c, http.StatusOK, models.SerializePlanets(planets), "Planets retrieved successfully")
}

// GetPlanet handles GET /planets/:planet_id
func (h *PlanetHandler) GetPlanet(c *gin.Context) {
	id, err := utils.ParseID(c.Param("planet_id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid planet ID")
		return
	}

	planet, err := h.planetService.GetPlanet(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrPlanetNotFound) {
			responses.Fail(c, http.StatusNotFound, err, "Planet not found")
			return
		}
		internalError(c, err, "Failed to retrieve planet")
		return
	}

	responses.Success(c, http.StatusOK, planet.Serialize(), "Planet retrieved successfully")
}

// CreatePlanet handles POST /planets
func (h *PlanetHandler) CreatePlanet(c *gin.Context) {
	var req services.CreatePlanetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Missing required fields")
		return
	}

	planet, err := h.planetService.CreatePlanet(c.Request.Context(), req)
	if err != nil {
		internalError(c, err, "Failed to create planet")
		return
	}

	responses.Success(c, http.StatusCreated, planet.Serialize(), "Planet created successfully")
}
