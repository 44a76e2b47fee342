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

type PeopleHandler struct {
	peopleService *services.PeopleService
}

func NewPeopleHandler(peopleService *services.PeopleService) *PeopleHandler {
	return &PeopleHandler{peopleService: peopleService}
}

// ListPeople handles GET /people
func (h *PeopleHandler) ListPeople(c *gin.Context) {
	people, err := h.peopleService.GetAllPeople(c.Request.Context())
	if err != nil {
		internalError(c, err, "Failed to retrieve people")
		return
	}

	responses.Success(c, http.StatusOK, models.SerializePeople(people), "People retrieved successfully")
}

// GetPeople handles GET /people/:people_id
func (h *PeopleHandler) GetPeople(c *gin.Context) {
	id, err := utils.ParseID(c.Param("people_id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid people ID")
		return
	}

	person, err := h.peopleService.GetPeople(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrPersonNotFound) {
			responses.Fail(c, http.StatusNotFound, err, "Person not found")
			return
		}
		internalError(c, err, "Failed to retrieve person")
		return
	}

	responses.Success(c, http.StatusOK, person.Serialize(), "Person retrieved successfully")
}

// CreatePeople handles POST /people
func (h *PeopleHandler) CreatePeople(c *gin.Context) {
	var req services.CreatePeopleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Missing required fields")
		return
	}

	person, err := h.peopleService.CreatePeople(c.Request.Context(), req)
	if err != nil {
		internalError(c, err, "Failed to create person")
		return
	}

	responses.Success(c, http.StatusCreated, person.Serialize(), "Person created successfully")
}
