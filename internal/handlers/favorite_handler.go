package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"starwars_api/internal/middlewares"
	"starwars_api/internal/models"
	"starwars_api/internal/responses"
	"starwars_api/internal/services"
	"starwars_api/internal/utils"
)

type FavoriteHandler struct {
	favoriteService *services.FavoriteService
}

func NewFavoriteHandler(favoriteService *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// ListFavorites handles GET /users/favorites
func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	favorites, err := h.favoriteService.GetUserFavorites(c.Request.Context(), userID)
	if err != nil {
		internalError(c, err, "Failed to retrieve favorites")
		return
	}

	responses.Success(c, http.StatusOK, models.SerializeFavorites(favorites), "Favorites retrieved successfully")
}

// AddFavoritePlanet handles POST /favorite/planet/:planet_id
func (h *FavoriteHandler) AddFavoritePlanet(c *gin.Context) {
	h.addFavorite(c, models.TargetPlanet, "planet_id")
}

// DeleteFavoritePlanet handles DELETE /favorite/planet/:planet_id
func (h *FavoriteHandler) DeleteFavoritePlanet(c *gin.Context) {
	h.deleteFavorite(c, models.TargetPlanet, "planet_id")
}

// AddFavoritePeople handles POST /favorite/people/:people_id
func (h *FavoriteHandler) AddFavoritePeople(c *gin.Context) {
	h.addFavorite(c, models.TargetPeople, "people_id")
}

// DeleteFavoritePeople handles DELETE /favorite/people/:people_id
func (h *FavoriteHandler) DeleteFavoritePeople(c *gin.Context) {
	h.deleteFavorite(c, models.TargetPeople, "people_id")
}

func (h *FavoriteHandler) addFavorite(c *gin.Context, kind models.TargetKind, param string) {
	userID, target, ok := favoriteRequest(c, kind, param)
	if !ok {
		return
	}

	fav, err := h.favoriteService.AddFavorite(c.Request.Context(), userID, target)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPlanetNotFound):
			responses.Fail(c, http.StatusNotFound, err, "Planet not found")
		case errors.Is(err, services.ErrPersonNotFound):
			responses.Fail(c, http.StatusNotFound, err, "Person not found")
		case errors.Is(err, services.ErrUserNotFound):
			responses.Fail(c, http.StatusNotFound, err, "User not found")
		case errors.Is(err, services.ErrFavoriteExists):
			responses.Fail(c, http.StatusConflict, err, "Favorite already exists")
		default:
			internalError(c, err, "Failed to add favorite")
		}
		return
	}

	responses.Success(c, http.StatusCreated, fav.Serialize(), "Favorite added successfully")
}

func (h *FavoriteHandler) deleteFavorite(c *gin.Context, kind models.TargetKind, param string) {
	userID, target, ok := favoriteRequest(c, kind, param)
	if !ok {
		return
	}

	if err := h.favoriteService.RemoveFavorite(c.Request.Context(), userID, target); err != nil {
		if errors.Is(err, services.ErrFavoriteNotFound) {
			responses.Fail(c, http.StatusNotFound, err, "Favorite not found")
			return
		}
		internalError(c, err, "Failed to delete favorite")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{"done": true}, "Favorite deleted successfully")
}

// favoriteRequest resolves the caller and the path target, writing the failure
// response itself when either is missing.
func favoriteRequest(c *gin.Context, kind models.TargetKind, param string) (uint, models.FavoriteTarget, bool) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return 0, models.FavoriteTarget{}, false
	}

	id, err := utils.ParseID(c.Param(param))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid "+string(kind)+" ID")
		return 0, models.FavoriteTarget{}, false
	}

	return userID, models.FavoriteTarget{Kind: kind, ID: id}, true
}
