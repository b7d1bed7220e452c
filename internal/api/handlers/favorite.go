package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"pokedex/internal/api/dto"
	"pokedex/internal/api/services"
)

type FavoriteHandler struct {
	favoriteService *services.FavoriteService
}

func NewFavoriteHandler(favoriteService *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

type AddFavoriteRequest struct {
	ID       int    `json:"id" validate:"required,min=1" example:"25"`
	Name     string `json:"name" validate:"required,max=64" example:"pikachu"`
	ImageURL string `json:"imageUrl" validate:"omitempty,url"`
}

func handleFavoriteError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidID):
		return ErrBadRequest(c, "invalid pokemon id")
	case errors.Is(err, services.ErrInvalidInput):
		return ErrBadRequest(c, "invalid input")
	default:
		return ErrInternalServerError(c)
	}
}

func favoriteID(c echo.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ListFavorites godoc
// @Summary List favorites
// @Description Favorites, newest first
// @Tags favorites
// @Produce json
// @Success 200 {array} dto.Favorite
// @Router /api/favorites [get]
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	favorites := h.favoriteService.List(c.Request().Context())
	return c.JSON(http.StatusOK, dto.FavoritesFromDomain(favorites))
}

// GetFavorite godoc
// @Summary Favorite status
// @Tags favorites
// @Produce json
// @Param id path int true "Pokemon id"
// @Success 200 {object} dto.FavoriteStatus
// @Failure 400 {object} map[string]string
// @Router /api/favorites/{id} [get]
func (h *FavoriteHandler) GetFavorite(c echo.Context) error {
	id, ok := favoriteID(c)
	if !ok {
		return ErrBadRequest(c, "invalid pokemon id")
	}

	favorite, err := h.favoriteService.Contains(c.Request().Context(), id)
	if err != nil {
		return handleFavoriteError(c, err)
	}

	return c.JSON(http.StatusOK, dto.FavoriteStatus{ID: id, Favorite: favorite})
}

// AddFavorite godoc
// @Summary Add favorite
// @Description Inserts or replaces a favorite
// @Tags favorites
// @Accept json
// @Produce json
// @Param request body AddFavoriteRequest true "Favorite"
// @Success 200 {object} dto.FavoriteStatus
// @Failure 400 {object} map[string]string
// @Router /api/favorites [post]
func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	var req AddFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request")
	}

	if err := c.Validate(&req); err != nil {
		return ErrBadRequest(c, err.Error())
	}

	favorite, err := h.favoriteService.Add(c.Request().Context(), services.AddFavoriteInput{
		ID:       req.ID,
		Name:     req.Name,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return handleFavoriteError(c, err)
	}

	return c.JSON(http.StatusOK, dto.FavoriteStatus{ID: req.ID, Favorite: favorite})
}

// RemoveFavorite godoc
// @Summary Remove favorite
// @Tags favorites
// @Produce json
// @Param id path int true "Pokemon id"
// @Success 200 {object} dto.FavoriteStatus
// @Failure 400 {object} map[string]string
// @Router /api/favorites/{id} [delete]
func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	id, ok := favoriteID(c)
	if !ok {
		return ErrBadRequest(c, "invalid pokemon id")
	}

	favorite, err := h.favoriteService.Remove(c.Request().Context(), id)
	if err != nil {
		return handleFavoriteError(c, err)
	}

	return c.JSON(http.StatusOK, dto.FavoriteStatus{ID: id, Favorite: favorite})
}

// GetStats godoc
// @Summary Favorites statistics
// @Tags favorites
// @Produce json
// @Success 200 {object} dto.FavoriteStats
// @Router /api/favorites/stats [get]
func (h *FavoriteHandler) GetStats(c echo.Context) error {
	stats := h.favoriteService.Stats(c.Request().Context())
	return c.JSON(http.StatusOK, dto.FavoriteStatsFromDomain(stats))
}
