package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pokedex/internal/api/dto"
	"pokedex/internal/api/services"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListPokemon godoc
// @Summary List pokemon
// @Description One page of the catalog, duplicates removed
// @Tags pokemon
// @Produce json
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} dto.PokemonPage
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/pokemon [get]
func (h *CatalogHandler) ListPokemon(c echo.Context) error {
	offset, limit, ok := pagingParams(c)
	if !ok {
		return ErrBadRequest(c, "invalid paging parameters")
	}

	page, err := h.catalogService.ListPage(c.Request().Context(), offset, limit)
	if err != nil {
		return handleCatalogError(c, err)
	}

	return c.JSON(http.StatusOK, dto.PokemonPageFromDomain(page))
}

// GetPokemon godoc
// @Summary Get pokemon
// @Description Creature detail by name or id
// @Tags pokemon
// @Produce json
// @Param name path string true "Name or id"
// @Success 200 {object} dto.PokemonDetail
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/pokemon/{name} [get]
func (h *CatalogHandler) GetPokemon(c echo.Context) error {
	p, err := h.catalogService.GetPokemon(c.Request().Context(), c.Param("name"))
	if err != nil {
		return handleCatalogError(c, err)
	}

	return c.JSON(http.StatusOK, dto.PokemonDetailFromDomain(p))
}

// GetEvolution godoc
// @Summary Get evolution chain
// @Description Evolution stages, base form first
// @Tags pokemon
// @Produce json
// @Param name path string true "Name or id"
// @Success 200 {array} dto.EvolutionStage
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/pokemon/{name}/evolution [get]
func (h *CatalogHandler) GetEvolution(c echo.Context) error {
	stages, err := h.catalogService.GetEvolution(c.Request().Context(), c.Param("name"))
	if err != nil {
		return handleCatalogError(c, err)
	}

	return c.JSON(http.StatusOK, dto.EvolutionStagesFromDomain(stages))
}
