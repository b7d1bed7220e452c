package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"pokedex/internal/api/dto"
	"pokedex/internal/api/middleware"
	"pokedex/internal/api/services"
	"pokedex/internal/clients/pokeapi"
	"pokedex/internal/domain"
)

type ArenaHandler struct {
	battleService *services.BattleService
}

func NewArenaHandler(battleService *services.BattleService) *ArenaHandler {
	return &ArenaHandler{battleService: battleService}
}

type StartBattleRequest struct {
	Player     string `json:"player" validate:"required,max=64" example:"pikachu"`
	OpponentID int    `json:"opponentId" validate:"omitempty,min=1" example:"133"`
}

type SelectOpponentRequest struct {
	OpponentID int `json:"opponentId" validate:"required,min=1" example:"133"`
}

func handleBattleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrActionInProgress):
		return ErrConflict(c, "action in progress")
	case errors.Is(err, domain.ErrNotPlayerTurn):
		return ErrConflict(c, "not your turn")
	case errors.Is(err, domain.ErrBattleEnded):
		return ErrConflict(c, "battle has ended")
	case errors.Is(err, domain.ErrBattleNotInProgress):
		return ErrConflict(c, "no battle in progress")
	case errors.Is(err, services.ErrBattleInProgress):
		return ErrConflict(c, "battle already in progress")
	case errors.Is(err, services.ErrInvalidOpponent):
		return ErrBadRequest(c, "invalid opponent id")
	case errors.Is(err, pokeapi.ErrNotFound),
		errors.Is(err, pokeapi.ErrInvalidName),
		errors.Is(err, pokeapi.ErrUpstream):
		return handleCatalogError(c, err)
	default:
		return ErrInternalServerError(c)
	}
}

// GetArena godoc
// @Summary Current arena
// @Description Score, wins and the current battle of the trainer
// @Tags arena
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.Arena
// @Failure 401 {object} map[string]string
// @Router /api/arena [get]
func (h *ArenaHandler) GetArena(c echo.Context) error {
	trainerID, err := middleware.GetTrainerIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	arena, err := h.battleService.Get(c.Request().Context(), trainerID)
	if err != nil {
		return handleBattleError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ArenaFromDomain(arena))
}

// StartBattle godoc
// @Summary Start battle
// @Description Fetches both creatures and starts a battle; the faster side moves first
// @Tags arena
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body StartBattleRequest true "Battle"
// @Success 200 {object} dto.Arena
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/arena/start [post]
func (h *ArenaHandler) StartBattle(c echo.Context) error {
	trainerID, err := middleware.GetTrainerIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	var req StartBattleRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request")
	}

	if err := c.Validate(&req); err != nil {
		return ErrBadRequest(c, err.Error())
	}

	arena, err := h.battleService.Start(c.Request().Context(), trainerID, services.StartBattleInput{
		Player:     req.Player,
		OpponentID: req.OpponentID,
	})
	if err != nil {
		return handleBattleError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ArenaFromDomain(arena))
}

// Attack godoc
// @Summary Attack
// @Description Player hit; the opponent replies automatically after the feedback delay
// @Tags arena
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.Arena
// @Failure 409 {object} map[string]string
// @Router /api/arena/attack [post]
func (h *ArenaHandler) Attack(c echo.Context) error {
	trainerID, err := middleware.GetTrainerIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	arena, err := h.battleService.Attack(c.Request().Context(), trainerID)
	if err != nil {
		return handleBattleError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ArenaFromDomain(arena))
}

// SelectOpponent godoc
// @Summary Select opponent
// @Tags arena
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body SelectOpponentRequest true "Opponent"
// @Success 200 {object} dto.Arena
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/arena/opponent [post]
func (h *ArenaHandler) SelectOpponent(c echo.Context) error {
	trainerID, err := middleware.GetTrainerIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	var req SelectOpponentRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request")
	}

	if err := c.Validate(&req); err != nil {
		return ErrBadRequest(c, err.Error())
	}

	arena, err := h.battleService.SelectOpponent(c.Request().Context(), trainerID, req.OpponentID)
	if err != nil {
		return handleBattleError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ArenaFromDomain(arena))
}

// Reset godoc
// @Summary Reset battle
// @Description Abandons the current battle and rolls a random opponent
// @Tags arena
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.Arena
// @Router /api/arena/reset [post]
func (h *ArenaHandler) Reset(c echo.Context) error {
	trainerID, err := middleware.GetTrainerIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	arena, err := h.battleService.Reset(c.Request().Context(), trainerID)
	if err != nil {
		return handleBattleError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ArenaFromDomain(arena))
}

// ListOpponents godoc
// @Summary Opponent list
// @Tags arena
// @Produce json
// @Security Bearer
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} dto.PokemonPage
// @Router /api/arena/opponents [get]
func (h *ArenaHandler) ListOpponents(c echo.Context) error {
	offset, limit, ok := pagingParams(c)
	if !ok {
		return ErrBadRequest(c, "invalid paging parameters")
	}

	page, err := h.battleService.Opponents(c.Request().Context(), offset, limit)
	if err != nil {
		return handleCatalogError(c, err)
	}

	return c.JSON(http.StatusOK, dto.PokemonPageFromDomain(page))
}
