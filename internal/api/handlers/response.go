package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"pokedex/internal/clients/pokeapi"
)

func ErrUnauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
}

func ErrNotFound(c echo.Context, message string) error {
	if message == "" {
		message = "not found"
	}
	return c.JSON(http.StatusNotFound, map[string]string{"error": message})
}

func ErrBadRequest(c echo.Context, message string) error {
	if message == "" {
		message = "invalid request"
	}
	return c.JSON(http.StatusBadRequest, map[string]string{"error": message})
}

func ErrInternalServerError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}

func ErrConflict(c echo.Context, message string) error {
	if message == "" {
		message = "conflict"
	}
	return c.JSON(http.StatusConflict, map[string]string{"error": message})
}

func ErrBadGateway(c echo.Context, message string) error {
	if message == "" {
		message = "upstream unavailable"
	}
	return c.JSON(http.StatusBadGateway, map[string]string{"error": message})
}

// handleCatalogError maps catalog failures to the loading error states the
// screens render.
func handleCatalogError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, pokeapi.ErrNotFound):
		return ErrNotFound(c, "pokemon not found")
	case errors.Is(err, pokeapi.ErrInvalidName):
		return ErrBadRequest(c, "invalid pokemon name")
	case errors.Is(err, pokeapi.ErrInvalidPaging):
		return ErrBadRequest(c, "invalid paging parameters")
	default:
		return ErrBadGateway(c, "failed to load pokemon, please try again")
	}
}

// queryInt reads an optional non-negative integer query parameter.
func queryInt(c echo.Context, name string, fallback int) (int, bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

func pagingParams(c echo.Context) (offset, limit int, ok bool) {
	offset, ok = queryInt(c, "offset", 0)
	if !ok {
		return 0, 0, false
	}
	limit, ok = queryInt(c, "limit", pokeapi.DefaultLimit)
	return offset, limit, ok
}
