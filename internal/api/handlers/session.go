package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"pokedex/internal/api/services"
)

type SessionHandler struct {
	sessionService *services.SessionService
}

func NewSessionHandler(sessionService *services.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

type SessionResponse struct {
	Token     string    `json:"token"`
	TrainerID string    `json:"trainerId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// CreateSession godoc
// @Summary Create trainer session
// @Description Issues an anonymous trainer token that scopes the arena
// @Tags session
// @Produce json
// @Success 201 {object} SessionResponse
// @Router /api/sessions [post]
func (h *SessionHandler) CreateSession(c echo.Context) error {
	session, err := h.sessionService.Issue()
	if err != nil {
		return ErrInternalServerError(c)
	}

	return c.JSON(http.StatusCreated, SessionResponse{
		Token:     session.Token,
		TrainerID: session.TrainerID.String(),
		ExpiresAt: session.ExpiresAt,
	})
}
