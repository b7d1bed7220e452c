package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokedex/internal/api/services"
)

func TestSessionHandler_CreateSession(t *testing.T) {
	sessions := services.NewSessionService("test-secret")
	handler := NewSessionHandler(sessions)
	e := newEcho()

	rec := httptest.NewRecorder()
	c := e.NewContext(newRequest(http.MethodPost, "/api/sessions", ""), rec)
	require.NoError(t, handler.CreateSession(c))
	requireStatus(t, rec, http.StatusCreated)

	var resp SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	id, err := sessions.Parse(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.TrainerID, id.String())
}
