package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pokedex/internal/api/dto"
	"pokedex/internal/api/services"
)

func setupArenaHandler(t *testing.T) *ArenaHandler {
	t.Helper()
	catalog := services.NewCatalogService(defaultStubClient(), nil, zap.NewNop())
	return NewArenaHandler(newBattleService(t, catalog))
}

func decodeArena(t *testing.T, rec *httptest.ResponseRecorder) dto.Arena {
	t.Helper()
	var arena dto.Arena
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &arena))
	return arena
}

func TestArenaHandler_RequiresTrainer(t *testing.T) {
	handler := setupArenaHandler(t)
	e := newEcho()

	rec := httptest.NewRecorder()
	c := e.NewContext(newRequest(http.MethodGet, "/api/arena", ""), rec)
	require.NoError(t, handler.GetArena(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestArenaHandler_BattleFlow(t *testing.T) {
	handler := setupArenaHandler(t)
	e := newEcho()
	trainer := uuid.New()

	rec := httptest.NewRecorder()
	c := e.NewContext(withTrainer(newRequest(http.MethodPost, "/api/arena/start", `{"player": "pikachu", "opponentId": 129}`), trainer), rec)
	require.NoError(t, handler.StartBattle(c))
	requireStatus(t, rec, http.StatusOK)

	arena := decodeArena(t, rec)
	require.NotNil(t, arena.Battle)
	assert.Equal(t, "IN_PROGRESS", arena.Battle.Status)
	assert.Equal(t, "PLAYER", arena.Battle.Turn)
	assert.Equal(t, "Magikarp", arena.Battle.Opponent.DisplayName)

	rec = httptest.NewRecorder()
	c = e.NewContext(withTrainer(newRequest(http.MethodPost, "/api/arena/attack", ""), trainer), rec)
	require.NoError(t, handler.Attack(c))
	requireStatus(t, rec, http.StatusOK)

	arena = decodeArena(t, rec)
	assert.Equal(t, "ENDED", arena.Battle.Status)
	assert.Equal(t, "VICTORY", arena.Battle.Outcome)
	assert.Equal(t, 100, arena.Score)
	assert.Equal(t, 1, arena.Wins)

	rec = httptest.NewRecorder()
	c = e.NewContext(withTrainer(newRequest(http.MethodPost, "/api/arena/attack", ""), trainer), rec)
	require.NoError(t, handler.Attack(c))
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = httptest.NewRecorder()
	c = e.NewContext(withTrainer(newRequest(http.MethodPost, "/api/arena/reset", ""), trainer), rec)
	require.NoError(t, handler.Reset(c))
	requireStatus(t, rec, http.StatusOK)

	arena = decodeArena(t, rec)
	assert.Equal(t, "SELECTING_OPPONENT", arena.Battle.Status)
	assert.Equal(t, 100, arena.Score)
}

func TestArenaHandler_StartErrors(t *testing.T) {
	handler := setupArenaHandler(t)
	e := newEcho()
	trainer := uuid.New()

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"missing player", `{}`, http.StatusBadRequest},
		{"unknown player", `{"player": "missingno", "opponentId": 133}`, http.StatusNotFound},
		{"unknown opponent", `{"player": "pikachu", "opponentId": 500}`, http.StatusNotFound},
		{"negative opponent", `{"player": "pikachu", "opponentId": -5}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(withTrainer(newRequest(http.MethodPost, "/api/arena/start", tt.body), trainer), rec)
			require.NoError(t, handler.StartBattle(c))
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}
}

func TestArenaHandler_SelectOpponent(t *testing.T) {
	handler := setupArenaHandler(t)
	e := newEcho()
	trainer := uuid.New()

	rec := httptest.NewRecorder()
	c := e.NewContext(withTrainer(newRequest(http.MethodPost, "/api/arena/opponent", `{"opponentId": 133}`), trainer), rec)
	require.NoError(t, handler.SelectOpponent(c))
	requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, 133, decodeArena(t, rec).Battle.OpponentID)

	rec = httptest.NewRecorder()
	c = e.NewContext(withTrainer(newRequest(http.MethodPost, "/api/arena/opponent", `{"opponentId": 9999}`), trainer), rec)
	require.NoError(t, handler.SelectOpponent(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestArenaHandler_ListOpponents(t *testing.T) {
	handler := setupArenaHandler(t)
	e := newEcho()

	rec := httptest.NewRecorder()
	c := e.NewContext(withTrainer(newRequest(http.MethodGet, "/api/arena/opponents?limit=3", ""), uuid.New()), rec)
	require.NoError(t, handler.ListOpponents(c))
	requireStatus(t, rec, http.StatusOK)

	var page dto.PokemonPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Len(t, page.Results, 3)
	assert.True(t, page.HasMore)
}
