package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pokedex/internal/api/dto"
	"pokedex/internal/api/services"
)

func setupCatalogHandler(client *stubClient) *CatalogHandler {
	return NewCatalogHandler(services.NewCatalogService(client, nil, zap.NewNop()))
}

func TestCatalogHandler_ListPokemon(t *testing.T) {
	handler := setupCatalogHandler(defaultStubClient())
	e := newEcho()

	rec := httptest.NewRecorder()
	c := e.NewContext(newRequest(http.MethodGet, "/api/pokemon?offset=1&limit=2", ""), rec)

	require.NoError(t, handler.ListPokemon(c))
	requireStatus(t, rec, http.StatusOK)

	var page dto.PokemonPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Len(t, page.Results, 2)
	assert.Equal(t, "Pikachu", page.Results[0].DisplayName)
	assert.True(t, page.HasMore)
}

func TestCatalogHandler_ListPokemonBadPaging(t *testing.T) {
	handler := setupCatalogHandler(defaultStubClient())
	e := newEcho()

	for _, target := range []string{"/api/pokemon?offset=-1", "/api/pokemon?limit=abc"} {
		rec := httptest.NewRecorder()
		c := e.NewContext(newRequest(http.MethodGet, target, ""), rec)
		require.NoError(t, handler.ListPokemon(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestCatalogHandler_GetPokemon(t *testing.T) {
	handler := setupCatalogHandler(defaultStubClient())
	e := newEcho()

	tests := []struct {
		name   string
		param  string
		status int
		errMsg string
	}{
		{"by name", "pikachu", http.StatusOK, ""},
		{"by id", "25", http.StatusOK, ""},
		{"unknown", "missingno", http.StatusNotFound, "pokemon not found"},
		{"invalid", "bad name!", http.StatusBadRequest, "invalid pokemon name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(newRequest(http.MethodGet, "/", ""), rec)
			c.SetParamNames("name")
			c.SetParamValues(tt.param)

			require.NoError(t, handler.GetPokemon(c))
			requireStatus(t, rec, tt.status)

			if tt.errMsg != "" {
				var body map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.errMsg, body["error"])
				return
			}

			var detail dto.PokemonDetail
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
			assert.Equal(t, 25, detail.ID)
			assert.Equal(t, "0.7", detail.Height)
			assert.Equal(t, "6.9", detail.Weight)
			assert.Contains(t, detail.Abilities[1], "(Hidden)")
		})
	}
}

func TestCatalogHandler_UpstreamFailure(t *testing.T) {
	client := defaultStubClient()
	client.down = true
	handler := setupCatalogHandler(client)
	e := newEcho()

	rec := httptest.NewRecorder()
	c := e.NewContext(newRequest(http.MethodGet, "/", ""), rec)
	c.SetParamNames("name")
	c.SetParamValues("pikachu")

	require.NoError(t, handler.GetPokemon(c))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestCatalogHandler_GetEvolution(t *testing.T) {
	handler := setupCatalogHandler(defaultStubClient())
	e := newEcho()

	rec := httptest.NewRecorder()
	c := e.NewContext(newRequest(http.MethodGet, "/", ""), rec)
	c.SetParamNames("name")
	c.SetParamValues("bulbasaur")

	require.NoError(t, handler.GetEvolution(c))
	requireStatus(t, rec, http.StatusOK)

	var stages []dto.EvolutionStage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stages))
	require.Len(t, stages, 2)
	assert.Equal(t, "Bulbasaur", stages[0].DisplayName)
	assert.Equal(t, 1, stages[1].Depth)
	assert.Equal(t, 16, stages[1].MinLevel)
}
