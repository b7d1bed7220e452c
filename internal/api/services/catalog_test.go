package services

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pokedex/internal/clients/pokeapi"
	"pokedex/internal/domain"
)

func newTestCatalog(t *testing.T) (*CatalogService, *mockCatalogClient, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	client := &mockCatalogClient{}
	return NewCatalogService(client, rdb, zap.NewNop()), client, s
}

func TestCatalogService_ListPageDeduplicates(t *testing.T) {
	svc, client, _ := newTestCatalog(t)
	ctx := context.Background()

	client.On("ListPokemon", mock.Anything, 0, 20).Return(&domain.PokemonPage{
		Results: []domain.PokemonRef{
			{ID: 1, Name: "bulbasaur"},
			{ID: 2, Name: "ivysaur"},
			{ID: 1, Name: "bulbasaur"},
		},
		HasMore: true,
	}, nil).Once()

	page, err := svc.ListPage(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, page.Results, 2)
	assert.Equal(t, "bulbasaur", page.Results[0].Name)
	assert.Equal(t, "ivysaur", page.Results[1].Name)
	assert.True(t, page.HasMore)

	again, err := svc.ListPage(ctx, 0, 20)
	require.NoError(t, err)
	assert.Len(t, again.Results, 2)

	client.AssertNumberOfCalls(t, "ListPokemon", 1)
}

func TestCatalogService_ListPageStaleAfterFiveMinutes(t *testing.T) {
	svc, client, s := newTestCatalog(t)
	ctx := context.Background()

	client.On("ListPokemon", mock.Anything, 20, 20).Return(&domain.PokemonPage{
		Results: []domain.PokemonRef{{ID: 21, Name: "spearow"}},
	}, nil)

	_, err := svc.ListPage(ctx, 20, 20)
	require.NoError(t, err)

	s.FastForward(pageCacheTTL + 1)
	_, err = svc.ListPage(ctx, 20, 20)
	require.NoError(t, err)

	client.AssertNumberOfCalls(t, "ListPokemon", 2)
}

func TestCatalogService_ListPageInvalidOffset(t *testing.T) {
	svc, client, _ := newTestCatalog(t)

	_, err := svc.ListPage(context.Background(), -1, 20)
	assert.ErrorIs(t, err, pokeapi.ErrInvalidPaging)
	client.AssertNotCalled(t, "ListPokemon", mock.Anything, mock.Anything, mock.Anything)
}

func TestCatalogService_GetPokemonCachesByNameAndID(t *testing.T) {
	svc, client, _ := newTestCatalog(t)
	ctx := context.Background()

	client.On("GetPokemon", mock.Anything, "pikachu").
		Return(testPokemon(25, "pikachu", 35, 55, 40, 90, "electric"), nil).Once()

	p, err := svc.GetPokemon(ctx, "Pikachu")
	require.NoError(t, err)
	assert.Equal(t, 25, p.ID)

	byID, err := svc.GetPokemon(ctx, "25")
	require.NoError(t, err)
	assert.Equal(t, "pikachu", byID.Name)

	client.AssertExpectations(t)
}

func TestCatalogService_GetPokemonErrors(t *testing.T) {
	svc, client, _ := newTestCatalog(t)
	ctx := context.Background()

	client.On("GetPokemon", mock.Anything, "missingno").Return(nil, pokeapi.ErrNotFound)
	client.On("GetPokemon", mock.Anything, "pikachu").Return(nil, errors.New("dial tcp: timeout"))

	_, err := svc.GetPokemon(ctx, "missingno")
	assert.ErrorIs(t, err, pokeapi.ErrNotFound)

	_, err = svc.GetPokemon(ctx, "pikachu")
	assert.Error(t, err)

	_, err = svc.GetPokemon(ctx, "bad name!")
	assert.ErrorIs(t, err, pokeapi.ErrInvalidName)
}

func TestCatalogService_GetPokemonWithoutRedis(t *testing.T) {
	client := &mockCatalogClient{}
	svc := NewCatalogService(client, nil, zap.NewNop())

	client.On("GetPokemon", mock.Anything, "eevee").
		Return(testPokemon(133, "eevee", 55, 55, 50, 55, "normal"), nil).Twice()

	for i := 0; i < 2; i++ {
		p, err := svc.GetPokemon(context.Background(), "eevee")
		require.NoError(t, err)
		assert.Equal(t, 133, p.ID)
	}
	client.AssertExpectations(t)
}

func TestCatalogService_GetEvolution(t *testing.T) {
	svc, client, _ := newTestCatalog(t)
	ctx := context.Background()

	pikachu := testPokemon(25, "pikachu", 35, 55, 40, 90, "electric")
	pikachu.SpeciesURL = "https://pokeapi.co/api/v2/pokemon-species/25/"

	client.On("GetPokemon", mock.Anything, "pikachu").Return(pikachu, nil).Once()
	client.On("GetSpecies", mock.Anything, "25").Return(&domain.Species{
		ID:                25,
		Name:              "pikachu",
		EvolutionChainURL: "https://pokeapi.co/api/v2/evolution-chain/10/",
	}, nil).Once()
	client.On("GetEvolutionChain", mock.Anything, 10).Return(&domain.EvolutionChain{
		ID: 10,
		Chain: &domain.EvolutionNode{
			Species: "pichu",
			EvolvesTo: []*domain.EvolutionNode{{
				Species:   "pikachu",
				EvolvesTo: []*domain.EvolutionNode{{Species: "raichu"}},
			}},
		},
	}, nil).Once()

	stages, err := svc.GetEvolution(ctx, "pikachu")
	require.NoError(t, err)
	require.Len(t, stages, 3)
	assert.Equal(t, "pichu", stages[0].Species)
	assert.Equal(t, 0, stages[0].Depth)
	assert.Equal(t, "raichu", stages[2].Species)
	assert.Equal(t, 2, stages[2].Depth)

	cached, err := svc.GetEvolution(ctx, "pikachu")
	require.NoError(t, err)
	assert.Equal(t, stages, cached)

	client.AssertExpectations(t)
}

func TestCatalogService_GetEvolutionWithoutChain(t *testing.T) {
	svc, client, _ := newTestCatalog(t)
	ctx := context.Background()

	client.On("GetPokemon", mock.Anything, "ditto").Return(testPokemon(132, "ditto", 48, 48, 48, 48, "normal"), nil)
	client.On("GetSpecies", mock.Anything, "ditto").Return(&domain.Species{ID: 132, Name: "ditto"}, nil)

	stages, err := svc.GetEvolution(ctx, "ditto")
	require.NoError(t, err)
	assert.Empty(t, stages)
}

func TestCatalogService_CorruptCacheFallsThrough(t *testing.T) {
	svc, client, s := newTestCatalog(t)

	require.NoError(t, s.Set("pokemon:mew", "not json"))
	client.On("GetPokemon", mock.Anything, "mew").Return(testPokemon(151, "mew", 100, 100, 100, 100, "psychic"), nil).Once()

	p, err := svc.GetPokemon(context.Background(), "mew")
	require.NoError(t, err)
	assert.Equal(t, 151, p.ID)
}
