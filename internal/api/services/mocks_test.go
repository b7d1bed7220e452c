package services

import (
	"context"
	"strconv"

	"github.com/stretchr/testify/mock"

	"pokedex/internal/clients/pokeapi"
	"pokedex/internal/domain"
)

type mockCatalogClient struct {
	mock.Mock
}

func (m *mockCatalogClient) ListPokemon(ctx context.Context, offset, limit int) (*domain.PokemonPage, error) {
	args := m.Called(ctx, offset, limit)
	if page, ok := args.Get(0).(*domain.PokemonPage); ok {
		return page, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogClient) GetPokemon(ctx context.Context, nameOrID string) (*domain.Pokemon, error) {
	args := m.Called(ctx, nameOrID)
	if p, ok := args.Get(0).(*domain.Pokemon); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogClient) GetSpecies(ctx context.Context, nameOrID string) (*domain.Species, error) {
	args := m.Called(ctx, nameOrID)
	if s, ok := args.Get(0).(*domain.Species); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogClient) GetEvolutionChain(ctx context.Context, id int) (*domain.EvolutionChain, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*domain.EvolutionChain); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

// fakeCatalog serves creature records from memory.
type fakeCatalog struct {
	pokemon map[string]*domain.Pokemon
	page    *domain.PokemonPage
	err     error
}

func newFakeCatalog(list ...*domain.Pokemon) *fakeCatalog {
	f := &fakeCatalog{pokemon: make(map[string]*domain.Pokemon)}
	for _, p := range list {
		f.add(p)
	}
	return f
}

func (f *fakeCatalog) add(p *domain.Pokemon) {
	f.pokemon[p.Name] = p
	f.pokemon[strconv.Itoa(p.ID)] = p
}

func (f *fakeCatalog) ListPage(ctx context.Context, offset, limit int) (*domain.PokemonPage, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.page == nil {
		return &domain.PokemonPage{Results: []domain.PokemonRef{}, Offset: offset, Limit: limit}, nil
	}
	return f.page, nil
}

func (f *fakeCatalog) GetPokemon(ctx context.Context, nameOrID string) (*domain.Pokemon, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.pokemon[nameOrID]
	if !ok {
		return nil, pokeapi.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func testPokemon(id int, name string, hp, attack, defense, speed int, types ...string) *domain.Pokemon {
	return &domain.Pokemon{
		ID:   id,
		Name: name,
		Stats: []domain.Stat{
			{Name: domain.StatHp, Base: hp},
			{Name: domain.StatAttack, Base: attack},
			{Name: domain.StatDefense, Base: defense},
			{Name: domain.StatSpeed, Base: speed},
		},
		Types: types,
	}
}
