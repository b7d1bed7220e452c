package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pokedex/internal/api/middleware"
	"pokedex/internal/api/services"
	"pokedex/internal/clients/pokeapi"
	"pokedex/internal/config"
	"pokedex/internal/domain"
)

type testValidator struct {
	validate *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validate: validator.New()}
	return e
}

// stubClient is an in-memory catalog API.
type stubClient struct {
	pokemon map[string]*domain.Pokemon
	refs    []domain.PokemonRef
	down    bool
}

func newStubClient(list ...*domain.Pokemon) *stubClient {
	c := &stubClient{pokemon: make(map[string]*domain.Pokemon)}
	for _, p := range list {
		c.pokemon[p.Name] = p
		c.pokemon[strconv.Itoa(p.ID)] = p
		c.refs = append(c.refs, domain.PokemonRef{ID: p.ID, Name: p.Name})
	}
	return c
}

func (c *stubClient) ListPokemon(ctx context.Context, offset, limit int) (*domain.PokemonPage, error) {
	if c.down {
		return nil, pokeapi.ErrUpstream
	}
	end := min(offset+limit, len(c.refs))
	start := min(offset, end)
	return &domain.PokemonPage{
		Results: append([]domain.PokemonRef{}, c.refs[start:end]...),
		HasMore: end < len(c.refs),
		Offset:  offset,
		Limit:   limit,
		Total:   len(c.refs),
	}, nil
}

func (c *stubClient) GetPokemon(ctx context.Context, nameOrID string) (*domain.Pokemon, error) {
	if c.down {
		return nil, errors.Join(pokeapi.ErrUpstream, errors.New("connection refused"))
	}
	p, ok := c.pokemon[nameOrID]
	if !ok {
		return nil, pokeapi.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (c *stubClient) GetSpecies(ctx context.Context, nameOrID string) (*domain.Species, error) {
	p, ok := c.pokemon[nameOrID]
	if !ok {
		return nil, pokeapi.ErrNotFound
	}
	return &domain.Species{ID: p.ID, Name: p.Name, EvolutionChainURL: "https://pokeapi.co/api/v2/evolution-chain/1/"}, nil
}

func (c *stubClient) GetEvolutionChain(ctx context.Context, id int) (*domain.EvolutionChain, error) {
	return &domain.EvolutionChain{
		ID: id,
		Chain: &domain.EvolutionNode{
			Species:   "bulbasaur",
			SpeciesID: 1,
			EvolvesTo: []*domain.EvolutionNode{{Species: "ivysaur", SpeciesID: 2, MinLevel: 16, Trigger: "level-up"}},
		},
	}, nil
}

func pokemonWithStats(id int, name string, hp, attack, defense, speed int, types ...string) *domain.Pokemon {
	return &domain.Pokemon{
		ID:     id,
		Name:   name,
		Height: 7,
		Weight: 69,
		Stats: []domain.Stat{
			{Name: domain.StatHp, Base: hp},
			{Name: domain.StatAttack, Base: attack},
			{Name: domain.StatDefense, Base: defense},
			{Name: domain.StatSpeed, Base: speed},
		},
		Types:     types,
		Abilities: []domain.Ability{{Name: "overgrow"}, {Name: "chlorophyll", Hidden: true}},
	}
}

func defaultStubClient() *stubClient {
	return newStubClient(
		pokemonWithStats(1, "bulbasaur", 45, 49, 49, 45, "grass", "poison"),
		pokemonWithStats(25, "pikachu", 35, 55, 40, 90, "electric"),
		pokemonWithStats(129, "magikarp", 20, 10, 10, 80, "water"),
		pokemonWithStats(133, "eevee", 55, 55, 50, 55, "normal"),
	)
}

type noopScheduler struct{}

func (noopScheduler) Schedule(uuid.UUID, time.Duration, func(ctx context.Context)) {}
func (noopScheduler) Cancel(uuid.UUID)                                               {}
func (noopScheduler) Pending(uuid.UUID) bool                                         { return false }

func newBattleService(t *testing.T, catalog services.Catalog) *services.BattleService {
	t.Helper()
	s := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cfg := config.BattleConfig{MaxOpponentID: 898, OpponentDelay: time.Second, ArenaTTL: time.Hour}
	return services.NewBattleService(catalog, rdb, noopScheduler{}, nil, cfg, zap.NewNop())
}

func newRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	return req
}

func withTrainer(req *http.Request, trainerID uuid.UUID) *http.Request {
	return req.WithContext(middleware.ContextWithTrainerID(req.Context(), trainerID))
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, status int) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
}
