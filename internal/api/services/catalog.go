package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"pokedex/internal/clients/pokeapi"
	"pokedex/internal/domain"
	"pokedex/internal/logging"
	"pokedex/internal/metrics"
	r "pokedex/internal/redis"
)

const (
	pageCacheTTL    = 5 * time.Minute
	pokemonCacheTTL = 10 * time.Minute
	speciesCacheTTL = time.Hour
	chainCacheTTL   = time.Hour
)

// Catalog is the read side of the creature catalog used by the other
// services.
type Catalog interface {
	ListPage(ctx context.Context, offset, limit int) (*domain.PokemonPage, error)
	GetPokemon(ctx context.Context, nameOrID string) (*domain.Pokemon, error)
}

type CatalogService struct {
	client  pokeapi.Client
	pages   r.Cache[domain.PokemonPage]
	pokemon r.Cache[domain.Pokemon]
	species r.Cache[domain.Species]
	chains  r.Cache[domain.EvolutionChain]
	logger  *zap.Logger
}

func NewCatalogService(client pokeapi.Client, rdb *goredis.Client, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		client:  client,
		pages:   r.NewJSONCache[domain.PokemonPage](rdb, "pokemon-list", pageCacheTTL),
		pokemon: r.NewJSONCache[domain.Pokemon](rdb, "pokemon", pokemonCacheTTL),
		species: r.NewJSONCache[domain.Species](rdb, "species", speciesCacheTTL),
		chains:  r.NewJSONCache[domain.EvolutionChain](rdb, "evolution-chain", chainCacheTTL),
		logger:  logging.Component(logger, "catalog"),
	}
}

// ListPage returns one catalog page with duplicate ids removed, first
// occurrence wins.
func (s *CatalogService) ListPage(ctx context.Context, offset, limit int) (*domain.PokemonPage, error) {
	if offset < 0 {
		return nil, pokeapi.ErrInvalidPaging
	}
	limit = clampLimit(limit)
	key := fmt.Sprintf("%d:%d", limit, offset)

	if page := cached(ctx, s, s.pages, "pokemon-list", key); page != nil {
		return page, nil
	}

	page, err := s.client.ListPokemon(ctx, offset, limit)
	metrics.CatalogRequest("list", err)
	if err != nil {
		return nil, err
	}
	page.Results = dedupRefs(page.Results)

	store(ctx, s, s.pages, "pokemon-list", key, page)
	return page, nil
}

func (s *CatalogService) GetPokemon(ctx context.Context, nameOrID string) (*domain.Pokemon, error) {
	key, err := pokeapi.NormalizeName(nameOrID)
	if err != nil {
		return nil, err
	}

	if p := cached(ctx, s, s.pokemon, "pokemon", key); p != nil {
		return p, nil
	}

	p, err := s.client.GetPokemon(ctx, key)
	metrics.CatalogRequest("pokemon", err)
	if err != nil {
		return nil, err
	}

	store(ctx, s, s.pokemon, "pokemon", p.Name, p)
	store(ctx, s, s.pokemon, "pokemon", strconv.Itoa(p.ID), p)
	return p, nil
}

func (s *CatalogService) GetSpecies(ctx context.Context, nameOrID string) (*domain.Species, error) {
	key, err := pokeapi.NormalizeName(nameOrID)
	if err != nil {
		return nil, err
	}

	if sp := cached(ctx, s, s.species, "species", key); sp != nil {
		return sp, nil
	}

	sp, err := s.client.GetSpecies(ctx, key)
	metrics.CatalogRequest("species", err)
	if err != nil {
		return nil, err
	}

	store(ctx, s, s.species, "species", key, sp)
	return sp, nil
}

// GetEvolution resolves the species of the named creature and flattens its
// evolution chain.
func (s *CatalogService) GetEvolution(ctx context.Context, nameOrID string) ([]domain.EvolutionStage, error) {
	p, err := s.GetPokemon(ctx, nameOrID)
	if err != nil {
		return nil, err
	}

	speciesKey := p.Name
	if id, ok := pokeapi.IDFromURL(p.SpeciesURL); ok {
		speciesKey = strconv.Itoa(id)
	}

	sp, err := s.GetSpecies(ctx, speciesKey)
	if err != nil {
		return nil, err
	}

	chainID, ok := pokeapi.IDFromURL(sp.EvolutionChainURL)
	if !ok {
		return []domain.EvolutionStage{}, nil
	}
	key := strconv.Itoa(chainID)

	chain := cached(ctx, s, s.chains, "evolution-chain", key)
	if chain == nil {
		chain, err = s.client.GetEvolutionChain(ctx, chainID)
		metrics.CatalogRequest("evolution-chain", err)
		if err != nil {
			return nil, err
		}
		store(ctx, s, s.chains, "evolution-chain", key, chain)
	}

	return chain.Stages(), nil
}

func cached[T any](ctx context.Context, s *CatalogService, cache r.Cache[T], name, key string) *T {
	v, err := cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("cache read failed", zap.String("cache", name), zap.String("key", key), zap.Error(err))
		return nil
	}
	if v == nil {
		metrics.CacheMiss(name)
		return nil
	}
	metrics.CacheHit(name)
	return v
}

func store[T any](ctx context.Context, s *CatalogService, cache r.Cache[T], name, key string, v *T) {
	if err := cache.Set(ctx, key, v); err != nil {
		s.logger.Warn("cache write failed", zap.String("cache", name), zap.String("key", key), zap.Error(err))
	}
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return pokeapi.DefaultLimit
	}
	if limit > pokeapi.MaxLimit {
		return pokeapi.MaxLimit
	}
	return limit
}

func dedupRefs(refs []domain.PokemonRef) []domain.PokemonRef {
	seen := make(map[string]struct{}, len(refs))
	out := make([]domain.PokemonRef, 0, len(refs))
	for _, ref := range refs {
		key := ref.Name
		if ref.ID > 0 {
			key = strconv.Itoa(ref.ID)
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, ref)
	}
	return out
}
