// Package pokeapi is the client for the public PokeAPI catalog.
package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"pokedex/internal/domain"
)

const (
	DefaultBaseURL = "https://pokeapi.co/api/v2/"
	DefaultLimit   = 20
	MaxLimit       = 100
)

var (
	ErrNotFound      = errors.New("pokemon not found")
	ErrInvalidName   = errors.New("invalid pokemon name")
	ErrInvalidPaging = errors.New("invalid paging parameters")
	ErrUpstream      = errors.New("catalog unavailable")
)

var resourceIDPattern = regexp.MustCompile(`/(\d+)/?$`)

// Client defines the catalog lookups the service depends on.
type Client interface {
	// ListPokemon returns one page of the catalog listing
	ListPokemon(ctx context.Context, offset, limit int) (*domain.PokemonPage, error)

	// GetPokemon fetches a creature record by name or numeric id
	GetPokemon(ctx context.Context, nameOrID string) (*domain.Pokemon, error)

	// GetSpecies fetches a species record by name or numeric id
	GetSpecies(ctx context.Context, nameOrID string) (*domain.Species, error)

	// GetEvolutionChain fetches an evolution chain by id
	GetEvolutionChain(ctx context.Context, id int) (*domain.EvolutionChain, error)
}

// Config contains configuration options for the catalog client.
type Config struct {
	// BaseURL of the API (optional, defaults to https://pokeapi.co/api/v2/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 15 seconds)
	HTTPTimeout time.Duration
	// HTTPClient overrides the transport, mostly for tests
	HTTPClient *http.Client
}

// Validate sets defaults and checks the base URL.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(cfg.BaseURL, "/") {
		cfg.BaseURL += "/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 15 * time.Second
	}
	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return fmt.Errorf("invalid base url %q: %w", cfg.BaseURL, err)
	}
	return nil
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a catalog client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	return &client{
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
	}, nil
}

// NormalizeName lower-cases and trims a name or id and rejects anything that
// cannot be a catalog key.
func NormalizeName(nameOrID string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(nameOrID))
	if name == "" || !govalidator.Matches(name, `^[a-z0-9][a-z0-9-]*$`) || !govalidator.IsByteLength(name, 1, 64) {
		return "", ErrInvalidName
	}
	return name, nil
}

// IDFromURL extracts the trailing numeric id of a resource URL.
func IDFromURL(resourceURL string) (int, bool) {
	m := resourceIDPattern.FindStringSubmatch(resourceURL)
	if m == nil {
		return 0, false
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return id, true
}

func (c *client) ListPokemon(ctx context.Context, offset, limit int) (*domain.PokemonPage, error) {
	if offset < 0 {
		return nil, ErrInvalidPaging
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	var resp listResponse
	path := fmt.Sprintf("pokemon?offset=%d&limit=%d", offset, limit)
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}

	page := &domain.PokemonPage{
		Results: make([]domain.PokemonRef, 0, len(resp.Results)),
		HasMore: resp.Next != nil && *resp.Next != "",
		Offset:  offset,
		Limit:   limit,
		Total:   resp.Count,
	}
	for _, r := range resp.Results {
		id, _ := IDFromURL(r.URL)
		page.Results = append(page.Results, domain.PokemonRef{ID: id, Name: r.Name, URL: r.URL})
	}
	return page, nil
}

func (c *client) GetPokemon(ctx context.Context, nameOrID string) (*domain.Pokemon, error) {
	name, err := NormalizeName(nameOrID)
	if err != nil {
		return nil, err
	}

	var resp pokemonResponse
	if err := c.get(ctx, "pokemon/"+name, &resp); err != nil {
		return nil, err
	}
	return convertPokemon(&resp), nil
}

func (c *client) GetSpecies(ctx context.Context, nameOrID string) (*domain.Species, error) {
	name, err := NormalizeName(nameOrID)
	if err != nil {
		return nil, err
	}

	var resp speciesResponse
	if err := c.get(ctx, "pokemon-species/"+name, &resp); err != nil {
		return nil, err
	}
	return convertSpecies(&resp), nil
}

func (c *client) GetEvolutionChain(ctx context.Context, id int) (*domain.EvolutionChain, error) {
	if id <= 0 {
		return nil, ErrNotFound
	}

	var resp evolutionChainResponse
	if err := c.get(ctx, "evolution-chain/"+strconv.Itoa(id), &resp); err != nil {
		return nil, err
	}
	return convertEvolutionChain(&resp), nil
}

func (c *client) get(ctx context.Context, path string, out any) error {
	ctx, span := otel.Tracer("pokedex/pokeapi").Start(ctx, "pokeapi.get")
	defer span.End()
	span.SetAttributes(attribute.String("pokeapi.path", path))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return fmt.Errorf("%w: %s: %v", ErrUpstream, path, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		span.SetStatus(codes.Error, resp.Status)
		return fmt.Errorf("%w: %s returned %d", ErrUpstream, path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		span.RecordError(err)
		return fmt.Errorf("%w: decode %s: %v", ErrUpstream, path, err)
	}
	return nil
}
