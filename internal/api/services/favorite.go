package services

import (
	"context"
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/asaskevich/govalidator"
	"go.uber.org/zap"

	"pokedex/internal/domain"
	"pokedex/internal/logging"
	"pokedex/internal/metrics"
)

const topTypesLimit = 5

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidID    = errors.New("invalid pokemon id")
)

// FavoriteStore is the persistence side of favorites.
type FavoriteStore interface {
	Add(ctx context.Context, fav *domain.Favorite) error
	Remove(ctx context.Context, id int) error
	Contains(ctx context.Context, id int) (bool, error)
	ListAll(ctx context.Context) ([]domain.Favorite, error)
}

type AddFavoriteInput struct {
	ID       int    `valid:"required"`
	Name     string `valid:"required,length(1|64)"`
	ImageURL string `valid:"url,optional"`
}

// FavoriteService never surfaces storage failures: they are logged and the
// operation degrades to false, empty, or a no-op.
type FavoriteService struct {
	repo    FavoriteStore
	catalog Catalog
	logger  *zap.Logger
}

func NewFavoriteService(repo FavoriteStore, catalog Catalog, logger *zap.Logger) *FavoriteService {
	return &FavoriteService{
		repo:    repo,
		catalog: catalog,
		logger:  logging.Component(logger, "favorites"),
	}
}

// Add stores the favorite and reports whether it is now a favorite.
func (s *FavoriteService) Add(ctx context.Context, input AddFavoriteInput) (bool, error) {
	input.Name = strings.ToLower(strings.TrimSpace(input.Name))
	input.ImageURL = strings.TrimSpace(input.ImageURL)
	if input.ID <= 0 {
		return false, ErrInvalidID
	}
	if err := validateAddFavoriteInput(input); err != nil {
		return false, err
	}
	if input.ImageURL == "" {
		input.ImageURL = domain.SpriteURL(input.ID)
	}

	err := s.repo.Add(ctx, &domain.Favorite{ID: input.ID, Name: input.Name, ImageURL: input.ImageURL})
	metrics.FavoriteOperation("add", err)
	if err != nil {
		s.logger.Error("add favorite failed", zap.Int("id", input.ID), zap.Error(err))
		return s.Contains(ctx, input.ID)
	}
	return true, nil
}

// Remove deletes the favorite and reports whether it is still a favorite.
func (s *FavoriteService) Remove(ctx context.Context, id int) (bool, error) {
	if id <= 0 {
		return false, ErrInvalidID
	}

	err := s.repo.Remove(ctx, id)
	metrics.FavoriteOperation("remove", err)
	if err != nil {
		s.logger.Error("remove favorite failed", zap.Int("id", id), zap.Error(err))
		return s.Contains(ctx, id)
	}
	return false, nil
}

func (s *FavoriteService) Contains(ctx context.Context, id int) (bool, error) {
	if id <= 0 {
		return false, ErrInvalidID
	}

	ok, err := s.repo.Contains(ctx, id)
	metrics.FavoriteOperation("contains", err)
	if err != nil {
		s.logger.Error("check favorite failed", zap.Int("id", id), zap.Error(err))
		return false, nil
	}
	return ok, nil
}

// List returns favorites newest first.
func (s *FavoriteService) List(ctx context.Context) []domain.Favorite {
	favorites, err := s.repo.ListAll(ctx)
	metrics.FavoriteOperation("list", err)
	if err != nil {
		s.logger.Error("list favorites failed", zap.Error(err))
		return []domain.Favorite{}
	}
	if favorites == nil {
		return []domain.Favorite{}
	}
	return favorites
}

// Stats summarises the favorites. Types come from the catalog and favorites
// whose record cannot be fetched are left out of the type ranking.
func (s *FavoriteService) Stats(ctx context.Context) *domain.FavoriteStats {
	favorites := s.List(ctx)
	stats := &domain.FavoriteStats{
		Count:       len(favorites),
		Generations: make(map[int]int),
		TopTypes:    []domain.TypeCount{},
	}
	if len(favorites) == 0 {
		return stats
	}

	stats.MinID = favorites[0].ID
	stats.MaxID = favorites[0].ID
	sum := 0
	typeCounts := make(map[string]int)

	for _, f := range favorites {
		sum += f.ID
		stats.MinID = min(stats.MinID, f.ID)
		stats.MaxID = max(stats.MaxID, f.ID)
		stats.Generations[domain.GenerationFromID(f.ID)]++

		if s.catalog == nil {
			continue
		}
		p, err := s.catalog.GetPokemon(ctx, strconv.Itoa(f.ID))
		if err != nil {
			s.logger.Warn("favorite types unavailable", zap.Int("id", f.ID), zap.Error(err))
			continue
		}
		for _, t := range p.Types {
			typeCounts[t]++
		}
	}

	stats.AvgID = int(math.Round(float64(sum) / float64(len(favorites))))
	stats.TopTypes = topTypes(typeCounts, topTypesLimit)
	return stats
}

func topTypes(counts map[string]int, limit int) []domain.TypeCount {
	out := make([]domain.TypeCount, 0, len(counts))
	for t, c := range counts {
		out = append(out, domain.TypeCount{Type: t, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Type < out[j].Type
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func validateAddFavoriteInput(input AddFavoriteInput) error {
	type addFavoriteValidator AddFavoriteInput

	v := addFavoriteValidator(input)

	if _, err := govalidator.ValidateStruct(v); err != nil {
		return ErrInvalidInput
	}
	return nil
}
