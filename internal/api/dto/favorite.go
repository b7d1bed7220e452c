package dto

import (
	"sort"
	"time"

	"pokedex/internal/domain"
)

type Favorite struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"displayName"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

type FavoriteStatus struct {
	ID       int  `json:"id"`
	Favorite bool `json:"favorite"`
}

type GenerationCount struct {
	Generation int `json:"generation"`
	Count      int `json:"count"`
}

type TypeCount struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type FavoriteStats struct {
	Count       int               `json:"count"`
	MinID       int               `json:"minId"`
	MaxID       int               `json:"maxId"`
	AvgID       int               `json:"avgId"`
	Generations []GenerationCount `json:"generations"`
	TopTypes    []TypeCount       `json:"topTypes"`
}

func FavoriteFromDomain(f domain.Favorite) Favorite {
	return Favorite{
		ID:          f.ID,
		Name:        f.Name,
		DisplayName: DisplayName(f.Name),
		ImageURL:    f.ImageURL,
		CreatedAt:   f.CreatedAt,
	}
}

func FavoritesFromDomain(list []domain.Favorite) []Favorite {
	result := make([]Favorite, 0, len(list))
	for _, f := range list {
		result = append(result, FavoriteFromDomain(f))
	}
	return result
}

func FavoriteStatsFromDomain(s *domain.FavoriteStats) *FavoriteStats {
	if s == nil {
		return nil
	}

	result := &FavoriteStats{
		Count:       s.Count,
		MinID:       s.MinID,
		MaxID:       s.MaxID,
		AvgID:       s.AvgID,
		Generations: make([]GenerationCount, 0, len(s.Generations)),
		TopTypes:    make([]TypeCount, 0, len(s.TopTypes)),
	}
	for gen, count := range s.Generations {
		result.Generations = append(result.Generations, GenerationCount{Generation: gen, Count: count})
	}
	sort.Slice(result.Generations, func(i, j int) bool {
		return result.Generations[i].Generation < result.Generations[j].Generation
	})
	for _, t := range s.TopTypes {
		result.TopTypes = append(result.TopTypes, TypeCount{Type: t.Type, Label: DisplayName(t.Type), Count: t.Count})
	}
	return result
}
