package dto

import (
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"pokedex/internal/domain"
)

// DisplayName capitalises a catalog name for presentation. A Caser keeps
// state, so each call gets its own.
func DisplayName(name string) string {
	return cases.Title(language.English).String(name)
}

type PokemonListItem struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Sprite      string `json:"sprite"`
}

type PokemonPage struct {
	Results []PokemonListItem `json:"results"`
	HasMore bool              `json:"hasMore"`
	Offset  int               `json:"offset"`
	Limit   int               `json:"limit"`
	Total   int               `json:"total"`
}

type Stat struct {
	Name string `json:"name"`
	Base int    `json:"base"`
}

type PokemonDetail struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	DisplayName string   `json:"displayName"`
	Height      string   `json:"height"`
	Weight      string   `json:"weight"`
	Types       []string `json:"types"`
	Abilities   []string `json:"abilities"`
	Stats       []Stat   `json:"stats"`
	Sprite      string   `json:"sprite"`
	Artwork     string   `json:"artwork"`
}

type EvolutionStage struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Depth       int    `json:"depth"`
	MinLevel    int    `json:"minLevel,omitempty"`
	Trigger     string `json:"trigger,omitempty"`
	Sprite      string `json:"sprite,omitempty"`
}

func PokemonPageFromDomain(page *domain.PokemonPage) *PokemonPage {
	if page == nil {
		return nil
	}

	result := &PokemonPage{
		Results: make([]PokemonListItem, 0, len(page.Results)),
		HasMore: page.HasMore,
		Offset:  page.Offset,
		Limit:   page.Limit,
		Total:   page.Total,
	}
	for _, ref := range page.Results {
		item := PokemonListItem{
			ID:          ref.ID,
			Name:        ref.Name,
			DisplayName: DisplayName(ref.Name),
		}
		if ref.ID > 0 {
			item.Sprite = domain.SpriteURL(ref.ID)
		}
		result.Results = append(result.Results, item)
	}
	return result
}

func PokemonDetailFromDomain(p *domain.Pokemon) *PokemonDetail {
	if p == nil {
		return nil
	}

	result := &PokemonDetail{
		ID:          p.ID,
		Name:        p.Name,
		DisplayName: DisplayName(p.Name),
		Height:      tenths(p.Height),
		Weight:      tenths(p.Weight),
		Types:       make([]string, 0, len(p.Types)),
		Abilities:   make([]string, 0, len(p.Abilities)),
		Stats:       make([]Stat, 0, len(p.Stats)),
		Sprite:      domain.SpriteURL(p.ID),
		Artwork:     domain.ArtworkURL(p.ID),
	}
	for _, t := range p.Types {
		result.Types = append(result.Types, DisplayName(t))
	}
	for _, a := range p.Abilities {
		label := DisplayName(a.Name)
		if a.Hidden {
			label += " (Hidden)"
		}
		result.Abilities = append(result.Abilities, label)
	}
	for _, s := range p.Stats {
		result.Stats = append(result.Stats, Stat{Name: s.Name, Base: s.Base})
	}
	return result
}

func EvolutionStagesFromDomain(stages []domain.EvolutionStage) []EvolutionStage {
	result := make([]EvolutionStage, 0, len(stages))
	for _, s := range stages {
		stage := EvolutionStage{
			ID:          s.SpeciesID,
			Name:        s.Species,
			DisplayName: DisplayName(s.Species),
			Depth:       s.Depth,
			MinLevel:    s.MinLevel,
			Trigger:     s.Trigger,
		}
		if s.SpeciesID > 0 {
			stage.Sprite = domain.SpriteURL(s.SpeciesID)
		}
		result = append(result, stage)
	}
	return result
}

// tenths renders decimetres or hectograms as metres or kilograms.
func tenths(v int) string {
	return strconv.FormatFloat(float64(v)/10, 'f', 1, 64)
}
