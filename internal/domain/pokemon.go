package domain

import "fmt"

const spritesBaseURL = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon"

const (
	StatHp      = "hp"
	StatAttack  = "attack"
	StatDefense = "defense"
	StatSpeed   = "speed"
)

type Stat struct {
	Name string `json:"name"`
	Base int    `json:"base"`
}

type Ability struct {
	Name   string `json:"name"`
	Hidden bool   `json:"hidden"`
}

// Pokemon is the creature record as fetched from the catalog. It is never
// mutated after the fetch.
type Pokemon struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Height     int       `json:"height"`
	Weight     int       `json:"weight"`
	Stats      []Stat    `json:"stats"`
	Types      []string  `json:"types"`
	Abilities  []Ability `json:"abilities"`
	SpeciesURL string    `json:"species_url,omitempty"`
}

// BaseStat returns the base value of the named stat, or fallback when the
// record does not carry it.
func (p *Pokemon) BaseStat(name string, fallback int) int {
	for _, s := range p.Stats {
		if s.Name == name {
			return s.Base
		}
	}
	return fallback
}

type PokemonRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

type PokemonPage struct {
	Results []PokemonRef `json:"results"`
	HasMore bool         `json:"has_more"`
	Offset  int          `json:"offset"`
	Limit   int          `json:"limit"`
	Total   int          `json:"total"`
}

type Species struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	Generation        string `json:"generation"`
	EvolutionChainURL string `json:"evolution_chain_url"`
	EvolvesFrom       string `json:"evolves_from,omitempty"`
	FlavorText        string `json:"flavor_text,omitempty"`
}

// EvolutionNode is one species in an evolution chain tree.
type EvolutionNode struct {
	Species   string           `json:"species"`
	SpeciesID int              `json:"species_id"`
	MinLevel  int              `json:"min_level,omitempty"`
	Trigger   string           `json:"trigger,omitempty"`
	EvolvesTo []*EvolutionNode `json:"evolves_to,omitempty"`
}

type EvolutionChain struct {
	ID    int            `json:"id"`
	Chain *EvolutionNode `json:"chain"`
}

// EvolutionStage is a flattened chain entry. Depth 0 is the base form.
type EvolutionStage struct {
	Species   string `json:"species"`
	SpeciesID int    `json:"species_id"`
	Depth     int    `json:"depth"`
	MinLevel  int    `json:"min_level,omitempty"`
	Trigger   string `json:"trigger,omitempty"`
}

// Stages walks the chain breadth first so base forms come before their
// evolutions and siblings keep API order.
func (c *EvolutionChain) Stages() []EvolutionStage {
	if c == nil || c.Chain == nil {
		return []EvolutionStage{}
	}

	type item struct {
		node  *EvolutionNode
		depth int
	}

	stages := make([]EvolutionStage, 0)
	queue := []item{{node: c.Chain, depth: 0}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.node == nil {
			continue
		}

		stages = append(stages, EvolutionStage{
			Species:   cur.node.Species,
			SpeciesID: cur.node.SpeciesID,
			Depth:     cur.depth,
			MinLevel:  cur.node.MinLevel,
			Trigger:   cur.node.Trigger,
		})

		for _, next := range cur.node.EvolvesTo {
			queue = append(queue, item{node: next, depth: cur.depth + 1})
		}
	}
	return stages
}

func SpriteURL(id int) string {
	return fmt.Sprintf("%s/%d.png", spritesBaseURL, id)
}

func BackSpriteURL(id int) string {
	return fmt.Sprintf("%s/back/%d.png", spritesBaseURL, id)
}

func ArtworkURL(id int) string {
	return fmt.Sprintf("%s/other/official-artwork/%d.png", spritesBaseURL, id)
}

// GenerationFromID buckets a national dex id into its generation.
func GenerationFromID(id int) int {
	switch {
	case id <= 151:
		return 1
	case id <= 251:
		return 2
	case id <= 386:
		return 3
	case id <= 493:
		return 4
	case id <= 649:
		return 5
	case id <= 721:
		return 6
	case id <= 809:
		return 7
	case id <= 905:
		return 8
	case id <= 1010:
		return 9
	default:
		return 1
	}
}
