package pokeapi

import (
	"sort"
	"strings"

	"pokedex/internal/domain"
)

func convertPokemon(resp *pokemonResponse) *domain.Pokemon {
	p := &domain.Pokemon{
		ID:         resp.ID,
		Name:       resp.Name,
		Height:     resp.Height,
		Weight:     resp.Weight,
		Stats:      make([]domain.Stat, 0, len(resp.Stats)),
		Types:      make([]string, 0, len(resp.Types)),
		Abilities:  make([]domain.Ability, 0, len(resp.Abilities)),
		SpeciesURL: resp.Species.URL,
	}

	for _, s := range resp.Stats {
		p.Stats = append(p.Stats, domain.Stat{Name: s.Stat.Name, Base: s.BaseStat})
	}

	types := resp.Types
	sort.SliceStable(types, func(i, j int) bool { return types[i].Slot < types[j].Slot })
	for _, t := range types {
		p.Types = append(p.Types, t.Type.Name)
	}

	abilities := resp.Abilities
	sort.SliceStable(abilities, func(i, j int) bool { return abilities[i].Slot < abilities[j].Slot })
	for _, a := range abilities {
		p.Abilities = append(p.Abilities, domain.Ability{Name: a.Ability.Name, Hidden: a.IsHidden})
	}

	return p
}

func convertSpecies(resp *speciesResponse) *domain.Species {
	s := &domain.Species{
		ID:                resp.ID,
		Name:              resp.Name,
		Generation:        resp.Generation.Name,
		EvolutionChainURL: resp.EvolutionChain.URL,
	}
	if resp.EvolvesFrom != nil {
		s.EvolvesFrom = resp.EvolvesFrom.Name
	}
	for _, entry := range resp.FlavorTextEntries {
		if entry.Language.Name == "en" {
			s.FlavorText = cleanFlavorText(entry.FlavorText)
			break
		}
	}
	return s
}

// convertEvolutionChain copies the API tree into domain nodes using an
// explicit stack.
func convertEvolutionChain(resp *evolutionChainResponse) *domain.EvolutionChain {
	type pending struct {
		link *chainLink
		node *domain.EvolutionNode
	}

	root := &domain.EvolutionNode{}
	stack := []pending{{link: &resp.Chain, node: root}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		cur.node.Species = cur.link.Species.Name
		cur.node.SpeciesID, _ = IDFromURL(cur.link.Species.URL)
		if len(cur.link.EvolutionDetails) > 0 {
			detail := cur.link.EvolutionDetails[0]
			cur.node.Trigger = detail.Trigger.Name
			if detail.MinLevel != nil {
				cur.node.MinLevel = *detail.MinLevel
			}
		}

		if len(cur.link.EvolvesTo) == 0 {
			continue
		}
		cur.node.EvolvesTo = make([]*domain.EvolutionNode, len(cur.link.EvolvesTo))
		for i := range cur.link.EvolvesTo {
			child := &domain.EvolutionNode{}
			cur.node.EvolvesTo[i] = child
			stack = append(stack, pending{link: &cur.link.EvolvesTo[i], node: child})
		}
	}

	return &domain.EvolutionChain{ID: resp.ID, Chain: root}
}

func cleanFlavorText(s string) string {
	replacer := strings.NewReplacer("\n", " ", "\f", " ", "\u00ad", "")
	return strings.Join(strings.Fields(replacer.Replace(s)), " ")
}
