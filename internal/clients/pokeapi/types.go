package pokeapi

// Wire shapes of the PokeAPI v2 responses. Only the fields the service uses
// are decoded.

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type listResponse struct {
	Count    int             `json:"count"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Results  []namedResource `json:"results"`
}

type pokemonResponse struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Height int    `json:"height"`
	Weight int    `json:"weight"`
	Stats  []struct {
		BaseStat int           `json:"base_stat"`
		Stat     namedResource `json:"stat"`
	} `json:"stats"`
	Types []struct {
		Slot int           `json:"slot"`
		Type namedResource `json:"type"`
	} `json:"types"`
	Abilities []struct {
		IsHidden bool          `json:"is_hidden"`
		Slot     int           `json:"slot"`
		Ability  namedResource `json:"ability"`
	} `json:"abilities"`
	Species namedResource `json:"species"`
}

type speciesResponse struct {
	ID             int            `json:"id"`
	Name           string         `json:"name"`
	Generation     namedResource  `json:"generation"`
	EvolvesFrom    *namedResource `json:"evolves_from_species"`
	EvolutionChain struct {
		URL string `json:"url"`
	} `json:"evolution_chain"`
	FlavorTextEntries []struct {
		FlavorText string        `json:"flavor_text"`
		Language   namedResource `json:"language"`
	} `json:"flavor_text_entries"`
}

type chainLink struct {
	Species          namedResource `json:"species"`
	EvolutionDetails []struct {
		MinLevel *int          `json:"min_level"`
		Trigger  namedResource `json:"trigger"`
	} `json:"evolution_details"`
	EvolvesTo []chainLink `json:"evolves_to"`
}

type evolutionChainResponse struct {
	ID    int       `json:"id"`
	Chain chainLink `json:"chain"`
}
