package pokeapi

import (
	"bytes"
	"encoding/json"

	"github.com/mmcdole/dexcam/internal/domain"
)

// MapIndex converts index results to domain index entries
func MapIndex(refs []NamedReference) []domain.IndexEntry {
	entries := make([]domain.IndexEntry, 0, len(refs))
	for _, ref := range refs {
		entries = append(entries, domain.IndexEntry{Name: ref.Name, URL: ref.URL})
	}
	return entries
}

// MapPokemon converts a detail DTO to a record with an empty species payload.
// The species data is attached later by the catalog service.
func MapPokemon(p *Pokemon) *domain.PokemonRecord {
	types := make([]string, 0, len(p.Types))
	for _, t := range p.Types {
		types = append(types, t.Type.Name)
	}

	abilities := make([]string, 0, len(p.Abilities))
	for _, a := range p.Abilities {
		abilities = append(abilities, a.Ability.Name)
	}

	stats := CompactJSON(p.Stats)
	if len(stats) == 0 || string(stats) == "null" {
		stats = json.RawMessage(`[]`)
	}

	var sprite *string
	if p.Sprites.FrontDefault != nil && *p.Sprites.FrontDefault != "" {
		sprite = domain.StringPtr(*p.Sprites.FrontDefault)
	}

	var officialArt string
	if p.Sprites.Other.OfficialArtwork.FrontDefault != nil {
		officialArt = *p.Sprites.Other.OfficialArtwork.FrontDefault
	}

	return &domain.PokemonRecord{
		Entry: domain.CatalogEntry{
			ID:          p.ID,
			Name:        p.Name,
			Types:       types,
			Abilities:   abilities,
			Stats:       stats,
			SpriteURL:   sprite,
			SpeciesData: domain.EmptySpecies,
			Weight:      p.Weight,
			Height:      p.Height,
		},
		OfficialArtURL: officialArt,
		SpeciesURL:     p.Species.URL,
	}
}

// CompactJSON strips insignificant whitespace so cached and fresh payloads compare equal.
// Invalid input is returned unchanged.
func CompactJSON(raw []byte) json.RawMessage {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return json.RawMessage(raw)
	}
	return json.RawMessage(buf.Bytes())
}
