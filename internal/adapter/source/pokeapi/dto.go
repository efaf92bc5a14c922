package pokeapi

import "encoding/json"

// IndexResponse represents the paginated /pokemon listing
type IndexResponse struct {
	Count    int              `json:"count"`
	Next     string           `json:"next,omitempty"`
	Previous string           `json:"previous,omitempty"`
	Results  []NamedReference `json:"results"`
}

// NamedReference is PokeAPI's {name, url} pointer to another resource
type NamedReference struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Pokemon represents the /pokemon/{idOrName} detail record
type Pokemon struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Types     []TypeSlot      `json:"types"`
	Abilities []AbilitySlot   `json:"abilities"`
	Stats     json.RawMessage `json:"stats"` // Kept opaque
	Sprites   Sprites         `json:"sprites"`
	Species   NamedReference  `json:"species"`
	Weight    float64         `json:"weight"`
	Height    float64         `json:"height"`
}

// TypeSlot wraps a type reference with its slot position
type TypeSlot struct {
	Slot int            `json:"slot"`
	Type NamedReference `json:"type"`
}

// AbilitySlot wraps an ability reference
type AbilitySlot struct {
	Ability  NamedReference `json:"ability"`
	IsHidden bool           `json:"is_hidden"`
	Slot     int            `json:"slot"`
}

// Sprites holds the image URLs we care about. All fields may be null.
type Sprites struct {
	FrontDefault *string      `json:"front_default"`
	Other        OtherSprites `json:"other"`
}

// OtherSprites holds alternate artwork sets
type OtherSprites struct {
	OfficialArtwork ArtworkSprites `json:"official-artwork"`
}

// ArtworkSprites is a single artwork set
type ArtworkSprites struct {
	FrontDefault *string `json:"front_default"`
}
