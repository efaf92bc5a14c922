package domain

import "encoding/json"

// CatalogEntry is the full detail record for one Pokémon.
// Entries are immutable once fetched and cached without expiry.
type CatalogEntry struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Types       []string        `json:"types"`
	Abilities   []string        `json:"abilities"`
	Stats       json.RawMessage `json:"stats"`       // Opaque, passed through from the API
	SpriteURL   *string         `json:"spriteUrl"`   // Default front sprite, nil when absent
	SpeciesData json.RawMessage `json:"speciesData"` // Opaque species record, {} when unavailable
	Weight      float64         `json:"weight"`
	Height      float64         `json:"height"`
}

// BasicLookup is the reduced, never-cached projection used for overlay display.
type BasicLookup struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	Sprite *string  `json:"sprite"`
	Types  []string `json:"types"`
}

// CaptureRecord pairs a selected catalog id with a captured photo.
// ID is not checked against the catalog.
type CaptureRecord struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Sprite    *string `json:"sprite"`
	PhotoURI  string  `json:"photoUri"`
	Timestamp int64   `json:"timestamp"` // Unix epoch milliseconds
}

// IndexEntry is one name/reference pair from the catalog index.
type IndexEntry struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// EmptySpecies is the species payload used when the species fetch fails.
var EmptySpecies = json.RawMessage(`{}`)

// StringPtr returns a pointer to s, or nil when s is empty.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
