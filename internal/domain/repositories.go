package domain

import "context"

// CatalogSource provides raw access to the remote catalog API.
type CatalogSource interface {
	// GetIndex returns a page of name/reference pairs
	GetIndex(ctx context.Context, limit, offset int) ([]IndexEntry, error)

	// GetPokemon returns the primary detail record for an id or name.
	// The species URL embedded in the record is returned alongside it.
	GetPokemon(ctx context.Context, idOrName string) (*PokemonRecord, error)

	// GetSpecies fetches the opaque species record at an absolute URL
	GetSpecies(ctx context.Context, speciesURL string) ([]byte, error)
}

// PokemonRecord is the mapped primary detail response, before species data is attached.
type PokemonRecord struct {
	Entry          CatalogEntry
	OfficialArtURL string
	SpeciesURL     string
}
