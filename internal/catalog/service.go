package catalog

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/sourcegraph/conc/pool"

	"github.com/mmcdole/dexcam/internal/domain"
)

// DefaultPageSize is how many index entries FetchList resolves
const DefaultPageSize = 21

// Options tunes the list fetch.
type Options struct {
	PageSize int // Index page size; <= 0 means DefaultPageSize
	// MaxConcurrency caps parallel detail fetches; <= 0 fetches every entry at once
	MaxConcurrency int
}

// Service is the read-through catalog client.
// Every method absorbs failures: callers get nil or an empty slice, never an error.
type Service struct {
	source domain.CatalogSource
	store  domain.KVStore
	opts   Options
	logger *slog.Logger
}

// NewService creates a new catalog service.
func NewService(source domain.CatalogSource, store domain.KVStore, opts Options, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	return &Service{source: source, store: store, opts: opts, logger: logger}
}

// FetchList returns the first page of the catalog with full details.
// A warm cache is returned verbatim without any network call. The list is only
// cached once at least one entry resolved, so an empty result stays cold.
func (s *Service) FetchList(ctx context.Context) []domain.CatalogEntry {
	var cached []domain.CatalogEntry
	if s.readCache(KeyList, &cached) && len(cached) > 0 {
		s.logger.Debug("cache hit", "key", KeyList, "count", len(cached))
		return cached
	}

	index, err := s.source.GetIndex(ctx, s.opts.PageSize, 0)
	if err != nil {
		s.logger.Error("failed to fetch index", "error", err)
		return []domain.CatalogEntry{}
	}

	// Each goroutine owns one slot, so index order survives the fan-out
	results := make([]*domain.CatalogEntry, len(index))
	p := pool.New()
	if s.opts.MaxConcurrency > 0 {
		p = p.WithMaxGoroutines(s.opts.MaxConcurrency)
	}
	for i, ref := range index {
		p.Go(func() {
			results[i] = s.FetchDetail(ctx, ref.Name)
		})
	}
	p.Wait()

	entries := make([]domain.CatalogEntry, 0, len(results))
	for _, e := range results {
		if e != nil {
			entries = append(entries, *e)
		}
	}

	if dropped := len(index) - len(entries); dropped > 0 {
		s.logger.Warn("dropped failed entries", "dropped", dropped, "total", len(index))
	}

	// An empty result is not cached so that a total outage is not remembered forever
	if len(entries) > 0 {
		s.writeCache(KeyList, entries)
	}
	s.logger.Info("fetched catalog list", "count", len(entries))
	return entries
}

// FetchDetail returns the full entry for idOrName, or nil on failure.
func (s *Service) FetchDetail(ctx context.Context, idOrName string) *domain.CatalogEntry {
	key := DetailKey(idOrName)

	var cached domain.CatalogEntry
	if s.readCache(key, &cached) && cached.ID != 0 {
		s.logger.Debug("cache hit", "key", key)
		return &cached
	}

	rec, err := s.source.GetPokemon(ctx, idOrName)
	if err != nil {
		s.logger.Error("failed to fetch pokemon", "idOrName", idOrName, "error", err)
		return nil
	}

	entry := rec.Entry
	entry.SpeciesData = domain.EmptySpecies
	if species, err := s.source.GetSpecies(ctx, rec.SpeciesURL); err != nil {
		s.logger.Warn("species fetch failed, using empty species", "idOrName", idOrName, "error", err)
	} else {
		entry.SpeciesData = json.RawMessage(species)
	}

	s.writeCache(key, entry)
	return &entry
}

// FetchBasicLookup returns a fresh overlay projection for idOrName, or nil on failure.
// Results are never cached.
func (s *Service) FetchBasicLookup(ctx context.Context, idOrName string) *domain.BasicLookup {
	rec, err := s.source.GetPokemon(ctx, idOrName)
	if err != nil {
		s.logger.Error("failed to fetch lookup", "idOrName", idOrName, "error", err)
		return nil
	}
	return &domain.BasicLookup{
		ID:     rec.Entry.ID,
		Name:   rec.Entry.Name,
		Sprite: overlaySprite(rec),
		Types:  rec.Entry.Types,
	}
}

// overlaySprite prefers official artwork, then the default front sprite
func overlaySprite(rec *domain.PokemonRecord) *string {
	if rec.OfficialArtURL != "" {
		return domain.StringPtr(rec.OfficialArtURL)
	}
	if rec.Entry.SpriteURL != nil {
		return domain.StringPtr(*rec.Entry.SpriteURL)
	}
	return nil
}

// readCache decodes key into dest. Missing, unreadable or corrupt values are all misses.
func (s *Service) readCache(key string, dest interface{}) bool {
	raw, ok, err := s.store.Get(key)
	if err != nil {
		s.logger.Warn("cache read failed", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		s.logger.Warn("discarding unreadable cache entry", "key", key, "error", err)
		return false
	}
	return true
}

func (s *Service) writeCache(key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Error("failed to encode cache entry", "key", key, "error", err)
		return
	}
	if err := s.store.Set(key, string(data)); err != nil {
		s.logger.Error("failed to write cache", "key", key, "error", err)
	}
}
