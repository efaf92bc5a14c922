package catalog

import (
	"encoding/json"

	"github.com/mmcdole/dexcam/internal/domain"
)

// Queries provides synchronous, cache-only reads.
type Queries struct {
	store domain.KVStore
}

// NewQueries creates a new Queries instance.
func NewQueries(store domain.KVStore) *Queries {
	return &Queries{store: store}
}

func (q *Queries) CachedList() ([]domain.CatalogEntry, bool) {
	var entries []domain.CatalogEntry
	if !q.get(KeyList, &entries) || len(entries) == 0 {
		return nil, false
	}
	return entries, true
}

func (q *Queries) CachedDetail(idOrName string) (*domain.CatalogEntry, bool) {
	var entry domain.CatalogEntry
	if !q.get(DetailKey(idOrName), &entry) || entry.ID == 0 {
		return nil, false
	}
	return &entry, true
}

func (q *Queries) get(key string, dest interface{}) bool {
	raw, ok, err := q.store.Get(key)
	if err != nil || !ok {
		return false
	}
	return json.Unmarshal([]byte(raw), dest) == nil
}
