package catalog

import (
	"sort"
	"strings"

	lfuzzy "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sahilm/fuzzy"

	"github.com/mmcdole/dexcam/internal/domain"
)

// maxTypoDistance bounds the Levenshtein fallback
const maxTypoDistance = 2

// nameIndex implements sahilm/fuzzy.Source over entry names
type nameIndex []domain.CatalogEntry

// String returns the lowercase name at index i (implements fuzzy.Source)
func (n nameIndex) String(i int) string { return strings.ToLower(n[i].Name) }

// Len returns the number of entries (implements fuzzy.Source)
func (n nameIndex) Len() int { return len(n) }

// Search ranks entries by how well their names match query.
// Subsequence matches come first; when there are none, names within a small
// edit distance are returned so that typos like "pikachoo" still resolve.
func Search(query string, entries []domain.CatalogEntry) []domain.CatalogEntry {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || len(entries) == 0 {
		return nil
	}

	matches := fuzzy.FindFrom(query, nameIndex(entries))
	if len(matches) > 0 {
		results := make([]domain.CatalogEntry, len(matches))
		for i, m := range matches {
			results[i] = entries[m.Index]
		}
		return results
	}

	type scored struct {
		entry    domain.CatalogEntry
		distance int
	}
	var near []scored
	for _, e := range entries {
		d := lfuzzy.LevenshteinDistance(query, strings.ToLower(e.Name))
		if d <= maxTypoDistance {
			near = append(near, scored{entry: e, distance: d})
		}
	}
	sort.SliceStable(near, func(i, j int) bool {
		return near[i].distance < near[j].distance
	})

	results := make([]domain.CatalogEntry, len(near))
	for i, n := range near {
		results[i] = n.entry
	}
	return results
}

// Search ranks the cached list against query. It never touches the network.
func (q *Queries) Search(query string) []domain.CatalogEntry {
	entries, ok := q.CachedList()
	if !ok {
		return nil
	}
	return Search(query, entries)
}
