package catalog

// Cache keys. Bumping the version suffix is the only invalidation mechanism.
const (
	// KeyList is the cache key for the full fetched list
	KeyList = "pokemon_list_cache_v2"

	// PrefixDetail is the prefix for per-entry caches (pokemon_detail_{idOrName})
	PrefixDetail = "pokemon_detail_"
)

// DetailKey returns the cache key for idOrName.
// Ids and names are distinct keys: "25" and "pikachu" are cached separately.
func DetailKey(idOrName string) string {
	return PrefixDetail + idOrName
}
