package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/dexcam/internal/domain"
	"github.com/mmcdole/dexcam/internal/store"
)

func names(entries []domain.CatalogEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

var searchEntries = []domain.CatalogEntry{
	{ID: 1, Name: "bulbasaur"},
	{ID: 4, Name: "charmander"},
	{ID: 5, Name: "charmeleon"},
	{ID: 25, Name: "pikachu"},
}

func TestSearch_Subsequence(t *testing.T) {
	got := names(Search("charm", searchEntries))
	assert.ElementsMatch(t, []string{"charmander", "charmeleon"}, got)
}

func TestSearch_CaseInsensitive(t *testing.T) {
	assert.Equal(t, []string{"pikachu"}, names(Search("PIKA", searchEntries)))
}

func TestSearch_TypoFallback(t *testing.T) {
	assert.Equal(t, []string{"pikachu"}, names(Search("pikachoo", searchEntries)))
}

func TestSearch_Empty(t *testing.T) {
	assert.Nil(t, Search("  ", searchEntries))
	assert.Nil(t, Search("pika", nil))
	assert.Empty(t, Search("zzzzzzzz", searchEntries))
}

func TestQueries_ReadCacheOnly(t *testing.T) {
	kv, err := store.Open(store.DriverMemory, "", nil)
	require.NoError(t, err)
	q := NewQueries(kv)

	_, ok := q.CachedList()
	assert.False(t, ok)
	assert.Nil(t, q.Search("pika"))

	require.NoError(t, kv.Set(KeyList, `[{"id":25,"name":"pikachu"}]`))
	require.NoError(t, kv.Set(DetailKey("25"), `{"id":25,"name":"pikachu"}`))

	list, ok := q.CachedList()
	require.True(t, ok)
	assert.Len(t, list, 1)

	entry, ok := q.CachedDetail("25")
	require.True(t, ok)
	assert.Equal(t, "pikachu", entry.Name)

	assert.Equal(t, []string{"pikachu"}, names(q.Search("pik")))
}

func TestQueries_NullEntriesAreMisses(t *testing.T) {
	kv, err := store.Open(store.DriverMemory, "", nil)
	require.NoError(t, err)
	q := NewQueries(kv)

	require.NoError(t, kv.Set(KeyList, "null"))
	require.NoError(t, kv.Set(DetailKey("25"), "null"))

	_, ok := q.CachedList()
	assert.False(t, ok)
	entry, ok := q.CachedDetail("25")
	assert.False(t, ok)
	assert.Nil(t, entry)
}
