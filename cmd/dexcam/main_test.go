package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/dexcam/internal/domain"
)

func newPikachuServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	var base string
	mux.HandleFunc("/pokemon", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"results":[{"name":"pikachu","url":"%s/pokemon/pikachu/"}]}`, base)
	})
	pikachu := func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"id":25,"name":"pikachu","types":[{"type":{"name":"electric"}}],"abilities":[],"stats":[],
			"sprites":{"front_default":"url1","other":{"official-artwork":{"front_default":"art25"}}},
			"species":{"url":"%s/pokemon-species/25"},"weight":60,"height":4}`, base)
	}
	mux.HandleFunc("/pokemon/pikachu", pikachu)
	mux.HandleFunc("/pokemon/25", pikachu)
	mux.HandleFunc("/pokemon-species/25", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"flavor_text_entries":[]}`)
	})

	server := httptest.NewUnstartedServer(mux)
	base = "http://" + server.Listener.Addr().String()
	server.Start()
	t.Cleanup(server.Close)
	return server
}

func writeTestConfig(t *testing.T, baseURL string) string {
	t.Helper()
	dir := t.TempDir()
	source := filepath.Join(dir, "frame.jpg")
	require.NoError(t, os.WriteFile(source, []byte("jpeg"), 0644))

	cfg := fmt.Sprintf(`
api:
  base_url: %s
storage:
  driver: bolt
  path: %s
camera:
  platform: android
  permission: granted
  source: %s
  photos_dir: %s
logging:
  file: %s
`, baseURL, filepath.Join(dir, "dexcam.db"), source, filepath.Join(dir, "photos"), filepath.Join(dir, "dexcam.log"))

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))
	return path
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestCLI_ListShowCaptureGallery(t *testing.T) {
	server := newPikachuServer(t)
	config := writeTestConfig(t, server.URL)

	var entries []domain.CatalogEntry
	require.NoError(t, json.Unmarshal([]byte(execute(t, "--config", config, "--json", "list")), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "pikachu", entries[0].Name)

	var entry domain.CatalogEntry
	require.NoError(t, json.Unmarshal([]byte(execute(t, "--config", config, "--json", "show", "25")), &entry))
	assert.Equal(t, []string{"electric"}, entry.Types)

	out := execute(t, "--config", config, "--json", "capture", "--id", "25")
	assert.Contains(t, out, "Captured!")

	var records []domain.CaptureRecord
	require.NoError(t, json.Unmarshal([]byte(execute(t, "--config", config, "--json", "captures")), &records))
	require.Len(t, records, 1)
	assert.Equal(t, 25, records[0].ID)
	assert.Equal(t, "pikachu", records[0].Name)
	require.NotNil(t, records[0].Sprite)
	assert.Equal(t, "art25", *records[0].Sprite)
	assert.Contains(t, records[0].PhotoURI, "file://")
}
