package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/dexcam/internal/domain"
)

const (
	// DefaultBaseURL is the public PokeAPI v2 endpoint
	DefaultBaseURL = "https://pokeapi.co/api/v2"

	defaultTimeout = 60 * time.Second
)

// Client implements domain.CatalogSource for PokeAPI.
// Requests are never retried.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new PokeAPI client. A zero timeout uses the default.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// doRequest performs a GET against an absolute URL and returns the body
func (c *Client) doRequest(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("pokeapi request", "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("pokeapi request failed", "url", reqURL, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrServerOffline, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrNotFound
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("pokeapi request error", "status", resp.StatusCode, "url", reqURL)
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return body, nil
}

// GetIndex returns a page of name/reference pairs from /pokemon
func (c *Client) GetIndex(ctx context.Context, limit, offset int) ([]domain.IndexEntry, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	body, err := c.doRequest(ctx, fmt.Sprintf("%s/pokemon?%s", c.baseURL, query.Encode()))
	if err != nil {
		return nil, err
	}

	var resp IndexResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse index: %w", err)
	}

	return MapIndex(resp.Results), nil
}

// GetPokemon returns the primary detail record for an id or name
func (c *Client) GetPokemon(ctx context.Context, idOrName string) (*domain.PokemonRecord, error) {
	idOrName = strings.TrimSpace(idOrName)
	if idOrName == "" {
		return nil, domain.ErrNotFound
	}

	body, err := c.doRequest(ctx, fmt.Sprintf("%s/pokemon/%s", c.baseURL, url.PathEscape(idOrName)))
	if err != nil {
		return nil, err
	}

	var p Pokemon
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("failed to parse pokemon %q: %w", idOrName, err)
	}

	return MapPokemon(&p), nil
}

// GetSpecies fetches the species record at speciesURL and returns it unparsed
func (c *Client) GetSpecies(ctx context.Context, speciesURL string) ([]byte, error) {
	if speciesURL == "" {
		return nil, fmt.Errorf("species url is empty")
	}

	body, err := c.doRequest(ctx, speciesURL)
	if err != nil {
		return nil, err
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("species response is not valid JSON")
	}
	return CompactJSON(body), nil
}
