package source

import (
	"fmt"
	"log/slog"
	"net/url"

	"github.com/mmcdole/dexcam/internal/adapter"
	"github.com/mmcdole/dexcam/internal/adapter/source/pokeapi"
	"github.com/mmcdole/dexcam/internal/domain"
)

// NewClientFromConfig creates the catalog source described by the application config.
func NewClientFromConfig(cfg *adapter.Config, logger *slog.Logger) (domain.CatalogSource, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("api base URL is required")
	}

	u, err := url.Parse(cfg.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid api base URL: %q", cfg.API.BaseURL)
	}

	return pokeapi.NewClient(cfg.API.BaseURL, cfg.API.Timeout, logger), nil
}
