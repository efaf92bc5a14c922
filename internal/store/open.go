package store

import (
	"fmt"
	"log/slog"

	"github.com/mmcdole/dexcam/internal/domain"
)

// Driver names accepted by Open
const (
	DriverBolt   = "bolt"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Open creates the store selected by driver. An empty driver means bolt.
func Open(driver, path string, logger *slog.Logger) (domain.KVStore, error) {
	switch driver {
	case "", DriverBolt:
		return NewBoltStore(path, logger)
	case DriverSQLite:
		return NewSQLiteStore(path, logger)
	case DriverMemory:
		return NewBoltStore("", logger)
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", driver)
	}
}
