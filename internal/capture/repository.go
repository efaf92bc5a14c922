package capture

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mmcdole/dexcam/internal/domain"
)

// KeyCaptures is the storage key of the persisted capture list
const KeyCaptures = "captures"

// Repository persists capture records as one JSON list.
// Every append rewrites the whole list; there is no incremental append primitive.
type Repository struct {
	store  domain.KVStore
	logger *slog.Logger
}

// NewRepository creates a capture repository over store.
func NewRepository(store domain.KVStore, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{store: store, logger: logger}
}

// List returns the persisted captures in insertion order.
// A missing or unparsable list is treated as empty. A storage read failure is
// returned as an error so that callers never mistake it for an empty list.
func (r *Repository) List() ([]domain.CaptureRecord, error) {
	raw, ok, err := r.store.Get(KeyCaptures)
	if err != nil {
		return nil, fmt.Errorf("failed to load captures: %w", err)
	}
	if !ok {
		return []domain.CaptureRecord{}, nil
	}
	var records []domain.CaptureRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		r.logger.Warn("capture list unparsable, starting fresh", "error", err)
		return []domain.CaptureRecord{}, nil
	}
	if records == nil {
		records = []domain.CaptureRecord{}
	}
	return records, nil
}

// Append adds rec to the end of the list and writes the list back in full.
// Nothing is written when the existing list cannot be read.
func (r *Repository) Append(rec domain.CaptureRecord) error {
	records, err := r.List()
	if err != nil {
		return err
	}
	records = append(records, rec)
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode captures: %w", err)
	}
	if err := r.store.Set(KeyCaptures, string(data)); err != nil {
		return fmt.Errorf("failed to save captures: %w", err)
	}
	r.logger.Debug("capture saved", "id", rec.ID, "count", len(records))
	return nil
}
