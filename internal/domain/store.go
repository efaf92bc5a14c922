package domain

// KVStore is a flat string key-value store.
// Reads and writes are atomic per key; there are no cross-key transactions.
type KVStore interface {
	// Get returns the stored value and true, or false when the key is absent.
	// A non-nil error means the backend could not be read; absence is not an error.
	Get(key string) (string, bool, error)

	// Set writes value under key, replacing any previous value
	Set(key, value string) error

	Close() error
}
