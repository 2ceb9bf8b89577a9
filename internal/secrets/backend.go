package secrets

import "errors"

// Backend is the platform secure-storage capability: encrypted-at-rest
// persistence of UTF-8 string values keyed by UTF-8 string keys.
// Implementations: OS keyring, encrypted file, in-memory (tests/dry-run).
type Backend interface {
	Write(key, value string) error
	Read(key string) (string, error)
	Delete(key string) error
	DeleteAll() error
	Keys() ([]string, error)
}

// ErrNotFound is returned when a key is not present in the backend.
var ErrNotFound = errors.New("key not found")

// ServiceName is the service identifier for keyring storage.
const ServiceName = "axl-gallery"
