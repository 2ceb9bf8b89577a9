// Package credstore is the credential store for the axl-gallery apps: a
// fail-safe, namespaced wrapper over platform secure storage for small
// sensitive values (tokens, flags, device identifiers).
//
// No error ever crosses the package boundary. Every operation collapses to
// a boolean, an optional value, or a count; backend failures are logged and
// reported the same way as "not found". Callers that need best-effort
// credential persistence get a uniform, crash-free contract.
package credstore

import (
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/axl-labs/axlkeep/internal/secrets"
)

// Store wraps a secure-storage backend with key namespacing, validation,
// and the fail-safe boolean/optional call contract. Safe for concurrent
// use: every operation is a single self-contained backend call, and the
// backend handle is never mutated after construction.
type Store struct {
	backend secrets.Backend
	logger  *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the diagnostic logger. Logging is best-effort and never
// affects operation results.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates a Store over the given backend.
func New(backend secrets.Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	sharedOnce sync.Once
	shared     *Store
)

// Shared returns the process-wide store, constructing it on first use.
// Construction never fails observably: if the backend can't be configured,
// the returned store is defective and each operation fails (and logs)
// individually. Prefer New with an injected backend where practical; Shared
// exists for the app entry point.
func Shared() *Store {
	sharedOnce.Do(func() {
		backend, err := secrets.NewBackend("")
		if err != nil {
			slog.Warn("secure storage unavailable, credential operations will fail", "error", err)
			backend = &defectiveBackend{err: err}
		}
		shared = New(backend)
	})
	return shared
}

// defectiveBackend stands in when backend configuration failed at
// construction time. Every operation reports the original error.
type defectiveBackend struct {
	err error
}

func (b *defectiveBackend) Write(string, string) error  { return b.err }
func (b *defectiveBackend) Read(string) (string, error) { return "", b.err }
func (b *defectiveBackend) Delete(string) error         { return b.err }
func (b *defectiveBackend) DeleteAll() error            { return b.err }
func (b *defectiveBackend) Keys() ([]string, error)     { return nil, b.err }

// outcome is the internal three-state result of a backend lookup. Public
// methods collapse it to the boolean/optional contract; keeping the states
// separate internally leaves room to expose richer results later.
type outcome int

const (
	outcomeOK outcome = iota
	outcomeNotFound
	outcomeBackendError
)

// lookup reads the namespaced key and classifies the result.
func (s *Store) lookup(key string) (string, outcome) {
	namespaced := applyPrefix(key)
	value, err := s.backend.Read(namespaced)
	switch {
	case err == nil:
		return value, outcomeOK
	case errors.Is(err, secrets.ErrNotFound):
		return "", outcomeNotFound
	default:
		s.logger.Warn("credential read failed", "key", namespaced, "error", err)
		return "", outcomeBackendError
	}
}

// SaveOption adjusts a single save operation.
type SaveOption func(*saveConfig)

type saveConfig struct {
	validate bool
}

// SkipValidation disables the empty-value gate for one save. Used when an
// encoded value is legitimately allowed to be any string.
func SkipValidation() SaveOption {
	return func(c *saveConfig) {
		c.validate = false
	}
}

// SaveString stores value under the namespaced key. An empty value is
// rejected before any backend call unless SkipValidation is passed.
// Returns true on success; backend failures are logged and reported as false.
func (s *Store) SaveString(key, value string, opts ...SaveOption) bool {
	cfg := saveConfig{validate: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	namespaced := applyPrefix(key)
	if cfg.validate && value == "" {
		s.logger.Warn("refusing to store empty credential", "key", namespaced)
		return false
	}

	if err := s.backend.Write(namespaced, value); err != nil {
		s.logger.Warn("credential write failed", "key", namespaced, "error", err)
		return false
	}

	s.logger.Debug("credential stored", "key", namespaced)
	return true
}

// GetString retrieves the value stored under the namespaced key. The second
// result is false both when the key is absent and when the backend failed;
// callers cannot distinguish the two through this call.
func (s *Store) GetString(key string) (string, bool) {
	value, out := s.lookup(key)
	return value, out == outcomeOK
}

// DeleteKey removes the namespaced key. Deleting a key that does not exist
// succeeds; only a backend failure returns false.
func (s *Store) DeleteKey(key string) bool {
	namespaced := applyPrefix(key)
	if err := s.backend.Delete(namespaced); err != nil {
		if errors.Is(err, secrets.ErrNotFound) {
			return true
		}
		s.logger.Warn("credential delete failed", "key", namespaced, "error", err)
		return false
	}
	return true
}

// Exists reports whether a value is currently readable for the namespaced
// key. Same absent/error ambiguity as GetString.
func (s *Store) Exists(key string) bool {
	_, out := s.lookup(key)
	return out == outcomeOK
}

// Keys returns the namespaced keys currently stored under this store's
// prefix, or nil if the backend can't be listed.
func (s *Store) Keys() []string {
	all, err := s.backend.Keys()
	if err != nil {
		s.logger.Warn("credential list failed", "error", err)
		return nil
	}

	var keys []string
	for _, key := range all {
		if strings.HasPrefix(key, KeyPrefix) {
			keys = append(keys, key)
		}
	}
	return keys
}

// ClearAll removes every credential under this store's prefix. Destructive
// and irreversible. Entries other applications may have placed in a shared
// backend are left alone. Returns false only on backend failure.
func (s *Store) ClearAll() bool {
	all, err := s.backend.Keys()
	if err != nil {
		s.logger.Warn("credential list failed", "error", err)
		return false
	}

	ok := true
	for _, key := range all {
		if !strings.HasPrefix(key, KeyPrefix) {
			continue
		}
		if err := s.backend.Delete(key); err != nil && !errors.Is(err, secrets.ErrNotFound) {
			s.logger.Warn("credential delete failed", "key", key, "error", err)
			ok = false
		}
	}
	return ok
}
