package credstore

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/axl-labs/axlkeep/internal/secrets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBackend = errors.New("backend exploded")

// failingBackend fails every operation, standing in for platform-level
// encryption or storage errors.
type failingBackend struct{}

func (failingBackend) Write(string, string) error  { return errBackend }
func (failingBackend) Read(string) (string, error) { return "", errBackend }
func (failingBackend) Delete(string) error         { return errBackend }
func (failingBackend) DeleteAll() error            { return errBackend }
func (failingBackend) Keys() ([]string, error)     { return nil, errBackend }

// countingBackend records how many writes reached the backend.
type countingBackend struct {
	secrets.Backend
	writes int
}

func (b *countingBackend) Write(key, value string) error {
	b.writes++
	return b.Backend.Write(key, value)
}

func newTestStore(t *testing.T) (*Store, *secrets.MemoryBackend) {
	t.Helper()
	backend := secrets.NewMemoryBackend()
	store := New(backend, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	return store, backend
}

func TestSaveAndGetRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)

	require.True(t, store.SaveString("session_flag", "yes"))

	value, ok := store.GetString("session_flag")
	assert.True(t, ok)
	assert.Equal(t, "yes", value)
}

func TestGetAcceptsPrefixedAndBareKeys(t *testing.T) {
	store, _ := newTestStore(t)

	require.True(t, store.SaveString("device_marker", "m-1"))

	bare, ok := store.GetString("device_marker")
	assert.True(t, ok)
	prefixed, ok2 := store.GetString(KeyPrefix + "device_marker")
	assert.True(t, ok2)
	assert.Equal(t, bare, prefixed)
}

func TestKeysAreNamespacedInBackend(t *testing.T) {
	store, backend := newTestStore(t)

	require.True(t, store.SaveString("plain_key", "v"))

	_, err := backend.Read(KeyPrefix + "plain_key")
	assert.NoError(t, err)
	_, err = backend.Read("plain_key")
	assert.ErrorIs(t, err, secrets.ErrNotFound)
}

func TestSaveEmptyValueRejected(t *testing.T) {
	backend := &countingBackend{Backend: secrets.NewMemoryBackend()}
	store := New(backend, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	require.True(t, store.SaveString("k", "original"))
	writesBefore := backend.writes

	assert.False(t, store.SaveString("k", ""))
	assert.Equal(t, writesBefore, backend.writes, "validation failure must not touch the backend")

	// Previously stored value is untouched
	value, ok := store.GetString("k")
	assert.True(t, ok)
	assert.Equal(t, "original", value)
}

func TestSaveEmptyValueWithSkipValidation(t *testing.T) {
	store, _ := newTestStore(t)

	assert.True(t, store.SaveString("k", "", SkipValidation()))

	value, ok := store.GetString("k")
	assert.True(t, ok)
	assert.Empty(t, value)
}

func TestGetMissingKey(t *testing.T) {
	store, _ := newTestStore(t)

	value, ok := store.GetString("never_written")
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestBackendFailureCollapsesToFalse(t *testing.T) {
	store := New(failingBackend{}, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	assert.False(t, store.SaveString("k", "v"))

	value, ok := store.GetString("k")
	assert.False(t, ok)
	assert.Empty(t, value)

	assert.False(t, store.Exists("k"))
	assert.False(t, store.DeleteKey("k"))
	assert.False(t, store.ClearAll())
	assert.Nil(t, store.Keys())
}

func TestDeleteIsIdempotent(t *testing.T) {
	store, _ := newTestStore(t)

	// Deleting a key that was never written still succeeds
	assert.True(t, store.DeleteKey("ghost"))

	require.True(t, store.SaveString("k", "v"))
	assert.True(t, store.DeleteKey("k"))
	assert.True(t, store.DeleteKey("k"))
	assert.False(t, store.Exists("k"))
}

func TestExists(t *testing.T) {
	store, _ := newTestStore(t)

	assert.False(t, store.Exists("k"))
	require.True(t, store.SaveString("k", "v"))
	assert.True(t, store.Exists("k"))
}

func TestClearAllIsPrefixScoped(t *testing.T) {
	store, backend := newTestStore(t)

	require.True(t, store.SaveString("one", "1"))
	require.True(t, store.SaveString("two", "2"))
	// Entry owned by another application sharing the backend
	require.NoError(t, backend.Write("other_app_secret", "keep-me"))

	assert.True(t, store.ClearAll())

	assert.False(t, store.Exists("one"))
	assert.False(t, store.Exists("two"))

	kept, err := backend.Read("other_app_secret")
	require.NoError(t, err)
	assert.Equal(t, "keep-me", kept)
}

func TestKeysListsOnlyOwnedEntries(t *testing.T) {
	store, backend := newTestStore(t)

	require.True(t, store.SaveString("alpha", "1"))
	require.NoError(t, backend.Write("foreign_entry", "x"))

	keys := store.Keys()
	assert.Equal(t, []string{KeyPrefix + "alpha"}, keys)
}
