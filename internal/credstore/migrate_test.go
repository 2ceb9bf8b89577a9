package credstore

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapSource is an in-memory migration Source.
type mapSource struct {
	entries   map[string]string
	deleted   []string
	deleteErr error
}

func (s *mapSource) Entries() (map[string]string, error) {
	if s.entries == nil {
		return nil, errors.New("source unreadable")
	}
	return s.entries, nil
}

func (s *mapSource) Delete(key string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, key)
	return nil
}

func TestMigrateMapCountsSuccesses(t *testing.T) {
	store, _ := newTestStore(t)

	migrated := store.MigrateMap(map[string]string{
		"a": "valid-token-over-20-chars-long-enough",
		"b": "",
	})

	// The empty value fails default validation; the batch continues
	assert.Equal(t, 1, migrated)
	assert.True(t, store.Exists("a"))
	assert.False(t, store.Exists("b"))
}

func TestMigrateMapAllFailuresOnBrokenBackend(t *testing.T) {
	store := New(failingBackend{}, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	migrated := store.MigrateMap(map[string]string{"a": "1", "b": "2"})
	assert.Zero(t, migrated)
}

func TestMigrateDeletesStoredEntriesFromSource(t *testing.T) {
	store, _ := newTestStore(t)

	src := &mapSource{entries: map[string]string{
		"token":  "value-long-enough-to-store",
		"broken": "",
	}}

	migrated := store.Migrate(src, true)

	assert.Equal(t, 1, migrated)
	assert.Equal(t, []string{"token"}, src.deleted, "only stored entries leave the source")

	value, ok := store.GetString("token")
	require.True(t, ok)
	assert.Equal(t, "value-long-enough-to-store", value)
}

func TestMigrateWithoutDeleteLeavesSourceAlone(t *testing.T) {
	store, _ := newTestStore(t)

	src := &mapSource{entries: map[string]string{"k": "v"}}

	migrated := store.Migrate(src, false)

	assert.Equal(t, 1, migrated)
	assert.Empty(t, src.deleted)
}

func TestMigrateSourceDeleteFailureDoesNotAffectCount(t *testing.T) {
	store, _ := newTestStore(t)

	src := &mapSource{
		entries:   map[string]string{"k": "v"},
		deleteErr: errors.New("source is read-only"),
	}

	migrated := store.Migrate(src, true)
	assert.Equal(t, 1, migrated)
	assert.True(t, store.Exists("k"))
}

func TestMigrateUnreadableSource(t *testing.T) {
	store, _ := newTestStore(t)

	migrated := store.Migrate(&mapSource{entries: nil}, false)
	assert.Zero(t, migrated)
}
