package credstore

import (
	"io"
	"log/slog"
	"testing"

	"github.com/axl-labs/axlkeep/internal/secrets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)

	values := map[string]string{
		"username": "casey",
		"host":     "sync.axl.example",
		"port":     "8443",
	}

	require.True(t, store.SaveStructured("sync_settings", values))
	assert.Equal(t, values, store.GetStructured("sync_settings"))
}

func TestStructuredRoundTripWithDelimiterCharacters(t *testing.T) {
	store, _ := newTestStore(t)

	// Commas, colons and quotes inside values corrupted the legacy
	// encoding; the JSON encoding must round-trip them intact.
	values := map[string]string{
		"note":  `contains "quotes", commas, and : colons`,
		"empty": "",
	}

	require.True(t, store.SaveStructured("tricky", values))
	assert.Equal(t, values, store.GetStructured("tricky"))
}

func TestSaveStructuredRejectsEmptyMap(t *testing.T) {
	backend := &countingBackend{Backend: secrets.NewMemoryBackend()}
	store := New(backend, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	assert.False(t, store.SaveStructured("k", map[string]string{}))
	assert.False(t, store.SaveStructured("k", nil))
	assert.Zero(t, backend.writes, "empty mapping must not reach the backend")
}

func TestGetStructuredMissingKeyReturnsEmptyMap(t *testing.T) {
	store, _ := newTestStore(t)

	values := store.GetStructured("never_written")
	assert.NotNil(t, values)
	assert.Empty(t, values)
}

func TestGetStructuredDecodesLegacyEncoding(t *testing.T) {
	store, backend := newTestStore(t)

	// Early gallery builds wrote the informal unescaped encoding
	require.NoError(t, backend.Write(KeyPrefix+"old_prefs", `{"quality":"high","wifi_only":true}`))

	values := store.GetStructured("old_prefs")
	assert.Equal(t, "high", values["quality"])
	assert.Equal(t, "true", values["wifi_only"])
}

func TestLegacyDecodeFlatMap(t *testing.T) {
	tests := []struct {
		name     string
		encoded  string
		expected map[string]string
	}{
		{
			name:     "well formed",
			encoded:  `{"a":"1","b":"2"}`,
			expected: map[string]string{"a": "1", "b": "2"},
		},
		{
			name:     "whitespace around fields",
			encoded:  `{ "a" : "1" , "b" : "2" }`,
			expected: map[string]string{"a": "1", "b": "2"},
		},
		{
			name:     "empty object",
			encoded:  "{}",
			expected: map[string]string{},
		},
		{
			name:     "malformed field dropped, rest kept",
			encoded:  `{"a":"1","orphan","b":"2"}`,
			expected: map[string]string{"a": "1", "b": "2"},
		},
		{
			name:     "field with extra colon dropped",
			encoded:  `{"a":"1","t":"09:30"}`,
			expected: map[string]string{"a": "1"},
		},
		{
			name:     "garbage yields empty map",
			encoded:  "not an object at all",
			expected: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, legacyDecodeFlatMap(tt.encoded))
		})
	}
}
