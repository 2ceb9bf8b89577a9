package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileBackend(t *testing.T) *FileBackend {
	t.Helper()
	backend, err := NewFileBackend(t.TempDir(), "test-password")
	require.NoError(t, err)
	return backend
}

func TestFileBackendRoundTrip(t *testing.T) {
	backend := newTestFileBackend(t)

	require.NoError(t, backend.Write("k", "secret value"))

	value, err := backend.Read("k")
	require.NoError(t, err)
	assert.Equal(t, "secret value", value)
}

func TestFileBackendReadMissing(t *testing.T) {
	backend := newTestFileBackend(t)

	_, err := backend.Read("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	// Missing file and missing key look the same
	require.NoError(t, backend.Write("other", "v"))
	_, err = backend.Read("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileBackendDelete(t *testing.T) {
	backend := newTestFileBackend(t)

	require.NoError(t, backend.Write("k", "v"))
	require.NoError(t, backend.Delete("k"))

	_, err := backend.Read("k")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, backend.Delete("k"), ErrNotFound)
}

func TestFileBackendDeleteAll(t *testing.T) {
	dir := t.TempDir()
	backend, err := NewFileBackend(dir, "pw")
	require.NoError(t, err)

	require.NoError(t, backend.Write("a", "1"))
	require.NoError(t, backend.DeleteAll())

	_, statErr := os.Stat(filepath.Join(dir, "credentials.enc"))
	assert.True(t, os.IsNotExist(statErr))

	keys, err := backend.Keys()
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestFileBackendKeys(t *testing.T) {
	backend := newTestFileBackend(t)

	require.NoError(t, backend.Write("a", "1"))
	require.NoError(t, backend.Write("b", "2"))

	keys, err := backend.Keys()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, keys)
}

func TestFileBackendWrongPassword(t *testing.T) {
	dir := t.TempDir()

	backend, err := NewFileBackend(dir, "correct")
	require.NoError(t, err)
	require.NoError(t, backend.Write("k", "v"))

	intruder, err := NewFileBackend(dir, "wrong")
	require.NoError(t, err)

	_, err = intruder.Read("k")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestFileBackendPersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	first, err := NewFileBackend(dir, "pw")
	require.NoError(t, err)
	require.NoError(t, first.Write("k", "v"))

	second, err := NewFileBackend(dir, "pw")
	require.NoError(t, err)

	value, err := second.Read("k")
	require.NoError(t, err)
	assert.Equal(t, "v", value)
}

func TestFileBackendEncryptDecryptRoundTrip(t *testing.T) {
	backend := newTestFileBackend(t)

	plaintext := []byte(`{"key":"value"}`)
	ciphertext, err := backend.encrypt(plaintext)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, ciphertext)

	decrypted, err := backend.decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestFileBackendDecryptTruncatedCiphertext(t *testing.T) {
	backend := newTestFileBackend(t)

	_, err := backend.decrypt([]byte("short"))
	assert.Error(t, err)
}
