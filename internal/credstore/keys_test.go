package credstore

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyPrefix(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected string
	}{
		{name: "bare key", key: "api_token", expected: "axl_gallery_api_token"},
		{name: "already prefixed", key: "axl_gallery_api_token", expected: "axl_gallery_api_token"},
		{name: "empty key", key: "", expected: "axl_gallery_"},
		{name: "prefix-like substring not at start", key: "my_axl_gallery_key", expected: "axl_gallery_my_axl_gallery_key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, applyPrefix(tt.key))
		})
	}
}

func TestApplyPrefixIdempotent(t *testing.T) {
	keys := []string{"a", "api_token", "axl_gallery_device_id", "", "with spaces"}
	for _, key := range keys {
		once := applyPrefix(key)
		assert.Equal(t, once, applyPrefix(once))
	}
}

func TestWellKnownKeysCarryPrefix(t *testing.T) {
	wellKnown := []string{
		KeyAPIToken,
		KeyRefreshToken,
		KeyUserCredentials,
		KeyDatabasePassword,
		KeyEncryptionKey,
		KeyBiometricEnabled,
		KeyDeviceID,
	}

	seen := map[string]bool{}
	for _, key := range wellKnown {
		assert.True(t, strings.HasPrefix(key, KeyPrefix), "key %q must be namespaced", key)
		assert.False(t, seen[key], "key %q duplicated", key)
		seen[key] = true
	}
}
