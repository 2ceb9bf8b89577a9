package credstore

import "strings"

// KeyPrefix namespaces every key this store persists, so axl-gallery
// credentials can't collide with other entries in a shared backend.
const KeyPrefix = "axl_gallery_"

// Well-known credential keys. These strings are stable across releases;
// renaming any of them requires migrating values already on devices.
const (
	KeyAPIToken         = KeyPrefix + "api_token"
	KeyRefreshToken     = KeyPrefix + "refresh_token"
	KeyUserCredentials  = KeyPrefix + "user_credentials"
	KeyDatabasePassword = KeyPrefix + "db_password"
	KeyEncryptionKey    = KeyPrefix + "encryption_key"
	KeyBiometricEnabled = KeyPrefix + "biometric_enabled"
	KeyDeviceID         = KeyPrefix + "device_id"
)

// applyPrefix namespaces a key. Idempotent: an already-prefixed key is
// returned unchanged, so callers may pass either form.
func applyPrefix(key string) string {
	if strings.HasPrefix(key, KeyPrefix) {
		return key
	}
	return KeyPrefix + key
}
