package credstore

import (
	"strconv"
	"strings"
)

// minAPITokenLength is the shape gate for API tokens: anything this short
// can't be a real gallery API token and is rejected without a backend call.
const minAPITokenLength = 20

// ValidAPITokenShape reports whether token looks like a plausible API token.
func ValidAPITokenShape(token string) bool {
	return len(token) > minAPITokenLength
}

// SaveAPIToken stores the gallery API token after a shape check.
func (s *Store) SaveAPIToken(token string) bool {
	if !ValidAPITokenShape(token) {
		s.logger.Warn("rejecting API token with implausible shape", "length", len(token))
		return false
	}
	return s.SaveString(KeyAPIToken, token)
}

// GetAPIToken retrieves the stored API token.
func (s *Store) GetAPIToken() (string, bool) {
	return s.GetString(KeyAPIToken)
}

// SaveRefreshToken stores the OAuth refresh token.
func (s *Store) SaveRefreshToken(token string) bool {
	return s.SaveString(KeyRefreshToken, token)
}

// GetRefreshToken retrieves the stored refresh token.
func (s *Store) GetRefreshToken() (string, bool) {
	return s.GetString(KeyRefreshToken)
}

// SaveBiometricEnabled stores the biometric-unlock flag.
func (s *Store) SaveBiometricEnabled(enabled bool) bool {
	return s.SaveString(KeyBiometricEnabled, strconv.FormatBool(enabled))
}

// BiometricEnabled reports whether biometric unlock is enabled. Only a
// stored value case-insensitively equal to "true" counts; anything else,
// including absence and backend failure, reads as false.
func (s *Store) BiometricEnabled() bool {
	value, ok := s.GetString(KeyBiometricEnabled)
	return ok && strings.EqualFold(value, "true")
}

// SaveDeviceID stores the device identifier.
func (s *Store) SaveDeviceID(id string) bool {
	return s.SaveString(KeyDeviceID, id)
}

// GetDeviceID retrieves the stored device identifier.
func (s *Store) GetDeviceID() (string, bool) {
	return s.GetString(KeyDeviceID)
}
