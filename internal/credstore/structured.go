package credstore

import (
	"encoding/json"
	"strings"
)

// SaveStructured stores a flat string-to-string mapping as a single encoded
// value under the namespaced key. An empty mapping is rejected before any
// backend call. Values are encoded with proper escaping, so keys and values
// may contain any characters.
func (s *Store) SaveStructured(key string, values map[string]string) bool {
	if len(values) == 0 {
		s.logger.Warn("refusing to store empty credential map", "key", applyPrefix(key))
		return false
	}

	encoded, err := json.Marshal(values)
	if err != nil {
		// Unreachable for map[string]string, kept for the contract.
		s.logger.Warn("credential map encode failed", "key", applyPrefix(key), "error", err)
		return false
	}

	return s.SaveString(key, string(encoded), SkipValidation())
}

// GetStructured retrieves and decodes the mapping stored under the
// namespaced key. Returns an empty map when the key is absent or the
// backend failed; decode problems never surface as errors.
func (s *Store) GetStructured(key string) map[string]string {
	encoded, ok := s.GetString(key)
	if !ok {
		return map[string]string{}
	}
	return decodeFlatMap(encoded)
}

// decodeFlatMap decodes an encoded flat mapping. Values written by current
// builds are JSON; values written by early gallery builds used an informal
// {"k":"v"} encoding with no escaping, so a lenient splitter handles
// anything JSON rejects.
func decodeFlatMap(encoded string) map[string]string {
	var values map[string]string
	if err := json.Unmarshal([]byte(encoded), &values); err == nil && values != nil {
		return values
	}
	return legacyDecodeFlatMap(encoded)
}

// legacyDecodeFlatMap is the lenient decoder for the informal legacy
// encoding: strip the outer braces, split fields on commas, split each
// field on the first colon, trim quotes and spaces. Purely syntactic;
// fields that don't split into exactly two parts are dropped silently.
func legacyDecodeFlatMap(encoded string) map[string]string {
	values := map[string]string{}

	trimmed := strings.TrimSpace(encoded)
	trimmed = strings.TrimPrefix(trimmed, "{")
	trimmed = strings.TrimSuffix(trimmed, "}")
	if trimmed == "" {
		return values
	}

	for _, field := range strings.Split(trimmed, ",") {
		parts := strings.Split(field, ":")
		if len(parts) != 2 {
			continue
		}
		k := strings.Trim(parts[0], `" `)
		v := strings.Trim(parts[1], `" `)
		if k == "" {
			continue
		}
		values[k] = v
	}

	return values
}
