package secrets

import (
	"fmt"

	"github.com/99designs/keyring"
	"github.com/adrg/xdg"
)

// KeyringBackend implements Backend using the OS keyring.
type KeyringBackend struct {
	ring keyring.Keyring
}

// NewKeyringBackend opens the OS keyring for the axl-gallery service.
// Returns an error if the keyring is unavailable on this platform.
func NewKeyringBackend() (*KeyringBackend, error) {
	cfg := keyring.Config{
		ServiceName:              ServiceName,
		KeychainTrustApplication: true, // macOS: don't prompt every access
		FileDir:                  xdg.DataHome + "/axlkeep/keyring",
		FilePasswordFunc:         keyring.TerminalPrompt,
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open keyring: %w", err)
	}

	return &KeyringBackend{ring: ring}, nil
}

// Read retrieves a value by key from the keyring.
func (b *KeyringBackend) Read(key string) (string, error) {
	item, err := b.ring.Get(key)
	if err != nil {
		if err == keyring.ErrKeyNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("keyring read failed: %w", err)
	}
	return string(item.Data), nil
}

// Write stores a value in the keyring.
func (b *KeyringBackend) Write(key, value string) error {
	item := keyring.Item{
		Key:  key,
		Data: []byte(value),
	}
	if err := b.ring.Set(item); err != nil {
		return fmt.Errorf("keyring write failed: %w", err)
	}
	return nil
}

// Delete removes a value from the keyring.
func (b *KeyringBackend) Delete(key string) error {
	if err := b.ring.Remove(key); err != nil {
		if err == keyring.ErrKeyNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("keyring delete failed: %w", err)
	}
	return nil
}

// DeleteAll removes every key in the axl-gallery keyring service.
// The keyring API has no bulk delete, so keys are removed one by one.
func (b *KeyringBackend) DeleteAll() error {
	keys, err := b.ring.Keys()
	if err != nil {
		return fmt.Errorf("keyring list failed: %w", err)
	}
	for _, key := range keys {
		if err := b.ring.Remove(key); err != nil && err != keyring.ErrKeyNotFound {
			return fmt.Errorf("keyring delete failed for %q: %w", key, err)
		}
	}
	return nil
}

// Keys returns all keys stored in the keyring service.
func (b *KeyringBackend) Keys() ([]string, error) {
	keys, err := b.ring.Keys()
	if err != nil {
		return nil, fmt.Errorf("keyring list failed: %w", err)
	}
	return keys, nil
}
