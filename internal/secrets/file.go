package secrets

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/cenkalti/backoff/v4"
	"github.com/gofrs/flock"
)

// lockTimeout bounds how long a single operation waits for the store lock.
const lockTimeout = 10 * time.Second

var errLockHeld = errors.New("store lock held by another process")

// FileBackend implements Backend using an AES-256-GCM encrypted file.
// This is a fallback for environments where the OS keyring is unavailable
// (WSL, headless, Docker). A cross-process file lock serializes access so
// concurrent CLI invocations don't clobber each other's writes.
type FileBackend struct {
	path     string
	lockPath string
	key      []byte
}

// NewFileBackend creates a file-backed store rooted at dir (the default
// XDG data directory when dir is empty). If password is empty, a
// machine-specific default key is derived (less secure, prints a warning).
// Future improvement: use scrypt or argon2 for key derivation instead of sha256.
func NewFileBackend(dir, password string) (*FileBackend, error) {
	if dir == "" {
		dir = filepath.Join(xdg.DataHome, "axlkeep")
	}
	path := filepath.Join(dir, "credentials.enc")

	var key []byte
	if password == "" {
		// Machine-specific default (less secure than user-provided password)
		hostname, _ := os.Hostname()
		username := os.Getenv("USER")
		if username == "" {
			username = os.Getenv("USERNAME") // Windows fallback
		}
		machineID := fmt.Sprintf("%s@%s", username, hostname)
		hash := sha256.Sum256([]byte(machineID))
		key = hash[:]
		warnOnce("WARNING: Using machine-specific encryption key. For better security, set a password via AXLKEEP_STORE_PASSWORD env var.")
	} else {
		hash := sha256.Sum256([]byte(password))
		key = hash[:]
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create credentials directory: %w", err)
	}

	return &FileBackend{
		path:     path,
		lockPath: path + ".lock",
		key:      key,
	}, nil
}

// withLock acquires the cross-process lock, retrying with exponential
// backoff until lockTimeout, then runs fn.
func (b *FileBackend) withLock(fn func() error) error {
	lock := flock.New(b.lockPath)
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	acquire := func() error {
		locked, err := lock.TryLock()
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to acquire lock: %w", err))
		}
		if !locked {
			return errLockHeld
		}
		return nil
	}

	if err := backoff.Retry(acquire, backoff.WithContext(backoff.NewExponentialBackOff(), ctx)); err != nil {
		return err
	}
	defer lock.Unlock()

	return fn()
}

// encrypt encrypts plaintext using AES-256-GCM with a random 12-byte nonce.
// The nonce is prepended to the ciphertext.
func (b *FileBackend) encrypt(plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(b.key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// decrypt decrypts ciphertext that was encrypted with encrypt().
// Extracts the nonce from the first 12 bytes.
func (b *FileBackend) decrypt(ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(b.key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	nonceSize := gcm.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}

	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %w", err)
	}

	return plaintext, nil
}

// readAll decrypts and parses the credential file.
// Returns an empty map if the file doesn't exist.
func (b *FileBackend) readAll() (map[string]string, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	if len(data) == 0 {
		return make(map[string]string), nil
	}

	plaintext, err := b.decrypt(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt credentials: %w", err)
	}

	var values map[string]string
	if err := json.Unmarshal(plaintext, &values); err != nil {
		return nil, fmt.Errorf("failed to parse credentials: %w", err)
	}

	return values, nil
}

// writeAll encrypts and writes the credential map to disk.
func (b *FileBackend) writeAll(values map[string]string) error {
	plaintext, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to serialize credentials: %w", err)
	}

	ciphertext, err := b.encrypt(plaintext)
	if err != nil {
		return err
	}

	if err := os.WriteFile(b.path, ciphertext, 0600); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}

	return nil
}

// Read retrieves a value by key from the encrypted file.
func (b *FileBackend) Read(key string) (string, error) {
	var value string
	err := b.withLock(func() error {
		values, err := b.readAll()
		if err != nil {
			return err
		}

		v, ok := values[key]
		if !ok {
			return ErrNotFound
		}
		value = v
		return nil
	})
	return value, err
}

// Write stores a value in the encrypted file.
func (b *FileBackend) Write(key, value string) error {
	return b.withLock(func() error {
		values, err := b.readAll()
		if err != nil {
			return err
		}

		values[key] = value
		return b.writeAll(values)
	})
}

// Delete removes a value from the encrypted file.
func (b *FileBackend) Delete(key string) error {
	return b.withLock(func() error {
		values, err := b.readAll()
		if err != nil {
			return err
		}

		if _, ok := values[key]; !ok {
			return ErrNotFound
		}

		delete(values, key)
		return b.writeAll(values)
	})
}

// DeleteAll removes the credential file entirely.
func (b *FileBackend) DeleteAll() error {
	return b.withLock(func() error {
		if err := os.Remove(b.path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to delete credentials file: %w", err)
		}
		return nil
	})
}

// Keys returns all keys from the encrypted file.
func (b *FileBackend) Keys() ([]string, error) {
	var keys []string
	err := b.withLock(func() error {
		values, err := b.readAll()
		if err != nil {
			return err
		}

		keys = make([]string, 0, len(values))
		for k := range values {
			keys = append(keys, k)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}
