package secrets

import "sync"

// MemoryBackend implements Backend with an in-process map. Nothing is
// encrypted or persisted; it exists for tests and dry-run mode.
type MemoryBackend struct {
	mu     sync.RWMutex
	values map[string]string
}

var _ Backend = (*MemoryBackend)(nil)

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: make(map[string]string)}
}

// Read retrieves a value by key.
func (b *MemoryBackend) Read(key string) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	value, ok := b.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

// Write stores a value.
func (b *MemoryBackend) Write(key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.values[key] = value
	return nil
}

// Delete removes a value.
func (b *MemoryBackend) Delete(key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.values[key]; !ok {
		return ErrNotFound
	}
	delete(b.values, key)
	return nil
}

// DeleteAll removes every value.
func (b *MemoryBackend) DeleteAll() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.values = make(map[string]string)
	return nil
}

// Keys returns all stored keys.
func (b *MemoryBackend) Keys() ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	keys := make([]string, 0, len(b.values))
	for k := range b.values {
		keys = append(keys, k)
	}
	return keys, nil
}

// Len reports the number of stored values.
func (b *MemoryBackend) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.values)
}
