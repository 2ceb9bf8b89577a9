package credstore

// Source is a legacy credential source being moved into the store, such as
// the plaintext preferences file early gallery builds used. Delete removes
// a single entry from the source after it has been stored securely.
type Source interface {
	Entries() (map[string]string, error)
	Delete(key string) error
}

// MigrateMap stores each entry through SaveString with default validation
// and returns the number of successful writes. Individual failures don't
// abort the batch, and the call never errors.
func (s *Store) MigrateMap(credentials map[string]string) int {
	count := 0
	for key, value := range credentials {
		if s.SaveString(key, value) {
			count++
		}
	}
	return count
}

// Migrate moves credentials from src into the store and returns the number
// of successful writes. When deleteAfter is set, each entry is removed from
// the source once its secure write succeeded; entries that failed to store
// are left in place. Source failures are logged, never returned.
func (s *Store) Migrate(src Source, deleteAfter bool) int {
	entries, err := src.Entries()
	if err != nil {
		s.logger.Warn("migration source unreadable", "error", err)
		return 0
	}

	count := 0
	for key, value := range entries {
		if !s.SaveString(key, value) {
			continue
		}
		count++

		if deleteAfter {
			if err := src.Delete(key); err != nil {
				s.logger.Warn("failed to delete migrated entry from source", "key", key, "error", err)
			}
		}
	}

	s.logger.Debug("migration complete", "migrated", count, "total", len(entries))
	return count
}
