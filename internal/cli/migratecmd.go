package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/axl-labs/axlkeep/internal/output"
	"github.com/yosuke-furukawa/json5/encoding/json5"
)

// MigrateCmd imports credentials from a legacy plaintext file
type MigrateCmd struct {
	File         string `arg:"" type:"existingfile" help:"Legacy preferences file (flat JSON object)"`
	DeleteSource bool   `help:"Remove entries from the source file once stored securely"`
}

// MigrateResult summarizes a migration run
type MigrateResult struct {
	Migrated int
	Total    int
}

// Run executes the migrate command
func (cmd *MigrateCmd) Run(sp *StoreProvider, fp *FormatterProvider) error {
	store, err := sp.Store()
	if err != nil {
		return err
	}

	src, err := newFileSource(cmd.File)
	if err != nil {
		return &output.CLIError{
			Message:  fmt.Sprintf("Failed to read %s: %v", cmd.File, err),
			ExitCode: output.ExitUsage,
		}
	}

	total := len(src.entries)
	migrated := store.Migrate(src, cmd.DeleteSource)

	return fp.Formatter.Print(MigrateResult{Migrated: migrated, Total: total})
}

// fileSource adapts a legacy plaintext preferences file to the migration
// Source interface. Old gallery builds wrote flat JSON objects; values may
// be numbers or booleans, which migrate as their string form.
type fileSource struct {
	path    string
	entries map[string]string
}

func newFileSource(path string) (*fileSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := json5.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("not a flat JSON object: %w", err)
	}

	entries := make(map[string]string, len(raw))
	for k, v := range raw {
		entries[k] = fmt.Sprintf("%v", v)
	}

	return &fileSource{path: path, entries: entries}, nil
}

// Entries returns the credentials found in the source file.
func (s *fileSource) Entries() (map[string]string, error) {
	return s.entries, nil
}

// Delete removes a migrated entry and rewrites the source file, so a
// partially-migrated file can be re-run without duplicating work.
func (s *fileSource) Delete(key string) error {
	delete(s.entries, key)

	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}
