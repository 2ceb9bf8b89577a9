package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/axl-labs/axlkeep/internal/credstore"
	"github.com/axl-labs/axlkeep/internal/output"
)

// GetCmd reads a stored credential
type GetCmd struct {
	Key string `arg:"" help:"Credential key (prefixed or bare)"`
}

// Run executes the get command
func (cmd *GetCmd) Run(sp *StoreProvider, fp *FormatterProvider) error {
	store, err := sp.Store()
	if err != nil {
		return err
	}

	value, ok := store.GetString(cmd.Key)
	if !ok {
		return (&output.CLIError{
			Message:  fmt.Sprintf("No credential stored for %s", cmd.Key),
			ExitCode: output.ExitNotFound,
		}).WithHint("Run: axlkeep list")
	}

	fmt.Println(value)
	return nil
}

// SetCmd stores a credential
type SetCmd struct {
	Key        string `arg:"" help:"Credential key (prefixed or bare)"`
	Value      string `arg:"" help:"Value to store"`
	NoValidate bool   `help:"Allow storing an empty value"`
}

// Run executes the set command
func (cmd *SetCmd) Run(sp *StoreProvider, fp *FormatterProvider) error {
	store, err := sp.Store()
	if err != nil {
		return err
	}

	var opts []credstore.SaveOption
	if cmd.NoValidate {
		opts = append(opts, credstore.SkipValidation())
	}

	if !store.SaveString(cmd.Key, cmd.Value, opts...) {
		if cmd.Value == "" && !cmd.NoValidate {
			return (&output.CLIError{
				Message:  "Refusing to store an empty value",
				ExitCode: output.ExitUsage,
			}).WithHint("Pass --no-validate to store it anyway")
		}
		return &output.CLIError{
			Message:  fmt.Sprintf("Failed to store credential %s", cmd.Key),
			ExitCode: output.ExitStoreError,
		}
	}

	fmt.Fprintf(os.Stderr, "Stored %s\n", cmd.Key)
	return nil
}

// DeleteCmd removes a stored credential
type DeleteCmd struct {
	Key string `arg:"" help:"Credential key (prefixed or bare)"`
}

// Run executes the delete command
func (cmd *DeleteCmd) Run(sp *StoreProvider, fp *FormatterProvider) error {
	store, err := sp.Store()
	if err != nil {
		return err
	}

	if !store.DeleteKey(cmd.Key) {
		return &output.CLIError{
			Message:  fmt.Sprintf("Failed to delete credential %s", cmd.Key),
			ExitCode: output.ExitStoreError,
		}
	}

	fmt.Fprintf(os.Stderr, "Deleted %s\n", cmd.Key)
	return nil
}

// ExistsCmd checks whether a credential is stored
type ExistsCmd struct {
	Key string `arg:"" help:"Credential key (prefixed or bare)"`
}

// Run executes the exists command
func (cmd *ExistsCmd) Run(sp *StoreProvider, fp *FormatterProvider) error {
	store, err := sp.Store()
	if err != nil {
		return err
	}

	fmt.Println(store.Exists(cmd.Key))
	return nil
}

// ListCmd lists stored credential keys
type ListCmd struct{}

// Run executes the list command
func (cmd *ListCmd) Run(sp *StoreProvider, fp *FormatterProvider) error {
	store, err := sp.Store()
	if err != nil {
		return err
	}

	keys := store.Keys()
	sort.Strings(keys)

	rows := make([]map[string]string, len(keys))
	for i, key := range keys {
		rows[i] = map[string]string{"key": key}
	}

	return fp.Formatter.PrintList(rows, []output.Column{
		{Name: "Key", Key: "key"},
	})
}

// ClearCmd removes stored credentials
type ClearCmd struct {
	Everything bool `help:"Wipe the entire backend, not just axl-gallery keys"`
}

// Run executes the clear command
func (cmd *ClearCmd) Run(sp *StoreProvider, fp *FormatterProvider, globals *Globals) error {
	if !globals.Force {
		return (&output.CLIError{
			Message:  "Refusing to clear credentials without confirmation",
			ExitCode: output.ExitUsage,
		}).WithHint("Pass --force to proceed; this cannot be undone")
	}

	if cmd.Everything {
		backend, err := sp.Backend()
		if err != nil {
			return err
		}
		if err := backend.DeleteAll(); err != nil {
			return &output.CLIError{
				Message:  fmt.Sprintf("Failed to clear backend: %v", err),
				ExitCode: output.ExitStoreError,
			}
		}
		fmt.Fprintln(os.Stderr, "Cleared entire backend")
		return nil
	}

	store, err := sp.Store()
	if err != nil {
		return err
	}

	if !store.ClearAll() {
		return &output.CLIError{
			Message:  "Failed to clear stored credentials",
			ExitCode: output.ExitStoreError,
		}
	}

	fmt.Fprintln(os.Stderr, "Cleared axl-gallery credentials")
	return nil
}
