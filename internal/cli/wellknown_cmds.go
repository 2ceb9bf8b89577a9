package cli

import (
	"fmt"
	"os"

	"github.com/axl-labs/axlkeep/internal/credstore"
	"github.com/axl-labs/axlkeep/internal/output"
)

// TokenSetCmd stores the gallery API token
type TokenSetCmd struct {
	Token string `arg:"" help:"API token value"`
}

// Run executes the token set command
func (cmd *TokenSetCmd) Run(sp *StoreProvider, fp *FormatterProvider) error {
	if !credstore.ValidAPITokenShape(cmd.Token) {
		return (&output.CLIError{
			Message:  fmt.Sprintf("Token too short (%d chars) to be a gallery API token", len(cmd.Token)),
			ExitCode: output.ExitUsage,
		}).WithHint("Real API tokens are longer than 20 characters")
	}

	store, err := sp.Store()
	if err != nil {
		return err
	}

	if !store.SaveAPIToken(cmd.Token) {
		return &output.CLIError{
			Message:  "Failed to store API token",
			ExitCode: output.ExitStoreError,
		}
	}

	fmt.Fprintln(os.Stderr, "Stored API token")
	return nil
}

// TokenGetCmd reads the gallery API token
type TokenGetCmd struct{}

// Run executes the token get command
func (cmd *TokenGetCmd) Run(sp *StoreProvider, fp *FormatterProvider) error {
	store, err := sp.Store()
	if err != nil {
		return err
	}

	token, ok := store.GetAPIToken()
	if !ok {
		return (&output.CLIError{
			Message:  "No API token stored",
			ExitCode: output.ExitNotFound,
		}).WithHint("Run: axlkeep token set <token>")
	}

	fmt.Println(token)
	return nil
}

// DeviceIDSetCmd stores the device identifier
type DeviceIDSetCmd struct {
	ID string `arg:"" help:"Device identifier"`
}

// Run executes the device-id set command
func (cmd *DeviceIDSetCmd) Run(sp *StoreProvider, fp *FormatterProvider) error {
	store, err := sp.Store()
	if err != nil {
		return err
	}

	if !store.SaveDeviceID(cmd.ID) {
		return &output.CLIError{
			Message:  "Failed to store device identifier",
			ExitCode: output.ExitStoreError,
		}
	}

	fmt.Fprintln(os.Stderr, "Stored device identifier")
	return nil
}

// DeviceIDGetCmd reads the device identifier
type DeviceIDGetCmd struct{}

// Run executes the device-id get command
func (cmd *DeviceIDGetCmd) Run(sp *StoreProvider, fp *FormatterProvider) error {
	store, err := sp.Store()
	if err != nil {
		return err
	}

	id, ok := store.GetDeviceID()
	if !ok {
		return &output.CLIError{
			Message:  "No device identifier stored",
			ExitCode: output.ExitNotFound,
		}
	}

	fmt.Println(id)
	return nil
}

// BiometricOnCmd enables biometric unlock
type BiometricOnCmd struct{}

// Run executes the biometric on command
func (cmd *BiometricOnCmd) Run(sp *StoreProvider, fp *FormatterProvider) error {
	return setBiometric(sp, true)
}

// BiometricOffCmd disables biometric unlock
type BiometricOffCmd struct{}

// Run executes the biometric off command
func (cmd *BiometricOffCmd) Run(sp *StoreProvider, fp *FormatterProvider) error {
	return setBiometric(sp, false)
}

func setBiometric(sp *StoreProvider, enabled bool) error {
	store, err := sp.Store()
	if err != nil {
		return err
	}

	if !store.SaveBiometricEnabled(enabled) {
		return &output.CLIError{
			Message:  "Failed to store biometric flag",
			ExitCode: output.ExitStoreError,
		}
	}

	fmt.Fprintf(os.Stderr, "Biometric unlock %s\n", map[bool]string{true: "enabled", false: "disabled"}[enabled])
	return nil
}

// BiometricStatusCmd shows whether biometric unlock is enabled
type BiometricStatusCmd struct{}

// Run executes the biometric status command
func (cmd *BiometricStatusCmd) Run(sp *StoreProvider, fp *FormatterProvider) error {
	store, err := sp.Store()
	if err != nil {
		return err
	}

	fmt.Println(store.BiometricEnabled())
	return nil
}
