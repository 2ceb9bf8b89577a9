package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/axl-labs/axlkeep/internal/config"
	"github.com/axl-labs/axlkeep/internal/output"
)

// validConfigValues constrains the enumerated config keys
var validConfigValues = map[string][]string{
	"backend":        {"auto", "keyring", "file"},
	"default_output": {"json", "plain", "rich"},
}

// ConfigGetCmd implements config get command
type ConfigGetCmd struct {
	Key string `arg:"" help:"Config key to get (e.g., backend, default_output)"`
}

// Run executes the get command
func (cmd *ConfigGetCmd) Run(cfg *config.Config, fp *FormatterProvider) error {
	value, err := cfg.Get(cmd.Key)
	if err != nil {
		return &output.CLIError{
			Message:  fmt.Sprintf("Unknown config key: %s", cmd.Key),
			ExitCode: output.ExitNotFound,
		}
	}

	fmt.Println(value)
	return nil
}

// ConfigSetCmd implements config set command
type ConfigSetCmd struct {
	Key   string `arg:"" help:"Config key to set"`
	Value string `arg:"" help:"Value to set"`
}

// Run executes the set command
func (cmd *ConfigSetCmd) Run(cfg *config.Config, fp *FormatterProvider) error {
	if _, err := cfg.Get(cmd.Key); err != nil {
		return &output.CLIError{
			Message:  fmt.Sprintf("Unknown config key: %s", cmd.Key),
			ExitCode: output.ExitUsage,
		}
	}

	if allowed, ok := validConfigValues[cmd.Key]; ok {
		valid := false
		for _, v := range allowed {
			if cmd.Value == v {
				valid = true
				break
			}
		}
		if !valid {
			return &output.CLIError{
				Message:  fmt.Sprintf("Invalid value for %s: %s. Valid values: %s", cmd.Key, cmd.Value, strings.Join(allowed, ", ")),
				ExitCode: output.ExitUsage,
			}
		}
	}

	if err := cfg.Set(cmd.Key, cmd.Value); err != nil {
		return &output.CLIError{
			Message:  fmt.Sprintf("Failed to set config: %v", err),
			ExitCode: output.ExitConfigError,
		}
	}

	fmt.Fprintf(os.Stderr, "Set %s = %s\n", cmd.Key, cmd.Value)
	return nil
}

// ConfigUnsetCmd implements config unset command
type ConfigUnsetCmd struct {
	Key string `arg:"" help:"Config key to remove"`
}

// Run executes the unset command
func (cmd *ConfigUnsetCmd) Run(cfg *config.Config, fp *FormatterProvider) error {
	if _, err := cfg.Get(cmd.Key); err != nil {
		return &output.CLIError{
			Message:  fmt.Sprintf("Unknown config key: %s", cmd.Key),
			ExitCode: output.ExitUsage,
		}
	}

	if err := cfg.Unset(cmd.Key); err != nil {
		return &output.CLIError{
			Message:  fmt.Sprintf("Failed to unset config: %v", err),
			ExitCode: output.ExitConfigError,
		}
	}

	fmt.Fprintf(os.Stderr, "Unset %s\n", cmd.Key)
	return nil
}

// ConfigListCmd implements config list command
type ConfigListCmd struct{}

// Run executes the list command
func (cmd *ConfigListCmd) Run(cfg *config.Config, fp *FormatterProvider) error {
	rows := make([]map[string]string, 0)
	for _, key := range cfg.Keys() {
		value, err := cfg.Get(key)
		if err != nil {
			continue
		}
		rows = append(rows, map[string]string{"key": key, "value": value})
	}

	return fp.Formatter.PrintList(rows, []output.Column{
		{Name: "Key", Key: "key"},
		{Name: "Value", Key: "value"},
	})
}

// ConfigPathCmd implements config path command
type ConfigPathCmd struct{}

// Run executes the path command
func (cmd *ConfigPathCmd) Run(cfg *config.Config, fp *FormatterProvider) error {
	fmt.Println(config.ConfigPath())
	return nil
}
