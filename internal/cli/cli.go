package cli

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/axl-labs/axlkeep/internal/config"
	"github.com/axl-labs/axlkeep/internal/output"
)

// FormatterProvider wraps the formatter interface for Kong binding
type FormatterProvider struct {
	Formatter output.Formatter
}

// CLI is the root command structure
type CLI struct {
	Globals

	Get       GetCmd       `cmd:"" help:"Read a stored credential"`
	Set       SetCmd       `cmd:"" help:"Store a credential"`
	Delete    DeleteCmd    `cmd:"" help:"Delete a stored credential"`
	Exists    ExistsCmd    `cmd:"" help:"Check whether a credential is stored"`
	List      ListCmd      `cmd:"" help:"List stored credential keys"`
	Clear     ClearCmd     `cmd:"" help:"Remove stored credentials"`
	Token     TokenCmd     `cmd:"" help:"Manage the gallery API token"`
	DeviceID  DeviceIDCmd  `cmd:"" name:"device-id" help:"Manage the device identifier"`
	Biometric BiometricCmd `cmd:"" help:"Manage the biometric unlock flag"`
	Migrate   MigrateCmd   `cmd:"" help:"Import credentials from a legacy plaintext file"`
	Config    ConfigCmd    `cmd:"" help:"Configuration commands"`
	Doctor    DoctorCmd    `cmd:"" help:"Show which storage backend is active and why"`
	Version   VersionCmd   `cmd:"" help:"Show version information"`
}

// BeforeApply hook runs before any command execution
// It loads config, sets up logging, creates formatter, and binds dependencies
func (c *CLI) BeforeApply(ctx *kong.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Diagnostics go to stderr; --verbose lowers the threshold to debug,
	// --quiet raises it to error
	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelDebug
	}
	if c.Quiet {
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	formatter := &FormatterProvider{
		Formatter: output.New(c.ResolvedOutput(cfg.DefaultOutput)),
	}

	ctx.Bind(cfg)
	ctx.Bind(formatter)
	ctx.Bind(&c.Globals)
	ctx.Bind(NewStoreProvider(cfg, &c.Globals))

	return nil
}

// ConfigCmd holds configuration subcommands
type ConfigCmd struct {
	Get   ConfigGetCmd   `cmd:"" help:"Get a configuration value"`
	Set   ConfigSetCmd   `cmd:"" help:"Set a configuration value"`
	Unset ConfigUnsetCmd `cmd:"" help:"Remove a configuration value"`
	List  ConfigListCmd  `cmd:"" help:"List all configuration values"`
	Path  ConfigPathCmd  `cmd:"" help:"Show config file path"`
}

// TokenCmd holds API token subcommands
type TokenCmd struct {
	Set TokenSetCmd `cmd:"" help:"Store the gallery API token"`
	Get TokenGetCmd `cmd:"" help:"Read the gallery API token"`
}

// DeviceIDCmd holds device identifier subcommands
type DeviceIDCmd struct {
	Set DeviceIDSetCmd `cmd:"" help:"Store the device identifier"`
	Get DeviceIDGetCmd `cmd:"" help:"Read the device identifier"`
}

// BiometricCmd holds biometric flag subcommands
type BiometricCmd struct {
	On     BiometricOnCmd     `cmd:"" help:"Enable biometric unlock"`
	Off    BiometricOffCmd    `cmd:"" help:"Disable biometric unlock"`
	Status BiometricStatusCmd `cmd:"" help:"Show whether biometric unlock is enabled"`
}

// VersionCmd shows version information
type VersionCmd struct{}

func (cmd *VersionCmd) Run(ctx *kong.Context) error {
	version := ctx.Model.Vars()["version"]
	println("axlkeep version " + version)
	return nil
}
