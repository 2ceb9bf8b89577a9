package cli

import (
	"runtime"

	"github.com/axl-labs/axlkeep/internal/config"
	"github.com/axl-labs/axlkeep/internal/secrets"
)

// DoctorCmd reports which storage backend would be used and why
type DoctorCmd struct{}

// DoctorReport describes the storage environment
type DoctorReport struct {
	Platform   string
	WSL        bool
	Headless   bool
	Configured string
	Backend    string
	Keyring    string
}

// Run executes the doctor command
func (cmd *DoctorCmd) Run(cfg *config.Config, fp *FormatterProvider) error {
	report := DoctorReport{
		Platform:   runtime.GOOS,
		WSL:        secrets.IsWSL(),
		Headless:   secrets.IsHeadless(),
		Configured: cfg.Backend,
	}
	if report.Configured == "" {
		report.Configured = "auto"
	}

	// Probe the keyring without writing anything
	if _, err := secrets.NewKeyringBackend(); err != nil {
		report.Keyring = err.Error()
	} else {
		report.Keyring = "available"
	}

	switch {
	case cfg.Backend == "keyring" || cfg.Backend == "file":
		report.Backend = cfg.Backend
	case report.WSL || report.Headless || report.Keyring != "available":
		report.Backend = "file"
	default:
		report.Backend = "keyring"
	}

	return fp.Formatter.Print(report)
}
