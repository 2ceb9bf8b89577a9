package cli

import (
	"os"

	"golang.org/x/term"
)

// Globals holds global flags available to all commands
type Globals struct {
	Output  string `help:"Output format" default:"auto" enum:"json,plain,rich,auto" short:"o" env:"AXLKEEP_OUTPUT"`
	Verbose bool   `help:"Verbose diagnostics" short:"v" env:"AXLKEEP_VERBOSE"`
	Quiet   bool   `help:"Suppress warnings" short:"q" env:"AXLKEEP_QUIET"`
	Force   bool   `help:"Skip confirmation prompts for destructive operations" env:"AXLKEEP_FORCE"`
	DryRun  bool   `help:"Run against an in-memory store, leaving real storage untouched" name:"dry-run" env:"AXLKEEP_DRY_RUN"`
}

// ResolvedOutput returns the effective output mode. "auto" defers to the
// configured default when set, otherwise detects TTY: stdout TTY -> rich,
// else -> plain.
func (g *Globals) ResolvedOutput(configured string) string {
	if g.Output != "auto" {
		return g.Output
	}
	if configured != "" {
		return configured
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		return "rich"
	}

	return "plain"
}
