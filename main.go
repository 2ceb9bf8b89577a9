package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/axl-labs/axlkeep/internal/cli"
	"github.com/axl-labs/axlkeep/internal/output"
)

var (
	version = "dev"
)

func main() {
	cliInstance := &cli.CLI{}
	ctx := kong.Parse(cliInstance,
		kong.Name("axlkeep"),
		kong.Description("Secure credential store for the Axl Gallery apps"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	err := ctx.Run()
	if err != nil {
		if cliErr, ok := err.(*output.CLIError); ok {
			formatter := output.New("plain")
			formatter.PrintError(err)
			if cliErr.Hint != "" {
				formatter.PrintHint(cliErr.Hint)
			}
			os.Exit(cliErr.ExitCode)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(output.ExitGeneral)
	}
}
