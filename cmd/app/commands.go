package main

import (
	"github.com/urfave/cli/v3"
)

// getCommands lists every subcommand of the app binary.
func getCommands(version string) []*cli.Command {
	return append(getSystemCommands(version), getContentCommands()...)
}
