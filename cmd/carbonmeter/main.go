// Command carbonmeter draws the carbon meter gauge and category breakdown
// for an emissions summary.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rshade/carbonmeter/internal/cli"
	"github.com/rshade/carbonmeter/internal/config"
	"github.com/rshade/carbonmeter/internal/report"
	"github.com/rshade/carbonmeter/pkg/version"
)

// Exit codes.
const (
	exitError = 1
	exitInput = 2
)

func run() error {
	root := cli.NewRootCmd(version.GetVersion())
	return root.Execute()
}

// exitCode maps an error returned by run to the process exit code. Input
// and configuration problems exit with 2, everything else with 1.
func exitCode(err error) int {
	switch {
	case errors.Is(err, cli.ErrNoInput),
		errors.Is(err, report.ErrInvalidSummary),
		errors.Is(err, config.ErrInvalidConfig):
		return exitInput
	default:
		return exitError
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}
