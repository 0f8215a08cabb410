// Package cli implements the carbonmeter command line.
package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/carbonmeter/internal/config"
	"github.com/rshade/carbonmeter/internal/logging"
)

// annotationLenientConfig marks commands that run on defaults when the
// configuration file fails to load.
const annotationLenientConfig = "carbonmeter/lenient-config"

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the carbonmeter CLI.
// It loads the configuration, wires up logging and tracing, and registers
// the render, show, impact, config and version subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var (
		logResult  *logging.LogPathResult
		configPath string
	)

	cmd := &cobra.Command{
		Use:           "carbonmeter",
		Short:         "Carbon footprint meter",
		Long:          "carbonmeter: draw the carbon meter gauge and category breakdown for an emissions summary",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(configPath); err != nil {
				if cmd.Annotations[annotationLenientConfig] != "true" {
					return err
				}
				// The command repairs or inspects the file itself.
				config.SetGlobalConfig(config.New())
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&configPath, "config", "",
		"configuration file (default $CARBONMETER_CONFIG or ~/.carbonmeter/config.yaml)")
	cmd.AddCommand(
		NewRenderCmd(),
		NewShowCmd(),
		NewImpactCmd(),
		newConfigCmd(&configPath),
		newVersionCmd(ver),
	)

	return cmd
}

// loadConfig resolves, loads and installs the global configuration, then
// applies environment overrides.
func loadConfig(flagValue string) error {
	path, err := config.ResolvePath(flagValue)
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	cfg.ApplyEnv()
	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("applying environment overrides: %w", err)
	}
	config.SetGlobalConfig(cfg)
	return nil
}

func newVersionCmd(ver string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the carbonmeter version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("carbonmeter %s\n", ver)
		},
	}
}

const rootCmdExample = `  # Write the gauge and breakdown SVGs for a summary file
  carbonmeter render --input summary.json

  # Animate the needle headlessly before writing
  carbonmeter render --input summary.json --animate

  # Build the summary from flags
  carbonmeter render --category agricultura=300 --category pecuaria=100 --category combustivel=100

  # Show the meter in the terminal
  carbonmeter show --input summary.json

  # Real-world equivalents of 2.5 t CO2e
  carbonmeter impact --value 2.5 --unit t

  # Initialize configuration
  carbonmeter config init`
