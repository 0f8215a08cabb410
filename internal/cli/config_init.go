package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/carbonmeter/internal/config"
)

// newConfigCmd creates the config command group. configPath points at the
// root --config flag.
func newConfigCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the carbonmeter configuration",
	}
	cmd.AddCommand(newConfigInitCmd(configPath), newConfigShowCmd(), newConfigValidateCmd(configPath))
	return cmd
}

// newConfigInitCmd creates the config init command, which writes the default
// configuration.
func newConfigInitCmd(configPath *string) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Initialize configuration file with default values",
		Annotations: map[string]string{annotationLenientConfig: "true"},
		Long: `Creates a new configuration file with default values at --config,
$CARBONMETER_CONFIG or $CARBONMETER_HOME/config.yaml (default ~/.carbonmeter).`,
		Example: `  # Create the configuration
  carbonmeter config init

  # Overwrite an existing configuration
  carbonmeter config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.ResolvePath(*configPath)
			if err != nil {
				return err
			}

			if !force {
				_, statErr := os.Stat(path)
				if statErr == nil {
					return errors.New("configuration file already exists, use --force to overwrite")
				}
				if !os.IsNotExist(statErr) {
					return fmt.Errorf("cannot access config path %s: %w", path, statErr)
				}
			}

			if err = os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
				return fmt.Errorf("failed to create config directory: %w", err)
			}
			if err = config.New().Save(path); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			cmd.Printf("Configuration initialized at %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	return cmd
}

// newConfigShowCmd prints the effective configuration as YAML.
func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(config.GetGlobalConfig()); err != nil {
				return fmt.Errorf("encoding configuration: %w", err)
			}
			return enc.Close()
		},
	}
}

// newConfigValidateCmd loads the configuration file and reports whether it
// is valid.
func newConfigValidateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:         "validate",
		Short:       "Validate the configuration file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationLenientConfig: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.ResolvePath(*configPath)
			if err != nil {
				return err
			}
			cfg, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}
			if _, statErr := os.Stat(path); statErr != nil {
				cmd.Printf("No configuration file at %s, defaults are valid\n", path)
				return nil
			}
			cmd.Printf("Configuration is valid: %s (locale %s, %d fps)\n",
				path, cfg.Breakdown.Locale, cfg.Animation.FPS)
			return nil
		},
	}
}
