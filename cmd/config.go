package cmd

import (
	"fmt"

	"dropbuddy/core/config"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

// configCmd groups configuration-related subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the resolved configuration",
}

// configCheckCmd resolves and validates the configuration the same way the
// server does at startup, then prints it with secrets redacted.
var configCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Resolve, validate and print the configuration",
	Long: `Loads the configuration through the full resolution chain (defaults,
config.toml, APP_ environment overrides, secret variables), validates it and
prints the result as TOML. Secret values are redacted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(".")
		if err != nil {
			return err
		}

		out, err := toml.Marshal(cfg.Redacted())
		if err != nil {
			return fmt.Errorf("failed to render configuration: %w", err)
		}

		fmt.Print(string(out))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configCheckCmd)
	RootCmd.AddCommand(configCmd)
}
