package cmd

import (
	"fmt"
	"os"

	"dropbuddy/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "dropbuddy",
	Short: "DropBuddy API Service",
	Long: `DropBuddy is a boilerplate HTTP API service with layered configuration,
structured logging, CORS, request tracing and a database-backed auth module.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting.
		// Console format matches user expectations for a CLI entry point.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "pretty",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
