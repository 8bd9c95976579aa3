package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yurifrl/balance/pkg/config"
	"github.com/yurifrl/balance/pkg/executors"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:           "balance",
	Short:         "Project your balance to payday after recurring bills",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Show help when no subcommand is provided
		return cmd.Help()
	},
}

// newExecutor resolves the configuration for cmd and builds an executor
// with a logger at the configured level.
func newExecutor(cmd *cobra.Command) (*executors.Executor, error) {
	cfg, err := config.Build(cfgFile, cmd.Flags())
	if err != nil {
		return nil, err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    level == log.DebugLevel,
		ReportTimestamp: level == log.DebugLevel,
		Prefix:          "balance",
		Level:           level,
	})
	logger.Debug("configuration loaded", "payments_file", cfg.PaymentsFile, "reset_day", cfg.ResetDay)

	return executors.New(logger, cfg, executors.WithOutput(cmd.OutOrStdout())), nil
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Settings file (default is $XDG_CONFIG_HOME/balance/settings.yaml)")
	rootCmd.PersistentFlags().String("payments-file", "", "Payments file (default is $XDG_CONFIG_HOME/balance/spend.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("currency", "", "Currency symbol used in output")

	rootCmd.AddCommand(computeCmd)
	rootCmd.AddCommand(adjustCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(pathCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
