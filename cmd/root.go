package cmd

import (
	"os"

	"reconciler/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "reconciler",
	Short: "Invoice Reconciliation Service",
	Long: `Reconciler compares two tabular exports (CSV or Excel) record by record.
Rows are matched on a reference field and mapped fields are compared under
configurable tolerances. It runs as an HTTP service or as a one-shot CLI.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with ISO8601 timestamps reads better in a terminal.
		l := logger.NewCLI()
		l.Error("command failed", zap.Error(err))
		_ = l.Sync()
		os.Exit(1)
	}
}
