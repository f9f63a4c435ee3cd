package cmd

import (
	"fmt"
	"io"
	"os"

	"reconciler/core/report"
	"reconciler/feature/reconciliation"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	runsLimit  int
	runsStatus string
	runsSearch string
	runsOut    string
)

// runsCmd lists the run history.
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List saved reconciliation runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := historyService()
		if err != nil {
			return err
		}

		runs, err := svc.ListRuns(cmd.Context(), runsLimit)
		if err != nil {
			return err
		}

		return writeRunsTable(os.Stdout, runs)
	},
}

// runsExportCmd writes the CSV report of a saved run.
var runsExportCmd = &cobra.Command{
	Use:   "export ID",
	Short: "Export a saved run as CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !report.ValidStatus(runsStatus) {
			return fmt.Errorf("unknown status %q", runsStatus)
		}

		svc, err := historyService()
		if err != nil {
			return err
		}

		var w io.Writer = os.Stdout
		if runsOut != "" {
			f, err := os.Create(runsOut)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", runsOut, err)
			}
			defer f.Close()
			w = f
		}
		return svc.Export(cmd.Context(), args[0], runsStatus, runsSearch, w)
	},
}

// runsDeleteCmd removes a saved run and its archived files.
var runsDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a saved run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := historyService()
		if err != nil {
			return err
		}
		if err := svc.DeleteRun(cmd.Context(), args[0]); err != nil {
			return err
		}
		zap.L().Info("Run deleted", zap.String("run_id", args[0]))
		return nil
	},
}

func init() {
	runsCmd.Flags().IntVar(&runsLimit, "limit", 20, "Maximum number of runs to list")
	runsExportCmd.Flags().StringVar(&runsStatus, "status", report.StatusAll, "Only export results with this status")
	runsExportCmd.Flags().StringVar(&runsSearch, "search", "", "Only export results containing this text")
	runsExportCmd.Flags().StringVar(&runsOut, "out", "", "Write the CSV to this file instead of stdout")

	runsCmd.AddCommand(runsExportCmd, runsDeleteCmd)
	RootCmd.AddCommand(runsCmd)
}

// historyService connects to the run history database.
func historyService() (*reconciliation.Service, error) {
	rt, err := bootstrap()
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(rt.logger)

	db, err := rt.connect()
	if err != nil {
		return nil, err
	}
	store := reconciliation.NewStore(db)
	if err := store.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate run history: %w", err)
	}
	return reconciliation.NewService(store, rt.client, rt.cfg.Storage, rt.cfg.Reconcile, rt.logger), nil
}
