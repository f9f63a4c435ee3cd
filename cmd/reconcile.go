package cmd

import (
	"fmt"
	"io"
	"os"

	"reconciler/core/ingest"
	"reconciler/core/profile"
	"reconciler/core/reconcile"
	"reconciler/core/report"
	"reconciler/feature/reconciliation"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the reconcile command
	reconcileFileA   string
	reconcileFileB   string
	reconcileProfile string
	reconcileStatus  string
	reconcileSearch  string
	reconcileOut     string
	reconcileSave    bool
	reconcileUnkeyed bool
)

// reconcileCmd runs one reconciliation from the command line.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile two exports and write the CSV report",
	Long: `Reconcile two CSV or Excel exports record by record.

Files are local paths or s3://bucket/key locations (requires storage.enabled).
Without a profile, mappings are suggested from the headers and default
tolerances apply.

Examples:
  # Report to stdout with suggested mappings
  reconciler reconcile --a ledger.csv --b supplier.xlsx

  # Use a saved profile and keep only mismatches
  reconciler reconcile --a ledger.csv --b supplier.xlsx --profile acme.yaml --status mismatched

  # Write the report to a file and keep the run in the history database
  reconciler reconcile --a ledger.csv --b supplier.xlsx --out report.csv --save`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&reconcileFileA, "a", "", "File A (path or s3://bucket/key)")
	reconcileCmd.Flags().StringVar(&reconcileFileB, "b", "", "File B (path or s3://bucket/key)")
	reconcileCmd.Flags().StringVar(&reconcileProfile, "profile", "", "YAML profile with mappings and tolerances")
	reconcileCmd.Flags().StringVar(&reconcileStatus, "status", report.StatusAll, "Only report results with this status")
	reconcileCmd.Flags().StringVar(&reconcileSearch, "search", "", "Only report results containing this text")
	reconcileCmd.Flags().StringVar(&reconcileOut, "out", "", "Write the CSV report to this file instead of stdout")
	reconcileCmd.Flags().BoolVar(&reconcileSave, "save", false, "Persist the run in the history database")
	reconcileCmd.Flags().BoolVar(&reconcileUnkeyed, "unkeyed", false, "Report rows with an empty reference value")
	_ = reconcileCmd.MarkFlagRequired("a")
	_ = reconcileCmd.MarkFlagRequired("b")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if !report.ValidStatus(reconcileStatus) {
		return fmt.Errorf("unknown status %q", reconcileStatus)
	}

	rt, err := bootstrap()
	if err != nil {
		return err
	}
	l := rt.logger
	defer l.Sync()

	runCfg, err := loadRunConfig()
	if err != nil {
		return err
	}

	a, err := ingest.Load(ctx, rt.client, reconcileFileA)
	if err != nil {
		return err
	}
	b, err := ingest.Load(ctx, rt.client, reconcileFileB)
	if err != nil {
		return err
	}

	var store *reconciliation.Store
	if reconcileSave {
		db, err := rt.connect()
		if err != nil {
			return err
		}
		store = reconciliation.NewStore(db)
		if err := store.Migrate(); err != nil {
			return fmt.Errorf("failed to migrate run history: %w", err)
		}
	}

	// The CLI runs once, so the cache would never be hit.
	defaults := rt.cfg.Reconcile
	defaults.CacheTTLSeconds = 0
	svc := reconciliation.NewService(store, rt.client, rt.cfg.Storage, defaults, l)

	out, err := svc.Reconcile(ctx, a, b, runCfg)
	if err != nil {
		return err
	}
	if out.Saved {
		l.Info("Run saved", zap.String("run_id", out.RunID))
	}

	var w io.Writer = os.Stdout
	if reconcileOut != "" {
		f, err := os.Create(reconcileOut)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", reconcileOut, err)
		}
		defer f.Close()
		w = f
	}

	results := report.Filter(out.Report.Results, reconcileStatus, reconcileSearch)
	if err := report.WriteCSV(w, results, out.Mappings); err != nil {
		return err
	}
	if reconcileOut != "" {
		l.Info("Report written", zap.String("file", reconcileOut), zap.Int("results", len(results)))
	}

	// Stdout may carry the CSV, so the summary goes to stderr.
	printSummary(os.Stderr, out.Report.Summary)
	return nil
}

// loadRunConfig reads the profile, if any, and applies the --unkeyed flag.
func loadRunConfig() (*reconciliation.RunConfig, error) {
	runCfg := &reconciliation.RunConfig{}
	if reconcileProfile != "" {
		p, err := profile.Load(reconcileProfile)
		if err != nil {
			return nil, err
		}
		runCfg = reconciliation.ProfileConfig(p)
	}
	if reconcileUnkeyed {
		unkeyed := true
		runCfg.ReportUnkeyed = &unkeyed
	}
	return runCfg, nil
}

// printSummary writes the per-status counts in report order.
func printSummary(w io.Writer, s reconcile.Summary) {
	fmt.Fprintln(w, "\n=== Reconciliation Summary ===")
	fmt.Fprintf(w, "Rows A: %d\n", s.RowsA)
	fmt.Fprintf(w, "Rows B: %d\n", s.RowsB)
	for _, st := range reconcile.Statuses {
		fmt.Fprintf(w, "%s: %d\n", st, s.Count(st))
	}
	fmt.Fprintf(w, "Total: %d\n", s.Total)
}
