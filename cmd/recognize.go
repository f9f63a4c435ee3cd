package cmd

import (
	"fmt"
	"io"
	"os"

	"reconciler/core/ingest"
	"reconciler/core/profile"
	"reconciler/core/recognize"
	"reconciler/core/reconcile"

	"github.com/spf13/cobra"
)

var recognizeProfileOut string

// recognizeCmd types the headers of one or more files.
var recognizeCmd = &cobra.Command{
	Use:   "recognize FILE...",
	Short: "Detect the field type of each column header",
	Long: `Reads the header row of each file and prints the detected field types.

With exactly two files, a starter profile with suggested mappings and default
tolerances is printed as YAML (or written to --profile-out).`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}

		datasets := make([]*reconcile.Dataset, 0, len(args))
		for _, location := range args {
			ds, err := ingest.Load(cmd.Context(), rt.client, location)
			if err != nil {
				return err
			}
			recognize.Annotate(ds)
			datasets = append(datasets, ds)
			if err := printRecognized(os.Stdout, ds); err != nil {
				return err
			}
		}

		if len(datasets) != 2 {
			return nil
		}

		mappings := recognize.SuggestMappings(datasets[0], datasets[1])
		p := &profile.Profile{
			Name:       datasets[0].Name + " vs " + datasets[1].Name,
			Mappings:   mappings,
			Tolerances: recognize.DefaultTolerances(mappings),
		}

		var w io.Writer = os.Stdout
		if recognizeProfileOut != "" {
			f, err := os.Create(recognizeProfileOut)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", recognizeProfileOut, err)
			}
			defer f.Close()
			w = f
		} else {
			fmt.Fprintln(w, "\n=== Suggested Profile ===")
		}
		return profile.Encode(w, p)
	},
}

func init() {
	recognizeCmd.Flags().StringVar(&recognizeProfileOut, "profile-out", "", "Write the suggested profile to this file")
	RootCmd.AddCommand(recognizeCmd)
}
