package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"clubroster/config"
	"clubroster/reconcile"
	"clubroster/storage"
)

var processDBPath string

var processCmd = &cobra.Command{
	Use:   "process <job-id>",
	Short: "Run the reconciliation pipeline for a previously uploaded job",
	Long: `Process an import job that was registered with "import --process off" (or
re-run one whose file has been corrected).

The job transitions Uploaded -> Processing -> Completed; a file that cannot
be read or parsed leaves it Failed with the reason recorded. Individually
bad rows never fail the job; they are skipped, audited, and counted.`,
	Example: `
  # Process a pending upload
  clubroster process 4f3a2b10-...

  # Against an explicit database
  clubroster process 4f3a2b10-... --db ./clubroster.db
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		store, err := storage.OpenSQLite(resolveDBPath(cmd, processDBPath, cfg))
		if err != nil {
			return err
		}
		defer store.Close()

		jobID := args[0]
		job, ok, err := store.GetImportJob(jobID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("import job %s not found", jobID)
		}

		result, err := reconcile.RunFile(store, job.ID, job.FilePath)
		if err != nil {
			return err
		}
		printRunSummary(result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVar(&processDBPath, "db", "./clubroster.db", "Path to local SQLite database")
}
