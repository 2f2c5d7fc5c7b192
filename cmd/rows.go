package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"clubroster/storage"
)

var (
	rowsDBPath string
	rowsJobID  string
)

var rowsCmd = &cobra.Command{
	Use:   "rows",
	Short: "Show the per-row audit trail of an import job",
	Long: `List every processed row of an import job in processing order: the source
row ID, the resolved club and member (empty when the row was skipped before
resolution), the outcome, and the exception text for skipped rows.`,
	Example: `
  # Audit trail for one job
  clubroster rows --job 4f3a2b10-...
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storage.OpenSQLite(rowsDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		job, ok, err := store.GetImportJob(rowsJobID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("import job %s not found", rowsJobID)
		}

		details, err := store.ListImportRowDetails(job.ID)
		if err != nil {
			return err
		}
		if len(details) == 0 {
			fmt.Println("No rows recorded for this job.")
			return nil
		}

		for _, detail := range details {
			line := fmt.Sprintf("%-10s  %-9s  club=%q member=%q", detail.RowID, detail.Result, detail.ClubName, detail.MemberName)
			if detail.Exception != "" {
				line += "  exception=" + detail.Exception
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rowsCmd)

	rowsCmd.Flags().StringVar(&rowsDBPath, "db", "./clubroster.db", "Path to local SQLite database")
	rowsCmd.Flags().StringVar(&rowsJobID, "job", "", "Import job ID")

	_ = rowsCmd.MarkFlagRequired("job")
}
