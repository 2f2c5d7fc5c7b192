package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"clubroster/storage"
)

var jobsDBPath string

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List import jobs with status and rollup counters",
	Example: `
  # List all import jobs, newest first
  clubroster jobs
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storage.OpenSQLite(jobsDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		jobs, err := store.ListImportJobs()
		if err != nil {
			return err
		}
		if len(jobs) == 0 {
			fmt.Println("No import jobs found.")
			return nil
		}

		for _, job := range jobs {
			fmt.Printf("%s  %-10s  %s\n", job.ID, job.Status, job.OriginalName)
			fmt.Printf("    uploaded %s  processed=%d created=%d updated=%d skipped=%d\n",
				job.CreatedAt.Local().Format("2006-01-02 15:04"),
				job.RecordsProcessed,
				job.RecordsCreated,
				job.RecordsUpdated,
				job.RecordsSkipped,
			)
			for _, line := range job.Errors {
				fmt.Printf("    %s\n", line)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(jobsCmd)

	jobsCmd.Flags().StringVar(&jobsDBPath, "db", "./clubroster.db", "Path to local SQLite database")
}
