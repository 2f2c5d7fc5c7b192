package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"clubroster/config"
	"clubroster/importer"
	"clubroster/reconcile"
	"clubroster/roster"
	"clubroster/storage"
)

var (
	importInput       string
	importClubID      string
	importUploadedBy  string
	importDBPath      string
	importProcessMode string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Register a roster spreadsheet as an import job and reconcile it",
	Long: `Register the given roster export as an import job and, by default, run the
reconciliation pipeline immediately.

Each data row is resolved to a club by charter number (creating the club when
none exists), matched to a member by external contact ID or by name plus
email/phone correlation, and classified as Created, Updated, Unchanged, or
Skipped. Every row leaves one audit record; skipped rows carry the reason.

With --process off the job stays in Uploaded state and can be run later with
"clubroster process <job-id>". Re-importing an identical file is safe: rows
whose fields already match are classified Unchanged and nothing is written.`,
	Example: `
  # Import and process an Excel roster export
  clubroster import -i NFRW_Roster_2026.xlsx

  # Import a CSV export for one club
  clubroster import -i roster.csv --club-id 8c0f...

  # Register the upload only
  clubroster import -i roster.xlsx --process off

  # Explicit database path
  clubroster import -i roster.xlsx --db ./clubroster.db
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		dbPath := resolveDBPath(cmd, importDBPath, cfg)
		store, err := storage.OpenSQLite(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		uploadedBy := importUploadedBy
		if uploadedBy == "" {
			uploadedBy = cfg.Import.UploadedBy
		}

		job := roster.ImportJob{
			Filename:     filepath.Base(importInput),
			OriginalName: filepath.Base(importInput),
			FilePath:     importInput,
			ExportSetID:  sniffExportSetID(importInput),
			ClubID:       importClubID,
			UploadedBy:   uploadedBy,
			Status:       roster.JobUploaded,
		}
		if err := store.CreateImportJob(&job); err != nil {
			return err
		}
		fmt.Printf("Upload registered. Job: %s\n", job.ID)

		shouldProcess, err := resolveProcessMode(importProcessMode, cfg.Import.AutoProcessAfterUpload)
		if err != nil {
			return err
		}
		if !shouldProcess {
			return nil
		}

		result, err := reconcile.RunFile(store, job.ID, importInput)
		if err != nil {
			return err
		}
		printRunSummary(result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVarP(&importInput, "input", "i", "", "Roster file path (.xlsx, .xlsm, .xls, .csv)")
	importCmd.Flags().StringVar(&importClubID, "club-id", "", "Club this import belongs to (empty for a system-wide import)")
	importCmd.Flags().StringVar(&importUploadedBy, "uploaded-by", "", "Identity recorded as the uploader (default from config import.uploaded_by)")
	importCmd.Flags().StringVar(&importDBPath, "db", "./clubroster.db", "Path to local SQLite database")
	importCmd.Flags().StringVar(&importProcessMode, "process", "auto", "Process after upload: auto|on|off")

	_ = importCmd.MarkFlagRequired("input")
}

// sniffExportSetID is best effort: an unreadable file still registers as an
// Uploaded job and fails later, during processing.
func sniffExportSetID(path string) string {
	reader, err := importer.ReaderForPath(path)
	if err != nil {
		return ""
	}
	records, err := reader.Read(path)
	if err != nil {
		return ""
	}
	return importer.SniffExportSetID(records)
}

func resolveProcessMode(mode string, configDefault bool) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return configDefault, nil
	case "on", "true", "yes":
		return true, nil
	case "off", "false", "no":
		return false, nil
	default:
		return false, fmt.Errorf("invalid process mode %q (supported: auto|on|off)", mode)
	}
}

// resolveDBPath prefers an explicit --db flag, then the configured
// database.path, then the flag default.
func resolveDBPath(cmd *cobra.Command, flagValue string, cfg *config.Config) string {
	if cmd.Flags().Changed("db") {
		return flagValue
	}
	if cfg != nil && cfg.Database.Path != "" {
		return cfg.Database.Path
	}
	return flagValue
}

func printRunSummary(result *reconcile.Result) {
	fmt.Printf("Import completed. Rows processed: %d, Created: %d, Updated: %d, Unchanged: %d, Skipped: %d\n",
		result.Processed,
		result.Created,
		result.Updated,
		result.Unchanged,
		result.Skipped,
	)
	for _, line := range result.Errors {
		fmt.Println(" ", line)
	}
}
