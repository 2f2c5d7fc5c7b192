package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage clubroster configuration file values.",
	Long: `Create, edit, display, and delete the clubroster configuration file.

The configuration stores application-wide values:
- database.path
- import.auto_process_after_upload
- import.uploaded_by`,
	Example: `
  # Create default config in $HOME/.clubroster.yaml
  clubroster config create

  # Show active config and source file
  clubroster config show

  # Open active config in editor (creates example if missing)
  clubroster config edit

  # Delete active config file
  clubroster config delete
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
