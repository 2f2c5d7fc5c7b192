package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"clubroster/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values.`,
	Example: `
  # Show active configuration
  clubroster config show
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			fmt.Println("Invalid config:", err)
			return
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Println("Config file loaded from:", configPath)
			fmt.Println("Configuration:")
			fmt.Printf("database.path: %s\n", cfg.Database.Path)
			fmt.Printf("import.auto_process_after_upload: %t\n", cfg.Import.AutoProcessAfterUpload)
			fmt.Printf("import.uploaded_by: %s\n", cfg.Import.UploadedBy)
		}
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
