package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"clubroster/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "clubroster",
	Short: "Import federation roster spreadsheets and reconcile them against local club/member records.",
	Long: `clubroster ingests roster exports (Excel, CSV), resolves each row to a club
by charter number, matches or creates the member, applies field-level updates,
and keeps a per-row audit trail in a local SQLite database.

Each import is tracked as a job (Uploaded -> Processing -> Completed/Failed)
with created/updated/skipped counters; skipped rows carry the reason.`,
	Example: `
  # Create configuration file
  clubroster config create

  # Import and process a roster export in one step
  clubroster import -i NFRW_Roster_2026.xlsx

  # Register the upload only, process later
  clubroster import -i roster.csv --process off
  clubroster process <job-id>

  # Review jobs and per-row outcomes
  clubroster jobs
  clubroster rows --job <job-id>
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.clubroster.yaml, then ./.clubroster.yaml)")

	rootCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if !requiresConfig(cmd) {
			return nil
		}

		_, err := config.LoadAndValidate()
		return err
	}
}

func requiresConfig(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}
	switch cmd.Name() {
	case "import", "process":
		return true
	default:
		return false
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".clubroster" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".clubroster")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "No config file found. Create one first with: clubroster config create")
	}
}
