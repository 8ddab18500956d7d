package cli

import (
	"github.com/joho/godotenv"
	"github.com/pankajredekar/prodcat/internal/config"
	"github.com/pankajredekar/prodcat/internal/utils"
	"github.com/spf13/cobra"
)

var (
	configPath string
	outputFlag string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "prodcat",
	Short: "Product catalog backed by an embedded SQL table",
	Long:  "prodcat searches and edits a product catalog stored in a local SQLite file. Products are found by code, by name, or by the leading dimension of their format (e.g. 472 for 472X1166X122).",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A missing .env is fine
		_ = godotenv.Load()
		utils.Color = isTerminal(cmd.OutOrStdout())
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigFile, "path to the config file")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "output format: markup, plain, listing, table, json, yaml")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
