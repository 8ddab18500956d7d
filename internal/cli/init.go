package cli

import (
	"github.com/pankajredekar/prodcat/internal/config"
	"github.com/pankajredekar/prodcat/internal/utils"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a product catalog",
	Long:  "Creates a prodcat.yml configuration file and the products table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if utils.FileExists(configPath) {
			utils.PrintWarning(out, "%s already exists", configPath)
		} else {
			if err := config.Default().Write(configPath); err != nil {
				utils.PrintError(out, "%v", err)
				return err
			}
			utils.PrintInfo(out, "Created %s", configPath)
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cat, err := openCatalog(cmd, cfg)
		if err != nil {
			return err
		}
		count, err := cat.Count()
		if err != nil {
			utils.PrintError(out, "Failed to count products: %v", err)
			return err
		}

		utils.PrintSuccess(out, "Initialized product catalog")
		utils.PrintInfo(out, "Database: %s (%d product(s))", cfg.DatabaseURL, count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
