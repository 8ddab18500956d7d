package cli

import (
	"github.com/pankajredekar/prodcat"
	"github.com/pankajredekar/prodcat/internal/utils"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <code> <name> <format>",
	Short: "Add a product",
	Long:  "Adds a product. The code must be unique; adding an existing code changes nothing.",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cat, err := openCatalog(cmd, cfg)
		if err != nil {
			return err
		}

		res, err := cat.Insert(args[0], args[1], args[2])
		if err != nil {
			utils.PrintError(out, "Failed to add product: %v", err)
			return err
		}

		switch res {
		case prodcat.AlreadyExists:
			utils.PrintWarning(out, "Product %s already exists, nothing changed", args[0])
		default:
			utils.PrintSuccess(out, "Added product %s", args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
