package cli

import (
	"github.com/pankajredekar/prodcat"
	"github.com/pankajredekar/prodcat/internal/utils"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <code>",
	Aliases: []string{"rm"},
	Short:   "Delete a product",
	Args:    cobra.ExactArgs(1),
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

		res, err := cat.Delete(args[0])
		if err != nil {
			utils.PrintError(out, "Failed to delete product: %v", err)
			return err
		}

		switch res {
		case prodcat.NotFound:
			utils.PrintWarning(out, "Product %s not found, nothing deleted", args[0])
		default:
			utils.PrintSuccess(out, "Deleted product %s", args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
