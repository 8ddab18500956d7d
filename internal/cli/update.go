package cli

import (
	"github.com/pankajredekar/prodcat"
	"github.com/pankajredekar/prodcat/internal/utils"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update <code> [name] [format]",
	Short: "Update a product",
	Long:  "Sets the name and format of the product with the given code. Omitted values are stored empty. Unknown codes are reported and nothing is created.",
	Args:  cobra.RangeArgs(1, 3),
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

		var name, format string
		if len(args) > 1 {
			name = args[1]
		}
		if len(args) > 2 {
			format = args[2]
		}

		res, err := cat.Update(args[0], name, format)
		if err != nil {
			utils.PrintError(out, "Failed to update product: %v", err)
			return err
		}

		switch res {
		case prodcat.NotFound:
			utils.PrintWarning(out, "Product %s not found, nothing changed", args[0])
		default:
			utils.PrintSuccess(out, "Updated product %s", args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
}
