package cli

import (
	"errors"

	"github.com/pankajredekar/prodcat"
	"github.com/pankajredekar/prodcat/internal/errs"
	"github.com/pankajredekar/prodcat/internal/render"
	"github.com/pankajredekar/prodcat/internal/utils"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <code>",
	Short: "Show one product",
	Long:  "Shows the product with exactly the given code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		format, err := outputFormat(cfg, markupFor(out))
		if err != nil {
			utils.PrintError(out, "%v", err)
			return err
		}
		cat, err := openCatalog(cmd, cfg)
		if err != nil {
			return err
		}

		p, err := cat.Get(args[0])
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				utils.PrintWarning(out, "Product %s not found", args[0])
			} else {
				utils.PrintError(out, "Failed to get product: %v", err)
			}
			return err
		}

		return render.NewFormatter(format).Format(out, []prodcat.Product{*p})
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
