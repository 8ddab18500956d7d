package cli

import (
	"github.com/pankajredekar/prodcat/internal/render"
	"github.com/pankajredekar/prodcat/internal/utils"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all products",
	Long:    "Lists every product ordered by name",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		format, err := outputFormat(cfg, render.FormatTable)
		if err != nil {
			utils.PrintError(out, "%v", err)
			return err
		}
		cat, err := openCatalog(cmd, cfg)
		if err != nil {
			return err
		}

		products, err := cat.List()
		if err != nil {
			utils.PrintError(out, "Failed to list products: %v", err)
			return err
		}

		return render.NewFormatter(format).Format(out, products)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
