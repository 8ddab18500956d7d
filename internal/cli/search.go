package cli

import (
	"fmt"
	"strings"

	"github.com/pankajredekar/prodcat/internal/render"
	"github.com/pankajredekar/prodcat/internal/search"
	"github.com/pankajredekar/prodcat/internal/utils"
	"github.com/spf13/cobra"
)

var searchBy string

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search products",
	Long:  "Searches products by code or name (substring, case-sensitive) or by format, where the query must equal the leading dimension of the format (472 matches 472X1166X122).",
	Args:  cobra.ArbitraryArgs,
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

		modeName := searchBy
		if modeName == "" {
			modeName = cfg.SearchMode
		}
		mode, err := search.ParseMode(modeName)
		if err != nil {
			utils.PrintError(out, "%v", err)
			return err
		}

		query := strings.TrimSpace(strings.Join(args, " "))
		if query == "" {
			fmt.Fprintln(out, message(format, render.EmptyQuery))
			return search.ErrEmptyQuery
		}

		cat, err := openCatalog(cmd, cfg)
		if err != nil {
			return err
		}

		products, err := cat.Search(query, mode)
		if err != nil {
			fmt.Fprintln(out, message(format, render.Error(err)))
			return err
		}

		return render.NewFormatter(format).Format(out, products)
	},
}

func init() {
	searchCmd.Flags().StringVarP(&searchBy, "by", "b", "", "search mode: code, name or format (default from config)")
	rootCmd.AddCommand(searchCmd)
}
