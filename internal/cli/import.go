package cli

import (
	"fmt"
	"os"

	"github.com/pankajredekar/prodcat"
	"github.com/pankajredekar/prodcat/internal/errs"
	"github.com/pankajredekar/prodcat/internal/logging"
	"github.com/pankajredekar/prodcat/internal/utils"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import products from a YAML file",
	Long:  "Adds every product listed in a YAML file (a sequence of code/name/format entries). Existing codes and incomplete entries are skipped.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		data, err := os.ReadFile(args[0])
		if err != nil {
			utils.PrintError(out, "Failed to read import file: %v", err)
			return err
		}
		var products []prodcat.Product
		if err := yaml.Unmarshal(data, &products); err != nil {
			utils.PrintError(out, "Failed to parse import file: %v", err)
			return fmt.Errorf("failed to parse import file: %w", err)
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cat, err := openCatalog(cmd, cfg)
		if err != nil {
			return err
		}

		var inserted, skipped, invalid int
		for i, p := range products {
			res, err := cat.Insert(p.Code, p.Name, p.Format)
			switch {
			case errs.IsValidation(err):
				invalid++
				logging.Default().Warn().Err(err).Int("entry", i+1).Msg("skipping invalid entry")
			case err != nil:
				utils.PrintError(out, "Failed to import entry %d: %v", i+1, err)
				return err
			case res == prodcat.AlreadyExists:
				skipped++
			default:
				inserted++
			}
		}

		utils.PrintSuccess(out, "Imported %d product(s)", inserted)
		if skipped > 0 {
			utils.PrintWarning(out, "Skipped %d existing code(s)", skipped)
		}
		if invalid > 0 {
			utils.PrintWarning(out, "Skipped %d incomplete entries", invalid)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
