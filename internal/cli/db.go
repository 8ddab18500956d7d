package cli

import (
	"fmt"

	"github.com/pankajredekar/prodcat"
	"github.com/pankajredekar/prodcat/internal/config"
	"github.com/pankajredekar/prodcat/internal/logging"
	"github.com/pankajredekar/prodcat/internal/utils"
	"github.com/spf13/cobra"
)

// loadConfig reads the config file when present, falls back to defaults
// otherwise and applies environment overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if utils.FileExists(configPath) {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			utils.PrintError(cmd.OutOrStdout(), "Failed to load config: %v", err)
			return nil, err
		}
		cfg = loaded
	}

	cfg.ApplyEnv()
	if verbose {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		utils.PrintError(cmd.OutOrStdout(), "Invalid config: %v", err)
		return nil, err
	}

	logging.SetDefault(logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat))
	return cfg, nil
}

// openCatalog opens the catalog described by cfg, creating its table on
// first use.
func openCatalog(cmd *cobra.Command, cfg *config.Config) (*prodcat.Catalog, error) {
	cat, err := prodcat.Open(cfg, *logging.Default())
	if err != nil {
		utils.PrintError(cmd.OutOrStdout(), "Failed to open catalog: %v", err)
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	return cat, nil
}
