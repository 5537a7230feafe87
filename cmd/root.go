// Package cmd defines the garden-erp command line interface.
package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/IgorBayerl/garden-erp/config"
	"github.com/IgorBayerl/garden-erp/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "garden-erp",
	Short: "Production order calculator for garden furniture manufacturing",
	Long: `garden-erp manages the piece and product catalog and calculates
production orders: the pieces to cut, grouped by size, product or
cross-section, with a plank usage estimate.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads .env when present, then the environment. Missing .env
// is fine in production where configuration comes from the environment.
func loadConfig() (*config.Config, logger.Logger) {
	_ = godotenv.Load()
	cfg := config.LoadEnv()
	log := logger.NewZapLogger(&logger.Config{
		IsDevelopment:     cfg.Server.AppEnv == "development",
		Level:             cfg.Logger.Level,
		Encoding:          cfg.Logger.Encoding,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	})
	return cfg, log
}
