package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/localrivet/dragonsumm/internal/config"
	"github.com/localrivet/dragonsumm/internal/errortypes"
	"github.com/localrivet/dragonsumm/internal/logger"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "dragonsumm",
	Short: "Extractive text summarizer based on LexRank",
	Long: `dragonsumm picks the most central sentences of a text with LexRank
and prints them in their original order. The strong level keeps fewer
sentences than the weak level.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultConfigFilename, "path to the configuration file")
	rootCmd.AddCommand(newSummarizeCmd(), newServeCmd())
}

func main() {
	// A missing .env file is fine; the environment is used as is.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		errortypes.LogError(nil, err)
		os.Exit(1)
	}
}

// setup loads the configuration and installs the logger it describes.
func setup() (*config.Config, *slog.Logger, error) {
	// Logging starts on defaults so config errors are reported too.
	logger.Setup(logger.DefaultConfig())

	cfg, err := config.LoadConfigWithPath(configPath)
	if err != nil {
		return nil, nil, errortypes.ConfigError(err, "failed to load configuration").
			WithField("path", configPath)
	}

	appLogger := logger.Setup(cfg.LoggerConfig())
	return cfg, appLogger, nil
}
