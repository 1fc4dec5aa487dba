// Command sensorkit validates, cleans and analyzes sensor reading batches
// from CSV files.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tisense/sensorkit/internal/config"
	"github.com/tisense/sensorkit/internal/logging"
)

var (
	cfgFile string

	// Loaded configuration, available to all subcommands.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "sensorkit",
	Short: "Validate, clean and analyze sensor reading batches",
	Long: `sensorkit is a batch analytics tool for timestamped sensor readings
(temperature, pressure, humidity). It validates readings against domain
rules, cleans them (deduplication, outlier clamping, gap filling) and
produces per-sensor statistics and z-score anomaly reports.`,
}

// Execute is the entry point called by main.main().
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default searches ., ./configs, /etc/sensorkit)")
}

func loadConfig() {
	// Optional .env for local development; absence is not an error.
	_ = godotenv.Load()

	c, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		c = config.DefaultConfig()
	}
	cfg = c

	logger, err := logging.NewFromConfig(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to configure logging: %v\n", err)
		return
	}
	logging.SetGlobal(logger)
}
