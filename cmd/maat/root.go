package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"maat/internal/config"
	"maat/internal/logging"
	"maat/internal/version"
)

var (
	// configFlag is the CLI --config flag value
	configFlag string
	// logLevelFlag is the CLI --log-level flag value
	logLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:   "maat",
	Short: "maat - version-control history analysis via the Code Maat engine",
	Long: `maat wraps the Code Maat analysis engine: it generates history logs from
git, runs the engine's analyses (coupling, churn, authorship, age, effort,
communication, summary, ...) against them, and emits typed results as JSON.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("maat version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "",
		"Path to the configuration document (default: ./maat.json)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info",
		"Log level: debug, info, warn, error")
}

// newLogger builds the CLI logger; logs go to stderr, JSON results to stdout
func newLogger() *logging.Logger {
	return logging.NewLogger(logging.Config{
		Format: logging.HumanFormat,
		Level:  logging.LogLevel(logLevelFlag),
	})
}

// mustLoadConfig resolves the engine configuration or exits
func mustLoadConfig() *config.Config {
	cfg, err := config.Load(configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// printJSON writes v to stdout as indented JSON
func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding output: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}
