package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"maat/internal/engine"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the analysis engine is ready to run",
	Long: `Verify that the engine jar exists at the configured path and that the
configured runtime executable responds, then print the findings as JSON.`,
	Run: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) {
	logger := newLogger()
	cfg := mustLoadConfig()

	e := engine.New(cfg, nil, logger)
	status := e.Status(context.Background())

	printJSON(status)
	if !status.EnginePresent || !status.RuntimeAvailable {
		fmt.Fprintln(os.Stderr, "Engine is not ready; fix the findings above")
		os.Exit(1)
	}
}
