package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"maat/internal/store"
)

var (
	runsDB        string
	runsLimit     int
	runsAggregate bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recorded analysis runs",
	Long: `List runs recorded with 'analyze --record-db', newest first, or
aggregate them per analysis kind.

Examples:
  maat runs --db runs.db
  maat runs --db runs.db --aggregate`,
	Run: runRuns,
}

func init() {
	runsCmd.Flags().StringVar(&runsDB, "db", "", "Run-history database path (required)")
	runsCmd.Flags().IntVar(&runsLimit, "limit", 20, "Maximum number of runs to list")
	runsCmd.Flags().BoolVar(&runsAggregate, "aggregate", false, "Aggregate runs per analysis kind")
	_ = runsCmd.MarkFlagRequired("db")

	rootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, args []string) {
	logger := newLogger()

	db, err := store.Open(runsDB, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run store: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if runsAggregate {
		aggs, err := db.AggregateByAnalysis()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error aggregating runs: %v\n", err)
			os.Exit(1)
		}
		printJSON(aggs)
		return
	}

	runs, err := db.RecentRuns(runsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing runs: %v\n", err)
		os.Exit(1)
	}
	printJSON(runs)
}
