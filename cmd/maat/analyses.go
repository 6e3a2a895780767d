package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"maat/internal/engine"
)

var analysesCmd = &cobra.Command{
	Use:   "analyses [kind]",
	Short: "List available analyses or describe one",
	Long: `Without arguments, list every analysis the engine supports with its
output columns and intended use. With a kind, describe just that analysis.

Examples:
  maat analyses
  maat analyses coupling`,
	Args: cobra.MaximumNArgs(1),
	Run:  runAnalyses,
}

func init() {
	rootCmd.AddCommand(analysesCmd)
}

func runAnalyses(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		printJSON(engine.Catalog())
		return
	}

	kind, err := engine.ParseAnalysisKind(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	info, ok := engine.Info(kind)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no description for analysis %q\n", args[0])
		os.Exit(1)
	}
	printJSON(info)
}
