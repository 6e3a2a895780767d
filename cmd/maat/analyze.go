package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"maat/internal/engine"
	"maat/internal/logging"
	"maat/internal/store"
)

var (
	analyzeLog      string
	analyzeVcs      string
	analyzeKind     string
	analyzeRecordDB string

	analyzeRows          int
	analyzeGroup         string
	analyzeTeamMap       string
	analyzeMinRevs       int
	analyzeMinSharedRevs int
	analyzeMinCoupling   int
	analyzeMaxCoupling   int
	analyzeMaxChangeset  int
	analyzeExpression    string
	analyzePeriod        string
	analyzeAgeNow        string
	analyzeEncoding      string
	analyzeVerbose       bool
)

// analyzeParamFlags maps CLI flag names to engine parameter names; only
// flags the user actually set are forwarded, so engine defaults stay intact
var analyzeParamFlags = map[string]struct {
	param string
	value func() interface{}
}{
	"rows":               {"rows", func() interface{} { return analyzeRows }},
	"group":              {"group", func() interface{} { return analyzeGroup }},
	"team-map-file":      {"team_map_file", func() interface{} { return analyzeTeamMap }},
	"min-revs":           {"min_revs", func() interface{} { return analyzeMinRevs }},
	"min-shared-revs":    {"min_shared_revs", func() interface{} { return analyzeMinSharedRevs }},
	"min-coupling":       {"min_coupling", func() interface{} { return analyzeMinCoupling }},
	"max-coupling":       {"max_coupling", func() interface{} { return analyzeMaxCoupling }},
	"max-changeset-size": {"max_changeset_size", func() interface{} { return analyzeMaxChangeset }},
	"expression":         {"expression_to_match", func() interface{} { return analyzeExpression }},
	"temporal-period":    {"temporal_period", func() interface{} { return analyzePeriod }},
	"age-time-now":       {"age_time_now", func() interface{} { return analyzeAgeNow }},
	"input-encoding":     {"input_encoding", func() interface{} { return analyzeEncoding }},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run one engine analysis against a history log",
	Long: `Run one engine analysis against a previously generated history log and
print the typed result records as JSON.

Examples:
  maat analyze --log history.log --vcs git2 --analysis summary
  maat analyze --log history.log --vcs git2 --analysis coupling --min-coupling 30
  maat analyze --log history.log --vcs git2 --analysis age --age-time-now 2024-06-01`,
	Run: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeLog, "log", "", "Path to the history log file (required)")
	analyzeCmd.Flags().StringVar(&analyzeVcs, "vcs", "git2", "VCS log dialect: git, git2, svn, hg, p4, tfs")
	analyzeCmd.Flags().StringVar(&analyzeKind, "analysis", "", "Analysis kind (required, see 'maat analyses')")
	analyzeCmd.Flags().StringVar(&analyzeRecordDB, "record-db", "", "Record this run in the given run-history database")

	analyzeCmd.Flags().IntVar(&analyzeRows, "rows", 0, "Cap result row count")
	analyzeCmd.Flags().StringVar(&analyzeGroup, "group", "", "Grouping file for architectural-level analysis")
	analyzeCmd.Flags().StringVar(&analyzeTeamMap, "team-map-file", "", "Author to team mapping file")
	analyzeCmd.Flags().IntVar(&analyzeMinRevs, "min-revs", 0, "Minimum revisions to include an entity")
	analyzeCmd.Flags().IntVar(&analyzeMinSharedRevs, "min-shared-revs", 0, "Minimum shared revisions (communication)")
	analyzeCmd.Flags().IntVar(&analyzeMinCoupling, "min-coupling", 0, "Minimum coupling percentage")
	analyzeCmd.Flags().IntVar(&analyzeMaxCoupling, "max-coupling", 0, "Maximum coupling percentage")
	analyzeCmd.Flags().IntVar(&analyzeMaxChangeset, "max-changeset-size", 0, "Maximum commit size considered")
	analyzeCmd.Flags().StringVar(&analyzeExpression, "expression", "", "Regex filter for entities")
	analyzeCmd.Flags().StringVar(&analyzePeriod, "temporal-period", "", "Time bucketing for temporal coupling")
	analyzeCmd.Flags().StringVar(&analyzeAgeNow, "age-time-now", "", "Reference date for age calculation (YYYY-MM-DD)")
	analyzeCmd.Flags().StringVar(&analyzeEncoding, "input-encoding", "", "Text encoding override for the log file")
	analyzeCmd.Flags().BoolVar(&analyzeVerbose, "verbose-results", false, "Request extended result columns")

	_ = analyzeCmd.MarkFlagRequired("log")
	_ = analyzeCmd.MarkFlagRequired("analysis")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) {
	logger := newLogger()
	cfg := mustLoadConfig()

	vcs, err := engine.ParseVCSKind(analyzeVcs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	kind, err := engine.ParseAnalysisKind(analyzeKind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	params := map[string]interface{}{}
	for flagName, p := range analyzeParamFlags {
		if cmd.Flags().Changed(flagName) {
			params[p.param] = p.value()
		}
	}
	if analyzeVerbose {
		params["verbose_results"] = true
	}

	e := engine.New(cfg, nil, logger)

	start := time.Now()
	records, err := e.Run(context.Background(), engine.Request{
		LogFile:  analyzeLog,
		VCS:      vcs,
		Analysis: kind,
		Params:   params,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running analysis: %v\n", err)
		os.Exit(1)
	}

	if analyzeRecordDB != "" {
		recordRun(logger, start, len(records))
	}

	printJSON(records)
}

// recordRun appends the finished run to the run-history database; failures
// are logged, never fatal, the analysis output already exists
func recordRun(logger *logging.Logger, start time.Time, rows int) {
	db, err := store.Open(analyzeRecordDB, logger)
	if err != nil {
		logger.Warn("Cannot open run store", logging.Fields{"error": err.Error()})
		return
	}
	defer db.Close()

	if _, err := db.RecordRun(store.RunRecord{
		Analysis:   analyzeKind,
		VCS:        analyzeVcs,
		LogFile:    analyzeLog,
		RowCount:   rows,
		DurationMs: time.Since(start).Milliseconds(),
	}); err != nil {
		logger.Warn("Cannot record run", logging.Fields{"error": err.Error()})
	}
}
