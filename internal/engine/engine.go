// Package engine runs the external analysis engine against a prepared
// history log and normalizes its CSV output into typed records.
package engine

import (
	"context"
	"os"
	"time"

	"maat/internal/config"
	"maat/internal/errors"
	"maat/internal/logging"
	"maat/internal/results"
	"maat/internal/runner"
)

// DefaultAnalysisTimeout bounds one engine invocation. Log generation is
// deliberately unbounded; see the gitlog package.
const DefaultAnalysisTimeout = 5 * time.Minute

// Request describes one analysis to run. Params is a permissive option bag:
// recognized names are mapped to engine flags, unknown names are ignored.
type Request struct {
	LogFile  string
	VCS      VCSKind
	Analysis AnalysisKind
	Params   map[string]interface{}
}

// Engine orchestrates one analysis call: validate, build the argument
// vector, execute with a deadline, parse stdout. A failure at any stage
// aborts the call; nothing is cached or retried.
type Engine struct {
	cfg    *config.Config
	runner runner.Runner
	logger *logging.Logger

	// Timeout bounds each Run; defaults to DefaultAnalysisTimeout
	Timeout time.Duration
}

// New creates an engine. A nil runner gets the real exec-backed one, a nil
// logger disables logging.
func New(cfg *config.Config, r runner.Runner, logger *logging.Logger) *Engine {
	if logger == nil {
		logger = logging.Nop()
	}
	if r == nil {
		r = runner.NewExecRunner(logger)
	}
	return &Engine{
		cfg:     cfg,
		runner:  r,
		logger:  logger,
		Timeout: DefaultAnalysisTimeout,
	}
}

// Run executes one analysis and returns the engine's rows as typed records,
// in engine order. Requests with an unknown vcs/analysis kind or a missing
// log file are rejected before any process is spawned.
func (e *Engine) Run(ctx context.Context, req Request) ([]results.Record, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	args := BuildArgs(req, e.cfg.Engine)

	runCtx, cancel := context.WithTimeout(ctx, e.Timeout)
	defer cancel()

	start := time.Now()
	e.logger.Debug("Running analysis", logging.Fields{
		"analysis": string(req.Analysis),
		"vcs":      string(req.VCS),
		"log":      req.LogFile,
		"timeout":  e.Timeout.String(),
	})

	res, err := e.runner.Run(runCtx, args, "")
	if err != nil {
		return nil, err
	}

	records, err := results.Parse(res.Stdout)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("Analysis completed", logging.Fields{
		"analysis": string(req.Analysis),
		"rows":     len(records),
		"duration": time.Since(start).String(),
	})

	return records, nil
}

// validate rejects malformed requests before any process spawn
func validate(req Request) error {
	if !req.VCS.Valid() {
		return errors.NewMaatError(errors.Validation, "unsupported vcs "+string(req.VCS), nil)
	}
	if !req.Analysis.Valid() {
		return errors.NewMaatError(errors.Validation, "unsupported analysis "+string(req.Analysis), nil)
	}
	if _, err := os.Stat(req.LogFile); err != nil {
		return errors.NewMaatError(errors.Validation, "log file not found: "+req.LogFile, err)
	}
	return nil
}
