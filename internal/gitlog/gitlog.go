// Package gitlog produces the git history log the analysis engine consumes,
// and inspects existing log files for format problems.
package gitlog

import (
	"context"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"maat/internal/errors"
	"maat/internal/logging"
	"maat/internal/runner"
)

// Format selects the log dialect to generate
type Format string

const (
	// FormatBasic is the `[hash] author date message` dialect, consumed by
	// the engine as vcs "git"
	FormatBasic Format = "basic"
	// FormatExtended is the `--hash--date--author` dialect with numstat
	// rows, consumed by the engine as vcs "git2". Preferred.
	FormatExtended Format = "extended"
)

// Spec describes one log generation
type Spec struct {
	// RepoPath is the repository to read; it must exist
	RepoPath string
	// OutputPath receives the log verbatim; empty means a fresh file in
	// the OS temp directory
	OutputPath string
	// Format defaults to FormatExtended
	Format Format
	// After restricts history to commits after this date (YYYY-MM-DD)
	After string
	// ExcludePaths are repository paths left out of the log
	ExcludePaths []string
}

// Generator shells out to the git client to produce history logs
type Generator struct {
	runner runner.Runner
	logger *logging.Logger
}

// NewGenerator creates a generator. A nil runner gets the real exec-backed
// one, a nil logger disables logging.
func NewGenerator(r runner.Runner, logger *logging.Logger) *Generator {
	if logger == nil {
		logger = logging.Nop()
	}
	if r == nil {
		r = runner.NewExecRunner(logger)
	}
	return &Generator{runner: r, logger: logger}
}

// Generate runs git log in the repository and writes the captured output
// verbatim to the output path, returning that path.
//
// No deadline is imposed here: history extraction time scales with
// repository size and is bounded by the caller's context if at all.
// Concurrent generation into the same output path is last-writer-wins;
// callers that share paths must serialize.
func (g *Generator) Generate(ctx context.Context, spec Spec) (string, error) {
	if _, err := os.Stat(spec.RepoPath); err != nil {
		return "", errors.NewMaatError(errors.Validation, "repository path not found: "+spec.RepoPath, err)
	}

	format := spec.Format
	if format == "" {
		format = FormatExtended
	}
	if format != FormatBasic && format != FormatExtended {
		return "", errors.NewMaatError(errors.Validation, "unsupported log format "+string(format), nil)
	}

	args := buildLogArgs(format, spec.After, spec.ExcludePaths)

	g.logger.Debug("Generating history log", logging.Fields{
		"repo":   spec.RepoPath,
		"format": string(format),
	})

	res, err := g.runner.Run(ctx, args, spec.RepoPath)
	if err != nil {
		return "", err
	}

	outputPath := spec.OutputPath
	if outputPath == "" {
		outputPath = filepath.Join(os.TempDir(), "maat-log-"+uuid.NewString()+".log")
	}

	if err := os.WriteFile(outputPath, []byte(res.Stdout), 0o644); err != nil {
		return "", errors.NewMaatError(errors.Validation, "cannot write log file "+outputPath, err)
	}

	g.logger.Info("History log written", logging.Fields{
		"path":  outputPath,
		"bytes": len(res.Stdout),
	})

	return outputPath, nil
}

// buildLogArgs assembles the git log invocation for a dialect
func buildLogArgs(format Format, after string, excludePaths []string) []string {
	var args []string
	if format == FormatExtended {
		args = []string{
			"git", "log", "--all", "--numstat", "--date=short",
			"--pretty=format:--%h--%ad--%aN", "--no-renames",
		}
	} else {
		args = []string{
			"git", "log", "--pretty=format:[%h] %aN %ad %s",
			"--date=short", "--numstat",
		}
	}

	if after != "" {
		args = append(args, "--after="+after)
	}

	if len(excludePaths) > 0 {
		args = append(args, "--", ".")
		for _, p := range excludePaths {
			args = append(args, ":(exclude)"+p)
		}
	}

	return args
}
