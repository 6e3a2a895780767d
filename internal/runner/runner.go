package runner

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"maat/internal/errors"
	"maat/internal/logging"
)

// Result holds the captured output of a completed process
type Result struct {
	Stdout string
	Stderr string
}

// Runner is the single process-spawn seam. Everything that invokes an
// external executable (the analysis engine, the git client) goes through it,
// so tests can substitute a spy or stub without touching command
// construction or parsing.
type Runner interface {
	// Run spawns argv synchronously in dir (empty dir means the current
	// working directory) and blocks until completion or until ctx expires.
	Run(ctx context.Context, argv []string, dir string) (Result, error)
}

// ExecRunner runs commands with os/exec
type ExecRunner struct {
	logger *logging.Logger
}

// NewExecRunner creates a runner. A nil logger disables logging.
func NewExecRunner(logger *logging.Logger) *ExecRunner {
	if logger == nil {
		logger = logging.Nop()
	}
	return &ExecRunner{logger: logger}
}

// Run implements Runner. A deadline on ctx bounds the process lifetime;
// when the deadline fires the process is killed and the output captured so
// far is discarded. A non-zero exit maps to an EXECUTION error carrying the
// process's standard-error text verbatim.
func (r *ExecRunner) Run(ctx context.Context, argv []string, dir string) (Result, error) {
	if len(argv) == 0 {
		return Result{}, errors.NewMaatError(errors.Execution, "empty argument vector", nil)
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Debug("Executing command", logging.Fields{
		"argv": strings.Join(argv, " "),
		"dir":  dir,
	})

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return Result{}, errors.NewMaatError(errors.Timeout, "process exceeded deadline", err).
				WithDetails(map[string]interface{}{"argv": argv})
		}

		if _, ok := err.(*exec.ExitError); ok {
			return Result{}, errors.NewMaatError(errors.Execution, "process exited with failure", err).
				WithStderr(stderr.String()).
				WithDetails(map[string]interface{}{"argv": argv})
		}

		return Result{}, errors.NewMaatError(errors.Execution, "failed to start process", err).
			WithDetails(map[string]interface{}{"argv": argv})
	}

	return Result{Stdout: stdout.String(), Stderr: stderr.String()}, nil
}
