package engine

import (
	"context"
	"os"
	"strings"
	"time"

	"maat/internal/logging"
)

// runtimeProbeTimeout bounds the runtime version probe; a hung runtime
// should not stall a status check
const runtimeProbeTimeout = 10 * time.Second

// EngineStatus reports whether the engine can actually be launched:
// artifact present, runtime executable answering. It never fails; callers
// read the findings.
type EngineStatus struct {
	EnginePath        string   `json:"enginePath"`
	EnginePresent     bool     `json:"enginePresent"`
	EngineSizeBytes   int64    `json:"engineSizeBytes,omitempty"`
	RuntimeExecutable string   `json:"runtimeExecutable"`
	RuntimeAvailable  bool     `json:"runtimeAvailable"`
	RuntimeVersion    string   `json:"runtimeVersion,omitempty"`
	RuntimeOptions    []string `json:"runtimeOptions"`
}

// Status checks the engine artifact and probes the runtime with -version
func (e *Engine) Status(ctx context.Context) *EngineStatus {
	status := &EngineStatus{
		EnginePath:        e.cfg.Engine.Path,
		RuntimeExecutable: e.cfg.Engine.RuntimeExecutable,
		RuntimeOptions:    e.cfg.Engine.RuntimeOptions,
	}

	if fi, err := os.Stat(e.cfg.Engine.Path); err == nil {
		status.EnginePresent = true
		status.EngineSizeBytes = fi.Size()
	}

	probeCtx, cancel := context.WithTimeout(ctx, runtimeProbeTimeout)
	defer cancel()

	res, err := e.runner.Run(probeCtx, []string{e.cfg.Engine.RuntimeExecutable, "-version"}, "")
	if err != nil {
		e.logger.Warn("Runtime probe failed", logging.Fields{
			"executable": e.cfg.Engine.RuntimeExecutable,
			"error":      err.Error(),
		})
		return status
	}

	status.RuntimeAvailable = true
	// The JVM prints its version banner on stderr
	if line := firstLine(res.Stderr); line != "" {
		status.RuntimeVersion = line
	} else {
		status.RuntimeVersion = firstLine(res.Stdout)
	}

	return status
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
