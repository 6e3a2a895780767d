package engine

import (
	"fmt"
	"sort"

	"maat/internal/config"
)

// paramFlags is the static table of recognized optional parameter names and
// their engine flags. Names absent from this table are silently ignored so
// callers may pass analysis-specific option bags without the builder needing
// per-analysis knowledge; new engine flags get a row here.
var paramFlags = map[string]string{
	"rows":                "-r",
	"group":               "-g",
	"team_map_file":       "-p",
	"min_revs":            "-n",
	"min_shared_revs":     "-m",
	"min_coupling":        "-i",
	"max_coupling":        "-x",
	"max_changeset_size":  "-s",
	"expression_to_match": "-e",
	"temporal_period":     "-t",
	"age_time_now":        "-d",
	"input_encoding":      "--input-encoding",
}

// verboseResultsParam is boolean: it appends a bare flag with no value
const verboseResultsParam = "verbose_results"

// BuildArgs translates a request into the engine's process argument vector.
// The fixed prefix is runtime + options + -jar + artifact + log/vcs/analysis;
// recognized optional parameters follow in sorted-name order (the engine does
// not care about flag order; sorting keeps tests deterministic).
func BuildArgs(req Request, eng config.EngineConfig) []string {
	args := make([]string, 0, 10+len(eng.RuntimeOptions)+2*len(req.Params))
	args = append(args, eng.RuntimeExecutable)
	args = append(args, eng.RuntimeOptions...)
	args = append(args,
		"-jar", eng.Path,
		"-l", req.LogFile,
		"-c", string(req.VCS),
		"-a", string(req.Analysis),
	)

	names := make([]string, 0, len(req.Params))
	for name := range req.Params {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		value := req.Params[name]
		if value == nil {
			continue
		}
		if flag, ok := paramFlags[name]; ok {
			args = append(args, flag, fmt.Sprintf("%v", value))
		}
	}

	if truthy(req.Params[verboseResultsParam]) {
		args = append(args, "--verbose-results")
	}

	return args
}

func truthy(v interface{}) bool {
	b, ok := v.(bool)
	return ok && b
}
