package engine

import (
	"reflect"
	"testing"

	"maat/internal/config"
)

var testEngineConfig = config.EngineConfig{
	Path:              "/opt/maat/engine.jar",
	RuntimeExecutable: "java",
	RuntimeOptions:    []string{"-Xmx4g", "-Djava.awt.headless=true", "-Xss512M"},
}

func TestBuildArgs_FixedPrefix(t *testing.T) {
	req := Request{LogFile: "/tmp/history.log", VCS: VCSGit2, Analysis: AnalysisCoupling}

	got := BuildArgs(req, testEngineConfig)

	want := []string{
		"java", "-Xmx4g", "-Djava.awt.headless=true", "-Xss512M",
		"-jar", "/opt/maat/engine.jar",
		"-l", "/tmp/history.log",
		"-c", "git2",
		"-a", "coupling",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildArgs() = %v, want %v", got, want)
	}
}

func TestBuildArgs_OptionalParams(t *testing.T) {
	req := Request{
		LogFile:  "/tmp/history.log",
		VCS:      VCSGit2,
		Analysis: AnalysisCoupling,
		Params: map[string]interface{}{
			"min_coupling":    50,
			"verbose_results": true,
		},
	}

	got := BuildArgs(req, testEngineConfig)

	if !containsPair(got, "-i", "50") {
		t.Errorf("argv missing -i 50 pair: %v", got)
	}

	// --verbose-results is a bare flag: present, with no value token after it
	idx := -1
	for i, a := range got {
		if a == "--verbose-results" {
			idx = i
		}
	}
	if idx == -1 {
		t.Fatalf("argv missing --verbose-results: %v", got)
	}
	if idx != len(got)-1 {
		t.Errorf("--verbose-results should carry no value, argv: %v", got)
	}
}

func TestBuildArgs_UnrecognizedParamsIgnored(t *testing.T) {
	req := Request{
		LogFile:  "/tmp/history.log",
		VCS:      VCSGit,
		Analysis: AnalysisAuthors,
		Params: map[string]interface{}{
			"rows":          10,
			"future_option": "whatever",
			"another_bogus": 42,
		},
	}

	got := BuildArgs(req, testEngineConfig)

	if !containsPair(got, "-r", "10") {
		t.Errorf("argv missing -r 10 pair: %v", got)
	}
	for _, a := range got {
		if a == "whatever" || a == "42" || a == "future_option" {
			t.Errorf("unrecognized param leaked into argv: %v", got)
		}
	}
}

func TestBuildArgs_FalseVerboseOmitted(t *testing.T) {
	req := Request{
		LogFile:  "/tmp/history.log",
		VCS:      VCSGit2,
		Analysis: AnalysisSummary,
		Params:   map[string]interface{}{"verbose_results": false},
	}

	for _, a := range BuildArgs(req, testEngineConfig) {
		if a == "--verbose-results" {
			t.Error("--verbose-results appended for falsy value")
		}
	}
}

func TestBuildArgs_NilParamSkipped(t *testing.T) {
	req := Request{
		LogFile:  "/tmp/history.log",
		VCS:      VCSGit2,
		Analysis: AnalysisAge,
		Params:   map[string]interface{}{"age_time_now": nil},
	}

	for _, a := range BuildArgs(req, testEngineConfig) {
		if a == "-d" {
			t.Error("-d appended for nil value")
		}
	}
}

func TestBuildArgs_AllRecognizedParams(t *testing.T) {
	req := Request{
		LogFile:  "/tmp/history.log",
		VCS:      VCSGit2,
		Analysis: AnalysisCommunication,
		Params: map[string]interface{}{
			"rows":                25,
			"group":               "layers.txt",
			"team_map_file":       "teams.csv",
			"min_revs":            5,
			"min_shared_revs":     5,
			"min_coupling":        30,
			"max_coupling":        100,
			"max_changeset_size":  30,
			"expression_to_match": ".*\\.go$",
			"temporal_period":     "1",
			"age_time_now":        "2024-06-01",
			"input_encoding":      "UTF-8",
		},
	}

	got := BuildArgs(req, testEngineConfig)

	pairs := map[string]string{
		"-r":               "25",
		"-g":               "layers.txt",
		"-p":               "teams.csv",
		"-n":               "5",
		"-m":               "5",
		"-i":               "30",
		"-x":               "100",
		"-s":               "30",
		"-e":               ".*\\.go$",
		"-t":               "1",
		"-d":               "2024-06-01",
		"--input-encoding": "UTF-8",
	}
	for flag, value := range pairs {
		if !containsPair(got, flag, value) {
			t.Errorf("argv missing %s %s pair: %v", flag, value, got)
		}
	}
}
