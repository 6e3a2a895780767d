package gitlog

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"maat/internal/errors"
	"maat/internal/runner"
)

type spyRunner struct {
	calls  [][]string
	dirs   []string
	result runner.Result
	err    error
}

func (s *spyRunner) Run(_ context.Context, argv []string, dir string) (runner.Result, error) {
	s.calls = append(s.calls, argv)
	s.dirs = append(s.dirs, dir)
	return s.result, s.err
}

func TestBuildLogArgs_Extended(t *testing.T) {
	got := buildLogArgs(FormatExtended, "", nil)

	want := []string{
		"git", "log", "--all", "--numstat", "--date=short",
		"--pretty=format:--%h--%ad--%aN", "--no-renames",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("buildLogArgs() = %v, want %v", got, want)
	}
}

func TestBuildLogArgs_Basic(t *testing.T) {
	got := buildLogArgs(FormatBasic, "", nil)

	want := []string{
		"git", "log", "--pretty=format:[%h] %aN %ad %s",
		"--date=short", "--numstat",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("buildLogArgs() = %v, want %v", got, want)
	}
}

func TestBuildLogArgs_AfterAndExclusions(t *testing.T) {
	got := buildLogArgs(FormatExtended, "2024-01-01", []string{"vendor/", "test/"})

	joined := strings.Join(got, " ")
	if !strings.Contains(joined, "--after=2024-01-01") {
		t.Errorf("argv missing after filter: %v", got)
	}
	if !strings.HasSuffix(joined, "-- . :(exclude)vendor/ :(exclude)test/") {
		t.Errorf("argv missing path exclusions: %v", got)
	}
}

func TestGenerate_WritesOutputVerbatim(t *testing.T) {
	logText := "--abc123--2024-01-15--Alice\n10\t2\tsrc/core.clj\n"
	spy := &spyRunner{result: runner.Result{Stdout: logText}}
	g := NewGenerator(spy, nil)

	repo := t.TempDir()
	out := filepath.Join(t.TempDir(), "history.log")

	path, err := g.Generate(context.Background(), Spec{RepoPath: repo, OutputPath: out})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if path != out {
		t.Errorf("Generate() = %q, want %q", path, out)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != logText {
		t.Errorf("output = %q, want verbatim %q", data, logText)
	}

	// git runs inside the repository
	if len(spy.dirs) != 1 || spy.dirs[0] != repo {
		t.Errorf("working dir = %v, want %q", spy.dirs, repo)
	}
}

func TestGenerate_TempFileWhenNoOutputPath(t *testing.T) {
	spy := &spyRunner{result: runner.Result{Stdout: "log\n"}}
	g := NewGenerator(spy, nil)

	path, err := g.Generate(context.Background(), Spec{RepoPath: t.TempDir()})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	defer os.Remove(path)

	if !strings.Contains(filepath.Base(path), "maat-log-") {
		t.Errorf("temp path = %q, want maat-log- prefix", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("temp file not written: %v", err)
	}
}

func TestGenerate_MissingRepo(t *testing.T) {
	spy := &spyRunner{}
	g := NewGenerator(spy, nil)

	_, err := g.Generate(context.Background(), Spec{RepoPath: "/no/such/repo"})
	if !errors.IsKind(err, errors.Validation) {
		t.Fatalf("Generate() error = %v, want VALIDATION", err)
	}
	if len(spy.calls) != 0 {
		t.Errorf("runner invoked %d times for a missing repo, want 0", len(spy.calls))
	}
}

func TestGenerate_UnknownFormat(t *testing.T) {
	g := NewGenerator(&spyRunner{}, nil)

	_, err := g.Generate(context.Background(), Spec{RepoPath: t.TempDir(), Format: "fancy"})
	if !errors.IsKind(err, errors.Validation) {
		t.Fatalf("Generate() error = %v, want VALIDATION", err)
	}
}

func TestGenerate_PropagatesGitFailure(t *testing.T) {
	spy := &spyRunner{err: errors.NewMaatError(errors.Execution, "process exited with failure", nil).
		WithStderr("fatal: not a git repository")}
	g := NewGenerator(spy, nil)

	_, err := g.Generate(context.Background(), Spec{RepoPath: t.TempDir()})
	if !errors.IsKind(err, errors.Execution) {
		t.Fatalf("Generate() error = %v, want EXECUTION", err)
	}
	if !strings.Contains(err.Error(), "not a git repository") {
		t.Errorf("error should carry git stderr, got %q", err.Error())
	}
}
