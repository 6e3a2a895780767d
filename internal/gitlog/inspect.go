package gitlog

import (
	"bufio"
	"os"
	"strings"

	"maat/internal/engine"
	"maat/internal/errors"
)

// sniffLines is how many leading lines format detection looks at
const sniffLines = 10

// Report describes whether a log file looks usable for a given vcs kind.
// It is typed data; rendering is the caller's concern.
type Report struct {
	Path           string         `json:"path"`
	VCS            engine.VCSKind `json:"vcs"`
	SizeBytes      int64          `json:"sizeBytes"`
	Lines          int            `json:"lines"`
	CommitEstimate int            `json:"commitEstimate"`
	FormatDetected bool           `json:"formatDetected"`
	Note           string         `json:"note,omitempty"`
}

// Inspect checks an existing log file against the expected vcs dialect:
// file present and non-empty, leading lines matching the dialect's shape,
// and a rough commit count. It does not invoke the engine.
func Inspect(logFile string, vcs engine.VCSKind) (*Report, error) {
	fi, err := os.Stat(logFile)
	if err != nil {
		return nil, errors.NewMaatError(errors.Validation, "log file not found: "+logFile, err)
	}
	if fi.Size() == 0 {
		return nil, errors.NewMaatError(errors.Validation, "log file is empty: "+logFile, nil)
	}

	f, err := os.Open(logFile)
	if err != nil {
		return nil, errors.NewMaatError(errors.Validation, "cannot read log file: "+logFile, err)
	}
	defer f.Close()

	report := &Report{Path: logFile, VCS: vcs, SizeBytes: fi.Size()}

	var head []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		report.Lines++
		if len(head) < sniffLines {
			head = append(head, line)
		}
		switch vcs {
		case engine.VCSGit2:
			if strings.HasPrefix(line, "--") {
				report.CommitEstimate++
			}
		case engine.VCSGit:
			if strings.HasPrefix(line, "[") {
				report.CommitEstimate++
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewMaatError(errors.Validation, "cannot read log file: "+logFile, err)
	}

	report.FormatDetected, report.Note = detectFormat(head, vcs)
	return report, nil
}

// detectFormat applies per-dialect shape checks to the leading lines
func detectFormat(head []string, vcs engine.VCSKind) (bool, string) {
	switch vcs {
	case engine.VCSGit2:
		for _, line := range head {
			if strings.HasPrefix(line, "--") && strings.Count(line, "--") >= 3 {
				return true, ""
			}
		}
		return false, "expected lines starting with --hash--date--author"
	case engine.VCSGit:
		for _, line := range head {
			if strings.HasPrefix(line, "[") && strings.Contains(line, "]") {
				return true, ""
			}
		}
		return false, "expected lines starting with [hash] author date"
	case engine.VCSSvn:
		for _, line := range head {
			if strings.Contains(line, "<?xml") || strings.Contains(line, "<log>") {
				return true, ""
			}
		}
		return false, "expected SVN XML log structure"
	default:
		return true, "no shape check for " + string(vcs)
	}
}
