package engine

import (
	"sort"
	"strings"

	"maat/internal/errors"
)

// VCSKind identifies the history-log dialect the engine should parse.
// Membership is a closed set; ParseVCSKind is the only conversion point
// for free-form external input.
type VCSKind string

const (
	VCSGit  VCSKind = "git"
	VCSGit2 VCSKind = "git2"
	VCSSvn  VCSKind = "svn"
	VCSHg   VCSKind = "hg"
	VCSP4   VCSKind = "p4"
	VCSTfs  VCSKind = "tfs"
)

var vcsKinds = map[VCSKind]struct{}{
	VCSGit:  {},
	VCSGit2: {},
	VCSSvn:  {},
	VCSHg:   {},
	VCSP4:   {},
	VCSTfs:  {},
}

// Valid reports closed-set membership
func (k VCSKind) Valid() bool {
	_, ok := vcsKinds[k]
	return ok
}

// ParseVCSKind validates free-form input against the closed VCS set
func ParseVCSKind(s string) (VCSKind, error) {
	k := VCSKind(s)
	if !k.Valid() {
		return "", errors.NewMaatError(errors.Validation,
			"unsupported vcs "+s+", supported: "+joinKinds(vcsKindNames()), nil)
	}
	return k, nil
}

// AnalysisKind identifies one of the engine's fixed analyses
type AnalysisKind string

const (
	AnalysisAuthors            AnalysisKind = "authors"
	AnalysisRevisions          AnalysisKind = "revisions"
	AnalysisCoupling           AnalysisKind = "coupling"
	AnalysisSoc                AnalysisKind = "soc"
	AnalysisSummary            AnalysisKind = "summary"
	AnalysisIdentity           AnalysisKind = "identity"
	AnalysisAbsChurn           AnalysisKind = "abs-churn"
	AnalysisAuthorChurn        AnalysisKind = "author-churn"
	AnalysisEntityChurn        AnalysisKind = "entity-churn"
	AnalysisEntityOwnership    AnalysisKind = "entity-ownership"
	AnalysisMainDev            AnalysisKind = "main-dev"
	AnalysisRefactoringMainDev AnalysisKind = "refactoring-main-dev"
	AnalysisEntityEffort       AnalysisKind = "entity-effort"
	AnalysisMainDevByRevs      AnalysisKind = "main-dev-by-revs"
	AnalysisFragmentation      AnalysisKind = "fragmentation"
	AnalysisCommunication      AnalysisKind = "communication"
	AnalysisMessages           AnalysisKind = "messages"
	AnalysisAge                AnalysisKind = "age"
)

var analysisKinds = map[AnalysisKind]struct{}{
	AnalysisAuthors:            {},
	AnalysisRevisions:          {},
	AnalysisCoupling:           {},
	AnalysisSoc:                {},
	AnalysisSummary:            {},
	AnalysisIdentity:           {},
	AnalysisAbsChurn:           {},
	AnalysisAuthorChurn:        {},
	AnalysisEntityChurn:        {},
	AnalysisEntityOwnership:    {},
	AnalysisMainDev:            {},
	AnalysisRefactoringMainDev: {},
	AnalysisEntityEffort:       {},
	AnalysisMainDevByRevs:      {},
	AnalysisFragmentation:      {},
	AnalysisCommunication:      {},
	AnalysisMessages:           {},
	AnalysisAge:                {},
}

// Valid reports closed-set membership
func (k AnalysisKind) Valid() bool {
	_, ok := analysisKinds[k]
	return ok
}

// ParseAnalysisKind validates free-form input against the closed analysis set
func ParseAnalysisKind(s string) (AnalysisKind, error) {
	k := AnalysisKind(s)
	if !k.Valid() {
		return "", errors.NewMaatError(errors.Validation,
			"unsupported analysis "+s+", supported: "+joinKinds(analysisKindNames()), nil)
	}
	return k, nil
}

func vcsKindNames() []string {
	names := make([]string, 0, len(vcsKinds))
	for k := range vcsKinds {
		names = append(names, string(k))
	}
	return names
}

func analysisKindNames() []string {
	names := make([]string, 0, len(analysisKinds))
	for k := range analysisKinds {
		names = append(names, string(k))
	}
	return names
}

func joinKinds(names []string) string {
	sort.Strings(names)
	return strings.Join(names, ", ")
}
