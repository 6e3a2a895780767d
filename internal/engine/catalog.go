package engine

// AnalysisInfo is typed metadata about one analysis kind. Output columns are
// the engine's typical header for that analysis; the parser never assumes
// them, they exist so callers can describe an analysis before running it.
type AnalysisInfo struct {
	Kind          AnalysisKind `json:"kind"`
	Description   string       `json:"description"`
	OutputColumns []string     `json:"outputColumns"`
	UseCase       string       `json:"useCase"`
}

// catalogOrder fixes the presentation-independent ordering of the catalog
var catalogOrder = []AnalysisKind{
	AnalysisAuthors,
	AnalysisRevisions,
	AnalysisCoupling,
	AnalysisSoc,
	AnalysisSummary,
	AnalysisIdentity,
	AnalysisAbsChurn,
	AnalysisAuthorChurn,
	AnalysisEntityChurn,
	AnalysisEntityOwnership,
	AnalysisMainDev,
	AnalysisRefactoringMainDev,
	AnalysisEntityEffort,
	AnalysisMainDevByRevs,
	AnalysisFragmentation,
	AnalysisCommunication,
	AnalysisMessages,
	AnalysisAge,
}

var catalog = map[AnalysisKind]AnalysisInfo{
	AnalysisAuthors: {
		Kind:          AnalysisAuthors,
		Description:   "Number of authors per module and revision count",
		OutputColumns: []string{"entity", "n-authors", "n-revs"},
		UseCase:       "Identify modules with high communication overhead due to many developers",
	},
	AnalysisRevisions: {
		Kind:          AnalysisRevisions,
		Description:   "Number of revisions per module",
		OutputColumns: []string{"entity", "n-revs"},
		UseCase:       "Find the most frequently changed modules",
	},
	AnalysisCoupling: {
		Kind:          AnalysisCoupling,
		Description:   "Logical coupling between modules that tend to change together",
		OutputColumns: []string{"entity", "coupled", "degree", "average-revs"},
		UseCase:       "Discover hidden dependencies and refactoring candidates",
	},
	AnalysisSoc: {
		Kind:          AnalysisSoc,
		Description:   "Sum of coupling for modules",
		OutputColumns: []string{"entity", "soc"},
		UseCase:       "Identify modules with the highest overall coupling",
	},
	AnalysisSummary: {
		Kind:          AnalysisSummary,
		Description:   "Overview statistics of the repository",
		OutputColumns: []string{"statistic", "value"},
		UseCase:       "Get high-level metrics about commits, entities, and authors",
	},
	AnalysisIdentity: {
		Kind:          AnalysisIdentity,
		Description:   "Raw parsed data, for debugging the log format",
		OutputColumns: []string{"author", "rev", "date", "entity", "message"},
		UseCase:       "Debug parser issues or export raw data",
	},
	AnalysisAbsChurn: {
		Kind:          AnalysisAbsChurn,
		Description:   "Absolute code churn over time",
		OutputColumns: []string{"date", "added", "deleted"},
		UseCase:       "Track development activity trends over time",
	},
	AnalysisAuthorChurn: {
		Kind:          AnalysisAuthorChurn,
		Description:   "Code churn by author",
		OutputColumns: []string{"author", "added", "deleted"},
		UseCase:       "Understand individual developer contributions",
	},
	AnalysisEntityChurn: {
		Kind:          AnalysisEntityChurn,
		Description:   "Code churn by module",
		OutputColumns: []string{"entity", "added", "deleted"},
		UseCase:       "Identify unstable or heavily modified modules",
	},
	AnalysisEntityOwnership: {
		Kind:          AnalysisEntityOwnership,
		Description:   "Ownership distribution per module",
		OutputColumns: []string{"entity", "author", "added", "deleted"},
		UseCase:       "Find modules with clear vs distributed ownership",
	},
	AnalysisMainDev: {
		Kind:          AnalysisMainDev,
		Description:   "Main developer per module by lines added",
		OutputColumns: []string{"entity", "main-dev", "added", "total-added", "ownership"},
		UseCase:       "Identify module experts for knowledge transfer",
	},
	AnalysisRefactoringMainDev: {
		Kind:          AnalysisRefactoringMainDev,
		Description:   "Main developer per module by lines removed",
		OutputColumns: []string{"entity", "main-dev", "removed", "total-removed", "ownership"},
		UseCase:       "Find who maintains modules after initial development",
	},
	AnalysisEntityEffort: {
		Kind:          AnalysisEntityEffort,
		Description:   "Effort distribution among developers per module",
		OutputColumns: []string{"entity", "author", "author-revs", "total-revs"},
		UseCase:       "Understand collaboration patterns within modules",
	},
	AnalysisMainDevByRevs: {
		Kind:          AnalysisMainDevByRevs,
		Description:   "Main developer per module by number of revisions",
		OutputColumns: []string{"entity", "main-dev", "added", "total-added", "ownership"},
		UseCase:       "Alternative view of module ownership by activity",
	},
	AnalysisFragmentation: {
		Kind:          AnalysisFragmentation,
		Description:   "How fragmented the development effort is per module",
		OutputColumns: []string{"entity", "fractal-value"},
		UseCase:       "Assess development coordination challenges",
	},
	AnalysisCommunication: {
		Kind:          AnalysisCommunication,
		Description:   "Communication needs between developers sharing modules",
		OutputColumns: []string{"author", "peer", "shared", "average", "strength"},
		UseCase:       "Identify collaboration needs and team structure",
	},
	AnalysisMessages: {
		Kind:          AnalysisMessages,
		Description:   "Commit message word frequency",
		OutputColumns: []string{"word", "frequency"},
		UseCase:       "Understand development themes and focus areas",
	},
	AnalysisAge: {
		Kind:          AnalysisAge,
		Description:   "Age of modules, months since last change",
		OutputColumns: []string{"entity", "age-months"},
		UseCase:       "Find stable vs actively changing code areas",
	},
}

// Catalog returns metadata for every analysis kind, in canonical order
func Catalog() []AnalysisInfo {
	out := make([]AnalysisInfo, 0, len(catalogOrder))
	for _, k := range catalogOrder {
		out = append(out, catalog[k])
	}
	return out
}

// Info returns metadata for one analysis kind
func Info(kind AnalysisKind) (AnalysisInfo, bool) {
	info, ok := catalog[kind]
	return info, ok
}
