package models

import "fmt"

// AnalysisKind selects which canned analysis prompt is sent to the model.
type AnalysisKind string

const (
	AnalysisSummary         AnalysisKind = "summary"
	AnalysisImprovements    AnalysisKind = "improvements"
	AnalysisMissingKeywords AnalysisKind = "missing_keywords"
	AnalysisMatchScore      AnalysisKind = "match_score"
)

func ParseAnalysisKind(s string) (AnalysisKind, error) {
	switch AnalysisKind(s) {
	case AnalysisSummary, AnalysisImprovements, AnalysisMissingKeywords, AnalysisMatchScore:
		return AnalysisKind(s), nil
	default:
		return "", fmt.Errorf("unknown analysis kind: %q", s)
	}
}

// RequiresJobDescription reports whether the kind compares the resume
// against the job description and therefore needs both inputs.
func (k AnalysisKind) RequiresJobDescription() bool {
	return k == AnalysisMissingKeywords || k == AnalysisMatchScore
}
