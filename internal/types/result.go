// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Match pairs a satisfied requirement with the resume locations that satisfied it
type Match struct {
	Requirement Requirement        `json:"requirement"`
	Status      MatchStatus        `json:"status"`
	Evidence    []EvidenceLocation `json:"resume_evidence_locations,omitempty"`
}

// Gap is a requirement with no qualifying match in the resume
type Gap struct {
	Requirement Requirement `json:"requirement"`
	Reason      string      `json:"reason"`
}

// AnalysisResult is the aggregate root returned to the caller. It is created
// once per analysis request and never mutated after construction.
type AnalysisResult struct {
	ATSScore       float64 `json:"ats_score"`
	RecruiterScore float64 `json:"recruiter_score"`
	CoverageScore  float64 `json:"coverage_score"`

	Components map[string]ScoreComponent `json:"components"`

	Matches         []Match          `json:"matches"`
	Gaps            []Gap            `json:"gaps"`
	Recommendations []Recommendation `json:"recommendations"`

	// LowConfidence marks degraded scoring of malformed input (e.g. a resume
	// with no recognizable structure). The analysis still completes.
	LowConfidence       bool   `json:"low_confidence,omitempty"`
	LowConfidenceReason string `json:"low_confidence_reason,omitempty"`
}

// Overall returns the sum of all component scores
func (r *AnalysisResult) Overall() float64 {
	total := 0.0
	for _, c := range r.Components {
		total += c.Score
	}
	return total
}
