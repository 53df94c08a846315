// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MatchStatus classifies how a requirement was found in the resume
type MatchStatus string

const (
	// MatchStrong means the term was found with contextual signal
	// (a co-occurring metric or seniority qualifier in the same bullet).
	MatchStrong MatchStatus = "strong"
	// MatchWeak means the term was found as a bare mention
	MatchWeak MatchStatus = "weak"
	// MatchMissing means no qualifying mention was found
	MatchMissing MatchStatus = "missing"
)

// Requirement is a single ontology-resolved job requirement.
// Requirements are unique by canonical skill on the job side.
type Requirement struct {
	CanonicalSkill   string   `json:"canonical_skill" validate:"required"`
	Aliases          []string `json:"aliases,omitempty"`
	ImportanceWeight float64  `json:"importance_weight" validate:"gt=0,lte=1"`
	MustHave         bool     `json:"is_must_have"`
}

// KeywordMatch records how one requirement resolved against the resume
type KeywordMatch struct {
	Requirement     Requirement        `json:"requirement"`
	Status          MatchStatus        `json:"status"`
	Evidence        []EvidenceLocation `json:"evidence_locations,omitempty"`
	ImportanceScore float64            `json:"importance_score"`
}

// Matched reports whether the requirement was found at all
func (m KeywordMatch) Matched() bool {
	return m.Status != MatchMissing
}
