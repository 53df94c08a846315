// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Recommendation categories
const (
	CategoryKeywordMatching      = "Keyword Matching"
	CategoryFormatting           = "Formatting"
	CategoryQuantifyAchievements = "Quantify Achievements"
	CategoryStructure            = "Structure"
)

// Recommendation is a prioritized, actionable fix derived from score deficits.
// PriorityScore is severity weight times estimated lift; EstimatedLift is the
// number of overall points the fix is expected to recover.
type Recommendation struct {
	Category      string   `json:"category"`
	Severity      Severity `json:"severity"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	PriorityScore float64  `json:"priority_score"`
	EstimatedLift float64  `json:"estimated_lift"`
	BeforeExample string   `json:"before_example,omitempty"`
	AfterExample  string   `json:"after_example,omitempty"`
}
