// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Severity ranks how badly an issue hurts the candidate
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityMajor    Severity = "major"
	SeverityMinor    Severity = "minor"
)

// FormattingIssue is a single ATS-parseability or structure problem
type FormattingIssue struct {
	IssueType   string   `json:"issue_type"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
	Suggestion  string   `json:"suggestion"`
}

// BulletScore is the impact assessment of one experience bullet
type BulletScore struct {
	Section       string  `json:"section"`
	BulletIndex   int     `json:"bullet_index"`
	Text          string  `json:"text"`
	StrengthScore float64 `json:"strength_score"`
	HasMetrics    bool    `json:"has_metrics"`
	HasActionVerb bool    `json:"has_action_verb"`
	Suggestion    string  `json:"suggestion,omitempty"`
}

// Driver is an atomic, evidence-backed contribution to a score component.
// The sum of a component's driver deltas equals its score minus its baseline,
// exactly: scores are never re-derived independently of their drivers.
type Driver struct {
	Label    string   `json:"label"`
	Delta    float64  `json:"delta"`
	Evidence []string `json:"evidence,omitempty"`
}

// ScoreComponent is one weighted slice of the overall score
type ScoreComponent struct {
	Name     string   `json:"name"`
	Score    float64  `json:"score"`
	Max      float64  `json:"max"`
	Baseline float64  `json:"baseline"`
	Drivers  []Driver `json:"score_drivers"`
}

// ReconciledScore recomputes the score from the baseline and drivers.
// Callers use it to assert that Score was built from its drivers alone.
func (c *ScoreComponent) ReconciledScore() float64 {
	score := c.Baseline
	for _, d := range c.Drivers {
		score += d.Delta
	}
	return score
}

// Component names used as keys in AnalysisResult.Components
const (
	ComponentMustHaves       = "must_haves"
	ComponentExperience      = "experience"
	ComponentSkillsDepth     = "skills_depth"
	ComponentImpact          = "impact"
	ComponentATSParseability = "ats_parseability"
	ComponentLanguageQuality = "language_quality"
	ComponentLogistics       = "logistics"
)

// ComponentNames lists all component keys in canonical display order
var ComponentNames = []string{
	ComponentMustHaves,
	ComponentExperience,
	ComponentSkillsDepth,
	ComponentImpact,
	ComponentATSParseability,
	ComponentLanguageQuality,
	ComponentLogistics,
}
