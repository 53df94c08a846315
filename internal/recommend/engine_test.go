package recommend

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jonathan/resume-analyzer/internal/formatting"
	"github.com/jonathan/resume-analyzer/internal/impact"
	"github.com/jonathan/resume-analyzer/internal/keywords"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInputs(t *testing.T) Inputs {
	t.Helper()
	profile, ok := formatting.ProfileFor(types.PlatformGeneric)
	require.True(t, ok)
	return Inputs{
		Profile: profile,
		Weights: types.DefaultComponentWeights(),
	}
}

func TestBuild_MissingMustHaveIsCritical(t *testing.T) {
	in := testInputs(t)
	in.Keywords = keywords.Analysis{Matches: []types.KeywordMatch{
		{
			Requirement: types.Requirement{CanonicalSkill: "Kubernetes", ImportanceWeight: 0.9, MustHave: true},
			Status:      types.MatchMissing,
		},
	}}

	recs := Build(in, 0)
	require.NotEmpty(t, recs)

	rec := recs[0]
	assert.Equal(t, types.CategoryKeywordMatching, rec.Category)
	assert.Equal(t, types.SeverityCritical, rec.Severity)
	assert.Contains(t, rec.Title, "Kubernetes")
	// Sole must-have: the full component max is at stake
	assert.InDelta(t, 40.0, rec.EstimatedLift, 1e-9)
	assert.InDelta(t, 120.0, rec.PriorityScore, 1e-9)
	assert.NotEmpty(t, rec.BeforeExample)
	assert.NotEmpty(t, rec.AfterExample)
}

func TestBuild_WeakMustHaveIsMajor(t *testing.T) {
	in := testInputs(t)
	in.Keywords = keywords.Analysis{Matches: []types.KeywordMatch{
		{
			Requirement: types.Requirement{CanonicalSkill: "Go", ImportanceWeight: 0.8, MustHave: true},
			Status:      types.MatchWeak,
		},
	}}

	recs := Build(in, 0)
	require.Len(t, recs, 1)
	assert.Equal(t, types.SeverityMajor, recs[0].Severity)
	assert.InDelta(t, 20.0, recs[0].EstimatedLift, 1e-9)
}

func TestBuild_FormattingIssueLiftTracksPlatformPenalty(t *testing.T) {
	in := testInputs(t)
	in.Formatting = formatting.Analysis{Issues: []types.FormattingIssue{
		{
			IssueType:   "table_layout",
			Severity:    types.SeverityCritical,
			Description: "2 lines contain table separators",
			Suggestion:  "Replace tables with plain bullet lists",
		},
	}}

	recs := Build(in, 0)
	require.Len(t, recs, 1)
	assert.Equal(t, types.CategoryFormatting, recs[0].Category)
	// generic critical penalty 20 on an ats_parseability max of 5
	assert.InDelta(t, 1.0, recs[0].EstimatedLift, 1e-9)
}

func TestBuild_StructureCategoryForSectionIssues(t *testing.T) {
	in := testInputs(t)
	in.Formatting = formatting.Analysis{Issues: []types.FormattingIssue{
		{IssueType: "missing_section", Severity: types.SeverityMajor, Description: "no skills section", Suggestion: "Add one"},
	}}

	recs := Build(in, 0)
	require.Len(t, recs, 1)
	assert.Equal(t, types.CategoryStructure, recs[0].Category)
}

func TestBuild_WeakBulletsGetRewrites(t *testing.T) {
	in := testInputs(t)
	in.Impact = impact.Analysis{BulletScores: []types.BulletScore{
		{Text: "Responsible for builds", StrengthScore: 25, Suggestion: "Add a quantified outcome"},
		{Text: "Led the migration, cutting costs 20%", StrengthScore: 90, HasMetrics: true, HasActionVerb: true},
	}}

	recs := Build(in, 0)
	require.Len(t, recs, 1)

	rec := recs[0]
	assert.Equal(t, types.CategoryQuantifyAchievements, rec.Category)
	assert.Equal(t, "Responsible for builds", rec.BeforeExample)
	assert.NotEqual(t, rec.BeforeExample, rec.AfterExample)
	assert.Contains(t, rec.AfterExample, "%")
}

func TestBuild_RaisedThresholdWidensWeakBullets(t *testing.T) {
	in := testInputs(t)
	in.Impact = impact.Analysis{BulletScores: []types.BulletScore{
		{Text: "Helped cut costs by 15%", StrengthScore: 78, HasMetrics: true, HasActionVerb: true, Suggestion: "Lead with a stronger verb"},
	}}

	// Strong at the default line, so no fix is suggested
	recs := Build(in, 0)
	assert.Empty(t, recs)

	// Weak once the run's bar is raised above its strength
	in.StrongThreshold = 90
	recs = Build(in, 0)
	require.Len(t, recs, 1)
	assert.Equal(t, types.CategoryQuantifyAchievements, recs[0].Category)
}

func TestBuild_OrderedByPriority(t *testing.T) {
	in := testInputs(t)
	in.Keywords = keywords.Analysis{Matches: []types.KeywordMatch{
		{
			Requirement: types.Requirement{CanonicalSkill: "Kubernetes", ImportanceWeight: 0.9, MustHave: true},
			Status:      types.MatchMissing,
		},
		{
			Requirement: types.Requirement{CanonicalSkill: "Jenkins", ImportanceWeight: 0.4},
			Status:      types.MatchMissing,
		},
	}}
	in.Formatting = formatting.Analysis{Issues: []types.FormattingIssue{
		{IssueType: "bullet_length_anomaly", Severity: types.SeverityMinor, Description: "1 bullet too long", Suggestion: "Split it"},
	}}

	recs := Build(in, 0)
	require.GreaterOrEqual(t, len(recs), 3)
	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].PriorityScore, recs[i].PriorityScore)
	}
	assert.Equal(t, types.SeverityCritical, recs[0].Severity)
}

func TestBuild_CapRetainsCriticals(t *testing.T) {
	in := testInputs(t)

	var matches []types.KeywordMatch
	for _, skill := range []string{"A", "B", "C", "D"} {
		matches = append(matches, types.KeywordMatch{
			Requirement: types.Requirement{CanonicalSkill: skill, ImportanceWeight: 0.5, MustHave: true},
			Status:      types.MatchMissing,
		})
	}
	in.Keywords = keywords.Analysis{Matches: matches}
	in.Formatting = formatting.Analysis{Issues: []types.FormattingIssue{
		{IssueType: "bullet_length_anomaly", Severity: types.SeverityMinor, Description: "long bullets", Suggestion: "Split"},
		{IssueType: "excessive_formatting", Severity: types.SeverityMinor, Description: "markup noise", Suggestion: "Strip"},
	}}

	recs := Build(in, 3)

	criticals := 0
	for _, rec := range recs {
		if rec.Severity == types.SeverityCritical {
			criticals++
		}
	}
	assert.Equal(t, 4, criticals, "all critical recommendations retained past the cap")
}

func TestBuild_DeterministicTiebreak(t *testing.T) {
	in := testInputs(t)
	var matches []types.KeywordMatch
	for _, skill := range []string{"Zig", "Ada"} {
		matches = append(matches, types.KeywordMatch{
			Requirement: types.Requirement{CanonicalSkill: skill, ImportanceWeight: 0.5, MustHave: true},
			Status:      types.MatchMissing,
		})
	}
	in.Keywords = keywords.Analysis{Matches: matches}

	first := Build(in, 0)
	second := Build(in, 0)
	require.Equal(t, first, second)

	// Equal priority falls back to title ordering
	assert.Contains(t, first[0].Title, "Ada")
	assert.Contains(t, first[1].Title, "Zig")
}

func TestTruncate_RuneBoundary(t *testing.T) {
	// 80 bytes of two-byte runes puts the byte cut mid-rune
	text := strings.Repeat("é", 60)
	out := truncate(text, 80)

	assert.True(t, utf8.ValidString(out))
	assert.True(t, strings.HasSuffix(out, "..."))
	assert.LessOrEqual(t, len(out), 80)

	assert.Equal(t, "short", truncate("short", 80))
}

func TestBuild_EmptyInputs(t *testing.T) {
	recs := Build(testInputs(t), 0)
	assert.Empty(t, recs)
}
