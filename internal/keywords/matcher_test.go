package keywords

import (
	"testing"

	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDoc() types.NormalizedDocument {
	return types.NormalizedDocument{Sections: []types.Section{
		{Name: "experience", Bullets: []types.Bullet{
			{Text: "Led Python migration cutting costs by 30%", Metrics: []string{"30%"}, ActionVerb: "led"},
			{Text: "Worked with golang on internal tooling"},
			{Text: "Senior Kubernetes administration across three clusters"},
		}},
		{Name: "skills", Bullets: []types.Bullet{
			{Text: "Python, Go, Docker"},
		}},
	}}
}

func TestMatchRequirements_StrongWeakMissing(t *testing.T) {
	requirements := []types.Requirement{
		{CanonicalSkill: "Python", ImportanceWeight: 0.9, MustHave: true},
		{CanonicalSkill: "Go", Aliases: []string{"golang"}, ImportanceWeight: 0.9},
		{CanonicalSkill: "Terraform", ImportanceWeight: 0.8, MustHave: true},
	}

	analysis := MatchRequirements(testDoc(), requirements)
	require.Len(t, analysis.Matches, 3)

	// Python co-occurs with a metric: strong
	assert.Equal(t, types.MatchStrong, analysis.Matches[0].Status)
	// Go appears only as bare mentions: weak
	assert.Equal(t, types.MatchWeak, analysis.Matches[1].Status)
	// Terraform is absent
	assert.Equal(t, types.MatchMissing, analysis.Matches[2].Status)

	require.Len(t, analysis.Gaps, 1)
	assert.Equal(t, "Terraform", analysis.Gaps[0].Requirement.CanonicalSkill)
	assert.Contains(t, analysis.Gaps[0].Reason, "required")
}

func TestMatchRequirements_SeniorityQualifierUpgrades(t *testing.T) {
	requirements := []types.Requirement{
		{CanonicalSkill: "Kubernetes", Aliases: []string{"k8s"}, ImportanceWeight: 0.9},
	}

	analysis := MatchRequirements(testDoc(), requirements)
	require.Len(t, analysis.Matches, 1)
	assert.Equal(t, types.MatchStrong, analysis.Matches[0].Status)
}

func TestMatchRequirements_EvidenceLocationsOrdered(t *testing.T) {
	requirements := []types.Requirement{
		{CanonicalSkill: "Python", ImportanceWeight: 0.9},
	}

	analysis := MatchRequirements(testDoc(), requirements)
	require.Len(t, analysis.Matches, 1)

	evidence := analysis.Matches[0].Evidence
	require.Len(t, evidence, 2)
	assert.Equal(t, types.EvidenceLocation{Section: "experience", BulletIndex: 0}, evidence[0])
	assert.Equal(t, types.EvidenceLocation{Section: "skills", BulletIndex: 0}, evidence[1])
}

func TestMatchRequirements_DuplicateMentionsDoNotInflateCoverage(t *testing.T) {
	requirements := []types.Requirement{
		{CanonicalSkill: "Python", ImportanceWeight: 0.5},
		{CanonicalSkill: "Terraform", ImportanceWeight: 0.5},
	}

	analysis := MatchRequirements(testDoc(), requirements)
	// Python matched twice but counts its weight once: 0.5 / 1.0
	assert.InDelta(t, 50.0, analysis.CoverageScore, 1e-9)
}

func TestMatchRequirements_WordBoundary(t *testing.T) {
	doc := types.NormalizedDocument{Sections: []types.Section{
		{Name: "experience", Bullets: []types.Bullet{
			{Text: "Modernized the cargo tracking system"},
		}},
	}}
	requirements := []types.Requirement{
		{CanonicalSkill: "Go", Aliases: []string{"golang"}, ImportanceWeight: 0.9},
	}

	analysis := MatchRequirements(doc, requirements)
	assert.Equal(t, types.MatchMissing, analysis.Matches[0].Status)
	assert.Zero(t, analysis.CoverageScore)
}

func TestMatchRequirements_EmptyInputs(t *testing.T) {
	analysis := MatchRequirements(types.NormalizedDocument{}, nil)
	assert.Empty(t, analysis.Matches)
	assert.Zero(t, analysis.CoverageScore)
}

func TestMustHaveGaps(t *testing.T) {
	gaps := []types.Gap{
		{Requirement: types.Requirement{CanonicalSkill: "Terraform", MustHave: true}},
		{Requirement: types.Requirement{CanonicalSkill: "Jenkins"}},
	}
	filtered := MustHaveGaps(gaps)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Terraform", filtered[0].Requirement.CanonicalSkill)
}
