package formatting

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cleanDoc() types.NormalizedDocument {
	return types.NormalizedDocument{Sections: []types.Section{
		{Name: "contact", Bullets: []types.Bullet{
			{Text: "jane@example.com | (555) 111-2222"},
		}},
		{Name: "summary", Bullets: []types.Bullet{
			{Text: "Backend engineer"},
		}},
		{Name: "experience", Bullets: []types.Bullet{
			{Text: "Led payment infrastructure work"},
			{Text: "Reduced latency by 40%"},
		}},
		{Name: "education", Bullets: []types.Bullet{
			{Text: "BS Computer Science"},
		}},
		{Name: "skills", Bullets: []types.Bullet{
			{Text: "Go, Python, Kubernetes"},
		}},
	}}
}

func genericProfile(t *testing.T) Profile {
	t.Helper()
	profile, ok := ProfileFor(types.PlatformGeneric)
	require.True(t, ok)
	return profile
}

func issueTypes(issues []types.FormattingIssue) []string {
	out := make([]string, 0, len(issues))
	for _, issue := range issues {
		out = append(out, issue.IssueType)
	}
	return out
}

func TestCheck_CleanResume(t *testing.T) {
	analysis := Check(cleanDoc(), genericProfile(t))

	// contact bullet contains a pipe but one occurrence is under the
	// table-layout threshold
	assert.Empty(t, analysis.Issues)
	assert.Equal(t, 100.0, analysis.ATSCompatibilityScore)
	assert.Equal(t, 100.0, analysis.StructureScore)
}

func TestCheck_MissingExperienceIsCritical(t *testing.T) {
	doc := cleanDoc()
	doc.Sections = doc.Sections[:2] // contact + summary only

	analysis := Check(doc, genericProfile(t))

	var found *types.FormattingIssue
	for i := range analysis.Issues {
		if analysis.Issues[i].IssueType == "missing_section" &&
			strings.Contains(analysis.Issues[i].Description, "experience") {
			found = &analysis.Issues[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, types.SeverityCritical, found.Severity)
	assert.Less(t, analysis.StructureScore, 100.0)
}

func TestCheck_ContactDiscoverability(t *testing.T) {
	doc := types.NormalizedDocument{Sections: []types.Section{
		{Name: "experience", Bullets: []types.Bullet{{Text: "Did things"}}},
		{Name: "education", Bullets: []types.Bullet{{Text: "BS"}}},
		{Name: "skills", Bullets: []types.Bullet{{Text: "Go"}}},
	}}

	analysis := Check(doc, genericProfile(t))
	assert.Contains(t, issueTypes(analysis.Issues), "contact_discoverability")
}

func TestCheck_TableLayout(t *testing.T) {
	doc := cleanDoc()
	doc.Sections[2].Bullets = append(doc.Sections[2].Bullets,
		types.Bullet{Text: "2019 | Acme | Engineer"},
		types.Bullet{Text: "2021 | Beta | Senior Engineer"},
	)

	analysis := Check(doc, genericProfile(t))
	assert.Contains(t, issueTypes(analysis.Issues), "table_layout")
}

func TestCheck_MultiColumnLayout(t *testing.T) {
	doc := types.NormalizedDocument{Sections: []types.Section{
		{Name: "contact", Bullets: []types.Bullet{{Text: "jane@example.com"}}},
		{Name: "experience", Bullets: []types.Bullet{
			{Text: "Led payments     Mentored juniors"},
			{Text: "Cut costs 20%     Ran oncall"},
			{Text: "Shipped v2     Wrote docs"},
			{Text: "Plain single column line"},
		}},
		{Name: "education", Bullets: []types.Bullet{{Text: "BS"}}},
		{Name: "skills", Bullets: []types.Bullet{{Text: "Go"}}},
	}}

	analysis := Check(doc, genericProfile(t))
	assert.Contains(t, issueTypes(analysis.Issues), "multi_column_layout")
}

func TestCheck_BulletLengthAnomaly(t *testing.T) {
	doc := cleanDoc()
	doc.Sections[2].Bullets = append(doc.Sections[2].Bullets,
		types.Bullet{Text: strings.Repeat("word ", 50)},
	)

	analysis := Check(doc, genericProfile(t))
	assert.Contains(t, issueTypes(analysis.Issues), "bullet_length_anomaly")
}

func TestCheck_NonASCIIDensity(t *testing.T) {
	doc := types.NormalizedDocument{Sections: []types.Section{
		{Name: "contact", Bullets: []types.Bullet{{Text: "jane@example.com"}}},
		{Name: "experience", Bullets: []types.Bullet{{Text: "★★★ Résumé ◆◆◆ décor ●●●"}}},
		{Name: "education", Bullets: []types.Bullet{{Text: "BS"}}},
		{Name: "skills", Bullets: []types.Bullet{{Text: "Go"}}},
	}}

	analysis := Check(doc, genericProfile(t))
	assert.Contains(t, issueTypes(analysis.Issues), "non_ascii_density")
}

func TestCheck_InconsistentDateFormats(t *testing.T) {
	doc := cleanDoc()
	doc.Sections[2].Bullets = append(doc.Sections[2].Bullets,
		types.Bullet{Text: "Jan 2020 - Mar 2021: Acme, platform team"},
		types.Bullet{Text: "01/2018 to 03/2019: Beta, infra team"},
	)
	doc.Sections[3].Bullets = append(doc.Sections[3].Bullets,
		types.Bullet{Text: "Graduated 2015"},
	)

	analysis := Check(doc, genericProfile(t))
	assert.Contains(t, issueTypes(analysis.Issues), "inconsistent_date_format")
}

func TestCheck_TwoDateFormatsTolerated(t *testing.T) {
	doc := cleanDoc()
	doc.Sections[2].Bullets = append(doc.Sections[2].Bullets,
		types.Bullet{Text: "Jan 2020 - Mar 2021: Acme, platform team"},
	)
	doc.Sections[3].Bullets = append(doc.Sections[3].Bullets,
		types.Bullet{Text: "Graduated 2015"},
	)

	analysis := Check(doc, genericProfile(t))
	assert.NotContains(t, issueTypes(analysis.Issues), "inconsistent_date_format")
}

func TestCheck_MonthYearNotDoubleCountedAsBareYear(t *testing.T) {
	doc := cleanDoc()
	// Month-YYYY and DD-Month-YYYY tokens embed a year; they must not also
	// register the bare-year format
	doc.Sections[2].Bullets = append(doc.Sections[2].Bullets,
		types.Bullet{Text: "January 2020 - December 2021: Acme"},
		types.Bullet{Text: "Joined 12 Mar 2018, promoted 3 Jun 2019"},
	)

	analysis := Check(doc, genericProfile(t))
	assert.NotContains(t, issueTypes(analysis.Issues), "inconsistent_date_format")
}

func TestCheck_PenaltiesVaryByPlatform(t *testing.T) {
	doc := cleanDoc()
	doc.Sections = doc.Sections[1:] // drop contact section and its email

	workday, ok := ProfileFor(types.PlatformWorkday)
	require.True(t, ok)
	greenhouse, ok := ProfileFor(types.PlatformGreenhouse)
	require.True(t, ok)

	strict := Check(doc, workday)
	lenient := Check(doc, greenhouse)

	assert.Less(t, strict.ATSCompatibilityScore, lenient.ATSCompatibilityScore)
}

func TestCheck_ScoreNeverNegative(t *testing.T) {
	doc := types.NormalizedDocument{Sections: []types.Section{
		{Name: "unsectioned", Bullets: []types.Bullet{
			{Text: "a | b"},
			{Text: "c | d"},
			{Text: "col1     col2"},
			{Text: "col3     col4"},
			{Text: "col5     col6"},
			{Text: "[image] logo"},
		}},
	}}
	profile, _ := ProfileFor(types.PlatformWorkday)

	analysis := Check(doc, profile)
	assert.GreaterOrEqual(t, analysis.ATSCompatibilityScore, 0.0)
}

func TestCheck_Deterministic(t *testing.T) {
	doc := cleanDoc()
	doc.Sections = doc.Sections[1:]
	profile := genericProfile(t)

	first := Check(doc, profile)
	second := Check(doc, profile)
	assert.Equal(t, first, second)
}

func TestProfileFor(t *testing.T) {
	for _, platform := range types.KnownPlatforms {
		profile, ok := ProfileFor(platform)
		require.True(t, ok, string(platform))
		assert.Equal(t, platform, profile.Platform)
		assert.Greater(t, profile.CriticalPenalty, profile.MajorPenalty)
		assert.Greater(t, profile.MajorPenalty, profile.MinorPenalty)
	}

	_, ok := ProfileFor("taleo")
	assert.False(t, ok)

	// Empty platform falls back to generic
	profile, ok := ProfileFor("")
	require.True(t, ok)
	assert.Equal(t, types.PlatformGeneric, profile.Platform)
}
