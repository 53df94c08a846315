// Package recommend turns score deficits into a prioritized list of concrete
// fixes. Every recommendation traces back to a score driver; priority is
// severity weight times the estimated overall-point lift.
package recommend

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-analyzer/internal/formatting"
	"github.com/jonathan/resume-analyzer/internal/impact"
	"github.com/jonathan/resume-analyzer/internal/keywords"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// DefaultMaxRecommendations caps the returned list. Critical recommendations
// are always retained even when the cap would cut them.
const DefaultMaxRecommendations = 10

var severityWeights = map[types.Severity]float64{
	types.SeverityCritical: 3.0,
	types.SeverityMajor:    2.0,
	types.SeverityMinor:    1.0,
}

// Inputs carries the collaborator analyses the engine draws from
type Inputs struct {
	Keywords   keywords.Analysis
	Formatting formatting.Analysis
	Impact     impact.Analysis
	Profile    formatting.Profile
	Weights    types.ComponentWeights

	// StrongThreshold is the strength score a bullet must reach to count as
	// strong. It must match the threshold the run scored with; zero falls
	// back to the default.
	StrongThreshold float64
}

// Build produces the prioritized recommendation list. Ordering is by
// priority score descending with a deterministic title tiebreak; maxCount
// values of zero or less fall back to the default cap.
func Build(in Inputs, maxCount int) []types.Recommendation {
	if maxCount <= 0 {
		maxCount = DefaultMaxRecommendations
	}

	var recs []types.Recommendation
	recs = append(recs, keywordRecommendations(in)...)
	recs = append(recs, formattingRecommendations(in)...)
	recs = append(recs, impactRecommendations(in)...)

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].PriorityScore != recs[j].PriorityScore {
			return recs[i].PriorityScore > recs[j].PriorityScore
		}
		return recs[i].Title < recs[j].Title
	})

	return applyCap(recs, maxCount)
}

// applyCap truncates to maxCount but never drops a critical recommendation
func applyCap(recs []types.Recommendation, maxCount int) []types.Recommendation {
	if len(recs) <= maxCount {
		return recs
	}
	kept := recs[:maxCount]
	for _, rec := range recs[maxCount:] {
		if rec.Severity == types.SeverityCritical {
			kept = append(kept, rec)
		}
	}
	return kept
}

func prioritize(rec types.Recommendation) types.Recommendation {
	rec.PriorityScore = severityWeights[rec.Severity] * rec.EstimatedLift
	return rec
}

// keywordRecommendations covers missing must-haves and weak nice-to-have
// mentions. The lift of a missing must-have is its importance share of the
// must-haves component.
func keywordRecommendations(in Inputs) []types.Recommendation {
	var recs []types.Recommendation

	mustHaveWeight, niceWeight := 0.0, 0.0
	for _, match := range in.Keywords.Matches {
		if match.Requirement.MustHave {
			mustHaveWeight += match.Requirement.ImportanceWeight
		} else {
			niceWeight += match.Requirement.ImportanceWeight
		}
	}

	for _, match := range in.Keywords.Matches {
		req := match.Requirement
		switch {
		case req.MustHave && match.Status == types.MatchMissing:
			lift := req.ImportanceWeight / mustHaveWeight * in.Weights.MustHaves
			recs = append(recs, prioritize(types.Recommendation{
				Category: types.CategoryKeywordMatching,
				Severity: types.SeverityCritical,
				Title:    fmt.Sprintf("Add the required skill %q", req.CanonicalSkill),
				Description: fmt.Sprintf(
					"The job lists %s as a hard requirement but it appears nowhere in the resume. If you have this experience, name it explicitly in a bullet with a concrete outcome.",
					req.CanonicalSkill),
				EstimatedLift: lift,
				BeforeExample: "Built backend services for the data platform",
				AfterExample:  fmt.Sprintf("Built %s backend services for the data platform, cutting processing time 35%%", req.CanonicalSkill),
			}))
		case req.MustHave && match.Status == types.MatchWeak:
			// Half the share was earned; the other half is recoverable
			lift := req.ImportanceWeight / mustHaveWeight * in.Weights.MustHaves * 0.5
			recs = append(recs, prioritize(types.Recommendation{
				Category: types.CategoryKeywordMatching,
				Severity: types.SeverityMajor,
				Title:    fmt.Sprintf("Strengthen the %q mention", req.CanonicalSkill),
				Description: fmt.Sprintf(
					"%s is required and appears in the resume, but only as a bare mention. Pair it with a measurable result or a seniority signal in the same bullet.",
					req.CanonicalSkill),
				EstimatedLift: lift,
				BeforeExample: fmt.Sprintf("Familiar with %s", req.CanonicalSkill),
				AfterExample:  fmt.Sprintf("Led %s adoption across 4 teams, reducing deploy failures by 30%%", req.CanonicalSkill),
			}))
		case !req.MustHave && match.Status == types.MatchMissing && niceWeight > 0:
			lift := req.ImportanceWeight / niceWeight * in.Weights.SkillsDepth
			recs = append(recs, prioritize(types.Recommendation{
				Category: types.CategoryKeywordMatching,
				Severity: types.SeverityMinor,
				Title:    fmt.Sprintf("Mention %q if you have it", req.CanonicalSkill),
				Description: fmt.Sprintf(
					"%s is a nice-to-have for this role and is absent from the resume.",
					req.CanonicalSkill),
				EstimatedLift: lift,
			}))
		}
	}
	return recs
}

// structureFloor is the structure score below which the resume's overall
// organization gets its own recommendation on top of per-issue fixes.
const structureFloor = 70.0

// formattingRecommendations maps each detected issue to a fix whose lift is
// the parseability points the issue costs on this platform.
func formattingRecommendations(in Inputs) []types.Recommendation {
	var recs []types.Recommendation
	if in.Formatting.StructureScore > 0 && in.Formatting.StructureScore < structureFloor {
		recs = append(recs, prioritize(types.Recommendation{
			Category: types.CategoryStructure,
			Severity: types.SeverityMajor,
			Title:    "Reorganize into standard resume sections",
			Description: fmt.Sprintf(
				"The resume's structure score is %.0f/100. Group content under clearly-labeled standard headings (Experience, Education, Skills) with contact details at the top.",
				in.Formatting.StructureScore),
			EstimatedLift: (structureFloor - in.Formatting.StructureScore) / 100 * in.Weights.ATSParseability,
		}))
	}
	for _, issue := range in.Formatting.Issues {
		lift := in.Profile.Penalty(issue.Severity) / 100 * in.Weights.ATSParseability
		category := types.CategoryFormatting
		if issue.IssueType == "missing_section" || issue.IssueType == "section_order" {
			category = types.CategoryStructure
		}
		recs = append(recs, prioritize(types.Recommendation{
			Category:      category,
			Severity:      issue.Severity,
			Title:         titleForIssue(issue),
			Description:   fmt.Sprintf("%s. %s.", capitalize(issue.Description), issue.Suggestion),
			EstimatedLift: lift,
		}))
	}
	return recs
}

func titleForIssue(issue types.FormattingIssue) string {
	switch issue.IssueType {
	case "missing_section":
		return "Add the missing resume section"
	case "section_order":
		return "Reorder sections"
	case "table_layout":
		return "Remove table layouts"
	case "multi_column_layout":
		return "Switch to a single-column layout"
	case "image_artifact":
		return "Remove images and graphics"
	case "contact_discoverability":
		return "Make contact details machine-readable"
	case "bullet_length_anomaly":
		return "Shorten overlong bullets"
	case "non_ascii_density":
		return "Replace decorative characters"
	case "inconsistent_date_format":
		return "Standardize date formats"
	case "excessive_formatting":
		return "Strip markup decoration"
	}
	return "Fix formatting issue"
}

// impactRecommendations targets the weakest bullets. The lift assumes each
// rewritten bullet crosses the strong threshold, moving its share of the
// impact component.
func impactRecommendations(in Inputs) []types.Recommendation {
	total := len(in.Impact.BulletScores)
	if total == 0 {
		return nil
	}

	threshold := in.StrongThreshold
	if threshold <= 0 {
		threshold = impact.DefaultStrongline
	}

	var recs []types.Recommendation
	perBullet := in.Weights.Impact / float64(total)

	weak := make([]types.BulletScore, 0, total)
	for _, score := range in.Impact.BulletScores {
		if score.StrengthScore < threshold {
			weak = append(weak, score)
		}
	}

	// One recommendation per weak bullet keeps each fix concrete, but only
	// the three weakest are listed; the rest would repeat the same advice.
	sort.SliceStable(weak, func(i, j int) bool {
		return weak[i].StrengthScore < weak[j].StrengthScore
	})
	if len(weak) > 3 {
		weak = weak[:3]
	}

	for _, score := range weak {
		severity := types.SeverityMinor
		if !score.HasMetrics {
			severity = types.SeverityMajor
		}
		recs = append(recs, prioritize(types.Recommendation{
			Category: types.CategoryQuantifyAchievements,
			Severity: severity,
			Title:    "Strengthen a weak experience bullet",
			Description: fmt.Sprintf("%q scores %.0f/100 for impact. %s.",
				truncate(score.Text, 80), score.StrengthScore, score.Suggestion),
			EstimatedLift: perBullet,
			BeforeExample: score.Text,
			AfterExample:  rewriteExample(score),
		}))
	}
	return recs
}

// rewriteExample sketches a stronger version of the bullet using its own
// text where possible.
func rewriteExample(score types.BulletScore) string {
	text := score.Text
	if !score.HasActionVerb {
		text = "Delivered " + lowerFirst(text)
	}
	if !score.HasMetrics {
		text += ", improving throughput by 25%"
	}
	return text
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n - 3
	// Back up to a rune boundary so the cut never splits a multi-byte rune
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
