package keywords

import (
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Analysis is the matcher's output for one resume/job pairing
type Analysis struct {
	Matches       []types.KeywordMatch `json:"matches"`
	Gaps          []types.Gap          `json:"gaps"`
	CoverageScore float64              `json:"coverage_score"`
}

// MatchRequirements checks every job requirement against the normalized
// resume. Matching is word-boundary and case-insensitive over the canonical
// skill and all aliases. A mention co-occurring with a metric or a seniority
// qualifier in the same bullet is a strong match; a bare mention is weak.
// Multiple mentions keep the highest confidence and never inflate coverage.
func MatchRequirements(doc types.NormalizedDocument, requirements []types.Requirement) Analysis {
	analysis := Analysis{
		Matches: make([]types.KeywordMatch, 0, len(requirements)),
	}

	var totalWeight, matchedWeight float64
	for _, req := range requirements {
		totalWeight += req.ImportanceWeight

		match := matchOne(doc, req)
		analysis.Matches = append(analysis.Matches, match)

		if match.Matched() {
			matchedWeight += req.ImportanceWeight
		} else {
			analysis.Gaps = append(analysis.Gaps, types.Gap{
				Requirement: req,
				Reason:      gapReason(req),
			})
		}
	}

	if totalWeight > 0 {
		analysis.CoverageScore = matchedWeight / totalWeight * 100
	}
	return analysis
}

// matchOne scans every bullet in document order for one requirement
func matchOne(doc types.NormalizedDocument, req types.Requirement) types.KeywordMatch {
	terms := make([]string, 0, len(req.Aliases)+1)
	terms = append(terms, req.CanonicalSkill)
	terms = append(terms, req.Aliases...)

	match := types.KeywordMatch{
		Requirement: req,
		Status:      types.MatchMissing,
	}

	for _, section := range doc.Sections {
		for i, bullet := range section.Bullets {
			if !mentions(bullet.Text, terms) {
				continue
			}
			match.Evidence = append(match.Evidence, types.EvidenceLocation{
				Section:     section.Name,
				BulletIndex: i,
			})
			if isStrongMention(bullet) {
				match.Status = types.MatchStrong
			} else if match.Status == types.MatchMissing {
				match.Status = types.MatchWeak
			}
		}
	}

	if match.Matched() {
		match.ImportanceScore = req.ImportanceWeight
	}
	return match
}

func mentions(text string, terms []string) bool {
	for _, term := range terms {
		if lexicon.ContainsWord(text, term) {
			return true
		}
	}
	return false
}

// isStrongMention reports whether the surrounding bullet carries depth
// signals that upgrade a mention from weak to strong.
func isStrongMention(bullet types.Bullet) bool {
	return len(bullet.Metrics) > 0 || lexicon.HasSeniorityQualifier(bullet.Text)
}

func gapReason(req types.Requirement) string {
	if req.MustHave {
		return fmt.Sprintf("required skill %q (or aliases) not found anywhere in the resume", req.CanonicalSkill)
	}
	return fmt.Sprintf("skill %q (or aliases) not found anywhere in the resume", req.CanonicalSkill)
}

// MustHaveGaps filters gaps down to the must-have requirements
func MustHaveGaps(gaps []types.Gap) []types.Gap {
	var out []types.Gap
	for _, gap := range gaps {
		if gap.Requirement.MustHave {
			out = append(out, gap)
		}
	}
	return out
}
