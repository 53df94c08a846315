// Package impact scores experience bullets for achievement strength:
// quantified outcomes, strong leading action verbs, and absence of generic
// filler language.
package impact

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Strength scoring constants. A bullet starts at the base and earns bonuses
// for each achievement signal; generic filler subtracts. The strong threshold
// sits above base plus verb bonus so a bullet can only read as strong when it
// carries a quantified outcome.
const (
	baseStrength      = 40.0
	metricBonus       = 30.0
	strongVerbBonus   = 20.0
	weakVerbBonus     = 8.0
	genericPenalty    = 15.0
	DefaultStrongline = 70.0
)

// Analysis is the impact analyzer's output
type Analysis struct {
	BulletScores   []types.BulletScore `json:"bullet_scores"`
	ImpactScore    float64             `json:"impact_score"`
	GenericPhrases []string            `json:"generic_phrases,omitempty"`
}

// Analyze scores every experience-like bullet in the document. The aggregate
// impact score is the share of bullets at or above the strong threshold,
// on a 0-100 scale.
func Analyze(doc types.NormalizedDocument, strongThreshold float64) Analysis {
	if strongThreshold <= 0 {
		strongThreshold = DefaultStrongline
	}

	analysis := Analysis{}
	phraseSeen := make(map[string]bool)
	strong := 0

	for _, section := range doc.Sections {
		if !parsing.IsExperienceSection(section.Name) {
			continue
		}
		for i, bullet := range section.Bullets {
			score := scoreBullet(section.Name, i, bullet)
			analysis.BulletScores = append(analysis.BulletScores, score)
			if score.StrengthScore >= strongThreshold {
				strong++
			}
			for _, phrase := range lexicon.FindGenericPhrases(bullet.Text) {
				if !phraseSeen[phrase] {
					phraseSeen[phrase] = true
					analysis.GenericPhrases = append(analysis.GenericPhrases, phrase)
				}
			}
		}
	}

	if len(analysis.BulletScores) > 0 {
		analysis.ImpactScore = float64(strong) / float64(len(analysis.BulletScores)) * 100
	}
	return analysis
}

func scoreBullet(section string, index int, bullet types.Bullet) types.BulletScore {
	hasMetrics := len(bullet.Metrics) > 0
	hasVerb := bullet.ActionVerb != ""
	generic := lexicon.FindGenericPhrases(bullet.Text)

	strength := baseStrength
	if hasMetrics {
		strength += metricBonus
	}
	if hasVerb {
		if lexicon.IsStrongVerb(bullet.ActionVerb) {
			strength += strongVerbBonus
		} else {
			strength += weakVerbBonus
		}
	}
	if len(generic) > 0 {
		strength -= genericPenalty
	}
	if strength < 0 {
		strength = 0
	}
	if strength > 100 {
		strength = 100
	}

	return types.BulletScore{
		Section:       section,
		BulletIndex:   index,
		Text:          bullet.Text,
		StrengthScore: strength,
		HasMetrics:    hasMetrics,
		HasActionVerb: hasVerb,
		Suggestion:    suggestion(bullet, hasMetrics, generic),
	}
}

// suggestion composes the rewrite hints for one bullet. Hints are joined so
// a bullet missing several ingredients gets all of them at once.
func suggestion(bullet types.Bullet, hasMetrics bool, generic []string) string {
	var hints []string

	if !hasMetrics {
		hints = append(hints, "Add a quantified outcome (a percentage, dollar figure, or count) to show scale")
	}
	if bullet.ActionVerb == "" {
		hints = append(hints, "Start with a strong action verb such as \"Led\", \"Reduced\", or \"Delivered\"")
	} else if !lexicon.IsStrongVerb(bullet.ActionVerb) {
		hints = append(hints, fmt.Sprintf("Replace %q with a strong action verb such as \"Led\" or \"Delivered\"", bullet.ActionVerb))
	}
	for _, phrase := range generic {
		hints = append(hints, fmt.Sprintf("Replace %q with a specific action and its outcome", phrase))
	}

	return strings.Join(hints, " | ")
}
