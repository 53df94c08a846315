// Package scoring folds the collaborator analyses into weighted score
// components and the ATS/recruiter composite scores. Every component score
// equals its baseline plus the sum of its driver deltas, exactly; nothing is
// scored outside a driver.
package scoring

import (
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/formatting"
	"github.com/jonathan/resume-analyzer/internal/impact"
	"github.com/jonathan/resume-analyzer/internal/keywords"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Inputs carries the collaborator outputs into aggregation
type Inputs struct {
	Keywords        keywords.Analysis
	Formatting      formatting.Analysis
	Impact          impact.Analysis
	Signals         *types.JobSignals
	Profile         formatting.Profile
	StrongThreshold float64
}

// Result is the aggregated scoring for one analysis
type Result struct {
	Components     map[string]types.ScoreComponent
	ATSScore       float64
	RecruiterScore float64
}

// View weight vectors. Each sums to 100 and is applied to the component
// fill ratios (score divided by max), so user overrides of the component
// maxes rebalance both views consistently.
var (
	atsViewWeights = map[string]float64{
		types.ComponentMustHaves:       35,
		types.ComponentExperience:      10,
		types.ComponentSkillsDepth:     15,
		types.ComponentImpact:          5,
		types.ComponentATSParseability: 25,
		types.ComponentLanguageQuality: 5,
		types.ComponentLogistics:       5,
	}
	recruiterViewWeights = map[string]float64{
		types.ComponentMustHaves:       15,
		types.ComponentExperience:      20,
		types.ComponentSkillsDepth:     15,
		types.ComponentImpact:          30,
		types.ComponentATSParseability: 5,
		types.ComponentLanguageQuality: 10,
		types.ComponentLogistics:       5,
	}
)

// Experience component split and credit tiers
const (
	yearsShare     = 0.6
	seniorityShare = 0.4

	fullCredit    = 1.0
	nearCredit    = 2.0 / 3.0
	partialCredit = 1.0 / 3.0
	weakCredit    = 0.5

	noYearsRequirementCredit = 0.8
	languageQualitySlots     = 5
)

// Aggregate builds all seven score components and both composite views.
// The weights must already be validated.
func Aggregate(in Inputs, weights types.ComponentWeights) Result {
	components := map[string]types.ScoreComponent{
		types.ComponentMustHaves:       mustHavesComponent(in.Keywords.Matches, weights.MaxFor(types.ComponentMustHaves)),
		types.ComponentExperience:      experienceComponent(in.Signals, weights.MaxFor(types.ComponentExperience)),
		types.ComponentSkillsDepth:     skillsDepthComponent(in.Keywords.Matches, weights.MaxFor(types.ComponentSkillsDepth)),
		types.ComponentImpact:          impactComponent(in.Impact, in.StrongThreshold, weights.MaxFor(types.ComponentImpact)),
		types.ComponentATSParseability: parseabilityComponent(in.Formatting, in.Profile, weights.MaxFor(types.ComponentATSParseability)),
		types.ComponentLanguageQuality: languageComponent(in.Impact, weights.MaxFor(types.ComponentLanguageQuality)),
		types.ComponentLogistics:       logisticsComponent(in.Signals, weights.MaxFor(types.ComponentLogistics)),
	}

	return Result{
		Components:     components,
		ATSScore:       viewScore(components, atsViewWeights),
		RecruiterScore: viewScore(components, recruiterViewWeights),
	}
}

// viewScore applies a view weight vector to the component fill ratios.
// Components a caller zeroed out via custom weights contribute no points and
// are dropped from the vector, which is renormalized over the rest so a full
// resume can still reach 100.
func viewScore(components map[string]types.ScoreComponent, vector map[string]float64) float64 {
	reachable := 0.0
	for _, name := range types.ComponentNames {
		if components[name].Max > 0 {
			reachable += vector[name]
		}
	}
	if reachable <= 0 {
		return 0
	}

	score := 0.0
	for _, name := range types.ComponentNames {
		component := components[name]
		if component.Max <= 0 {
			continue
		}
		score += component.Score / component.Max * vector[name]
	}
	return score / reachable * 100
}

// builder accumulates saturating driver deltas over a baseline so the final
// score always stays inside [0, max] without post-hoc clamping.
type builder struct {
	component types.ScoreComponent
}

func newBuilder(name string, max, baseline float64) *builder {
	return &builder{component: types.ScoreComponent{
		Name:     name,
		Score:    baseline,
		Max:      max,
		Baseline: baseline,
	}}
}

func (b *builder) add(label string, delta float64, evidence ...string) {
	if b.component.Score+delta > b.component.Max {
		delta = b.component.Max - b.component.Score
	}
	if b.component.Score+delta < 0 {
		delta = -b.component.Score
	}
	b.component.Score += delta
	b.component.Drivers = append(b.component.Drivers, types.Driver{
		Label:    label,
		Delta:    delta,
		Evidence: evidence,
	})
}

func (b *builder) build() types.ScoreComponent {
	return b.component
}

func mustHavesComponent(matches []types.KeywordMatch, max float64) types.ScoreComponent {
	b := newBuilder(types.ComponentMustHaves, max, 0)

	totalWeight := 0.0
	for _, match := range matches {
		if match.Requirement.MustHave {
			totalWeight += match.Requirement.ImportanceWeight
		}
	}
	if totalWeight == 0 {
		b.add("no must-have requirements in job description", 0,
			"the job description declares no hard requirements to check")
		return b.build()
	}

	for _, match := range matches {
		req := match.Requirement
		if !req.MustHave {
			continue
		}
		share := req.ImportanceWeight / totalWeight * max
		switch match.Status {
		case types.MatchStrong:
			b.add(fmt.Sprintf("must-have matched: %s", req.CanonicalSkill), share, evidenceStrings(match)...)
		case types.MatchWeak:
			b.add(fmt.Sprintf("must-have weakly matched: %s", req.CanonicalSkill), share*weakCredit, evidenceStrings(match)...)
		default:
			b.add(fmt.Sprintf("must-have missing: %s", req.CanonicalSkill), 0,
				fmt.Sprintf("no qualifying mention of %q or its aliases anywhere in the resume", req.CanonicalSkill))
		}
	}
	return b.build()
}

func skillsDepthComponent(matches []types.KeywordMatch, max float64) types.ScoreComponent {
	b := newBuilder(types.ComponentSkillsDepth, max, 0)

	totalWeight := 0.0
	for _, match := range matches {
		if !match.Requirement.MustHave {
			totalWeight += match.Requirement.ImportanceWeight
		}
	}
	if totalWeight == 0 {
		b.add("no nice-to-have skills in job description", 0,
			"every extracted requirement is a must-have")
		return b.build()
	}

	for _, match := range matches {
		req := match.Requirement
		if req.MustHave {
			continue
		}
		share := req.ImportanceWeight / totalWeight * max
		switch match.Status {
		case types.MatchStrong:
			b.add(fmt.Sprintf("skill demonstrated with depth: %s", req.CanonicalSkill), share, evidenceStrings(match)...)
		case types.MatchWeak:
			b.add(fmt.Sprintf("skill mentioned: %s", req.CanonicalSkill), share*weakCredit, evidenceStrings(match)...)
		default:
			b.add(fmt.Sprintf("skill not found: %s", req.CanonicalSkill), 0,
				fmt.Sprintf("no mention of %q or its aliases", req.CanonicalSkill))
		}
	}
	return b.build()
}

func experienceComponent(signals *types.JobSignals, max float64) types.ScoreComponent {
	b := newBuilder(types.ComponentExperience, max, 0)

	if signals == nil {
		b.add("experience signals unavailable", 0,
			"neither years of experience nor seniority could be determined")
		return b.build()
	}

	yearsMax := max * yearsShare
	switch {
	case signals.YearsRequired == 0:
		b.add("no explicit years-of-experience requirement", yearsMax*noYearsRequirementCredit,
			"the job description does not state a required career length")
	case signals.YearsCandidate == 0:
		b.add("career length not determinable from resume", 0,
			fmt.Sprintf("the job asks for %d years but the resume shows no usable date range", signals.YearsRequired))
	default:
		ratio := float64(signals.YearsCandidate) / float64(signals.YearsRequired)
		evidence := fmt.Sprintf("%d years shown against %d required", signals.YearsCandidate, signals.YearsRequired)
		switch {
		case ratio >= 1:
			b.add("meets years-of-experience requirement", yearsMax*fullCredit, evidence)
		case ratio >= 0.7:
			b.add("close to years-of-experience requirement", yearsMax*nearCredit, evidence)
		default:
			b.add("below years-of-experience requirement", yearsMax*partialCredit, evidence)
		}
	}

	seniorityMax := max * seniorityShare
	reqRank, candRank := signals.SeniorityRequired.Rank(), signals.SeniorityCandidate.Rank()
	switch {
	case reqRank < 0:
		b.add("no seniority level stated in job", seniorityMax*noYearsRequirementCredit,
			"the job description names no seniority rung")
	case candRank < 0:
		b.add("candidate seniority not determinable", 0,
			fmt.Sprintf("the job targets %s but the resume shows no title signal", signals.SeniorityRequired))
	case candRank >= reqRank:
		b.add("meets seniority target", seniorityMax,
			fmt.Sprintf("candidate reads as %s against a %s target", signals.SeniorityCandidate, signals.SeniorityRequired))
	case candRank == reqRank-1:
		b.add("one rung below seniority target", seniorityMax*weakCredit,
			fmt.Sprintf("candidate reads as %s against a %s target", signals.SeniorityCandidate, signals.SeniorityRequired))
	default:
		b.add("below seniority target", 0,
			fmt.Sprintf("candidate reads as %s against a %s target", signals.SeniorityCandidate, signals.SeniorityRequired))
	}

	return b.build()
}

func impactComponent(analysis impact.Analysis, strongThreshold float64, max float64) types.ScoreComponent {
	b := newBuilder(types.ComponentImpact, max, 0)

	total := len(analysis.BulletScores)
	if total == 0 {
		b.add("no experience bullets to assess", 0,
			"the resume contains no experience content")
		return b.build()
	}
	if strongThreshold <= 0 {
		strongThreshold = impact.DefaultStrongline
	}

	strong := 0
	var weakest []string
	for _, score := range analysis.BulletScores {
		if score.StrengthScore >= strongThreshold {
			strong++
		} else if len(weakest) < 3 {
			weakest = append(weakest, score.Text)
		}
	}

	b.add(fmt.Sprintf("%d of %d bullets are strong achievements", strong, total),
		float64(strong)/float64(total)*max)
	if strong < total {
		b.add(fmt.Sprintf("%d bullets lack achievement signals", total-strong), 0, weakest...)
	}
	return b.build()
}

func parseabilityComponent(analysis formatting.Analysis, profile formatting.Profile, max float64) types.ScoreComponent {
	b := newBuilder(types.ComponentATSParseability, max, max)
	if len(analysis.Issues) == 0 {
		b.add("no parseability issues detected", 0)
		return b.build()
	}
	for _, issue := range analysis.Issues {
		b.add(issue.IssueType, -profile.Penalty(issue.Severity)/100*max,
			issue.Description, issue.Suggestion)
	}
	return b.build()
}

func languageComponent(analysis impact.Analysis, max float64) types.ScoreComponent {
	b := newBuilder(types.ComponentLanguageQuality, max, max)

	if len(analysis.BulletScores) == 0 {
		b.add("no experience content to assess", -max)
		return b.build()
	}
	if len(analysis.GenericPhrases) == 0 {
		b.add("no generic filler detected", 0)
		return b.build()
	}
	for _, phrase := range analysis.GenericPhrases {
		b.add(fmt.Sprintf("generic phrase: %q", phrase), -max/languageQualitySlots,
			fmt.Sprintf("%q reads as filler; name the action and its outcome", phrase))
	}
	return b.build()
}

func logisticsComponent(signals *types.JobSignals, max float64) types.ScoreComponent {
	b := newBuilder(types.ComponentLogistics, max, 0)

	if signals == nil {
		b.add("logistics signals unavailable", 0,
			"location and remote compatibility could not be determined")
		return b.build()
	}

	half := max / 2
	switch {
	case signals.LocationCompatible == nil:
		b.add("location compatibility unknown", 0)
	case *signals.LocationCompatible:
		b.add("location compatible", half)
	default:
		b.add("location mismatch", 0, "the resume location does not satisfy the job location")
	}

	switch {
	case signals.RemoteCompatible == nil:
		b.add("remote compatibility unknown", 0)
	case *signals.RemoteCompatible:
		b.add("remote arrangement compatible", half)
	default:
		b.add("remote arrangement mismatch", 0, "the job's on-site expectation conflicts with the resume")
	}

	return b.build()
}

func evidenceStrings(match types.KeywordMatch) []string {
	out := make([]string, 0, len(match.Evidence))
	for _, loc := range match.Evidence {
		out = append(out, fmt.Sprintf("found in %s bullet %d", loc.Section, loc.BulletIndex+1))
	}
	return out
}
