package parsing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/keywords"
	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Section cues that mark where a job posting starts listing hard requirements
// versus nice-to-haves. Matching is on whole lines after lowercasing.
var (
	requiredCues = []string{
		"requirements", "required qualifications", "minimum qualifications",
		"basic qualifications", "must have", "what you'll need", "what you will need",
		"qualifications",
	}
	preferredCues = []string{
		"preferred qualifications", "preferred", "nice to have", "nice-to-have",
		"bonus points", "desired skills", "a plus",
	}

	yearsPattern     = regexp.MustCompile(`(?i)(\d{1,2})\s*\+?\s*(?:-\s*\d{1,2}\s*)?years?(?:\s+of)?\s+(?:\w+\s+)?experience`)
	calendarYear     = regexp.MustCompile(`\b(19[5-9]\d|20[0-4]\d)\b`)
	mustHaveInline   = regexp.MustCompile(`(?i)\b(required|must have|must-have|essential)\b`)
	frequencyBump    = 0.05
	preferredScaling = 0.75
)

// seniorityKeywords maps title tokens to levels, checked in rank order so the
// highest level mentioned wins.
var seniorityKeywords = []struct {
	token string
	level types.SeniorityLevel
}{
	{"chief", types.SeniorityExecutive},
	{"vp ", types.SeniorityExecutive},
	{"vice president", types.SeniorityExecutive},
	{"director", types.SeniorityExecutive},
	{"principal", types.SeniorityPrincipal},
	{"staff", types.SeniorityStaff},
	{"senior", types.SenioritySenior},
	{"sr.", types.SenioritySenior},
	{"lead", types.SenioritySenior},
	{"junior", types.SeniorityJunior},
	{"jr.", types.SeniorityJunior},
	{"entry level", types.SeniorityEntry},
	{"intern", types.SeniorityEntry},
}

type sectionMode int

const (
	modeNeutral sectionMode = iota
	modeRequired
	modePreferred
)

// ParseJobDescription extracts structured requirements and job-side signals
// from free-text job posting content. Skills are recognized against the
// ontology; a mention inside a requirements section, or on a line that says
// "required"/"must have", marks the skill as a must-have. Repeat mentions
// bump the importance weight; skills seen only under preferred sections are
// scaled down.
func ParseJobDescription(text string, ontology *keywords.Ontology) ([]types.Requirement, types.JobSignals, error) {
	signals := types.JobSignals{
		YearsRequired:     extractYearsRequired(text),
		SeniorityRequired: detectSeniority(text),
	}

	if strings.TrimSpace(text) == "" {
		return nil, signals, &ParseError{Message: "job description is empty"}
	}

	type evidence struct {
		mentions      int
		inRequired    bool
		inPreferred   bool
		inlineRequire bool
	}
	seen := make(map[string]*evidence)
	order := make([]string, 0)

	mode := modeNeutral
	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}
		if next, ok := classifyHeading(line); ok {
			mode = next
			continue
		}

		for _, entry := range ontology.Entries() {
			if !mentionsSkill(line, entry) {
				continue
			}
			ev, ok := seen[entry.Canonical]
			if !ok {
				ev = &evidence{}
				seen[entry.Canonical] = ev
				order = append(order, entry.Canonical)
			}
			ev.mentions++
			switch mode {
			case modeRequired:
				ev.inRequired = true
			case modePreferred:
				ev.inPreferred = true
			}
			if mustHaveInline.MatchString(line) {
				ev.inlineRequire = true
			}
		}
	}

	if len(order) == 0 {
		return nil, signals, &ParseError{Message: "no recognizable skill requirements in job description"}
	}

	requirements := make([]types.Requirement, 0, len(order))
	for _, canonical := range order {
		entry, _ := ontology.Lookup(canonical)
		ev := seen[canonical]

		weight := entry.ImportanceWeight + frequencyBump*float64(ev.mentions-1)
		if ev.inPreferred && !ev.inRequired && !ev.inlineRequire {
			weight *= preferredScaling
		}
		if weight > 1 {
			weight = 1
		}
		if weight <= 0 {
			weight = 0.05
		}

		requirements = append(requirements, types.Requirement{
			CanonicalSkill:   entry.Canonical,
			Aliases:          entry.Aliases,
			ImportanceWeight: weight,
			MustHave:         ev.inRequired || ev.inlineRequire || (entry.MustHave && !ev.inPreferred),
		})
	}

	return requirements, signals, nil
}

// ResumeSignals derives the candidate-side logistics signals from raw resume
// text. Career length is estimated as the span between the earliest and
// latest calendar year mentioned; "present" is treated as the latest year so
// the result depends only on the input text.
func ResumeSignals(text string) types.JobSignals {
	signals := types.JobSignals{
		SeniorityCandidate: detectSeniority(text),
	}

	years := calendarYear.FindAllString(text, -1)
	if len(years) >= 2 {
		minYear, maxYear := 9999, 0
		for _, y := range years {
			n, err := strconv.Atoi(y)
			if err != nil {
				continue
			}
			if n < minYear {
				minYear = n
			}
			if n > maxYear {
				maxYear = n
			}
		}
		if maxYear > minYear {
			signals.YearsCandidate = maxYear - minYear
		}
	}
	return signals
}

func classifyHeading(line string) (sectionMode, bool) {
	// Headings are short lines; cue words buried in a long sentence do not
	// switch modes.
	if len(line) > 60 {
		return modeNeutral, false
	}
	lower := strings.ToLower(strings.TrimRight(line, ":"))
	for _, cue := range preferredCues {
		if strings.Contains(lower, cue) {
			return modePreferred, true
		}
	}
	for _, cue := range requiredCues {
		if strings.Contains(lower, cue) {
			return modeRequired, true
		}
	}
	return modeNeutral, false
}

func mentionsSkill(line string, entry keywords.SkillEntry) bool {
	if lexicon.ContainsWord(line, entry.Canonical) {
		return true
	}
	for _, alias := range entry.Aliases {
		if lexicon.ContainsWord(line, alias) {
			return true
		}
	}
	return false
}

func extractYearsRequired(text string) int {
	max := 0
	for _, m := range yearsPattern.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max
}

func detectSeniority(text string) types.SeniorityLevel {
	lower := strings.ToLower(text)
	for _, kw := range seniorityKeywords {
		if strings.Contains(lower, kw.token) {
			return kw.level
		}
	}
	return "" // unknown, Rank() reports -1
}
