// Package parsing provides normalization of raw resume and job-description
// text into the structured document model consumed by the analyzers.
package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// UnsectionedName is the fallback section used when no headings are recognized
const UnsectionedName = "unsectioned"

// sectionHeadings maps recognized heading text to canonical section names.
// Matching is case-insensitive against the whole line (trailing colon
// stripped), so ordinary sentences never register as headings.
var sectionHeadings = map[string]string{
	"contact":                 "contact",
	"contact information":     "contact",
	"personal information":    "contact",
	"summary":                 "summary",
	"professional summary":    "summary",
	"profile":                 "summary",
	"objective":               "summary",
	"about":                   "summary",
	"experience":              "experience",
	"work experience":         "experience",
	"work history":            "experience",
	"employment":              "experience",
	"employment history":      "experience",
	"professional experience": "experience",
	"education":               "education",
	"academic background":     "education",
	"qualifications":          "education",
	"skills":                  "skills",
	"technical skills":        "skills",
	"core competencies":       "skills",
	"competencies":            "skills",
	"expertise":               "skills",
	"certifications":          "certifications",
	"certificates":            "certifications",
	"credentials":             "certifications",
	"projects":                "projects",
	"portfolio":               "projects",
	"awards":                  "awards",
	"honors":                  "awards",
	"achievements":            "awards",
	"publications":            "publications",
	"languages":               "languages",
}

// experienceLike are the sections whose bullets feed the impact analyzer.
// The unsectioned fallback is included so poorly structured resumes still
// produce impact signal.
var experienceLike = map[string]bool{
	"experience":    true,
	"projects":      true,
	UnsectionedName: true,
}

// IsExperienceSection reports whether bullets of the named section should be
// treated as experience statements.
func IsExperienceSection(name string) bool {
	return experienceLike[strings.ToLower(name)]
}

var (
	bulletMarker = regexp.MustCompile(`^\s*(?:[-*•◦▪]|\d+[.)])\s+`)
	pageNumber   = regexp.MustCompile(`(?i)^(?:page\s+\d+(?:\s+of\s+\d+)?|\d{1,3})$`)
)

// repeatedLineThreshold is the count at which a recurring non-heading line is
// treated as a running header or footer and stripped.
const repeatedLineThreshold = 3

// NormalizeResume converts raw extracted resume text into a
// NormalizedDocument. It never fails: when no headings are recognized the
// whole document becomes a single unsectioned section.
func NormalizeResume(text string) types.NormalizedDocument {
	lines := strings.Split(text, "\n")

	boilerplate := findBoilerplate(lines)

	var sections []types.Section
	current := types.Section{Name: UnsectionedName}

	flush := func() {
		if len(current.Bullets) > 0 {
			sections = append(sections, current)
		}
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || boilerplate[line] || pageNumber.MatchString(line) {
			continue
		}

		if name, ok := headingName(line); ok {
			flush()
			current = types.Section{Name: name}
			continue
		}

		current.Bullets = append(current.Bullets, makeBullet(line))
	}
	flush()

	// Merge duplicate section names, keeping first-seen order
	return types.NormalizedDocument{Sections: mergeSections(sections)}
}

// headingName resolves a trimmed line to a canonical section name
func headingName(line string) (string, bool) {
	candidate := strings.ToLower(strings.TrimRight(line, ": "))
	name, ok := sectionHeadings[candidate]
	return name, ok
}

// makeBullet strips bullet markers and extracts the lexical features the
// downstream analyzers need.
func makeBullet(line string) types.Bullet {
	text := bulletMarker.ReplaceAllString(line, "")
	text = strings.TrimSpace(text)
	return types.Bullet{
		Text:       text,
		Metrics:    lexicon.ExtractMetrics(text),
		ActionVerb: lexicon.LeadingActionVerb(text),
	}
}

// findBoilerplate returns the set of non-heading lines that repeat often
// enough to be running headers or footers.
func findBoilerplate(lines []string) map[string]bool {
	counts := make(map[string]int)
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if _, isHeading := headingName(line); isHeading {
			continue
		}
		counts[line]++
	}

	boilerplate := make(map[string]bool)
	for line, count := range counts {
		if count >= repeatedLineThreshold {
			boilerplate[line] = true
		}
	}
	return boilerplate
}

// mergeSections collapses sections that share a name, preserving the order
// in which each name first appeared.
func mergeSections(sections []types.Section) []types.Section {
	if len(sections) == 0 {
		return nil
	}
	index := make(map[string]int)
	merged := make([]types.Section, 0, len(sections))
	for _, section := range sections {
		if i, seen := index[section.Name]; seen {
			merged[i].Bullets = append(merged[i].Bullets, section.Bullets...)
			continue
		}
		index[section.Name] = len(merged)
		merged = append(merged, section)
	}
	return merged
}
