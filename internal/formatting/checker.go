package formatting

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Analysis is the checker's output for one resume/profile pairing
type Analysis struct {
	Issues                []types.FormattingIssue `json:"issues"`
	ATSCompatibilityScore float64                 `json:"ats_compatibility_score"`
	StructureScore        float64                 `json:"structure_score"`
}

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`(?:\+?\d{1,2}[\s.-]?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`)

	// Runs of interior whitespace wide enough to suggest a column gap
	columnGap      = regexp.MustCompile(`\S\s{3,}\S`)
	imageArtifact  = regexp.MustCompile(`(?i)\[(?:image|graphic|photo|logo)\]|\x{FFFD}`)
	decorationChar = regexp.MustCompile(`[*_#~=]{2,}`)
)

const monthNames = `(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?`

// dateFormats classify date tokens in bullet text. Patterns run in order and
// each token is claimed by the first one that matches it, so the specific
// forms must precede the bare year.
var dateFormats = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"DD Month YYYY", regexp.MustCompile(`(?i)\b\d{1,2}\s+` + monthNames + `\s+(?:19|20)\d{2}\b`)},
	{"Month YYYY", regexp.MustCompile(`(?i)\b` + monthNames + `\s+(?:19|20)\d{2}\b`)},
	{"MM/YYYY", regexp.MustCompile(`\b\d{1,2}/(?:19|20)\d{2}\b`)},
	{"MM-YYYY", regexp.MustCompile(`\b\d{1,2}-(?:19|20)\d{2}\b`)},
	{"MM.YYYY", regexp.MustCompile(`\b\d{1,2}\.(?:19|20)\d{2}\b`)},
	{"YYYY", regexp.MustCompile(`\b(?:19|20)\d{2}\b`)},
}

// structureWeights is how many structure points each present section earns
var structureWeights = []struct {
	section string
	points  float64
}{
	{"experience", 30},
	{"education", 20},
	{"skills", 20},
	{"summary", 15},
	{"contact", 15},
}

// Check runs every formatting and structure audit against the document and
// scores the result on the profile's penalty scale. The issue list is
// deterministic: checks run in a fixed order and report in document order.
func Check(doc types.NormalizedDocument, profile Profile) Analysis {
	var issues []types.FormattingIssue

	present := sectionSet(doc)
	hasContact := present["contact"] || hasContactInfo(doc)

	issues = append(issues, missingSectionIssues(present, hasContact, profile)...)
	issues = append(issues, sectionOrderIssue(doc)...)
	issues = append(issues, tableLayoutIssue(doc)...)
	issues = append(issues, columnLayoutIssue(doc)...)
	issues = append(issues, imageArtifactIssue(doc)...)
	issues = append(issues, bulletLengthIssue(doc, profile)...)
	issues = append(issues, nonASCIIIssue(doc, profile)...)
	issues = append(issues, decorationIssue(doc)...)
	issues = append(issues, dateFormatIssue(doc)...)

	compatibility := 100.0
	for _, issue := range issues {
		compatibility -= profile.Penalty(issue.Severity)
	}
	if compatibility < 0 {
		compatibility = 0
	}

	return Analysis{
		Issues:                issues,
		ATSCompatibilityScore: compatibility,
		StructureScore:        structureScore(present, hasContact),
	}
}

func sectionSet(doc types.NormalizedDocument) map[string]bool {
	present := make(map[string]bool, len(doc.Sections))
	for _, section := range doc.Sections {
		present[strings.ToLower(section.Name)] = true
	}
	return present
}

func hasContactInfo(doc types.NormalizedDocument) bool {
	for _, section := range doc.Sections {
		for _, bullet := range section.Bullets {
			if emailPattern.MatchString(bullet.Text) || phonePattern.MatchString(bullet.Text) {
				return true
			}
		}
	}
	return false
}

func missingSectionIssues(present map[string]bool, hasContact bool, profile Profile) []types.FormattingIssue {
	var issues []types.FormattingIssue
	for _, required := range profile.RequiredSections {
		if required == "contact" {
			if !hasContact {
				issues = append(issues, types.FormattingIssue{
					IssueType:   "contact_discoverability",
					Severity:    types.SeverityCritical,
					Description: "no email address or phone number found anywhere in the resume",
					Suggestion:  "Add an email address and phone number near the top of the resume",
				})
			}
			continue
		}
		if present[required] {
			continue
		}
		severity := types.SeverityMajor
		if required == "experience" {
			severity = types.SeverityCritical
		}
		issues = append(issues, types.FormattingIssue{
			IssueType:   "missing_section",
			Severity:    severity,
			Description: fmt.Sprintf("no %q section detected", required),
			Suggestion:  fmt.Sprintf("Add a clearly-labeled %q section with a standard heading", required),
		})
	}
	return issues
}

func sectionOrderIssue(doc types.NormalizedDocument) []types.FormattingIssue {
	educationAt, experienceAt := -1, -1
	for i, section := range doc.Sections {
		switch strings.ToLower(section.Name) {
		case "education":
			if educationAt < 0 {
				educationAt = i
			}
		case "experience":
			if experienceAt < 0 {
				experienceAt = i
			}
		}
	}
	if educationAt >= 0 && experienceAt >= 0 && educationAt < experienceAt {
		return []types.FormattingIssue{{
			IssueType:   "section_order",
			Severity:    types.SeverityMinor,
			Description: "education appears before experience",
			Suggestion:  "List experience before education unless you are a recent graduate",
		}}
	}
	return nil
}

func tableLayoutIssue(doc types.NormalizedDocument) []types.FormattingIssue {
	count := 0
	for _, section := range doc.Sections {
		for _, bullet := range section.Bullets {
			if strings.ContainsAny(bullet.Text, "|\t") {
				count++
			}
		}
	}
	if count >= 2 {
		return []types.FormattingIssue{{
			IssueType:   "table_layout",
			Severity:    types.SeverityCritical,
			Description: fmt.Sprintf("%d lines contain table separators (pipes or tab stops)", count),
			Suggestion:  "Replace tables with plain single-column bullet lists",
		}}
	}
	return nil
}

func columnLayoutIssue(doc types.NormalizedDocument) []types.FormattingIssue {
	total, gapped := 0, 0
	for _, section := range doc.Sections {
		for _, bullet := range section.Bullets {
			total++
			if columnGap.MatchString(bullet.Text) {
				gapped++
			}
		}
	}
	if total >= 4 && float64(gapped)/float64(total) > 0.25 {
		return []types.FormattingIssue{{
			IssueType:   "multi_column_layout",
			Severity:    types.SeverityCritical,
			Description: fmt.Sprintf("%d of %d lines show wide interior gaps suggesting a multi-column layout", gapped, total),
			Suggestion:  "Use a single-column layout so parsers read lines in order",
		}}
	}
	return nil
}

func imageArtifactIssue(doc types.NormalizedDocument) []types.FormattingIssue {
	for _, section := range doc.Sections {
		for _, bullet := range section.Bullets {
			if imageArtifact.MatchString(bullet.Text) {
				return []types.FormattingIssue{{
					IssueType:   "image_artifact",
					Severity:    types.SeverityMajor,
					Description: "extracted text contains image or graphic placeholders",
					Suggestion:  "Remove images and logos; ATS parsers cannot read them",
				}}
			}
		}
	}
	return nil
}

func bulletLengthIssue(doc types.NormalizedDocument, profile Profile) []types.FormattingIssue {
	overlong := 0
	for _, section := range doc.Sections {
		for _, bullet := range section.Bullets {
			if len(strings.Fields(bullet.Text)) > profile.MaxBulletWords {
				overlong++
			}
		}
	}
	if overlong > 0 {
		return []types.FormattingIssue{{
			IssueType:   "bullet_length_anomaly",
			Severity:    types.SeverityMinor,
			Description: fmt.Sprintf("%d bullets exceed %d words and risk truncation", overlong, profile.MaxBulletWords),
			Suggestion:  "Split long bullets into one achievement per line",
		}}
	}
	return nil
}

func nonASCIIIssue(doc types.NormalizedDocument, profile Profile) []types.FormattingIssue {
	total, nonASCII := 0, 0
	for _, section := range doc.Sections {
		for _, bullet := range section.Bullets {
			for _, r := range bullet.Text {
				total++
				if r > 127 {
					nonASCII++
				}
			}
		}
	}
	if total > 0 && float64(nonASCII)/float64(total) > profile.NonASCIITolerance {
		return []types.FormattingIssue{{
			IssueType:   "non_ascii_density",
			Severity:    types.SeverityMinor,
			Description: fmt.Sprintf("%.1f%% of characters are non-ASCII", float64(nonASCII)/float64(total)*100),
			Suggestion:  "Replace decorative symbols and smart punctuation with plain ASCII",
		}}
	}
	return nil
}

func decorationIssue(doc types.NormalizedDocument) []types.FormattingIssue {
	count := 0
	for _, section := range doc.Sections {
		for _, bullet := range section.Bullets {
			count += len(decorationChar.FindAllString(bullet.Text, -1))
		}
	}
	if count >= 3 {
		return []types.FormattingIssue{{
			IssueType:   "excessive_formatting",
			Severity:    types.SeverityMinor,
			Description: fmt.Sprintf("%d runs of decorative markup characters found", count),
			Suggestion:  "Remove markdown-style decoration; it survives text extraction as noise",
		}}
	}
	return nil
}

// dateFormatIssue flags resumes that mix more than two date styles. Two are
// tolerated since a bare graduation year next to Month-YYYY job ranges is
// normal.
func dateFormatIssue(doc types.NormalizedDocument) []types.FormattingIssue {
	formats := make(map[string]bool)
	for _, section := range doc.Sections {
		for _, bullet := range section.Bullets {
			text := bullet.Text
			for _, f := range dateFormats {
				locs := f.pattern.FindAllStringIndex(text, -1)
				if len(locs) == 0 {
					continue
				}
				formats[f.name] = true
				// Blank the claimed spans so broader patterns cannot
				// recount the same token
				masked := []byte(text)
				for _, loc := range locs {
					for i := loc[0]; i < loc[1]; i++ {
						masked[i] = ' '
					}
				}
				text = string(masked)
			}
		}
	}
	if len(formats) <= 2 {
		return nil
	}
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return []types.FormattingIssue{{
		IssueType:   "inconsistent_date_format",
		Severity:    types.SeverityMinor,
		Description: fmt.Sprintf("dates appear in %d different formats (%s)", len(names), strings.Join(names, ", ")),
		Suggestion:  "Pick one date format such as Month YYYY and use it everywhere",
	}}
}

func structureScore(present map[string]bool, hasContact bool) float64 {
	score := 0.0
	for _, w := range structureWeights {
		if w.section == "contact" {
			if hasContact {
				score += w.points
			}
			continue
		}
		if present[w.section] {
			score += w.points
		}
	}
	return score
}
