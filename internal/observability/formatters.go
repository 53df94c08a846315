// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRequirements outputs a human-readable summary of the extracted job
// requirements, must-haves first.
func (p *Printer) PrintRequirements(requirements []types.Requirement, signals *types.JobSignals) {
	if len(requirements) == 0 {
		return
	}

	var mustHaves, niceToHaves []types.Requirement
	for _, req := range requirements {
		if req.MustHave {
			mustHaves = append(mustHaves, req)
		} else {
			niceToHaves = append(niceToHaves, req)
		}
	}

	var sb strings.Builder
	if signals != nil {
		if signals.YearsRequired > 0 {
			sb.WriteString(fmt.Sprintf("Years required: %d\n", signals.YearsRequired))
		}
		if signals.SeniorityRequired != "" {
			sb.WriteString(fmt.Sprintf("Seniority:      %s\n", signals.SeniorityRequired))
		}
		sb.WriteString("\n")
	}

	if len(mustHaves) > 0 {
		sb.WriteString("Must-haves:\n")
		count := min(len(mustHaves), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s (%.2f)\n", mustHaves[i].CanonicalSkill, mustHaves[i].ImportanceWeight))
		}
		if len(mustHaves) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(mustHaves)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(niceToHaves) > 0 {
		sb.WriteString("Nice-to-haves:\n")
		count := min(len(niceToHaves), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", niceToHaves[i].CanonicalSkill))
		}
		if len(niceToHaves) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(niceToHaves)-3))
		}
	}

	p.printBox("EXTRACTED JOB REQUIREMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScores outputs the composite scores and the per-component breakdown
func (p *Printer) PrintScores(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ATS score:       %.1f / 100\n", result.ATSScore))
	sb.WriteString(fmt.Sprintf("Recruiter score: %.1f / 100\n", result.RecruiterScore))
	sb.WriteString(fmt.Sprintf("Coverage:        %.1f%%\n", result.CoverageScore))
	sb.WriteString("\n")

	for _, name := range types.ComponentNames {
		component, ok := result.Components[name]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("%-17s %5.1f / %.0f\n", name, component.Score, component.Max))
	}

	if result.LowConfidence {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("LOW CONFIDENCE: %s\n", result.LowConfidenceReason))
	}

	p.printBox("ANALYSIS SCORES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs the top prioritized recommendations
func (p *Printer) PrintRecommendations(recommendations []types.Recommendation) {
	if len(recommendations) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(recommendations), maxItemsToShow)
	for i := 0; i < count; i++ {
		rec := recommendations[i]
		sb.WriteString(fmt.Sprintf("#%d  [%s] %s\n", i+1, rec.Severity, rec.Title))
		sb.WriteString(fmt.Sprintf("    Priority: %.1f  Lift: %.1f pts\n", rec.PriorityScore, rec.EstimatedLift))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(recommendations) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more\n", len(recommendations)-maxItemsToShow))
	}

	p.printBox("TOP RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}
