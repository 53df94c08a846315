// Package lexicon provides the curated lexical reference tables shared by the
// analyzers: action-verb lists, the generic-phrase denylist, seniority
// qualifiers, and metric-token patterns. All tables are read-only and loaded
// once at process start.
package lexicon

import (
	"regexp"
	"strings"
)

// StrongActionVerbs are leading verbs that signal ownership and impact
var StrongActionVerbs = map[string]bool{
	"achieved": true, "accomplished": true, "delivered": true, "exceeded": true,
	"surpassed": true, "outperformed": true,
	"increased": true, "improved": true, "enhanced": true, "optimized": true,
	"streamlined": true, "accelerated": true,
	"reduced": true, "decreased": true, "minimized": true, "eliminated": true,
	"saved": true, "cut": true,
	"grew": true, "expanded": true, "scaled": true, "launched": true,
	"initiated": true, "established": true,
	"led": true, "managed": true, "directed": true, "oversaw": true,
	"spearheaded": true, "championed": true,
	"developed": true, "created": true, "built": true, "designed": true,
	"implemented": true, "executed": true,
	"analyzed": true, "evaluated": true, "assessed": true, "researched": true,
	"identified": true, "discovered": true, "automated": true, "migrated": true,
}

// WeakActionVerbs are leading verbs that report participation without impact
var WeakActionVerbs = map[string]bool{
	"helped": true, "assisted": true, "supported": true, "participated": true,
	"involved": true, "worked": true, "contributed": true, "attended": true,
}

// GenericPhrases is the denylist of vague resume language. Phrases are
// matched case-insensitively anywhere in a bullet.
var GenericPhrases = []string{
	"responsible for",
	"involved in",
	"participated in",
	"worked on",
	"helped with",
	"assisted with",
	"contributed to",
	"part of",
	"member of",
	"tasked with",
	"assigned to",
	"in charge of",
	"duties included",
	"responsibilities included",
}

// SeniorityQualifiers mark contextual seniority signal next to a skill mention
var SeniorityQualifiers = []string{
	"senior", "lead", "principal", "staff", "expert", "advanced",
	"architect", "extensive", "deep",
}

// metricPatterns match quantified-outcome tokens inside bullet text.
// Order matters: earlier patterns claim their text first.
var metricPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+(?:\.\d+)?%`),                             // percentages
	regexp.MustCompile(`\$\d+(?:,\d{3})*(?:\.\d+)?[kKmMbB]?`),        // currency
	regexp.MustCompile(`\d+(?:\.\d+)?[x×]`),                          // multipliers
	regexp.MustCompile(`\d+(?:,\d{3})*\s*(?:people|engineers|employees|users|customers|clients|teams|reports)`), // counts
	regexp.MustCompile(`\d+(?:,\d{3})+`),                             // large plain numbers
	regexp.MustCompile(`\b\d+(?:\.\d+)?\b`),                          // bare numbers
}

// ExtractMetrics returns every metric token in the text, in document order
// and without overlaps.
func ExtractMetrics(text string) []string {
	type span struct{ start, end int }
	var claimed []span
	var metrics []struct {
		start int
		token string
	}

	overlaps := func(start, end int) bool {
		for _, s := range claimed {
			if start < s.end && end > s.start {
				return true
			}
		}
		return false
	}

	for _, pattern := range metricPatterns {
		for _, loc := range pattern.FindAllStringIndex(text, -1) {
			if overlaps(loc[0], loc[1]) {
				continue
			}
			claimed = append(claimed, span{loc[0], loc[1]})
			metrics = append(metrics, struct {
				start int
				token string
			}{loc[0], text[loc[0]:loc[1]]})
		}
	}

	// Restore document order across patterns
	for i := 1; i < len(metrics); i++ {
		for j := i; j > 0 && metrics[j-1].start > metrics[j].start; j-- {
			metrics[j-1], metrics[j] = metrics[j], metrics[j-1]
		}
	}

	if len(metrics) == 0 {
		return nil
	}
	tokens := make([]string, len(metrics))
	for i, m := range metrics {
		tokens[i] = m.token
	}
	return tokens
}

// LeadingActionVerb returns the first word of the bullet if it is a known
// action verb (strong or weak), or the empty string.
func LeadingActionVerb(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	first := strings.ToLower(strings.Trim(fields[0], ".,;:()"))
	if StrongActionVerbs[first] || WeakActionVerbs[first] {
		return first
	}
	return ""
}

// IsStrongVerb reports whether the verb is on the strong-action list
func IsStrongVerb(verb string) bool {
	return StrongActionVerbs[strings.ToLower(verb)]
}

// FindGenericPhrases returns the denylist phrases present in the text,
// in denylist order.
func FindGenericPhrases(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, phrase := range GenericPhrases {
		if strings.Contains(lower, phrase) {
			found = append(found, phrase)
		}
	}
	return found
}

// HasSeniorityQualifier reports whether the text contains a seniority
// qualifier as a whole word.
func HasSeniorityQualifier(text string) bool {
	lower := strings.ToLower(text)
	for _, qualifier := range SeniorityQualifiers {
		if containsWord(lower, qualifier) {
			return true
		}
	}
	return false
}

// containsWord reports whether needle appears in haystack on word boundaries.
// Both arguments must already be lowercase.
func containsWord(haystack, needle string) bool {
	idx := 0
	for {
		pos := strings.Index(haystack[idx:], needle)
		if pos < 0 {
			return false
		}
		start := idx + pos
		end := start + len(needle)
		beforeOK := start == 0 || !isWordChar(haystack[start-1])
		afterOK := end == len(haystack) || !isWordChar(haystack[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

// ContainsWord reports whether needle appears in haystack on word boundaries,
// case-insensitively.
func ContainsWord(haystack, needle string) bool {
	return containsWord(strings.ToLower(haystack), strings.ToLower(needle))
}
