package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMetrics(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"Percentage", "Reduced latency by 40%", []string{"40%"}},
		{"Decimal percentage", "Improved uptime to 99.9%", []string{"99.9%"}},
		{"Currency with suffix", "Saved $1.2M annually", []string{"$1.2M"}},
		{"Currency with commas", "Managed a $250,000 budget", []string{"$250,000"}},
		{"Multiplier", "Delivered 3x throughput", []string{"3x"}},
		{"Count with unit", "Led a team of 12 engineers", []string{"12 engineers"}},
		{"Large plain number", "Processed 1,000,000 events daily", []string{"1,000,000"}},
		{"Multiple in order", "Cut costs by 20% saving $500k", []string{"20%", "$500k"}},
		{"No metrics", "Responsible for various tasks", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractMetrics(tt.input))
		})
	}
}

func TestLeadingActionVerb(t *testing.T) {
	assert.Equal(t, "led", LeadingActionVerb("Led a team of 8 engineers"))
	assert.Equal(t, "helped", LeadingActionVerb("Helped with deployments"))
	assert.Equal(t, "", LeadingActionVerb("Responsible for maintenance"))
	assert.Equal(t, "", LeadingActionVerb(""))
}

func TestIsStrongVerb(t *testing.T) {
	assert.True(t, IsStrongVerb("Led"))
	assert.True(t, IsStrongVerb("reduced"))
	assert.False(t, IsStrongVerb("helped"))
	assert.False(t, IsStrongVerb(""))
}

func TestFindGenericPhrases(t *testing.T) {
	found := FindGenericPhrases("Responsible for testing and worked on bug fixes")
	assert.Equal(t, []string{"responsible for", "worked on"}, found)

	assert.Empty(t, FindGenericPhrases("Delivered the payments migration"))
}

func TestHasSeniorityQualifier(t *testing.T) {
	assert.True(t, HasSeniorityQualifier("Senior Python development across services"))
	assert.True(t, HasSeniorityQualifier("deep expertise in Kubernetes"))
	assert.False(t, HasSeniorityQualifier("Wrote Python scripts"))
}

func TestContainsWord(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   string
		expected bool
	}{
		{"Exact word", "Built services in Go", "go", true},
		{"Case insensitive", "GOLANG experience", "golang", true},
		{"Substring of a word", "Managed the cargo pipeline", "go", false},
		{"Multi-word needle", "Expert in go lang tooling", "go lang", true},
		{"Punctuated needle", "Shipped C++ components", "c++", true},
		{"At end of text", "Migrated to AWS", "aws", true},
		{"Absent", "Built services in Go", "python", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ContainsWord(tt.haystack, tt.needle))
		})
	}
}
