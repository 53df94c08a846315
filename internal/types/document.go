// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Bullet represents a single bullet unit within a resume section.
// Metrics and ActionVerb are extracted during normalization so downstream
// analyzers never re-tokenize the text.
type Bullet struct {
	Text       string   `json:"text"`
	Metrics    []string `json:"metrics,omitempty"`
	ActionVerb string   `json:"action_verb,omitempty"`
}

// Section represents a named resume section with its ordered bullets
type Section struct {
	Name    string   `json:"name"`
	Bullets []Bullet `json:"bullets"`
}

// NormalizedDocument is the structured form of a resume or job description.
// It is owned by the pipeline run that created it and never mutated after
// normalization.
type NormalizedDocument struct {
	Sections []Section `json:"sections"`
}

// EvidenceLocation points at the bullet that produced a piece of evidence
type EvidenceLocation struct {
	Section     string `json:"section"`
	BulletIndex int    `json:"bullet_index"`
}

// IsEmpty reports whether the document carries no analyzable content
func (d *NormalizedDocument) IsEmpty() bool {
	for _, section := range d.Sections {
		if len(section.Bullets) > 0 {
			return false
		}
	}
	return true
}

// BulletCount returns the total number of bullets across all sections
func (d *NormalizedDocument) BulletCount() int {
	count := 0
	for _, section := range d.Sections {
		count += len(section.Bullets)
	}
	return count
}
