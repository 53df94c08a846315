// Package keywords resolves job requirements against resume content using a
// skills ontology and produces coverage, match, and gap information.
package keywords

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/schemas"
)

// SkillEntry describes one canonical skill in the ontology
type SkillEntry struct {
	Canonical        string   `json:"canonical"`
	Aliases          []string `json:"aliases,omitempty"`
	ImportanceWeight float64  `json:"importance_weight"`
	MustHave         bool     `json:"must_have"`
}

// Ontology is the static canonical-skill table. It is loaded once at process
// start and queried read-only; alias keys are interned lowercase so lookups
// never re-normalize stored strings.
type Ontology struct {
	entries []SkillEntry
	byAlias map[string]int // lowercase canonical/alias -> entry index
}

// NewOntology builds an ontology from entries, rejecting duplicate canonical
// skills and aliases that collide across entries.
func NewOntology(entries []SkillEntry) (*Ontology, error) {
	ontology := &Ontology{
		entries: make([]SkillEntry, 0, len(entries)),
		byAlias: make(map[string]int),
	}

	for _, entry := range entries {
		canonical := strings.TrimSpace(entry.Canonical)
		if canonical == "" {
			return nil, fmt.Errorf("ontology entry with empty canonical skill")
		}
		if entry.ImportanceWeight <= 0 || entry.ImportanceWeight > 1 {
			return nil, fmt.Errorf("ontology entry %q: importance_weight must be in (0,1], got %v", canonical, entry.ImportanceWeight)
		}

		key := strings.ToLower(canonical)
		if _, exists := ontology.byAlias[key]; exists {
			return nil, fmt.Errorf("duplicate ontology skill %q", canonical)
		}

		idx := len(ontology.entries)
		entry.Canonical = canonical
		ontology.entries = append(ontology.entries, entry)
		ontology.byAlias[key] = idx

		for _, alias := range entry.Aliases {
			aliasKey := strings.ToLower(strings.TrimSpace(alias))
			if aliasKey == "" {
				continue
			}
			if other, exists := ontology.byAlias[aliasKey]; exists && other != idx {
				return nil, fmt.Errorf("alias %q of %q collides with %q", alias, canonical, ontology.entries[other].Canonical)
			}
			ontology.byAlias[aliasKey] = idx
		}
	}

	return ontology, nil
}

// Entries returns the ontology entries in declaration order
func (o *Ontology) Entries() []SkillEntry {
	return o.entries
}

// Lookup resolves a term (canonical name or alias, any case) to its entry
func (o *Ontology) Lookup(term string) (SkillEntry, bool) {
	idx, ok := o.byAlias[strings.ToLower(strings.TrimSpace(term))]
	if !ok {
		return SkillEntry{}, false
	}
	return o.entries[idx], true
}

// ontologyDocument is the on-disk JSON shape
type ontologyDocument struct {
	Skills []SkillEntry `json:"skills"`
}

// LoadOntology reads and validates an ontology JSON file
func LoadOntology(path string) (*Ontology, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ontology file %s: %w", path, err)
	}
	if err := schemas.ValidateOntology(data); err != nil {
		return nil, fmt.Errorf("ontology file %s: %w", path, err)
	}
	var doc ontologyDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse ontology JSON: %w", err)
	}
	return NewOntology(doc.Skills)
}

// DefaultOntology returns the built-in skills table used when no ontology
// file is supplied. Weights reflect how discriminating a skill mention is.
func DefaultOntology() *Ontology {
	ontology, err := NewOntology(defaultSkills)
	if err != nil {
		// The built-in table is validated by tests; a failure here is a bug.
		panic(fmt.Sprintf("invalid built-in ontology: %v", err))
	}
	return ontology
}

var defaultSkills = []SkillEntry{
	{Canonical: "Python", Aliases: []string{"python3", "py"}, ImportanceWeight: 0.9},
	{Canonical: "Go", Aliases: []string{"golang", "go lang"}, ImportanceWeight: 0.9},
	{Canonical: "Java", ImportanceWeight: 0.9},
	{Canonical: "JavaScript", Aliases: []string{"js", "ecmascript"}, ImportanceWeight: 0.8},
	{Canonical: "TypeScript", Aliases: []string{"ts"}, ImportanceWeight: 0.8},
	{Canonical: "C++", Aliases: []string{"cpp"}, ImportanceWeight: 0.9},
	{Canonical: "C#", Aliases: []string{"csharp", ".net"}, ImportanceWeight: 0.9},
	{Canonical: "Ruby", Aliases: []string{"ruby on rails", "rails"}, ImportanceWeight: 0.8},
	{Canonical: "Rust", ImportanceWeight: 0.8},
	{Canonical: "Swift", ImportanceWeight: 0.8},
	{Canonical: "Kotlin", ImportanceWeight: 0.8},
	{Canonical: "PHP", ImportanceWeight: 0.7},
	{Canonical: "SQL", Aliases: []string{"t-sql", "plsql"}, ImportanceWeight: 0.8},
	{Canonical: "PostgreSQL", Aliases: []string{"postgres"}, ImportanceWeight: 0.8},
	{Canonical: "MySQL", ImportanceWeight: 0.7},
	{Canonical: "MongoDB", Aliases: []string{"mongo"}, ImportanceWeight: 0.7},
	{Canonical: "Redis", ImportanceWeight: 0.7},
	{Canonical: "Elasticsearch", Aliases: []string{"elastic search"}, ImportanceWeight: 0.7},
	{Canonical: "AWS", Aliases: []string{"amazon web services"}, ImportanceWeight: 0.9},
	{Canonical: "Azure", ImportanceWeight: 0.8},
	{Canonical: "GCP", Aliases: []string{"google cloud", "google cloud platform"}, ImportanceWeight: 0.8},
	{Canonical: "Docker", ImportanceWeight: 0.8},
	{Canonical: "Kubernetes", Aliases: []string{"k8s"}, ImportanceWeight: 0.9},
	{Canonical: "Terraform", ImportanceWeight: 0.8},
	{Canonical: "Jenkins", ImportanceWeight: 0.6},
	{Canonical: "CI/CD", Aliases: []string{"continuous integration", "continuous delivery"}, ImportanceWeight: 0.7},
	{Canonical: "React", Aliases: []string{"react.js", "reactjs"}, ImportanceWeight: 0.8},
	{Canonical: "Angular", ImportanceWeight: 0.7},
	{Canonical: "Vue", Aliases: []string{"vue.js", "vuejs"}, ImportanceWeight: 0.7},
	{Canonical: "Node.js", Aliases: []string{"nodejs", "node"}, ImportanceWeight: 0.8},
	{Canonical: "Django", ImportanceWeight: 0.7},
	{Canonical: "Flask", ImportanceWeight: 0.6},
	{Canonical: "Spring", Aliases: []string{"spring boot"}, ImportanceWeight: 0.7},
	{Canonical: "Machine Learning", Aliases: []string{"ml"}, ImportanceWeight: 0.9},
	{Canonical: "TensorFlow", ImportanceWeight: 0.7},
	{Canonical: "PyTorch", ImportanceWeight: 0.7},
	{Canonical: "Pandas", ImportanceWeight: 0.6},
	{Canonical: "NumPy", ImportanceWeight: 0.6},
	{Canonical: "Git", ImportanceWeight: 0.5},
	{Canonical: "Agile", Aliases: []string{"scrum", "kanban"}, ImportanceWeight: 0.5},
	{Canonical: "Leadership", Aliases: []string{"team leadership"}, ImportanceWeight: 0.6},
	{Canonical: "Project Management", Aliases: []string{"program management"}, ImportanceWeight: 0.6},
	{Canonical: "Communication", ImportanceWeight: 0.4},
	{Canonical: "Process Optimization", Aliases: []string{"process improvement"}, ImportanceWeight: 0.6},
	{Canonical: "Data Analysis", Aliases: []string{"data analytics", "analytics"}, ImportanceWeight: 0.7},
	{Canonical: "Stakeholder Management", ImportanceWeight: 0.5},
	{Canonical: "Microservices", Aliases: []string{"micro-services"}, ImportanceWeight: 0.7},
	{Canonical: "GraphQL", ImportanceWeight: 0.6},
	{Canonical: "REST", Aliases: []string{"rest api", "restful"}, ImportanceWeight: 0.6},
	{Canonical: "Kafka", Aliases: []string{"apache kafka"}, ImportanceWeight: 0.7},
}
