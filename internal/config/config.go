// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-analyzer/internal/keywords"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume   string `json:"resume,omitempty"`   // Path to resume text file
	Job      string `json:"job,omitempty"`      // Path to job posting text file
	Ontology string `json:"ontology,omitempty"` // Path to skills ontology JSON
	Weights  string `json:"weights,omitempty"`  // Path to component weights JSON
	Output   string `json:"output,omitempty"`   // Path to write the result JSON (default stdout)

	// Scoring
	Platform              string  `json:"platform,omitempty"`                // ATS platform profile name
	MaxRecommendations    int     `json:"max_recommendations,omitempty"`     // Cap on the recommendation list
	StrongBulletThreshold float64 `json:"strong_bullet_threshold,omitempty"` // Strength score where a bullet reads as strong

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed progress information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: Required fields are handled by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Platform != "" && !types.ATSPlatform(c.Platform).Known() {
		return fmt.Errorf("config error: unknown platform %q", c.Platform)
	}
	if c.MaxRecommendations < 0 {
		return fmt.Errorf("config error: 'max_recommendations' must be non-negative")
	}
	if c.StrongBulletThreshold < 0 || c.StrongBulletThreshold > 100 {
		return fmt.Errorf("config error: 'strong_bullet_threshold' must be between 0 and 100")
	}

	for name, path := range map[string]string{
		"resume":   c.Resume,
		"job":      c.Job,
		"ontology": c.Ontology,
		"weights":  c.Weights,
	} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", name, path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.Ontology == "" {
		result.Ontology = defaults.Ontology
	}
	if result.Weights == "" {
		result.Weights = defaults.Weights
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Platform == "" {
		result.Platform = defaults.Platform
	}
	if result.MaxRecommendations == 0 {
		result.MaxRecommendations = defaults.MaxRecommendations
	}
	if result.StrongBulletThreshold == 0 {
		result.StrongBulletThreshold = defaults.StrongBulletThreshold
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}

// ReferenceData bundles the read-only tables one process loads at start and
// shares across analysis runs.
type ReferenceData struct {
	Ontology *keywords.Ontology
	Weights  *types.ComponentWeights // nil means the default split
}

// LoadReferenceData resolves the config's ontology and weights paths,
// falling back to the built-in ontology and default weights when unset.
func (c *Config) LoadReferenceData() (*ReferenceData, error) {
	ref := &ReferenceData{Ontology: keywords.DefaultOntology()}

	if c.Ontology != "" {
		ontology, err := keywords.LoadOntology(c.Ontology)
		if err != nil {
			return nil, err
		}
		ref.Ontology = ontology
	}
	if c.Weights != "" {
		weights, err := LoadWeights(c.Weights)
		if err != nil {
			return nil, err
		}
		ref.Weights = weights
	}
	return ref, nil
}

// LoadWeights reads, schema-validates, and range-checks a component weights
// file. Weight files must carry all seven components and sum to 100.
func LoadWeights(path string) (*types.ComponentWeights, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read weights file %s: %w", path, err)
	}
	if err := schemas.ValidateWeights(data); err != nil {
		return nil, fmt.Errorf("weights file %s: %w", path, err)
	}

	var weights types.ComponentWeights
	if err := json.Unmarshal(data, &weights); err != nil {
		return nil, fmt.Errorf("failed to parse weights JSON: %w", err)
	}
	if err := weights.Validate(); err != nil {
		return nil, fmt.Errorf("weights file %s: %w", path, err)
	}
	return &weights, nil
}
