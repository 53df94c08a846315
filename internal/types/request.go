// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// ATSPlatform names an applicant-tracking-system parsing profile
type ATSPlatform string

const (
	PlatformGeneric    ATSPlatform = "generic"
	PlatformWorkday    ATSPlatform = "workday"
	PlatformGreenhouse ATSPlatform = "greenhouse"
	PlatformLever      ATSPlatform = "lever"
	PlatformBambooHR   ATSPlatform = "bamboohr"
	PlatformICIMS      ATSPlatform = "icims"
)

// KnownPlatforms lists every supported ATS platform
var KnownPlatforms = []ATSPlatform{
	PlatformGeneric,
	PlatformWorkday,
	PlatformGreenhouse,
	PlatformLever,
	PlatformBambooHR,
	PlatformICIMS,
}

// Known reports whether the platform value is one of the supported profiles
func (p ATSPlatform) Known() bool {
	for _, known := range KnownPlatforms {
		if p == known {
			return true
		}
	}
	return false
}

// weightSumTolerance absorbs float rounding when checking that component
// maxima sum to 100.
const weightSumTolerance = 1e-9

// ComponentWeights holds the max points of the seven score components.
// The seven values must sum to exactly 100.
type ComponentWeights struct {
	MustHaves       float64 `json:"must_haves" validate:"gte=0"`
	Experience      float64 `json:"experience" validate:"gte=0"`
	SkillsDepth     float64 `json:"skills_depth" validate:"gte=0"`
	Impact          float64 `json:"impact" validate:"gte=0"`
	ATSParseability float64 `json:"ats_parseability" validate:"gte=0"`
	LanguageQuality float64 `json:"language_quality" validate:"gte=0"`
	Logistics       float64 `json:"logistics" validate:"gte=0"`
}

// DefaultComponentWeights returns the standard 40/20/15/10/5/5/5 split
func DefaultComponentWeights() ComponentWeights {
	return ComponentWeights{
		MustHaves:       40,
		Experience:      20,
		SkillsDepth:     15,
		Impact:          10,
		ATSParseability: 5,
		LanguageQuality: 5,
		Logistics:       5,
	}
}

// MaxFor returns the max points allocated to the named component
func (w ComponentWeights) MaxFor(component string) float64 {
	switch component {
	case ComponentMustHaves:
		return w.MustHaves
	case ComponentExperience:
		return w.Experience
	case ComponentSkillsDepth:
		return w.SkillsDepth
	case ComponentImpact:
		return w.Impact
	case ComponentATSParseability:
		return w.ATSParseability
	case ComponentLanguageQuality:
		return w.LanguageQuality
	case ComponentLogistics:
		return w.Logistics
	}
	return 0
}

// Sum returns the total of all seven component maxima
func (w ComponentWeights) Sum() float64 {
	return w.MustHaves + w.Experience + w.SkillsDepth + w.Impact +
		w.ATSParseability + w.LanguageQuality + w.Logistics
}

// Validate checks the weights using the validator plus the sum-to-100 rule
func (w ComponentWeights) Validate() error {
	validate := validator.New()
	if err := validate.Struct(w); err != nil {
		return err
	}
	if math.Abs(w.Sum()-100) > weightSumTolerance {
		return fmt.Errorf("component weights must sum to 100, got %.6f", w.Sum())
	}
	return nil
}

// SeniorityLevel names a rung on the seniority ladder
type SeniorityLevel string

const (
	SeniorityEntry     SeniorityLevel = "entry"
	SeniorityJunior    SeniorityLevel = "junior"
	SeniorityMid       SeniorityLevel = "mid"
	SenioritySenior    SeniorityLevel = "senior"
	SeniorityStaff     SeniorityLevel = "staff"
	SeniorityPrincipal SeniorityLevel = "principal"
	SeniorityExecutive SeniorityLevel = "executive"
)

// Rank returns the numeric position of the level on the ladder, or -1 when unknown
func (l SeniorityLevel) Rank() int {
	switch l {
	case SeniorityEntry:
		return 0
	case SeniorityJunior:
		return 1
	case SeniorityMid:
		return 2
	case SenioritySenior:
		return 3
	case SeniorityStaff:
		return 4
	case SeniorityPrincipal:
		return 5
	case SeniorityExecutive:
		return 6
	}
	return -1
}

// JobSignals carries the experience/seniority and logistics facts the
// job-parser collaborator resolved from the posting and the resume.
// Nil pointer fields mean the signal is unavailable (partial evidence).
type JobSignals struct {
	YearsRequired      int            `json:"years_required,omitempty"`
	YearsCandidate     int            `json:"years_candidate,omitempty"`
	SeniorityRequired  SeniorityLevel `json:"seniority_required,omitempty"`
	SeniorityCandidate SeniorityLevel `json:"seniority_candidate,omitempty"`
	LocationCompatible *bool          `json:"location_compatible,omitempty"`
	RemoteCompatible   *bool          `json:"remote_compatible,omitempty"`
}

// AnalyzeRequest is the core input contract. Weights and Signals are
// optional; a nil Weights means the default 40/20/15/10/5/5/5 split.
type AnalyzeRequest struct {
	ResumeDocument  NormalizedDocument `json:"resume_document"`
	JobRequirements []Requirement      `json:"job_requirements" validate:"dive"`
	ATSPlatform     ATSPlatform        `json:"ats_platform"`
	Weights         *ComponentWeights  `json:"weights,omitempty"`
	Signals         *JobSignals        `json:"signals,omitempty"`
}

// Validate checks the request with the validator. Weight-sum and platform
// checks are the pipeline's configuration gate, not part of struct validation.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
