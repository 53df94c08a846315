// Package formatting audits a normalized resume for ATS-parseability and
// structural problems against a target platform profile.
package formatting

import "github.com/jonathan/resume-analyzer/internal/types"

// Profile is a data-only description of one ATS platform's parsing behavior.
// Every platform runs the same checks; profiles change penalties, thresholds,
// and which sections the platform expects, never the check list.
type Profile struct {
	Platform types.ATSPlatform

	// Per-issue penalties on the 0-100 compatibility scale
	CriticalPenalty float64
	MajorPenalty    float64
	MinorPenalty    float64

	// Sections the platform's parser looks for
	RequiredSections []string

	// Bullets longer than this many words risk truncation
	MaxBulletWords int

	// Fraction of non-ASCII characters above which parsing degrades
	NonASCIITolerance float64
}

// Penalty returns the profile's deduction for one issue of the given severity
func (p Profile) Penalty(severity types.Severity) float64 {
	switch severity {
	case types.SeverityCritical:
		return p.CriticalPenalty
	case types.SeverityMajor:
		return p.MajorPenalty
	case types.SeverityMinor:
		return p.MinorPenalty
	}
	return 0
}

var baseSections = []string{"contact", "experience", "education", "skills"}

var profiles = map[types.ATSPlatform]Profile{
	types.PlatformGeneric: {
		Platform:          types.PlatformGeneric,
		CriticalPenalty:   20,
		MajorPenalty:      10,
		MinorPenalty:      5,
		RequiredSections:  baseSections,
		MaxBulletWords:    40,
		NonASCIITolerance: 0.05,
	},
	types.PlatformWorkday: {
		Platform:          types.PlatformWorkday,
		CriticalPenalty:   25,
		MajorPenalty:      12,
		MinorPenalty:      6,
		RequiredSections:  baseSections,
		MaxBulletWords:    35,
		NonASCIITolerance: 0.03,
	},
	types.PlatformGreenhouse: {
		Platform:          types.PlatformGreenhouse,
		CriticalPenalty:   15,
		MajorPenalty:      8,
		MinorPenalty:      4,
		RequiredSections:  append(append([]string{}, baseSections...), "certifications"),
		MaxBulletWords:    45,
		NonASCIITolerance: 0.08,
	},
	types.PlatformLever: {
		Platform:          types.PlatformLever,
		CriticalPenalty:   18,
		MajorPenalty:      10,
		MinorPenalty:      5,
		RequiredSections:  baseSections,
		MaxBulletWords:    40,
		NonASCIITolerance: 0.05,
	},
	types.PlatformBambooHR: {
		Platform:          types.PlatformBambooHR,
		CriticalPenalty:   22,
		MajorPenalty:      12,
		MinorPenalty:      6,
		RequiredSections:  append(append([]string{}, baseSections...), "awards"),
		MaxBulletWords:    35,
		NonASCIITolerance: 0.04,
	},
	types.PlatformICIMS: {
		Platform:          types.PlatformICIMS,
		CriticalPenalty:   20,
		MajorPenalty:      12,
		MinorPenalty:      5,
		RequiredSections:  baseSections,
		MaxBulletWords:    40,
		NonASCIITolerance: 0.05,
	},
}

// ProfileFor returns the platform profile. The second return value is false
// for unknown platforms; callers decide whether that is a configuration
// error or a fallback to the generic profile.
func ProfileFor(platform types.ATSPlatform) (Profile, bool) {
	if platform == "" {
		platform = types.PlatformGeneric
	}
	profile, ok := profiles[platform]
	return profile, ok
}
