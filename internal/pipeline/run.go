// Package pipeline orchestrates one analysis run: validate configuration,
// fan the collaborator analyzers out in parallel, aggregate scores, and
// derive recommendations. Runs are pure functions of their input.
package pipeline

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/formatting"
	"github.com/jonathan/resume-analyzer/internal/impact"
	"github.com/jonathan/resume-analyzer/internal/keywords"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/recommend"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Options tunes one analysis run
type Options struct {
	// MaxRecommendations caps the recommendation list; criticals are kept
	// past the cap.
	MaxRecommendations int

	// StrongBulletThreshold is the strength score at which a bullet counts
	// as a strong achievement.
	StrongBulletThreshold float64
}

// DefaultOptions returns the standard run configuration
func DefaultOptions() Options {
	return Options{
		MaxRecommendations:    recommend.DefaultMaxRecommendations,
		StrongBulletThreshold: impact.DefaultStrongline,
	}
}

// Analyze runs the full analysis. Configuration problems (bad weights,
// unknown platform) fail fast with a ConfigurationError; malformed resume
// content never fails, it degrades to a low-confidence result.
func Analyze(ctx context.Context, req *types.AnalyzeRequest, opts Options) (*types.AnalysisResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	weights := types.DefaultComponentWeights()
	if req.Weights != nil {
		weights = *req.Weights
	}
	if err := weights.Validate(); err != nil {
		return nil, &ConfigurationError{Message: "component weights rejected", Cause: err}
	}

	platform := req.ATSPlatform
	if platform == "" {
		platform = types.PlatformGeneric
	}
	profile, ok := formatting.ProfileFor(platform)
	if !ok {
		return nil, &ConfigurationError{Message: fmt.Sprintf("unknown ATS platform %q", platform)}
	}

	if err := req.Validate(); err != nil {
		return nil, &ConfigurationError{Message: "analyze request rejected", Cause: err}
	}

	if opts.MaxRecommendations <= 0 {
		opts.MaxRecommendations = recommend.DefaultMaxRecommendations
	}
	if opts.StrongBulletThreshold <= 0 {
		opts.StrongBulletThreshold = impact.DefaultStrongline
	}

	g, gCtx := errgroup.WithContext(ctx)

	var (
		keywordAnalysis keywords.Analysis
		formatAnalysis  formatting.Analysis
		impactAnalysis  impact.Analysis
		mu              sync.Mutex
	)

	g.Go(func() error {
		if err := gCtx.Err(); err != nil {
			return err
		}
		result := keywords.MatchRequirements(req.ResumeDocument, req.JobRequirements)
		mu.Lock()
		keywordAnalysis = result
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		if err := gCtx.Err(); err != nil {
			return err
		}
		result := formatting.Check(req.ResumeDocument, profile)
		mu.Lock()
		formatAnalysis = result
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		if err := gCtx.Err(); err != nil {
			return err
		}
		result := impact.Analyze(req.ResumeDocument, opts.StrongBulletThreshold)
		mu.Lock()
		impactAnalysis = result
		mu.Unlock()
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	aggregated := scoring.Aggregate(scoring.Inputs{
		Keywords:        keywordAnalysis,
		Formatting:      formatAnalysis,
		Impact:          impactAnalysis,
		Signals:         req.Signals,
		Profile:         profile,
		StrongThreshold: opts.StrongBulletThreshold,
	}, weights)

	recommendations := recommend.Build(recommend.Inputs{
		Keywords:        keywordAnalysis,
		Formatting:      formatAnalysis,
		Impact:          impactAnalysis,
		Profile:         profile,
		Weights:         weights,
		StrongThreshold: opts.StrongBulletThreshold,
	}, opts.MaxRecommendations)

	result := &types.AnalysisResult{
		ATSScore:        aggregated.ATSScore,
		RecruiterScore:  aggregated.RecruiterScore,
		CoverageScore:   keywordAnalysis.CoverageScore,
		Components:      aggregated.Components,
		Matches:         toMatches(keywordAnalysis.Matches),
		Gaps:            keywordAnalysis.Gaps,
		Recommendations: recommendations,
	}
	markConfidence(result, req.ResumeDocument)
	return result, nil
}

// toMatches keeps only satisfied requirements; missing ones are reported as gaps
func toMatches(keywordMatches []types.KeywordMatch) []types.Match {
	var matches []types.Match
	for _, km := range keywordMatches {
		if !km.Matched() {
			continue
		}
		matches = append(matches, types.Match{
			Requirement: km.Requirement,
			Status:      km.Status,
			Evidence:    km.Evidence,
		})
	}
	return matches
}

// markConfidence flags results built from content the normalizer could not
// structure. Scoring still ran; the flag tells callers how much to trust it.
func markConfidence(result *types.AnalysisResult, doc types.NormalizedDocument) {
	if doc.IsEmpty() {
		result.LowConfidence = true
		result.LowConfidenceReason = "resume contains no parsable content"
		return
	}
	if len(doc.Sections) == 1 && doc.Sections[0].Name == parsing.UnsectionedName {
		result.LowConfidence = true
		result.LowConfidenceReason = "no recognizable section structure; scores are approximate"
	}
}
