package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/pipeline"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume against a job description",
	Long:  "Analyze a resume text file against a job description text file and emit the full scoring result as JSON.",
	RunE:  runAnalyze,
}

var (
	analyzeResumeFile   string
	analyzeJobFile      string
	analyzeConfigFile   string
	analyzeOntologyFile string
	analyzeWeightsFile  string
	analyzeOutputFile   string
	analyzePlatform     string
	analyzeMaxRecs      int
	analyzeThreshold    float64
	analyzeVerbose      bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResumeFile, "resume", "r", "", "Path to resume text file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeJobFile, "job", "j", "", "Path to job description text file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeConfigFile, "config", "c", "", "Path to JSON config file")
	analyzeCmd.Flags().StringVar(&analyzeOntologyFile, "ontology", "", "Path to skills ontology JSON (default: built-in)")
	analyzeCmd.Flags().StringVar(&analyzeWeightsFile, "weights", "", "Path to component weights JSON (default: 40/20/15/10/5/5/5)")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to write result JSON (default: stdout)")
	analyzeCmd.Flags().StringVarP(&analyzePlatform, "platform", "p", "", "ATS platform profile: generic, workday, greenhouse, lever, bamboohr, icims")
	analyzeCmd.Flags().IntVar(&analyzeMaxRecs, "max-recommendations", 0, "Cap on the recommendation list (default 10; criticals always kept)")
	analyzeCmd.Flags().Float64Var(&analyzeThreshold, "strong-threshold", 0, "Strength score at which a bullet counts as strong (default 70)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print progress and score breakdowns to stderr")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Resume:                analyzeResumeFile,
		Job:                   analyzeJobFile,
		Ontology:              analyzeOntologyFile,
		Weights:               analyzeWeightsFile,
		Output:                analyzeOutputFile,
		Platform:              analyzePlatform,
		MaxRecommendations:    analyzeMaxRecs,
		StrongBulletThreshold: analyzeThreshold,
		Verbose:               analyzeVerbose,
	}
	if analyzeConfigFile != "" {
		fileCfg, err := config.LoadConfig(analyzeConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Resume == "" || cfg.Job == "" {
		return fmt.Errorf("both --resume and --job are required")
	}

	printer := observability.NewPrinter(os.Stderr)
	runID := uuid.New()
	if cfg.Verbose {
		fmt.Fprintf(os.Stderr, "Run %s\n", runID)
	}

	resumeText, err := os.ReadFile(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	jobText, err := os.ReadFile(cfg.Job)
	if err != nil {
		return fmt.Errorf("failed to read job file: %w", err)
	}

	ref, err := cfg.LoadReferenceData()
	if err != nil {
		return err
	}

	requirements, jobSignals, err := parsing.ParseJobDescription(string(jobText), ref.Ontology)
	if err != nil {
		return fmt.Errorf("failed to extract requirements: %w", err)
	}

	resumeSignals := parsing.ResumeSignals(string(resumeText))
	signals := types.JobSignals{
		YearsRequired:      jobSignals.YearsRequired,
		YearsCandidate:     resumeSignals.YearsCandidate,
		SeniorityRequired:  jobSignals.SeniorityRequired,
		SeniorityCandidate: resumeSignals.SeniorityCandidate,
	}

	if cfg.Verbose {
		printer.PrintRequirements(requirements, &signals)
	}

	req := &types.AnalyzeRequest{
		ResumeDocument:  parsing.NormalizeResume(string(resumeText)),
		JobRequirements: requirements,
		ATSPlatform:     types.ATSPlatform(cfg.Platform),
		Weights:         ref.Weights,
		Signals:         &signals,
	}

	opts := pipeline.DefaultOptions()
	if cfg.MaxRecommendations > 0 {
		opts.MaxRecommendations = cfg.MaxRecommendations
	}
	if cfg.StrongBulletThreshold > 0 {
		opts.StrongBulletThreshold = cfg.StrongBulletThreshold
	}

	result, err := pipeline.Analyze(context.Background(), req, opts)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer.PrintScores(result)
		printer.PrintRecommendations(result.Recommendations)
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	jsonBytes = append(jsonBytes, '\n')

	if cfg.Output != "" {
		if err := os.WriteFile(cfg.Output, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		if cfg.Verbose {
			fmt.Fprintf(os.Stderr, "Output: %s\n", cfg.Output)
		}
		return nil
	}

	_, err = os.Stdout.Write(jsonBytes)
	return err
}
