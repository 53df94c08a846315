// Package main provides the resume-analyzer CLI: scoring a resume against a
// job description and producing prioritized, evidence-backed recommendations.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_analyzer",
	Short: "Resume vs. job-description analysis and scoring",
	Long:  "Resume Analyzer scores a resume against a job description with deterministic, rule-based checks: keyword coverage, ATS parseability, achievement impact, and prioritized recommendations.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
