package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/keywords"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var parseJobCmd = &cobra.Command{
	Use:   "parse-job",
	Short: "Extract structured requirements from a job description",
	Long:  "Extract structured skill requirements and job signals from a job description text file, without running the analysis.",
	RunE:  runParseJob,
}

var (
	parseInputFile    string
	parseOutputFile   string
	parseOntologyFile string
)

func init() {
	parseJobCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to job description text file (required)")
	parseJobCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseJobCmd.Flags().StringVar(&parseOntologyFile, "ontology", "", "Path to skills ontology JSON (default: built-in)")

	rootCmd.AddCommand(parseJobCmd)
}

// parsedJob is the output document of the parse-job subcommand
type parsedJob struct {
	Requirements []types.Requirement `json:"requirements"`
	Signals      types.JobSignals    `json:"signals"`
}

func runParseJob(_ *cobra.Command, _ []string) error {
	if parseInputFile == "" {
		return fmt.Errorf("--in is required")
	}

	jobText, err := os.ReadFile(parseInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	ontology := keywords.DefaultOntology()
	if parseOntologyFile != "" {
		ontology, err = keywords.LoadOntology(parseOntologyFile)
		if err != nil {
			return err
		}
	}

	requirements, signals, err := parsing.ParseJobDescription(string(jobText), ontology)
	if err != nil {
		return err
	}

	jsonBytes, err := json.MarshalIndent(parsedJob{Requirements: requirements, Signals: signals}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	jsonBytes = append(jsonBytes, '\n')

	if parseOutputFile != "" {
		if err := os.WriteFile(parseOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}

	_, err = os.Stdout.Write(jsonBytes)
	return err
}
