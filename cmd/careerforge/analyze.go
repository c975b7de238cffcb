package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/career-forge/internal/config"
	"github.com/jonathan/career-forge/internal/extract"
	"github.com/jonathan/career-forge/internal/observability"
	"github.com/jonathan/career-forge/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	analyzeMode string
	analyzeOut  string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume-file>",
	Short: "Analyze a resume file and print the gamified profile",
	Long:  `Run a local resume file (PDF or DOCX) through the analysis pipeline and print the resulting profile and quests.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeMode, "mode", "", "Pipeline mode: llm or rules (default from ANALYSIS_MODE env or llm)")
	analyzeCmd.Flags().StringVar(&analyzeOut, "out", "", "Write the raw JSON result to this path")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, args []string) error {
	path := args[0]
	contentType, err := contentTypeFromPath(path)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	cfg := config.Load()
	if analyzeMode != "" {
		cfg.Mode = pipeline.Mode(analyzeMode)
	}

	client, err := newModelClient(cfg)
	if err != nil {
		return err
	}
	if client != nil {
		defer client.Close()
	}

	p, err := pipeline.New(pipeline.Options{Mode: cfg.Mode, Client: client})
	if err != nil {
		return fmt.Errorf("failed to build pipeline: %w", err)
	}

	result, err := p.Analyze(context.Background(), data, contentType)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintProfile(&result.Profile)
	printer.PrintQuests(result.Quests)

	if analyzeOut != "" {
		pretty, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		if err := os.WriteFile(analyzeOut, pretty, 0o644); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
		fmt.Printf("Result written to %s\n", analyzeOut)
	}

	return nil
}

// contentTypeFromPath maps a file extension to the declared content type the
// pipeline expects.
func contentTypeFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extract.ContentTypePDF, nil
	case ".docx":
		return extract.ContentTypeDOCX, nil
	default:
		return "", fmt.Errorf("unsupported file extension %q: expected .pdf or .docx", filepath.Ext(path))
	}
}
