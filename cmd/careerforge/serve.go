package main

import (
	"context"
	"fmt"

	"github.com/jonathan/career-forge/internal/config"
	"github.com/jonathan/career-forge/internal/llm"
	"github.com/jonathan/career-forge/internal/pipeline"
	"github.com/jonathan/career-forge/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort int
	serveMode string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the resume analysis API server",
	Long:  `Start an HTTP server exposing the resume analysis endpoint.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from PORT env or 8080)")
	serveCmd.Flags().StringVar(&serveMode, "mode", "", "Pipeline mode: llm or rules (default from ANALYSIS_MODE env or llm)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Load()
	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveMode != "" {
		cfg.Mode = pipeline.Mode(serveMode)
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

	srv := server.New(server.Config{Port: cfg.Port}, p)
	return srv.Start()
}

// newModelClient builds the Gemini client when a credential is configured.
// Without one it returns a nil interface, and the LLM path degrades to
// per-request service-unavailable responses.
func newModelClient(cfg *config.Config) (llm.Client, error) {
	if cfg.APIKey == "" {
		return nil, nil
	}
	client, err := llm.NewGeminiClient(context.Background(), llm.DefaultConfig(), cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create model client: %w", err)
	}
	return client, nil
}
