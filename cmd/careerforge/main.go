// Package main provides the entry point for the Career Forge analysis engine.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "careerforge",
	Short: "Career Forge AI analysis engine",
	Long:  "Career Forge converts resumes into gamified profiles (rank, level, skills) with personalized improvement quests, via REST API or one-shot CLI analysis.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
