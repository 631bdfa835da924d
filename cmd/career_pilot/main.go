// Package main provides the entry point for the career-pilot HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career_pilot",
	Short: "Career guidance API server",
	Long:  "career-pilot serves generated career content (courses, jobs, exams, interview prep) tailored to a user's profile, plus CV generation and link validation, via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
