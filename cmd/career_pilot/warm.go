package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/anand/career-pilot/internal/content"
	"github.com/anand/career-pilot/internal/genai"
	"github.com/anand/career-pilot/internal/profile"
)

var (
	warmAPIBase string
	warmToken   string
	warmTimeout time.Duration
)

var warmCmd = &cobra.Command{
	Use:   "warm",
	Short: "Pre-generate every content tab for a signed-in user",
	Long: `Fetch the user's profile from the API and generate all content
categories concurrently, so the first dashboard visit of the day is served
from cache.`,
	RunE: runWarm,
}

func init() {
	warmCmd.Flags().StringVar(&warmAPIBase, "api", "http://localhost:8000", "API base URL")
	warmCmd.Flags().StringVar(&warmToken, "token", "", "Bearer token for the profile API (defaults to ACCESS_TOKEN)")
	warmCmd.Flags().DurationVar(&warmTimeout, "timeout", 5*time.Minute, "Overall timeout")
	rootCmd.AddCommand(warmCmd)
}

func runWarm(_ *cobra.Command, _ []string) error {
	token := warmToken
	if token == "" {
		token = os.Getenv("ACCESS_TOKEN")
	}
	if token == "" {
		return fmt.Errorf("a bearer token is required (--token or ACCESS_TOKEN)")
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), warmTimeout)
	defer cancel()

	generator, err := genai.NewClient(ctx, genai.Config{
		APIKey:   apiKey,
		Endpoint: os.Getenv("GENERATION_ENDPOINT"),
		Provider: genai.Provider(os.Getenv("GENERATION_PROVIDER")),
	})
	if err != nil {
		return fmt.Errorf("failed to create generation client: %w", err)
	}
	defer func() { _ = generator.Close() }()

	orch := content.NewOrchestrator(profile.NewLoader(warmAPIBase, token), generator)
	if err := orch.LoadProfile(ctx); err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, cat := range content.AllCategories {
		g.Go(func() error {
			rs, err := orch.LoadTab(gctx, cat)
			if err != nil {
				return fmt.Errorf("%s: %w", cat, err)
			}
			fmt.Printf("%-16s %d records (%s)\n", cat, rs.Len(), orch.Freshness(cat))
			return nil
		})
	}
	return g.Wait()
}
