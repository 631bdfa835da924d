package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/anand/career-pilot/internal/cv"
	"github.com/anand/career-pilot/internal/profile"
)

var (
	cvAPIBase string
	cvToken   string
	cvOutput  string
)

var cvCmd = &cobra.Command{
	Use:   "cv",
	Short: "Generate a PDF CV from the stored profile",
	Long: `Fetch the user's profile from the API, render the LaTeX CV and compile
it to PDF via the remote compile service. If compilation fails, an Overleaf
link for the document is printed instead.`,
	RunE: runCV,
}

func init() {
	cvCmd.Flags().StringVar(&cvAPIBase, "api", "http://localhost:8000", "API base URL")
	cvCmd.Flags().StringVar(&cvToken, "token", "", "Bearer token for the profile API (defaults to ACCESS_TOKEN)")
	cvCmd.Flags().StringVar(&cvOutput, "out", "cv.pdf", "Output PDF path")
	rootCmd.AddCommand(cvCmd)
}

func runCV(_ *cobra.Command, _ []string) error {
	token := cvToken
	if token == "" {
		token = os.Getenv("ACCESS_TOKEN")
	}
	if token == "" {
		return fmt.Errorf("a bearer token is required (--token or ACCESS_TOKEN)")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	userProfile, err := profile.NewLoader(cvAPIBase, token).FetchProfile(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch profile: %w", err)
	}

	document, err := cv.Document(userProfile)
	if err != nil {
		return err
	}

	pdf, err := cv.NewCompiler(os.Getenv("LATEX_COMPILE_URL")).Compile(ctx, document)
	if err != nil {
		var compileErr *cv.CompileError
		if errors.As(err, &compileErr) {
			fmt.Printf("Remote compilation failed; open the document in Overleaf:\n%s\n", cv.OverleafURL(document))
		}
		return err
	}

	if err := os.WriteFile(cvOutput, pdf, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", cvOutput, err)
	}
	fmt.Printf("Wrote %s (%d bytes)\n", cvOutput, len(pdf))
	return nil
}
