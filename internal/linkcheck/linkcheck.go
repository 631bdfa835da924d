// Package linkcheck validates outbound links from generated content and
// builds search-engine fallbacks for dead ones.
package linkcheck

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout is the per-link HTTP timeout.
const DefaultTimeout = 10 * time.Second

// DefaultUserAgent is the user agent string for link validation requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; CareerPilot/1.0)"

// SearchBaseURL is the fallback search engine.
const SearchBaseURL = "https://www.google.com/search"

// Result describes the outcome of validating a single link.
type Result struct {
	URL         string `json:"url"`
	OK          bool   `json:"ok"`
	StatusCode  int    `json:"status_code,omitempty"`
	Title       string `json:"title,omitempty"`
	FallbackURL string `json:"fallback_url,omitempty"`
}

// Checker validates URLs over HTTP, optionally re-checking JavaScript-heavy
// pages in a headless browser.
type Checker struct {
	httpClient *http.Client
	userAgent  string
	useBrowser bool
}

// NewChecker creates a Checker with default timeout and user agent.
func NewChecker() *Checker {
	return &Checker{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		userAgent:  DefaultUserAgent,
	}
}

// WithHTTPClient overrides the HTTP client (tests).
func (c *Checker) WithHTTPClient(client *http.Client) *Checker {
	c.httpClient = client
	return c
}

// WithBrowserFallback enables a headless-browser re-check for pages that
// return almost no static HTML. Requires Chrome on the host.
func (c *Checker) WithBrowserFallback(enabled bool) *Checker {
	c.useBrowser = enabled
	return c
}

// Validate fetches the URL and reports whether it resolves to a real page.
// When it does not, FallbackURL carries a search link built from the label so
// the caller always has somewhere to send the user.
func (c *Checker) Validate(ctx context.Context, rawURL, label string) (*Result, error) {
	result := &Result{URL: rawURL}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		result.FallbackURL = SearchFallbackURL(label)
		return result, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build link request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		result.FallbackURL = SearchFallbackURL(label)
		return result, nil
	}
	defer resp.Body.Close()
	result.StatusCode = resp.StatusCode

	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		result.FallbackURL = SearchFallbackURL(label)
		return result, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		result.FallbackURL = SearchFallbackURL(label)
		return result, nil
	}

	html := string(body)
	if c.useBrowser && ShouldUseBrowser(html) {
		if rendered, berr := renderWithBrowser(ctx, rawURL, 30*time.Second); berr == nil {
			html = rendered
		}
	}

	result.OK = true
	result.Title = pageTitle(html)
	return result, nil
}

// SearchFallbackURL builds a search-engine URL for the given label.
func SearchFallbackURL(label string) string {
	query := strings.TrimSpace(label)
	if query == "" {
		query = "career resources"
	}
	return SearchBaseURL + "?q=" + url.QueryEscape(query)
}

// pageTitle extracts the document title, falling back to the first h1.
func pageTitle(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}
	return title
}
