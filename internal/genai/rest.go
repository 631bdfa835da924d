package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/anand/career-pilot/internal/retry"
)

// DefaultEndpoint is the public generateContent endpoint.
const DefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

// restRequest is the generateContent request body.
type restRequest struct {
	Contents         []restContent    `json:"contents"`
	GenerationConfig GenerationConfig `json:"generationConfig"`
}

type restContent struct {
	Parts []restPart `json:"parts"`
}

type restPart struct {
	Text string `json:"text"`
}

// restResponse is the subset of the generateContent response we read.
type restResponse struct {
	Candidates []struct {
		Content struct {
			Parts []restPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// RESTClient implements Client against the generateContent REST endpoint
// with bounded retry on transient failures.
type RESTClient struct {
	endpoint   string
	apiKey     string
	generation GenerationConfig
	httpClient *http.Client
	policy     retry.Policy
}

// NewRESTClient creates a new REST generation client.
func NewRESTClient(cfg Config) *RESTClient {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	generation := cfg.Generation
	if generation == (GenerationConfig{}) {
		generation = DefaultGenerationConfig()
	}
	return &RESTClient{
		endpoint:   endpoint,
		apiKey:     cfg.APIKey,
		generation: generation,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// WithHTTPClient overrides the HTTP client. Used by tests.
func (c *RESTClient) WithHTTPClient(hc *http.Client) *RESTClient {
	c.httpClient = hc
	return c
}

// WithRetryPolicy overrides the retry policy. Used by tests.
func (c *RESTClient) WithRetryPolicy(p retry.Policy) *RESTClient {
	c.policy = p
	return c
}

// GenerateContent sends a prompt and returns the raw generated text.
// HTTP 429 and 5xx responses and transport failures are retried with
// exponential backoff; other HTTP errors fail immediately.
func (c *RESTClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", fmt.Errorf("prompt is empty")
	}

	body, err := json.Marshal(restRequest{
		Contents:         []restContent{{Parts: []restPart{{Text: prompt}}}},
		GenerationConfig: c.generation,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	return retry.Do(ctx, c.policy, func(ctx context.Context) (string, error) {
		return c.attempt(ctx, body)
	})
}

// Close implements Client. The REST client holds no resources.
func (c *RESTClient) Close() error { return nil }

func (c *RESTClient) attempt(ctx context.Context, body []byte) (string, error) {
	url := fmt.Sprintf("%s?key=%s", c.endpoint, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("generation request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &retry.HTTPStatusError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("generation request failed with status %d", resp.StatusCode),
		}
	}

	var parsed restResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("generation error: %s", parsed.Error.Message)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	text := parsed.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", fmt.Errorf("no content generated")
	}
	return text, nil
}
