// Package genai provides clients for the remote text-generation endpoint.
package genai

import (
	"context"
	"fmt"
	"strings"

	gsdk "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultModel is the generation model used when none is configured.
const DefaultModel = "gemini-2.0-flash"

// GenerationConfig tunes the generation request.
type GenerationConfig struct {
	Temperature     float32 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float32 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// DefaultGenerationConfig returns the settings used for dashboard content.
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		Temperature:     0.7,
		TopK:            40,
		TopP:            0.95,
		MaxOutputTokens: 8192,
	}
}

// Client is an abstraction over generation providers.
type Client interface {
	// GenerateContent sends a prompt and returns the raw generated text.
	GenerateContent(ctx context.Context, prompt string) (string, error)
	// Close releases any resources held by the client.
	Close() error
}

// Provider selects a client implementation.
type Provider string

// Provider constants define supported generation backends.
const (
	// ProviderREST speaks the generateContent REST wire format directly.
	ProviderREST Provider = "rest"
	// ProviderSDK uses the official Gemini SDK.
	ProviderSDK Provider = "sdk"
)

// Config holds client construction options.
type Config struct {
	Provider Provider
	Model    string
	APIKey   string
	// Endpoint overrides the REST endpoint; empty means the public API.
	Endpoint   string
	Generation GenerationConfig
}

// NewClient creates a generation client based on configuration.
func NewClient(ctx context.Context, cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Generation == (GenerationConfig{}) {
		cfg.Generation = DefaultGenerationConfig()
	}

	switch cfg.Provider {
	case ProviderSDK:
		return NewSDKClient(ctx, cfg)
	default:
		return NewRESTClient(cfg), nil
	}
}

// SDKClient implements Client on the official Gemini SDK.
type SDKClient struct {
	client *gsdk.Client
	cfg    Config
}

// NewSDKClient creates a new SDK-backed client.
func NewSDKClient(ctx context.Context, cfg Config) (*SDKClient, error) {
	client, err := gsdk.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &SDKClient{client: client, cfg: cfg}, nil
}

// GenerateContent sends a prompt and returns the raw generated text.
func (c *SDKClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.cfg.Model)
	model.SetTemperature(c.cfg.Generation.Temperature)
	model.SetTopK(int32(c.cfg.Generation.TopK))
	model.SetTopP(c.cfg.Generation.TopP)
	model.SetMaxOutputTokens(int32(c.cfg.Generation.MaxOutputTokens))

	resp, err := model.GenerateContent(ctx, gsdk.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return extractSDKText(resp)
}

// Close releases resources held by the client.
func (c *SDKClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// extractSDKText extracts text from a Gemini SDK response.
func extractSDKText(resp *gsdk.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(gsdk.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}
