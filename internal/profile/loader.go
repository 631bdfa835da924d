// Package profile fetches the signed-in user's profile from the auth API.
package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/anand/career-pilot/internal/types"
)

// FetchError carries the HTTP status of a failed profile fetch.
type FetchError struct {
	StatusCode int
	Message    string
}

func (e *FetchError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("profile fetch failed (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("profile fetch failed (status %d)", e.StatusCode)
}

// Loader fetches profiles over HTTP with a bearer token. It implements the
// orchestrator's ProfileSource.
type Loader struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewLoader creates a Loader for the given API base URL and access token.
func NewLoader(baseURL, token string) *Loader {
	return &Loader{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// WithHTTPClient overrides the HTTP client (tests).
func (l *Loader) WithHTTPClient(client *http.Client) *Loader {
	l.httpClient = client
	return l
}

// FetchProfile calls GET /api/auth/profile and flattens the response envelope
// into a session profile.
func (l *Loader) FetchProfile(ctx context.Context) (*types.UserProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.baseURL+"/api/auth/profile", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build profile request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+l.token)
	req.Header.Set("Accept", "application/json")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("profile request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{StatusCode: resp.StatusCode, Message: errorMessage(body)}
	}

	var envelope types.ProfileEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode profile response: %w", err)
	}
	return envelope.ToUserProfile(), nil
}

// errorMessage pulls the "error" field out of a failure body, if present.
func errorMessage(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Error
}
