package cv

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultCompileURL is the public latexonline compile endpoint.
const DefaultCompileURL = "https://latexonline.cc/compile"

// OverleafBaseURL opens a document in the Overleaf editor from a snippet.
const OverleafBaseURL = "https://www.overleaf.com/docs"

// Compiler sends LaTeX source to a remote compile service and returns the
// resulting PDF bytes.
type Compiler struct {
	compileURL string
	httpClient *http.Client
}

// NewCompiler creates a Compiler. An empty compileURL selects the public
// latexonline endpoint.
func NewCompiler(compileURL string) *Compiler {
	if compileURL == "" {
		compileURL = DefaultCompileURL
	}
	return &Compiler{
		compileURL: compileURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// WithHTTPClient overrides the HTTP client (tests).
func (c *Compiler) WithHTTPClient(client *http.Client) *Compiler {
	c.httpClient = client
	return c
}

// Compile posts the document to the compile service. The source travels in
// the text query parameter, matching the latexonline contract.
func (c *Compiler) Compile(ctx context.Context, document string) ([]byte, error) {
	if strings.TrimSpace(document) == "" {
		return nil, &TemplateError{Message: "document is empty"}
	}

	endpoint := c.compileURL + "?text=" + url.QueryEscape(document)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build compile request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("compile request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read compile response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := strings.TrimSpace(string(body))
		if len(msg) > 512 {
			msg = msg[:512]
		}
		return nil, &CompileError{StatusCode: resp.StatusCode, Message: msg}
	}
	if len(body) == 0 {
		return nil, &CompileError{StatusCode: resp.StatusCode, Message: "empty response body"}
	}
	return body, nil
}

// OverleafURL builds the fallback link that opens the document in Overleaf.
func OverleafURL(document string) string {
	return OverleafBaseURL + "?snip=" + url.QueryEscape(document)
}
