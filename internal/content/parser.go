package content

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Generators wrap output in code fences or surround it with prose even when
// instructed not to. Extraction is therefore a sequence of strategies tried
// in order; the first one that yields a parseable JSON array wins.

var (
	fencedBlockRe  = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)\\s*```")
	bracketArrayRe = regexp.MustCompile(`\[\s*\{[\s\S]*\}\s*\]`)
)

// ParseStrategy extracts a candidate JSON array substring from raw text.
type ParseStrategy struct {
	Name    string
	Extract func(text string) (string, bool)
}

// Strategies returns the extraction strategies in priority order.
func Strategies() []ParseStrategy {
	return []ParseStrategy{
		{
			Name: "fenced code block",
			Extract: func(text string) (string, bool) {
				m := fencedBlockRe.FindStringSubmatch(text)
				if m == nil {
					return "", false
				}
				return m[1], true
			},
		},
		{
			Name: "bracketed array",
			Extract: func(text string) (string, bool) {
				m := bracketArrayRe.FindString(text)
				if m == "" {
					return "", false
				}
				return m, true
			},
		},
		{
			Name: "whole text",
			Extract: func(text string) (string, bool) {
				return strings.TrimSpace(text), true
			},
		},
		{
			Name: "trimmed to brackets",
			Extract: func(text string) (string, bool) {
				start := strings.Index(text, "[")
				end := strings.LastIndex(text, "]")
				if start < 0 || end <= start {
					return "", false
				}
				return text[start : end+1], true
			},
		},
	}
}

// ParseError indicates no strategy produced a parseable record array.
type ParseError struct {
	Category Category
	Cause    error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to parse generated %s content: %v", e.Category, e.Cause)
	}
	return fmt.Sprintf("failed to parse generated %s content", e.Category)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// ParseRecords extracts the JSON record array from raw generated text and
// decodes it into the category's typed records. On failure it returns a
// ParseError and no records; callers must leave any cached data untouched.
func ParseRecords(cat Category, text string) (*RecordSet, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ParseError{Category: cat}
	}

	var lastErr error
	for _, strategy := range Strategies() {
		candidate, ok := strategy.Extract(text)
		if !ok {
			continue
		}

		// Verify the candidate is a JSON array before committing to the
		// typed decode, so a strategy that grabbed prose fails cleanly.
		var probe []json.RawMessage
		if err := json.Unmarshal([]byte(candidate), &probe); err != nil {
			lastErr = err
			continue
		}

		rs, err := DecodeRecords(cat, []byte(candidate))
		if err != nil {
			lastErr = err
			continue
		}
		rs.Raw = json.RawMessage(candidate)
		return rs, nil
	}

	return nil, &ParseError{Category: cat, Cause: lastErr}
}
