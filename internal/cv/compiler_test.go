package cv

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestCompile(t *testing.T) {
	pdf := []byte("%PDF-1.5 fake")
	var gotText string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		gotText = r.URL.Query().Get("text")
		w.Header().Set("Content-Type", "application/pdf")
		w.Write(pdf)
	}))
	defer server.Close()

	c := NewCompiler(server.URL)
	out, err := c.Compile(context.Background(), `\documentclass{article}`)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if string(out) != string(pdf) {
		t.Errorf("Compile() = %q", out)
	}
	if gotText != `\documentclass{article}` {
		t.Errorf("text param = %q", gotText)
	}
}

func TestCompile_ServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("compilation failed: undefined control sequence"))
	}))
	defer server.Close()

	c := NewCompiler(server.URL)
	_, err := c.Compile(context.Background(), `\badmacro`)
	if err == nil {
		t.Fatal("Compile() expected error")
	}
	var ce *CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want *CompileError", err)
	}
	if ce.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d", ce.StatusCode)
	}
	if !strings.Contains(ce.Message, "undefined control sequence") {
		t.Errorf("Message = %q", ce.Message)
	}
}

func TestCompile_EmptyDocument(t *testing.T) {
	c := NewCompiler("")
	if _, err := c.Compile(context.Background(), "   "); err == nil {
		t.Fatal("Compile() expected error for empty document")
	}
}

func TestOverleafURL(t *testing.T) {
	doc := `\documentclass{article} & more`
	got := OverleafURL(doc)
	if !strings.HasPrefix(got, "https://www.overleaf.com/docs?snip=") {
		t.Fatalf("OverleafURL() = %q", got)
	}
	u, err := url.Parse(got)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if u.Query().Get("snip") != doc {
		t.Errorf("snip = %q, want original document", u.Query().Get("snip"))
	}
}
