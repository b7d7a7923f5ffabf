package openai

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/openai/openai-go/v3/option"
)

func TestSummarizeFallbackTruncates(t *testing.T) {
	t.Parallel()
	client := New("")
	if client.Enabled() {
		t.Fatalf("client without key should not be enabled")
	}

	long := strings.Repeat("a", fallbackLimit+50)
	got, err := client.Summarize(context.Background(), long)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := strings.Repeat("a", fallbackLimit) + "..."; got != want {
		t.Fatalf("unexpected fallback length %d", len(got))
	}

	short := "Used for pain relief."
	got, err = client.Summarize(context.Background(), short)
	if err != nil || got != short {
		t.Fatalf("Summarize(short) = %q, %v", got, err)
	}
}

func TestSummarizeRejectsEmpty(t *testing.T) {
	t.Parallel()
	if _, err := New("").Summarize(context.Background(), "  "); err == nil {
		t.Fatalf("expected error for empty text")
	}
}

func TestSummarizeCallsAPI(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"x","object":"chat.completion","created":1,"model":"gpt-4o-mini",
			"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":" Relieves mild pain. "}}]}`)
	}))
	defer srv.Close()

	client := New("test-key", option.WithBaseURL(srv.URL+"/v1/"), option.WithMaxRetries(0))
	got, err := client.Summarize(context.Background(), "A long description of paracetamol tablets.")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if got != "Relieves mild pain." {
		t.Fatalf("Summarize = %q", got)
	}
}
