package assist

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sandeepkv93/taskdash/internal/model"
)

func geminiReply(t *testing.T, draftJSON string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.Header.Get("x-goog-api-key") == "" {
			t.Error("expected api key header")
		}
		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": draftJSON}}}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func newTestParser(srv *httptest.Server) *GeminiParser {
	return NewGeminiParser("test-key", WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
}

func TestParseSuccess(t *testing.T) {
	srv := httptest.NewServer(geminiReply(t, `{"title":"Book a table at Oishi","description":"Dinner reservation","time":"20:00","priority":"MEDIUM","category":"PERSONAL"}`))
	defer srv.Close()

	draft, err := newTestParser(srv).Parse(context.Background(), "Book a table at Oishi tonight at 8")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if draft.Title != "Book a table at Oishi" {
		t.Fatalf("unexpected title: %q", draft.Title)
	}
	if draft.Time != "20:00" {
		t.Fatalf("unexpected time: %q", draft.Time)
	}
	if draft.Priority != model.PriorityMedium || draft.Category != model.CategoryPersonal {
		t.Fatalf("unexpected enums: %q %q", draft.Priority, draft.Category)
	}
}

func TestParseEmptySentenceNoRequest(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))
	defer srv.Close()

	_, err := newTestParser(srv).Parse(context.Background(), "   ")
	if !errors.Is(err, ErrNoResult) {
		t.Fatalf("expected ErrNoResult, got %v", err)
	}
	if called {
		t.Fatal("empty input must not dispatch a request")
	}
}

func TestParseRejectsUnknownEnums(t *testing.T) {
	srv := httptest.NewServer(geminiReply(t, `{"title":"Something","priority":"URGENT","category":"CHORES"}`))
	defer srv.Close()

	_, err := newTestParser(srv).Parse(context.Background(), "do something urgent")
	if !errors.Is(err, ErrNoResult) {
		t.Fatalf("expected ErrNoResult for out-of-enum values, got %v", err)
	}
}

func TestParseDropsMalformedTime(t *testing.T) {
	srv := httptest.NewServer(geminiReply(t, `{"title":"Call mom","time":"8pm","priority":"LOW","category":"FAMILY"}`))
	defer srv.Close()

	draft, err := newTestParser(srv).Parse(context.Background(), "call mom at 8pm")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if draft.Time != "" {
		t.Fatalf("malformed time should be dropped, got %q", draft.Time)
	}
}

func TestParseServerErrorCollapses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newTestParser(srv).Parse(context.Background(), "asdf1234")
	if !errors.Is(err, ErrNoResult) {
		t.Fatalf("expected ErrNoResult, got %v", err)
	}
}

func TestParseMalformedBodyCollapses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := newTestParser(srv).Parse(context.Background(), "asdf1234")
	if !errors.Is(err, ErrNoResult) {
		t.Fatalf("expected ErrNoResult, got %v", err)
	}
}

func TestParseWithoutAPIKey(t *testing.T) {
	p := NewGeminiParser("")
	if _, err := p.Parse(context.Background(), "anything"); !errors.Is(err, ErrNoResult) {
		t.Fatalf("expected ErrNoResult, got %v", err)
	}
}
