package classifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cortex/internal/config"
	"cortex/internal/logger"
)

func testConfig(url, key string) config.ClassifierConfig {
	return config.ClassifierConfig{
		APIKey:         key,
		URL:            url,
		Model:          "gpt-4o-mini",
		MaxTokens:      200,
		TimeoutSeconds: 5,
	}
}

func TestClassifyWithoutKey(t *testing.T) {
	c := New(testConfig("http://unused.invalid", ""), logger.New("error"))

	raw := c.Classify(context.Background(), "buy milk", "", "inbox")

	got := Interpret(raw, "inbox")
	want := Result{Folder: "inbox", Title: "buy milk", Summary: "buy milk", Slug: "note"}
	if got != want {
		t.Errorf("fallback = %+v, want %+v", got, want)
	}
}

func TestClassifyWithoutKeyTruncatesTitle(t *testing.T) {
	transcript := strings.Repeat("a", 40)
	c := New(testConfig("http://unused.invalid", ""), logger.New("error"))

	got := Interpret(c.Classify(context.Background(), transcript, "", "inbox"), "inbox")

	if got.Title != strings.Repeat("a", 30)+"..." {
		t.Errorf("Title = %q, want first 30 chars with ellipsis", got.Title)
	}
	if got.Summary != transcript {
		t.Errorf("Summary = %q, want full 40-char transcript", got.Summary)
	}
}

func TestClassifySuccess(t *testing.T) {
	const modelOutput = `{"folder":"tasks","title":"Buy milk","summary":"Milk","slug":"buy-milk"}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			t.Errorf("unexpected messages: %+v", req.Messages)
		}
		if !strings.Contains(req.Messages[0].Content, "## Folder Structure:") {
			t.Error("system prompt missing taxonomy section")
		}
		if req.Messages[1].Content != "Transcript: buy milk" {
			t.Errorf("user message = %q", req.Messages[1].Content)
		}

		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": modelOutput}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	c := New(testConfig(srv.URL, "test-key"), logger.New("error"))

	raw := c.Classify(context.Background(), "buy milk", "folders go here", "inbox")
	if raw != modelOutput {
		t.Errorf("Classify() = %q, want model output", raw)
	}
}

func TestClassifyServerErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(testConfig(srv.URL, "test-key"), logger.New("error"))

	got := Interpret(c.Classify(context.Background(), "buy milk", "", "inbox"), "inbox")
	if got.Folder != "inbox" || got.Slug != "note" {
		t.Errorf("error fallback = %+v, want inbox/note", got)
	}
	if got.Title != "buy milk" {
		t.Errorf("Title = %q, want transcript prefix", got.Title)
	}
}

func TestClassifyUnreachableFallsBack(t *testing.T) {
	c := New(testConfig("http://127.0.0.1:1", "test-key"), logger.New("error"))

	got := Interpret(c.Classify(context.Background(), "buy milk", "", "journal"), "journal")
	want := Result{Folder: "journal", Title: "buy milk", Summary: "buy milk", Slug: "note"}
	if got != want {
		t.Errorf("fallback = %+v, want %+v", got, want)
	}
}

func TestClassifyEmptyChoicesFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	c := New(testConfig(srv.URL, "test-key"), logger.New("error"))

	got := Interpret(c.Classify(context.Background(), "buy milk", "", "inbox"), "inbox")
	if got.Folder != "inbox" || got.Slug != "note" {
		t.Errorf("fallback = %+v, want default shape", got)
	}
}
