package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cortex/internal/logger"
	"cortex/internal/notes"
)

// cannedClassifier returns a fixed raw response and records the arguments it
// was called with.
type cannedClassifier struct {
	raw           string
	gotTranscript string
	gotTaxonomy   string
	gotDefault    string
}

func (c *cannedClassifier) Classify(ctx context.Context, transcript, taxonomy, defaultFolder string) string {
	c.gotTranscript = transcript
	c.gotTaxonomy = taxonomy
	c.gotDefault = defaultFolder
	return c.raw
}

func newTestPipeline(t *testing.T, raw string) (Pipeline, *cannedClassifier, string) {
	t.Helper()
	dir := t.TempDir()
	store := notes.NewStore(dir, logger.New("error"))
	if err := store.Bootstrap(context.Background()); err != nil {
		t.Fatal(err)
	}
	cls := &cannedClassifier{raw: raw}
	return New(store, cls, logger.New("error")), cls, dir
}

func TestProcess(t *testing.T) {
	pl, cls, dir := newTestPipeline(t,
		`{"folder":"tasks","title":"Buy milk","summary":"Grocery reminder","slug":"buy-milk"}`)

	outcome, err := pl.Process(context.Background(), "buy milk tomorrow", "inbox", "2024-03-05T14:30:05Z")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if outcome.Folder != "tasks" || outcome.Title != "Buy milk" {
		t.Errorf("outcome = %+v", outcome)
	}
	if outcome.Preview != "Grocery reminder" {
		t.Errorf("Preview = %q, want classifier summary", outcome.Preview)
	}
	if len(outcome.ID) != 8 {
		t.Errorf("ID = %q, want 8-char token", outcome.ID)
	}

	wantPath := filepath.Join(dir, "tasks", "2024-03-05_14-30-05_buy-milk.md")
	if outcome.FilePath != wantPath {
		t.Errorf("FilePath = %q, want %q", outcome.FilePath, wantPath)
	}

	data, err := os.ReadFile(wantPath)
	if err != nil {
		t.Fatalf("note not persisted: %v", err)
	}
	if !strings.Contains(string(data), "buy milk tomorrow") {
		t.Error("note body missing verbatim transcript")
	}

	// The classifier saw the bootstrap taxonomy and the folder hint.
	if !strings.Contains(cls.gotTaxonomy, "## Folder Structure") {
		t.Error("taxonomy not passed to classifier")
	}
	if cls.gotDefault != "inbox" {
		t.Errorf("defaultFolder = %q", cls.gotDefault)
	}
}

func TestProcessEmptyFolderHint(t *testing.T) {
	pl, cls, _ := newTestPipeline(t, "not json at all")

	outcome, err := pl.Process(context.Background(), "stray thought", "", "2024-03-05T14:30:05Z")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if cls.gotDefault != notes.DefaultFolder {
		t.Errorf("defaultFolder = %q, want %q", cls.gotDefault, notes.DefaultFolder)
	}
	if outcome.Folder != notes.DefaultFolder {
		t.Errorf("Folder = %q, want default", outcome.Folder)
	}
	// No summary in the default result: preview falls back to the transcript.
	if outcome.Preview != "stray thought" {
		t.Errorf("Preview = %q, want transcript", outcome.Preview)
	}
	if outcome.Title != "Untitled" {
		t.Errorf("Title = %q, want Untitled", outcome.Title)
	}
}

func TestProcessBadTimestamp(t *testing.T) {
	pl, _, _ := newTestPipeline(t, `{"folder":"tasks"}`)

	_, err := pl.Process(context.Background(), "text", "inbox", "whenever")
	if !errors.Is(err, notes.ErrBadTimestamp) {
		t.Errorf("Process() error = %v, want ErrBadTimestamp", err)
	}
}

func TestProcessAdHocFolder(t *testing.T) {
	pl, _, dir := newTestPipeline(t, `{"folder":"recipes","slug":"pasta"}`)

	outcome, err := pl.Process(context.Background(), "pasta idea", "inbox", "2024-03-05T14:30:05Z")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	// The classifier may name folders that don't exist yet; persist creates
	// them on demand.
	if _, err := os.Stat(filepath.Join(dir, "recipes")); err != nil {
		t.Errorf("ad hoc folder not created: %v", err)
	}
	if outcome.Folder != "recipes" {
		t.Errorf("Folder = %q", outcome.Folder)
	}
}
