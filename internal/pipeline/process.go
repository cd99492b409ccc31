package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"cortex/internal/classifier"
	"cortex/internal/notes"
)

// Process runs one transcript through the linear pipeline. Classification is
// advisory and can only degrade, never fail; composing and persisting are
// structural and surface their errors.
func (p *implPipeline) Process(ctx context.Context, transcript, folderHint, timestamp string) (*Outcome, error) {
	if folderHint == "" {
		folderHint = notes.DefaultFolder
	}

	taxonomy := p.store.Taxonomy()

	raw := p.classifier.Classify(ctx, transcript, taxonomy, folderHint)
	result := classifier.Interpret(raw, folderHint)

	relPath, body, err := notes.Compose(transcript, timestamp, result)
	if err != nil {
		return nil, fmt.Errorf("compose note: %w", err)
	}

	fullPath, err := p.store.SaveNote(relPath, body)
	if err != nil {
		return nil, fmt.Errorf("save note: %w", err)
	}

	preview := result.Summary
	if preview == "" {
		preview = clip(transcript, 100)
	}

	outcome := &Outcome{
		ID:       uuid.NewString()[:8],
		Preview:  preview,
		Folder:   result.Folder,
		FilePath: fullPath,
		Title:    result.Title,
	}

	p.logger.Info(ctx, "Saved note %s to %s", outcome.ID, fullPath)
	return outcome, nil
}

func clip(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
