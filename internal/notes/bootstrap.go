package notes

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// defaultFolders exist after bootstrap regardless of the classifier's later
// ad-hoc additions.
var defaultFolders = []string{DefaultFolder, "ideas", "tasks", "journal"}

const defaultReadme = `# Cortex Brain Dump

This is your personal brain dump powered by Cortex. Voice recordings are transcribed
and automatically organized into folders based on their content.

## Folder Structure

### inbox/
Uncategorized thoughts that haven't been processed yet. The AI will try to move
items to more specific folders, but anything unclear ends up here for manual review.

### ideas/
Creative ideas, concepts, project proposals, and brainstorms. Things you want to
explore or develop further.

### tasks/
Action items, to-dos, reminders, and things you need to do. Format: each note
should represent a specific actionable item.

### journal/
Personal reflections, daily observations, emotions, and experiences. Stream of
consciousness entries that capture how you're feeling or what you're thinking about.

## Adding New Folders

You can create new folders through the app. When you do, add a description here
so the AI knows how to categorize new entries.

## Note Format

Each note is saved as a markdown file with the following structure:
- Filename: ` + "`YYYY-MM-DD_HH-MM-SS_<short-title>.md`" + `
- Contains: timestamp, original transcript, and any AI-added metadata

## Tips

1. Speak naturally - the AI will figure out what you mean
2. Start with action words for tasks: "I need to...", "Remind me to..."
3. Use phrases like "I have an idea..." for creative thoughts
4. For journal entries, just talk about how you feel or what happened
`

func (s *implStore) Bootstrap(ctx context.Context) error {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("create data root: %w", err)
	}

	for _, name := range defaultFolders {
		if err := os.MkdirAll(filepath.Join(s.root, name), 0o755); err != nil {
			return fmt.Errorf("create default folder %s: %w", name, err)
		}
	}

	readme := filepath.Join(s.root, "README.md")
	if _, err := os.Stat(readme); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("stat taxonomy readme: %w", err)
		}
		if err := os.WriteFile(readme, []byte(defaultReadme), 0o644); err != nil {
			return fmt.Errorf("write taxonomy readme: %w", err)
		}
		s.logger.Info(ctx, "Created default taxonomy README at %s", readme)
	}

	return nil
}
