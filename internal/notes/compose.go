package notes

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"cortex/internal/classifier"
)

const noteTemplate = `# %s

**Date:** %s
**Folder:** %s

---

%s

---

*Captured with Cortex*
`

// timestampLayouts are tried in order. RFC3339 covers offsets including a
// trailing Z; the bare layouts accept local timestamps without an offset.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// ParseTimestamp parses an ISO-8601 date-time with or without an offset.
func ParseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrBadTimestamp, value)
}

// Compose deterministically derives a note's relative path and markdown body
// from the transcript, its timestamp, and the interpreted classification.
//
// Title, transcript and slug are embedded verbatim. Sanitizing
// classifier-supplied values is deliberately left to the classifier contract;
// see the store for the matching collision policy.
func Compose(transcript, timestamp string, res classifier.Result) (string, string, error) {
	dt, err := ParseTimestamp(timestamp)
	if err != nil {
		return "", "", err
	}

	filename := dt.Format("2006-01-02_15-04-05") + "_" + res.Slug + Extension
	relPath := filepath.Join(res.Folder, filename)

	body := fmt.Sprintf(noteTemplate,
		res.Title,
		dt.Format("January 02, 2006 at 03:04 PM"),
		res.Folder,
		transcript,
	)

	return relPath, body, nil
}

// FirstLineTitle extracts a display title from note content: the first line
// with markdown heading markers stripped.
func FirstLineTitle(content string) string {
	line, _, _ := strings.Cut(content, "\n")
	title := strings.TrimSpace(strings.TrimLeft(line, "# "))
	if title == "" {
		return "Untitled"
	}
	return title
}

// Preview returns the text between the first and second horizontal rules,
// capped at 100 runes. Notes without two separators fall back to the start of
// the whole content.
func Preview(content string) string {
	if idx := strings.Index(content, "---"); idx > 0 {
		after := strings.TrimSpace(content[idx+3:])
		if second := strings.Index(after, "---"); second > 0 {
			return clip(strings.TrimSpace(after[:second]), 100)
		}
		return clip(after, 100)
	}
	return clip(content, 100)
}

func clip(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
