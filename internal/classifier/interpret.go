package classifier

import (
	"encoding/json"
	"strings"
)

// partial decodes the model output with optional fields so each one can be
// defaulted independently.
type partial struct {
	Folder  *string `json:"folder"`
	Title   *string `json:"title"`
	Summary *string `json:"summary"`
	Slug    *string `json:"slug"`
}

// Interpret extracts a JSON object from raw model output and fills in
// defaults for anything missing or unusable. Models like to wrap the object
// in prose, so only the span between the first "{" and the last "}" is
// parsed. Interpret is pure and never fails: worst case is the full default
// result.
func Interpret(raw, defaultFolder string) Result {
	result := Result{
		Folder:  defaultFolder,
		Title:   "Untitled",
		Summary: "",
		Slug:    "note",
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return result
	}

	var fields partial
	if err := json.Unmarshal([]byte(raw[start:end+1]), &fields); err != nil {
		return result
	}

	if fields.Folder != nil {
		result.Folder = *fields.Folder
	}
	if fields.Title != nil {
		result.Title = *fields.Title
	}
	if fields.Summary != nil {
		result.Summary = *fields.Summary
	}
	if fields.Slug != nil {
		result.Slug = *fields.Slug
	}

	return result
}
