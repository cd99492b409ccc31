package classifier

import "context"

// Classifier asks a language model where a transcript belongs. The returned
// string is raw model output that still has to go through Interpret; it is
// never an error, since a transcript must not be lost for lack of an AI
// opinion.
type Classifier interface {
	Classify(ctx context.Context, transcript, taxonomy, defaultFolder string) string
}

// Result is the structured organization hint for one transcript. Every field
// is always populated, either from the model or from a fallback.
type Result struct {
	Folder  string `json:"folder"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Slug    string `json:"slug"`
}
