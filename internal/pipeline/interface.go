package pipeline

import "context"

// Outcome summarizes one processed transcript for the caller.
type Outcome struct {
	ID       string `json:"id"`
	Preview  string `json:"preview"`
	Folder   string `json:"folder"`
	FilePath string `json:"file_path"`
	Title    string `json:"title"`
}

// Pipeline runs the transcript-to-organized-note sequence: read taxonomy,
// classify, interpret, compose, persist.
type Pipeline interface {
	Process(ctx context.Context, transcript, folderHint, timestamp string) (*Outcome, error)
}
