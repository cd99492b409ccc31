package watcher

import "context"

// Watcher monitors the import drop folder for recorded audio.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// Handler ingests one dropped audio file.
type Handler func(ctx context.Context, audioPath string) error
