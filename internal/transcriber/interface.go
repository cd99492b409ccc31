package transcriber

import (
	"context"
	"errors"
)

// ErrNotReady is returned for transcription requests before Init has
// succeeded. Callers surface it as a service-unavailable condition.
var ErrNotReady = errors.New("transcription model not loaded")

// Result is the output of one transcription run.
type Result struct {
	Text     string
	Duration float64
}

// Transcriber turns recorded audio into text. Implementations hold the model
// for the life of the process: Init once at startup, Close at shutdown.
type Transcriber interface {
	Init(ctx context.Context) error
	Transcribe(ctx context.Context, audioPath string) (*Result, error)
	Ready() bool
	Close() error
}
