package transcriber

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// Init verifies the whisper binary and model are present and marks the
// transcriber ready. The model itself is loaded per invocation by
// whisper.cpp; what must exist once, up front, is the configuration to reach
// it.
func (t *implTranscriber) Init(ctx context.Context) error {
	if _, err := exec.LookPath(t.cfg.BinaryPath); err != nil {
		return fmt.Errorf("whisper binary %q: %w", t.cfg.BinaryPath, err)
	}
	if _, err := os.Stat(t.cfg.ModelPath); err != nil {
		return fmt.Errorf("whisper model %q: %w", t.cfg.ModelPath, err)
	}

	t.ready.Store(true)
	t.logger.Info(ctx, "Whisper ready: model %s", t.cfg.ModelPath)
	return nil
}

func (t *implTranscriber) Ready() bool {
	return t.ready.Load()
}

func (t *implTranscriber) Close() error {
	t.ready.Store(false)
	return nil
}

// Transcribe runs whisper.cpp over the audio file and returns the plain-text
// transcript plus the recording duration when ffprobe can determine it.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath string) (*Result, error) {
	if !t.Ready() {
		return nil, ErrNotReady
	}

	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	args := []string{
		"-m", t.cfg.ModelPath,
		"-f", audioPath,
		"-otxt",
		"-l", t.cfg.Language,
		"-np",
		"--output-file", outputPrefix,
	}

	t.logger.Debug(ctx, "Transcribing %s", audioPath)

	if _, err := t.executor.Execute(ctx, t.cfg.BinaryPath, args...); err != nil {
		return nil, fmt.Errorf("whisper transcribe: %w", err)
	}

	textPath := outputPrefix + ".txt"
	defer os.Remove(textPath)

	data, err := os.ReadFile(textPath)
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}

	return &Result{
		Text:     strings.TrimSpace(string(data)),
		Duration: t.probeDuration(ctx, audioPath),
	}, nil
}

// probeDuration asks ffprobe for the recording length in seconds. Duration is
// informational, so failures degrade to zero rather than failing the
// transcription.
func (t *implTranscriber) probeDuration(ctx context.Context, audioPath string) float64 {
	out, err := t.executor.Execute(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		audioPath,
	)
	if err != nil {
		t.logger.Debug(ctx, "ffprobe failed for %s: %v", audioPath, err)
		return 0
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return 0
	}
	return seconds
}
