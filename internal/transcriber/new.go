package transcriber

import (
	"sync/atomic"

	"cortex/internal/config"
	"cortex/internal/logger"
	"cortex/pkg/executor"
)

type implTranscriber struct {
	cfg      config.WhisperConfig
	executor executor.Executor
	logger   logger.Logger
	ready    atomic.Bool
}

// New creates a Transcriber that shells out to whisper.cpp.
func New(cfg config.WhisperConfig, exec executor.Executor, log logger.Logger) Transcriber {
	return &implTranscriber{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
