package watcher

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"

	"cortex/internal/logger"
)

type implWatcher struct {
	importDir     string
	handler       Handler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	semaphore     chan struct{}
	wg            sync.WaitGroup
}

// New creates a Watcher over importDir with bounded concurrent ingestion.
func New(importDir string, handler Handler, log logger.Logger, maxConcurrent int) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(importDir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch import dir: %w", err)
	}

	if maxConcurrent <= 0 {
		maxConcurrent = 2
	}

	return &implWatcher{
		importDir:     importDir,
		handler:       handler,
		logger:        log,
		watcher:       fsw,
		maxConcurrent: maxConcurrent,
		semaphore:     make(chan struct{}, maxConcurrent),
	}, nil
}
