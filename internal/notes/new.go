package notes

import "cortex/internal/logger"

type implStore struct {
	root   string
	logger logger.Logger
}

// NewStore creates a Store rooted at dir.
func NewStore(dir string, log logger.Logger) Store {
	return &implStore{
		root:   dir,
		logger: log,
	}
}
