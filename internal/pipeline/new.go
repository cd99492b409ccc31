package pipeline

import (
	"cortex/internal/classifier"
	"cortex/internal/logger"
	"cortex/internal/notes"
)

type implPipeline struct {
	store      notes.Store
	classifier classifier.Classifier
	logger     logger.Logger
}

// New creates a Pipeline over the given store and classifier.
func New(store notes.Store, cls classifier.Classifier, log logger.Logger) Pipeline {
	return &implPipeline{
		store:      store,
		classifier: cls,
		logger:     log,
	}
}
