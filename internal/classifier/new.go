package classifier

import (
	"net/http"
	"time"

	"cortex/internal/config"
	"cortex/internal/logger"
)

type implClassifier struct {
	cfg    config.ClassifierConfig
	client *http.Client
	logger logger.Logger
}

// New creates a Classifier backed by an OpenAI-compatible chat completions
// endpoint. The HTTP client timeout bounds every call; a hung remote must not
// hang the pipeline.
func New(cfg config.ClassifierConfig, log logger.Logger) Classifier {
	return &implClassifier{
		cfg: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		logger: log,
	}
}
