package config

import "fmt"

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Paths      PathsConfig      `yaml:"paths"`
	Whisper    WhisperConfig    `yaml:"whisper"`
	Classifier ClassifierConfig `yaml:"classifier"`
	Logging    LoggingConfig    `yaml:"logging"`
	Ingest     IngestConfig     `yaml:"ingest"`
}

type ServerConfig struct {
	Port        string `yaml:"port"`
	FrontendDir string `yaml:"frontend_dir"`
}

type PathsConfig struct {
	// Data is the corpus root: one subdirectory per folder plus README.md.
	Data string `yaml:"data"`
	// Import, when set, is watched for dropped audio files.
	Import string `yaml:"import"`
}

type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelPath  string `yaml:"model_path"`
	Language   string `yaml:"language"`
}

type ClassifierConfig struct {
	APIKey         string `yaml:"api_key"`
	URL            string `yaml:"url"`
	Model          string `yaml:"model"`
	MaxTokens      int    `yaml:"max_tokens"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type IngestConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Validate checks required settings and fills defaults for everything else.
func (c *Config) Validate() error {
	if c.Paths.Data == "" {
		c.Paths.Data = "/data"
	}
	if c.Server.Port == "" {
		c.Server.Port = "8000"
	}
	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.ModelPath == "" {
		c.Whisper.ModelPath = "models/ggml-base.bin"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "en"
	}
	if c.Classifier.URL == "" {
		c.Classifier.URL = "https://nano-gpt.com/api/v1/chat/completions"
	}
	if c.Classifier.Model == "" {
		c.Classifier.Model = "gpt-4o-mini"
	}
	if c.Classifier.MaxTokens == 0 {
		c.Classifier.MaxTokens = 200
	}
	if c.Classifier.TimeoutSeconds <= 0 {
		c.Classifier.TimeoutSeconds = 30
	}
	if c.Classifier.MaxTokens < 0 {
		return fmt.Errorf("classifier.max_tokens must be positive")
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Ingest.MaxConcurrent <= 0 {
		c.Ingest.MaxConcurrent = 2
	}
	return nil
}
