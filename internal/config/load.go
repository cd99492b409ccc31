package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads the yaml config file at path (skipped when absent), layers
// environment overrides on top, and applies defaults. A local .env file is
// loaded into the environment first when present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// Environment-only configuration is fine.
		default:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	setFromEnv(&c.Paths.Data, "CORTEX_DATA_DIR")
	setFromEnv(&c.Paths.Import, "CORTEX_IMPORT_DIR")
	setFromEnv(&c.Server.Port, "CORTEX_PORT")
	setFromEnv(&c.Server.FrontendDir, "CORTEX_FRONTEND_DIR")
	setFromEnv(&c.Whisper.BinaryPath, "CORTEX_WHISPER_BIN")
	setFromEnv(&c.Whisper.ModelPath, "CORTEX_WHISPER_MODEL")
	setFromEnv(&c.Classifier.APIKey, "CORTEX_API_KEY")
	setFromEnv(&c.Classifier.URL, "CORTEX_API_URL")
	setFromEnv(&c.Classifier.Model, "CORTEX_API_MODEL")
	setFromEnv(&c.Logging.Level, "CORTEX_LOG_LEVEL")
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
