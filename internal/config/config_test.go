package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "explicit values kept",
			config: Config{
				Paths:  PathsConfig{Data: "/var/cortex"},
				Server: ServerConfig{Port: "9000"},
			},
			wantErr: false,
		},
		{
			name: "negative max tokens rejected",
			config: Config{
				Classifier: ClassifierConfig{MaxTokens: -5},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Paths.Data != "/data" {
		t.Errorf("Data = %v, want /data", cfg.Paths.Data)
	}
	if cfg.Server.Port != "8000" {
		t.Errorf("Port = %v, want 8000", cfg.Server.Port)
	}
	if cfg.Classifier.Model != "gpt-4o-mini" {
		t.Errorf("Model = %v, want gpt-4o-mini", cfg.Classifier.Model)
	}
	if cfg.Classifier.TimeoutSeconds != 30 {
		t.Errorf("TimeoutSeconds = %v, want 30", cfg.Classifier.TimeoutSeconds)
	}
	if cfg.Ingest.MaxConcurrent != 2 {
		t.Errorf("MaxConcurrent = %v, want 2", cfg.Ingest.MaxConcurrent)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	content := `
server:
  port: "9100"

paths:
  data: "testdata/corpus"

whisper:
  binary_path: "./whisper"
  model_path: "models/test.bin"
  language: "en"

classifier:
  model: "gpt-4o"
  timeout_seconds: 10

logging:
  level: "debug"
`

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "9100" {
		t.Errorf("Port = %v, want 9100", cfg.Server.Port)
	}
	if cfg.Paths.Data != "testdata/corpus" {
		t.Errorf("Data = %v, want testdata/corpus", cfg.Paths.Data)
	}
	if cfg.Classifier.Model != "gpt-4o" {
		t.Errorf("Model = %v, want gpt-4o", cfg.Classifier.Model)
	}
	if cfg.Classifier.MaxTokens != 200 {
		t.Errorf("MaxTokens = %v, want default 200", cfg.Classifier.MaxTokens)
	}
}

func TestLoadMissingFileUsesEnvironment(t *testing.T) {
	t.Setenv("CORTEX_DATA_DIR", "/tmp/cortex-test")
	t.Setenv("CORTEX_API_KEY", "secret")

	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Paths.Data != "/tmp/cortex-test" {
		t.Errorf("Data = %v, want /tmp/cortex-test", cfg.Paths.Data)
	}
	if cfg.Classifier.APIKey != "secret" {
		t.Errorf("APIKey = %v, want secret", cfg.Classifier.APIKey)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: \"9100\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("CORTEX_PORT", "9200")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "9200" {
		t.Errorf("Port = %v, want env override 9200", cfg.Server.Port)
	}
}

func TestLoadInvalidYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [not a mapping"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should return error for invalid yaml")
	}
}
