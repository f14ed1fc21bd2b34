package config

import (
	"os"
	"testing"
	"time"
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
			name: "negative fetch timeout",
			config: Config{
				Extract: ExtractConfig{FetchTimeoutSeconds: -1},
			},
			wantErr: true,
		},
		{
			name: "negative poll interval",
			config: Config{
				Upload: UploadConfig{PollIntervalSeconds: -5},
			},
			wantErr: true,
		},
		{
			name: "negative max polls",
			config: Config{
				Upload: UploadConfig{MaxPolls: -1},
			},
			wantErr: true,
		},
		{
			name: "explicit values kept",
			config: Config{
				Server:  ServerConfig{Addr: ":9090"},
				Extract: ExtractConfig{MaxContentChars: 1000},
			},
			wantErr: false,
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

	if cfg.Server.Addr != ":8080" {
		t.Errorf("Addr = %v, want :8080", cfg.Server.Addr)
	}
	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %v, want gemini-2.5-flash", cfg.Gemini.Model)
	}
	if cfg.Extract.Language != "en" {
		t.Errorf("Language = %v, want en", cfg.Extract.Language)
	}
	if cfg.Extract.MaxContentChars != 25000 {
		t.Errorf("MaxContentChars = %v, want 25000", cfg.Extract.MaxContentChars)
	}
	if cfg.FetchTimeout() != 10*time.Second {
		t.Errorf("FetchTimeout() = %v, want 10s", cfg.FetchTimeout())
	}
	if cfg.PollInterval() != 2*time.Second {
		t.Errorf("PollInterval() = %v, want 2s", cfg.PollInterval())
	}
	if cfg.Upload.MaxPolls != 150 {
		t.Errorf("MaxPolls = %v, want 150", cfg.Upload.MaxPolls)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
server:
  addr: ":9000"

gemini:
  model: "gemini-2.5-pro"

extract:
  language: "en"
  fetch_timeout_seconds: 15
  max_content_chars: 10000

upload:
  poll_interval_seconds: 1
  max_polls: 30

logging:
  level: "debug"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Addr != ":9000" {
		t.Errorf("Addr = %v, want :9000", cfg.Server.Addr)
	}
	if cfg.Gemini.Model != "gemini-2.5-pro" {
		t.Errorf("Model = %v, want gemini-2.5-pro", cfg.Gemini.Model)
	}
	if cfg.Extract.MaxContentChars != 10000 {
		t.Errorf("MaxContentChars = %v, want 10000", cfg.Extract.MaxContentChars)
	}
	if cfg.Upload.MaxPolls != 30 {
		t.Errorf("MaxPolls = %v, want 30", cfg.Upload.MaxPolls)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestAPIKeyFromEnv(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "test-key")
	t.Setenv("GEMINI_API_KEY", "")

	cfg := Default()
	if cfg.Gemini.APIKey != "test-key" {
		t.Errorf("APIKey = %v, want test-key", cfg.Gemini.APIKey)
	}

	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "fallback-key")

	cfg = Default()
	if cfg.Gemini.APIKey != "fallback-key" {
		t.Errorf("APIKey = %v, want fallback-key", cfg.Gemini.APIKey)
	}
}
