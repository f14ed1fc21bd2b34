package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Gemini  GeminiConfig  `yaml:"gemini"`
	Extract ExtractConfig `yaml:"extract"`
	Upload  UploadConfig  `yaml:"upload"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type GeminiConfig struct {
	Model string `yaml:"model"`
	// APIKey comes from the environment, never from the file.
	APIKey string `yaml:"-"`
}

type ExtractConfig struct {
	Language            string `yaml:"language"`
	FetchTimeoutSeconds int    `yaml:"fetch_timeout_seconds"`
	MaxContentChars     int    `yaml:"max_content_chars"`
}

type UploadConfig struct {
	PollIntervalSeconds int    `yaml:"poll_interval_seconds"`
	MaxPolls            int    `yaml:"max_polls"`
	TempDir             string `yaml:"temp_dir"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from a YAML file, applies defaults and picks
// up the Gemini API key from the process environment.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	cfg.Gemini.APIKey = apiKeyFromEnv()
	return &cfg, nil
}

// Default returns a configuration with all defaults applied, used when no
// config file is present. The API key is still read from the environment.
func Default() *Config {
	cfg := &Config{}
	// Validate never fails on an empty config, it only fills defaults.
	_ = cfg.Validate()
	cfg.Gemini.APIKey = apiKeyFromEnv()
	return cfg
}

func (c *Config) Validate() error {
	if c.Extract.FetchTimeoutSeconds < 0 {
		return fmt.Errorf("extract.fetch_timeout_seconds must not be negative")
	}
	if c.Upload.PollIntervalSeconds < 0 {
		return fmt.Errorf("upload.poll_interval_seconds must not be negative")
	}
	if c.Extract.MaxContentChars < 0 {
		return fmt.Errorf("extract.max_content_chars must not be negative")
	}
	if c.Upload.MaxPolls < 0 {
		return fmt.Errorf("upload.max_polls must not be negative")
	}

	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Extract.Language == "" {
		c.Extract.Language = "en"
	}
	if c.Extract.FetchTimeoutSeconds == 0 {
		c.Extract.FetchTimeoutSeconds = 10
	}
	if c.Extract.MaxContentChars == 0 {
		c.Extract.MaxContentChars = 25000
	}
	if c.Upload.PollIntervalSeconds == 0 {
		c.Upload.PollIntervalSeconds = 2
	}
	if c.Upload.MaxPolls == 0 {
		c.Upload.MaxPolls = 150
	}
	if c.Upload.TempDir == "" {
		c.Upload.TempDir = os.TempDir()
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}

// FetchTimeout returns the website fetch timeout as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.Extract.FetchTimeoutSeconds) * time.Second
}

// PollInterval returns the upload poll interval as a duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Upload.PollIntervalSeconds) * time.Second
}

func apiKeyFromEnv() string {
	if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		return key
	}
	return os.Getenv("GEMINI_API_KEY")
}
