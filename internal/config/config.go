package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Gemini  GeminiConfig  `yaml:"gemini"`
	Paths   PathsConfig   `yaml:"paths"`
	Tools   ToolsConfig   `yaml:"tools"`
	Limits  LimitsConfig  `yaml:"limits"`
	Logging LoggingConfig `yaml:"logging"`
	Watch   WatchConfig   `yaml:"watch"`
}

type GeminiConfig struct {
	Model    string   `yaml:"model"`
	TTSModel string   `yaml:"tts_model"`
	APIKeys  []string `yaml:"api_keys"`
}

type PathsConfig struct {
	Workdir string `yaml:"workdir"`
	Inbox   string `yaml:"inbox"`
	Output  string `yaml:"output"`
}

// ToolsConfig holds the external converter binaries the pipeline shells
// out to. Binaries resolved via PATH when only a bare name is given.
type ToolsConfig struct {
	FFmpeg   string `yaml:"ffmpeg"`
	FFprobe  string `yaml:"ffprobe"`
	Marp     string `yaml:"marp"`
	Soffice  string `yaml:"soffice"`
	PDFToPPM string `yaml:"pdftoppm"`
}

type LimitsConfig struct {
	ContextChars int `yaml:"context_chars"`
	TTSChars     int `yaml:"tts_chars"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type WatchConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if len(c.Gemini.APIKeys) == 0 {
		if key := strings.TrimSpace(os.Getenv("GEMINI_API_KEY")); key != "" {
			c.Gemini.APIKeys = []string{key}
		} else {
			return fmt.Errorf("gemini.api_keys is required (or set GEMINI_API_KEY)")
		}
	}

	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.0-flash"
	}
	if c.Gemini.TTSModel == "" {
		c.Gemini.TTSModel = "gemini-2.5-flash-preview-tts"
	}
	if c.Paths.Workdir == "" {
		c.Paths.Workdir = "."
	}
	if c.Paths.Inbox == "" {
		c.Paths.Inbox = "data/inbox"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = c.Paths.Workdir
	}
	if c.Tools.FFmpeg == "" {
		c.Tools.FFmpeg = "ffmpeg"
	}
	if c.Tools.FFprobe == "" {
		c.Tools.FFprobe = "ffprobe"
	}
	if c.Tools.Marp == "" {
		c.Tools.Marp = "marp"
	}
	if c.Tools.Soffice == "" {
		c.Tools.Soffice = "soffice"
	}
	if c.Tools.PDFToPPM == "" {
		c.Tools.PDFToPPM = "pdftoppm"
	}
	if c.Limits.ContextChars == 0 {
		c.Limits.ContextChars = 12000
	}
	if c.Limits.TTSChars == 0 {
		c.Limits.TTSChars = 6000
	}
	if c.Watch.MaxConcurrent == 0 {
		c.Watch.MaxConcurrent = 2
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
