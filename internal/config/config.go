package config

import (
	"fmt"
	"mime"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level gateway configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Log         LogConfig         `yaml:"log"`
	Tracing     TracingConfig     `yaml:"tracing"`
	Negotiation NegotiationConfig `yaml:"negotiation"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Address        string        `yaml:"address"`
	Port           int           `yaml:"port"`
	ReadTimeout    time.Duration `yaml:"readTimeout"`
	WriteTimeout   time.Duration `yaml:"writeTimeout"`
	IdleTimeout    time.Duration `yaml:"idleTimeout"`
	MaxHeaderBytes int           `yaml:"maxHeaderBytes"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `yaml:"level"`

	// Format is "json" or "console".
	Format string `yaml:"format"`

	// Output is "stdout" or "stderr".
	Output string `yaml:"output"`
}

// TracingConfig holds OpenTelemetry tracing settings.
type TracingConfig struct {
	Enabled      bool    `yaml:"enabled"`
	ServiceName  string  `yaml:"serviceName"`
	OTLPEndpoint string  `yaml:"otlpEndpoint"`
	SamplingRate float64 `yaml:"samplingRate"`
}

// NegotiationConfig holds media type negotiation settings.
type NegotiationConfig struct {
	// FallbackType is appended to every concrete candidate list so the
	// server always has a renderable type, even when none of the
	// client's stated preferences can be produced.
	FallbackType string `yaml:"fallbackType"`

	// DefaultImageType is returned for f=image requests that carry no
	// format parameter.
	DefaultImageType string `yaml:"defaultImageType"`
}

// DefaultConfig returns the configuration defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           8080,
			ReadTimeout:    30 * time.Second,
			WriteTimeout:   30 * time.Second,
			IdleTimeout:    120 * time.Second,
			MaxHeaderBytes: 1 << 20,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
		Tracing: TracingConfig{
			Enabled:      false,
			ServiceName:  "gsr-gateway",
			SamplingRate: 1.0,
		},
		Negotiation: NegotiationConfig{
			FallbackType:     ContentTypeJSON,
			DefaultImageType: ContentTypePNG,
		},
	}
}

// Load reads the configuration file at path on top of the defaults.
// An empty path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d: %w", c.Server.Port, errOutOfRange)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q: %w", c.Log.Level, errUnknownValue)
	}

	if err := validateMediaType("negotiation.fallbackType", c.Negotiation.FallbackType); err != nil {
		return err
	}
	if err := validateMediaType("negotiation.defaultImageType", c.Negotiation.DefaultImageType); err != nil {
		return err
	}

	if c.Tracing.SamplingRate < 0 || c.Tracing.SamplingRate > 1 {
		return fmt.Errorf("tracing.samplingRate %v: %w", c.Tracing.SamplingRate, errOutOfRange)
	}

	return nil
}

var (
	errOutOfRange   = fmt.Errorf("value out of range")
	errUnknownValue = fmt.Errorf("unknown value")
)

// validateMediaType checks that value is a syntactically valid
// "type/subtype" media type.
func validateMediaType(field, value string) error {
	parsed, _, err := mime.ParseMediaType(value)
	if err != nil {
		return fmt.Errorf("%s %q: %w", field, value, err)
	}
	slash := strings.IndexByte(parsed, '/')
	if slash <= 0 || slash == len(parsed)-1 {
		return fmt.Errorf("%s %q: missing subtype", field, value)
	}
	return nil
}
