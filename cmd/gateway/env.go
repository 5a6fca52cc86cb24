package main

import (
	"os"
	"strconv"

	"github.com/geosolutions-it/gsr/internal/config"
)

// Environment variable names recognized by the gateway. Environment
// values take precedence over the configuration file.
const (
	envPort             = "GATEWAY_PORT"
	envAddress          = "GATEWAY_ADDRESS"
	envLogLevel         = "GATEWAY_LOG_LEVEL"
	envLogFormat        = "GATEWAY_LOG_FORMAT"
	envFallbackType     = "GATEWAY_NEGOTIATION_FALLBACK_TYPE"
	envDefaultImageType = "GATEWAY_NEGOTIATION_DEFAULT_IMAGE_TYPE"
	envOTLPEndpoint     = "GATEWAY_OTLP_ENDPOINT"
)

// applyEnvOverrides overlays environment variables onto the
// configuration. Unparsable numeric values are ignored.
func applyEnvOverrides(cfg *config.Config) {
	if v := os.Getenv(envPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv(envAddress); v != "" {
		cfg.Server.Address = v
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(envLogFormat); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv(envFallbackType); v != "" {
		cfg.Negotiation.FallbackType = v
	}
	if v := os.Getenv(envDefaultImageType); v != "" {
		cfg.Negotiation.DefaultImageType = v
	}
	if v := os.Getenv(envOTLPEndpoint); v != "" {
		cfg.Tracing.OTLPEndpoint = v
	}
}
