package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geosolutions-it/gsr/internal/config"
)

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(envPort, "9099")
	t.Setenv(envAddress, "0.0.0.0")
	t.Setenv(envLogLevel, "debug")
	t.Setenv(envLogFormat, "console")
	t.Setenv(envFallbackType, "application/xml")
	t.Setenv(envDefaultImageType, "image/jpeg")
	t.Setenv(envOTLPEndpoint, "collector:4317")

	cfg := config.DefaultConfig()
	applyEnvOverrides(cfg)

	assert.Equal(t, 9099, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Address)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "application/xml", cfg.Negotiation.FallbackType)
	assert.Equal(t, "image/jpeg", cfg.Negotiation.DefaultImageType)
	assert.Equal(t, "collector:4317", cfg.Tracing.OTLPEndpoint)
}

func TestApplyEnvOverrides_Empty(t *testing.T) {
	cfg := config.DefaultConfig()
	applyEnvOverrides(cfg)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestApplyEnvOverrides_BadPortIgnored(t *testing.T) {
	t.Setenv(envPort, "not-a-number")

	cfg := config.DefaultConfig()
	applyEnvOverrides(cfg)
	assert.Equal(t, 8080, cfg.Server.Port)
}
