package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/geosolutions-it/gsr/internal/config"
	"github.com/geosolutions-it/gsr/internal/gateway"
	"github.com/geosolutions-it/gsr/internal/observability"
)

const shutdownTimeout = 15 * time.Second

func main() {
	configPath := flag.String("config", "", "path to the configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load configuration: %v\n", err)
		os.Exit(1)
	}

	applyEnvOverrides(cfg)

	logger, err := observability.NewLogger(observability.LogConfig{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger, *configPath); err != nil {
		logger.Fatal("gateway failed", observability.Error(err))
	}
}

func run(cfg *config.Config, logger observability.Logger, configPath string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var opts []gateway.Option

	if cfg.Tracing.Enabled {
		tracer, err := observability.NewTracer(observability.TracerConfig{
			ServiceName:  cfg.Tracing.ServiceName,
			OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
			SamplingRate: cfg.Tracing.SamplingRate,
			Enabled:      true,
		})
		if err != nil {
			return fmt.Errorf("create tracer: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := tracer.Shutdown(shutdownCtx); err != nil {
				logger.Warn("tracer shutdown failed", observability.Error(err))
			}
		}()
		opts = append(opts, gateway.WithTracer(tracer))
	}

	gw, err := gateway.New(cfg, logger, opts...)
	if err != nil {
		return fmt.Errorf("create gateway: %w", err)
	}

	if configPath != "" {
		watcher, err := config.NewWatcher(configPath, logger)
		if err != nil {
			logger.Warn("configuration watcher unavailable",
				observability.String("path", configPath),
				observability.Error(err),
			)
		} else {
			defer func() { _ = watcher.Close() }()
			go func() {
				_ = watcher.Watch(ctx, func(updated *config.Config) {
					if err := gw.Reload(updated); err != nil {
						logger.Error("configuration reload failed", observability.Error(err))
					}
				})
			}()
		}
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- gw.Start(ctx)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := gw.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("stop gateway: %w", err)
	}

	return <-errCh
}
