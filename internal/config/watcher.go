package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/geosolutions-it/gsr/internal/observability"
)

// Watcher watches a configuration file and reloads it on change.
type Watcher struct {
	path    string
	logger  observability.Logger
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for the given configuration file. The
// containing directory is watched so that editors and configmap mounts
// that replace the file atomically are still observed.
func NewWatcher(path string, logger observability.Logger) (*Watcher, error) {
	if logger == nil {
		logger = observability.NopLogger()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}

	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch config directory: %w", err)
	}

	return &Watcher{
		path:    filepath.Clean(path),
		logger:  logger,
		watcher: fw,
	}, nil
}

// Watch blocks until ctx is done, invoking onChange with the freshly
// loaded configuration after each write to the watched file. A reload
// that fails validation is logged and skipped; the previous
// configuration stays active.
func (w *Watcher) Watch(ctx context.Context, onChange func(*Config)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}

			cfg, err := Load(w.path)
			if err != nil {
				w.logger.Warn("config reload failed",
					observability.String("path", w.path),
					observability.Error(err))
				continue
			}

			w.logger.Info("config reloaded", observability.String("path", w.path))
			onChange(cfg)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("config watcher error", observability.Error(err))
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
