package config

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWatcher_MissingDirectory(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing", "config.yaml"), nil)
	assert.Error(t, err)
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 8080\n"), 0o600))

	watcher, err := NewWatcher(path, nil)
	require.NoError(t, err)
	defer watcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var got *Config
	go func() {
		_ = watcher.Watch(ctx, func(cfg *Config) {
			mu.Lock()
			got = cfg
			mu.Unlock()
		})
	}()

	// Give the watch loop a moment to start before writing.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9091\n"), 0o600))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return got != nil && got.Server.Port == 9091
	}, 5*time.Second, 20*time.Millisecond)
}

func TestWatcher_InvalidReloadSkipped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 8080\n"), 0o600))

	watcher, err := NewWatcher(path, nil)
	require.NoError(t, err)
	defer watcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	calls := 0
	go func() {
		_ = watcher.Watch(ctx, func(*Config) {
			mu.Lock()
			calls++
			mu.Unlock()
		})
	}()

	time.Sleep(50 * time.Millisecond)

	// A config that fails validation must not reach the callback.
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 0\n"), 0o600))
	time.Sleep(200 * time.Millisecond)

	mu.Lock()
	afterInvalid := calls
	mu.Unlock()
	assert.Zero(t, afterInvalid)

	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9092\n"), 0o600))
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls > 0
	}, 5*time.Second, 20*time.Millisecond)
}

func TestWatcher_UnrelatedFileIgnored(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 8080\n"), 0o600))

	watcher, err := NewWatcher(path, nil)
	require.NoError(t, err)
	defer watcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	calls := 0
	go func() {
		_ = watcher.Watch(ctx, func(*Config) {
			mu.Lock()
			calls++
			mu.Unlock()
		})
	}()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o600))
	time.Sleep(200 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Zero(t, calls)
}
