package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/udsdoc/udsdoc/internal/metrics"
)

// ConfigWatcher monitors configuration file changes and triggers refreshes.
type ConfigWatcher struct {
	configPath   string
	service      *Service
	watcher      *fsnotify.Watcher
	mu           sync.Mutex
	stopChan     chan struct{}
	reloadChan   chan struct{}
	debounceTime time.Duration
}

// NewConfigWatcher creates a new configuration file watcher.
func NewConfigWatcher(configPath string, service *Service) (*ConfigWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Resolve absolute path for consistent watching
	absPath, err := filepath.Abs(configPath)
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}

	return &ConfigWatcher{
		configPath:   absPath,
		service:      service,
		watcher:      watcher,
		stopChan:     make(chan struct{}),
		reloadChan:   make(chan struct{}, 1),
		debounceTime: 2 * time.Second, // Debounce rapid file changes
	}, nil
}

// Start begins monitoring the configuration file.
func (cw *ConfigWatcher) Start(ctx context.Context) error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	// Watch the directory containing the config file (more reliable than
	// watching the file directly; editors often replace via rename).
	configDir := filepath.Dir(cw.configPath)
	if err := cw.watcher.Add(configDir); err != nil {
		return fmt.Errorf("failed to watch config directory %s: %w", configDir, err)
	}

	slog.Info("Starting configuration watcher", "config_path", cw.configPath)

	go cw.watchLoop(ctx)
	go cw.reloadLoop(ctx)

	return nil
}

// Stop stops the configuration watcher.
func (cw *ConfigWatcher) Stop() error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	slog.Info("Stopping configuration watcher")
	close(cw.stopChan)

	if cw.watcher != nil {
		return cw.watcher.Close()
	}
	return nil
}

// watchLoop monitors file system events.
func (cw *ConfigWatcher) watchLoop(ctx context.Context) {
	configFile := filepath.Base(cw.configPath)

	for {
		select {
		case <-ctx.Done():
			return
		case <-cw.stopChan:
			return
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}

			// Only process events for our config file
			if filepath.Base(event.Name) != configFile {
				continue
			}

			switch {
			case event.Op&fsnotify.Write == fsnotify.Write:
				slog.Debug("Config file write detected", "file", event.Name)
				cw.triggerReload()
			case event.Op&fsnotify.Create == fsnotify.Create:
				slog.Debug("Config file create detected", "file", event.Name)
				cw.triggerReload()
			case event.Op&fsnotify.Rename == fsnotify.Rename:
				slog.Debug("Config file rename detected", "file", event.Name)
				cw.triggerReload()
			case event.Op&fsnotify.Remove == fsnotify.Remove:
				slog.Warn("Config file removed", "file", event.Name)
			}

		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Config watcher error", "error", err)
		}
	}
}

// reloadLoop handles debounced configuration refreshes.
func (cw *ConfigWatcher) reloadLoop(ctx context.Context) {
	var reloadTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			if reloadTimer != nil {
				reloadTimer.Stop()
			}
			return
		case <-cw.stopChan:
			if reloadTimer != nil {
				reloadTimer.Stop()
			}
			return
		case <-cw.reloadChan:
			// Reset/start debounce timer
			if reloadTimer != nil {
				reloadTimer.Stop()
			}
			reloadTimer = time.AfterFunc(cw.debounceTime, func() {
				if err := cw.service.Refresh(ctx, metrics.TriggerWatcher); err != nil {
					slog.Error("Failed to refresh after config change", "error", err)
				}
			})
		}
	}
}

// triggerReload triggers a debounced refresh.
func (cw *ConfigWatcher) triggerReload() {
	select {
	case cw.reloadChan <- struct{}{}:
		// Refresh triggered
	default:
		// Refresh already pending
	}
}
