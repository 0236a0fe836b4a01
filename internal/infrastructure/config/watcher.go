package config

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/kiosk/internal/logging"
)

// Watch refreshes bookmarks when the config file changes on disk and then
// notifies the registered callbacks. Callbacks run on the watcher goroutine.
func (m *Manager) Watch(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil // Already watching
	}
	if m.viper == nil || m.path == "" {
		return fmt.Errorf("no config file to watch")
	}

	log := logging.FromContext(ctx)

	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("fsnotify config change detected")

		m.mu.Lock()
		if err := m.reloadBookmarks(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to reload bookmarks")
			m.mu.Unlock()
			return
		}
		m.notifyCallbacksLocked()
	})
	m.viper.WatchConfig()

	m.watching = true
	log.Debug().Str("file", m.path).Msg("watching config file")
	return nil
}

// notifyCallbacksLocked copies callbacks and config, releases lock, then notifies.
// Must be called with m.mu held for write. Releases the lock before calling callbacks.
func (m *Manager) notifyCallbacksLocked() {
	configCopy := *m.config
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, callback := range callbacks {
		callback(&configCopy)
	}
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}
