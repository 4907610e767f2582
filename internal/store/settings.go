package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/nvats/travelog/internal/domain"
	"github.com/nvats/travelog/internal/storage"
)

// SettingsKey is the storage key of the serialized settings blob.
const SettingsKey = "travelog:settings"

// SettingsStore owns the application settings, persisted as a second
// independent blob alongside the tour collection.
type SettingsStore struct {
	mu       sync.RWMutex
	settings domain.AppSettings
	storage  storage.Store
	log      *slog.Logger
}

// NewSettingsStore loads persisted settings from st. An unparseable blob
// falls back to defaults, logged but never fatal.
func NewSettingsStore(ctx context.Context, st storage.Store, log *slog.Logger) *SettingsStore {
	s := &SettingsStore{storage: st, log: log, settings: domain.DefaultSettings()}

	blob, err := st.Load(ctx, SettingsKey)
	switch {
	case errors.Is(err, storage.ErrNoBlob):
		// First run.
	case err != nil:
		log.Warn("settings store: load failed, using defaults", "error", err)
	default:
		var settings domain.AppSettings
		if err := json.Unmarshal(blob, &settings); err != nil {
			log.Warn("settings store: discarding unparseable blob", "error", err)
		} else {
			s.settings = settings
		}
	}
	return s
}

// Get returns the current settings.
func (s *SettingsStore) Get() domain.AppSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Set replaces the settings and persists them. Like tour persistence the
// write is fire-and-forget; a failure is logged and memory stays
// authoritative.
func (s *SettingsStore) Set(ctx context.Context, settings domain.AppSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings

	blob, err := json.Marshal(settings)
	if err != nil {
		s.log.Error("settings store: marshal failed", "error", err)
		return
	}
	if err := s.storage.Save(ctx, SettingsKey, blob); err != nil {
		s.log.Error("settings store: save failed", "error", err)
	}
}
