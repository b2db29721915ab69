package memory

import (
	"context"

	"petbowl/internal/domain/watering"
)

// SettingsStore keeps the config in process memory only.
type SettingsStore struct {
	store *Store
}

func NewSettingsStore(store *Store) SettingsStore {
	return SettingsStore{store: store}
}

func (s SettingsStore) Load(_ context.Context) (watering.Config, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	if s.store.settings == nil {
		return watering.DefaultConfig(), nil
	}
	return *s.store.settings, nil
}

func (s SettingsStore) Save(_ context.Context, cfg watering.Config) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	s.store.settings = &cfg
	return nil
}
