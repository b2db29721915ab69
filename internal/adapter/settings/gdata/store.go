// Package gdatasettings keeps the watering config in the per-user game data
// directory, serialised as YAML.
package gdatasettings

import (
	"context"
	"fmt"
	"sync"

	"petbowl/internal/domain/watering"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	settingsObject   = "settings"
	settingsProperty = "watering"
)

// Store is safe for concurrent use. A nil manager keeps settings in memory
// only.
type Store struct {
	mu      sync.Mutex
	manager *gdata.Manager
	cached  *watering.Config
}

func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open gdata %s: %w", appName, err)
	}
	return NewStore(m), nil
}

func NewStore(manager *gdata.Manager) *Store {
	return &Store{manager: manager}
}

func (s *Store) Load(_ context.Context) (watering.Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil {
		return *s.cached, nil
	}
	cfg := watering.DefaultConfig()
	if s.manager == nil || !s.manager.ObjectPropExists(settingsObject, settingsProperty) {
		return cfg, nil
	}
	data, err := s.manager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return watering.Config{}, fmt.Errorf("load settings: %w", err)
	}
	// Missing keys keep their defaults.
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return watering.Config{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		hlog.Warnf("stored settings invalid (%+v), using defaults", cfg)
		cfg = watering.DefaultConfig()
	}
	s.cached = &cfg
	return cfg, nil
}

func (s *Store) Save(_ context.Context, cfg watering.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.manager != nil {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshal settings: %w", err)
		}
		if err := s.manager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
			return fmt.Errorf("save settings: %w", err)
		}
	}
	s.cached = &cfg
	return nil
}
