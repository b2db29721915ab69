package gdatasettings

import (
	"context"
	"errors"
	"testing"

	"petbowl/internal/domain/watering"

	"github.com/quasilyte/gdata/v2"
)

func openTestManager(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("open gdata: %v", err)
	}
	return m
}

func TestStore_DefaultsWhenNothingSaved(t *testing.T) {
	s := NewStore(openTestManager(t, "petbowl_test_defaults"))
	cfg, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != watering.DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestStore_RoundTripAcrossInstances(t *testing.T) {
	m := openTestManager(t, "petbowl_test_roundtrip")
	cfg := watering.DefaultConfig()
	cfg.ForceExactBowlTile = false
	cfg.BowlFilledDuration = 3
	if err := NewStore(m).Save(context.Background(), cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := NewStore(m).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != cfg {
		t.Fatalf("expected %+v, got %+v", cfg, got)
	}
}

func TestStore_PartialYAMLKeepsDefaults(t *testing.T) {
	m := openTestManager(t, "petbowl_test_partial")
	if err := m.SaveObjectProp(settingsObject, settingsProperty, []byte("cheaty_watering: true\n")); err != nil {
		t.Fatalf("seed: %v", err)
	}
	got, err := NewStore(m).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !got.CheatyWatering || !got.ForceExactBowlTile || got.BowlFilledDuration != 1 {
		t.Fatalf("expected defaults plus cheat, got %+v", got)
	}
}

func TestStore_NilManagerIsMemoryOnly(t *testing.T) {
	s := NewStore(nil)
	cfg := watering.DefaultConfig()
	cfg.SnowFillsBowl = true
	if err := s.Save(context.Background(), cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, _ := s.Load(context.Background())
	if !got.SnowFillsBowl {
		t.Fatalf("expected in-memory config kept")
	}
}

func TestStore_SaveRejectsInvalid(t *testing.T) {
	s := NewStore(nil)
	if err := s.Save(context.Background(), watering.Config{}); !errors.Is(err, watering.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}
