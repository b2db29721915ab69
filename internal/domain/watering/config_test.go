package watering

import (
	"errors"
	"testing"
)

func TestDefaultConfigMatchesLegacyBehavior(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.SprinklersFillBowls || !cfg.ForceExactBowlTile || cfg.BowlFilledDuration != 1 || cfg.SnowFillsBowl || cfg.CheatyWatering {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestConfigApply(t *testing.T) {
	cheat := true
	days := 4
	next, err := DefaultConfig().Apply(Patch{CheatyWatering: &cheat, BowlFilledDuration: &days})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !next.CheatyWatering || next.BowlFilledDuration != 4 || !next.ForceExactBowlTile {
		t.Fatalf("unexpected patched config %+v", next)
	}

	bad := 0
	kept, err := next.Apply(Patch{BowlFilledDuration: &bad})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	if kept != next {
		t.Fatalf("expected config unchanged on error")
	}
}
