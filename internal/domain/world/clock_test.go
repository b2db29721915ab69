package world

import (
	"testing"
	"time"
)

func TestClockDayCycle(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := NewClock(ClockConfig{
		StartAt:     start,
		DayDuration: 20 * time.Minute,
	})

	day, remain := clock.DayAt(start)
	if day != 1 {
		t.Fatalf("expected day 1 at start, got %d", day)
	}
	if remain != 20*time.Minute {
		t.Fatalf("expected 20m remain, got %s", remain)
	}

	day, remain = clock.DayAt(start.Add(25 * time.Minute))
	if day != 2 {
		t.Fatalf("expected day 2 at +25m, got %d", day)
	}
	if remain != 15*time.Minute {
		t.Fatalf("expected 15m remain, got %s", remain)
	}

	day, _ = clock.DayAt(start.Add(-time.Hour))
	if day != 1 {
		t.Fatalf("expected clamp to day 1 before start, got %d", day)
	}
}

func TestDefaultClockFillsZeroConfig(t *testing.T) {
	c := DefaultClock()
	if c.DayDuration() != 20*time.Minute {
		t.Fatalf("expected default day duration 20m, got %s", c.DayDuration())
	}
}
