package world

import "time"

type ClockConfig struct {
	StartAt     time.Time
	DayDuration time.Duration
}

// Clock maps wall time onto simulated days. Day 1 starts at StartAt.
type Clock struct {
	cfg ClockConfig
}

func NewClock(cfg ClockConfig) Clock {
	if cfg.DayDuration <= 0 {
		cfg.DayDuration = 20 * time.Minute
	}
	if cfg.StartAt.IsZero() {
		cfg.StartAt = time.Unix(0, 0)
	}
	return Clock{cfg: cfg}
}

func DefaultClock() Clock {
	return NewClock(ClockConfig{})
}

func (c Clock) DayDuration() time.Duration {
	return c.cfg.DayDuration
}

// DayAt returns the simulated day for now and the time left until the next one.
func (c Clock) DayAt(now time.Time) (int, time.Duration) {
	elapsed := now.Sub(c.cfg.StartAt)
	if elapsed < 0 {
		elapsed = 0
	}
	day := int(elapsed/c.cfg.DayDuration) + 1
	offset := elapsed % c.cfg.DayDuration
	return day, c.cfg.DayDuration - offset
}
