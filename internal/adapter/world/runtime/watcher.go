package runtime

import (
	"context"
	"errors"
	"fmt"
	"time"

	"petbowl/internal/app/daystart"
	"petbowl/internal/app/ports"
	"petbowl/internal/domain/world"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type DayStarter interface {
	Execute(ctx context.Context, req daystart.Request) (daystart.Response, error)
}

type FarmLister interface {
	ListFarmIDs(ctx context.Context) ([]string, error)
}

type Config struct {
	Clock    world.Clock
	Days     ports.DayStateStore
	Starter  DayStarter
	Farms    FarmLister
	FarmIDs  []string
	Now      func() time.Time
	Interval time.Duration
}

// Watcher turns the wall clock into "day started" events. Each simulated day
// fires at most once, even across restarts, as long as Days is persistent.
type Watcher struct {
	cfg Config
}

func NewWatcher(cfg Config) Watcher {
	if cfg.Clock == (world.Clock{}) {
		cfg.Clock = world.DefaultClock()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 5 * time.Second
	}
	return Watcher{cfg: cfg}
}

// Tick fires the day start when the clock moved past the last fired day.
// It reports whether a new day was fired.
func (w Watcher) Tick(ctx context.Context) (bool, error) {
	day, _ := w.cfg.Clock.DayAt(w.cfg.Now())
	last, ok, err := w.cfg.Days.LastDay(ctx)
	if err != nil {
		return false, err
	}
	if ok && day <= last {
		return false, nil
	}

	farmIDs, err := w.farmIDs(ctx)
	if err != nil {
		return false, err
	}
	var failed []error
	for _, farmID := range farmIDs {
		resp, err := w.cfg.Starter.Execute(ctx, daystart.Request{FarmID: farmID, Day: day})
		switch {
		case err == nil:
			hlog.CtxDebugf(ctx, "day start fired farm=%s day=%d filled=%d", farmID, day, resp.Filled)
		case errors.Is(err, ports.ErrNotFound), errors.Is(err, daystart.ErrStaleDay):
			hlog.CtxWarnf(ctx, "day start skipped farm=%s day=%d: %v", farmID, day, err)
		default:
			hlog.CtxErrorf(ctx, "day start farm=%s day=%d: %v", farmID, day, err)
			failed = append(failed, fmt.Errorf("farm %s: %w", farmID, err))
		}
	}
	// Leave the day unrecorded so the next tick retries it.
	if len(failed) > 0 {
		return false, fmt.Errorf("day %d not recorded: %w", day, errors.Join(failed...))
	}
	if err := w.cfg.Days.SaveLastDay(ctx, day); err != nil {
		return true, err
	}
	return true, nil
}

func (w Watcher) farmIDs(ctx context.Context) ([]string, error) {
	if len(w.cfg.FarmIDs) > 0 {
		return w.cfg.FarmIDs, nil
	}
	if w.cfg.Farms == nil {
		return nil, nil
	}
	return w.cfg.Farms.ListFarmIDs(ctx)
}

// Run ticks until ctx is done.
func (w Watcher) Run(ctx context.Context) {
	hlog.CtxInfof(ctx, "day watcher started day_length=%s interval=%s", w.cfg.Clock.DayDuration(), w.cfg.Interval)
	t := time.NewTicker(w.cfg.Interval)
	defer t.Stop()
	for {
		if _, err := w.Tick(ctx); err != nil {
			hlog.CtxWarnf(ctx, "day watcher tick: %v", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
	}
}
