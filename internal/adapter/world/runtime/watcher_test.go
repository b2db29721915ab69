package runtime

import (
	"context"
	"errors"
	"testing"
	"time"

	"petbowl/internal/adapter/repo/memory"
	"petbowl/internal/app/daystart"
	"petbowl/internal/app/ports"
	"petbowl/internal/domain/world"
)

type fakeStarter struct {
	calls []daystart.Request
	errs  map[string]error
}

func (s *fakeStarter) Execute(_ context.Context, req daystart.Request) (daystart.Response, error) {
	s.calls = append(s.calls, req)
	if err := s.errs[req.FarmID]; err != nil {
		return daystart.Response{}, err
	}
	return daystart.Response{FarmID: req.FarmID, Day: req.Day}, nil
}

type fakeLister struct{ ids []string }

func (l fakeLister) ListFarmIDs(context.Context) ([]string, error) { return l.ids, nil }

func TestWatcher_FiresOncePerDay(t *testing.T) {
	start := time.Date(2026, 2, 17, 0, 0, 0, 0, time.UTC)
	now := start.Add(time.Minute)
	store := memory.NewStore()
	starter := &fakeStarter{}
	w := NewWatcher(Config{
		Clock:   world.NewClock(world.ClockConfig{StartAt: start, DayDuration: 20 * time.Minute}),
		Days:    memory.NewDayStateRepo(store),
		Starter: starter,
		Farms:   fakeLister{ids: []string{"a", "b"}},
		Now:     func() time.Time { return now },
	})

	fired, err := w.Tick(context.Background())
	if err != nil || !fired {
		t.Fatalf("expected first tick to fire, fired=%v err=%v", fired, err)
	}
	if len(starter.calls) != 2 || starter.calls[0].Day != 1 {
		t.Fatalf("unexpected calls %+v", starter.calls)
	}

	now = start.Add(10 * time.Minute)
	if fired, _ := w.Tick(context.Background()); fired {
		t.Fatalf("expected no refire within the same day")
	}

	now = start.Add(21 * time.Minute)
	if fired, _ := w.Tick(context.Background()); !fired {
		t.Fatalf("expected fire on day 2")
	}
	if last := starter.calls[len(starter.calls)-1]; last.Day != 2 || last.FarmID != "b" {
		t.Fatalf("unexpected last call %+v", last)
	}
}

func TestWatcher_ResumesFromPersistedDay(t *testing.T) {
	start := time.Date(2026, 2, 17, 0, 0, 0, 0, time.UTC)
	store := memory.NewStore()
	days := memory.NewDayStateRepo(store)
	_ = days.SaveLastDay(context.Background(), 3)
	starter := &fakeStarter{}
	w := NewWatcher(Config{
		Clock:   world.NewClock(world.ClockConfig{StartAt: start, DayDuration: 20 * time.Minute}),
		Days:    days,
		Starter: starter,
		FarmIDs: []string{"home"},
		Now:     func() time.Time { return start.Add(50 * time.Minute) },
	})
	if fired, _ := w.Tick(context.Background()); fired || len(starter.calls) != 0 {
		t.Fatalf("expected restart on day 3 not to refire")
	}
}

func TestWatcher_MissingFarmDoesNotBlockDay(t *testing.T) {
	start := time.Date(2026, 2, 17, 0, 0, 0, 0, time.UTC)
	days := memory.NewDayStateRepo(memory.NewStore())
	starter := &fakeStarter{errs: map[string]error{
		"gone":  ports.ErrNotFound,
		"ahead": daystart.ErrStaleDay,
	}}
	w := NewWatcher(Config{
		Clock:   world.NewClock(world.ClockConfig{StartAt: start, DayDuration: 20 * time.Minute}),
		Days:    days,
		Starter: starter,
		FarmIDs: []string{"gone", "ahead", "home"},
		Now:     func() time.Time { return start },
	})
	fired, err := w.Tick(context.Background())
	if err != nil || !fired {
		t.Fatalf("expected tick to fire, fired=%v err=%v", fired, err)
	}
	if len(starter.calls) != 3 {
		t.Fatalf("expected every farm attempted, got %+v", starter.calls)
	}
	if day, ok, _ := days.LastDay(context.Background()); !ok || day != 1 {
		t.Fatalf("expected day 1 recorded, got %d ok=%v", day, ok)
	}
}

func TestWatcher_TransientErrorRetriesDay(t *testing.T) {
	start := time.Date(2026, 2, 17, 0, 0, 0, 0, time.UTC)
	days := memory.NewDayStateRepo(memory.NewStore())
	dbDown := errors.New("connection reset")
	starter := &fakeStarter{errs: map[string]error{"home": dbDown}}
	w := NewWatcher(Config{
		Clock:   world.NewClock(world.ClockConfig{StartAt: start, DayDuration: 20 * time.Minute}),
		Days:    days,
		Starter: starter,
		FarmIDs: []string{"home", "other"},
		Now:     func() time.Time { return start },
	})

	fired, err := w.Tick(context.Background())
	if !errors.Is(err, dbDown) || fired {
		t.Fatalf("expected transient error surfaced, fired=%v err=%v", fired, err)
	}
	if _, ok, _ := days.LastDay(context.Background()); ok {
		t.Fatalf("expected day left unrecorded after failure")
	}

	delete(starter.errs, "home")
	fired, err = w.Tick(context.Background())
	if err != nil || !fired {
		t.Fatalf("expected retry to fire, fired=%v err=%v", fired, err)
	}
	if day, ok, _ := days.LastDay(context.Background()); !ok || day != 1 {
		t.Fatalf("expected day 1 recorded after retry, got %d ok=%v", day, ok)
	}
	if len(starter.calls) != 4 {
		t.Fatalf("expected both farms run on each tick, got %+v", starter.calls)
	}
}

func TestWatcher_RunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	starter := &fakeStarter{}
	w := NewWatcher(Config{
		Days:     memory.NewDayStateRepo(memory.NewStore()),
		Starter:  starter,
		FarmIDs:  []string{"home"},
		Interval: time.Millisecond,
	})
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("expected Run to return after cancel")
	}
}
