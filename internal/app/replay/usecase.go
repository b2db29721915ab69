package replay

import (
	"context"
	"errors"
	"sort"
	"strings"

	"petbowl/internal/app/ports"
	"petbowl/internal/domain/watering"
)

const (
	defaultLimit = 20
	maxLimit     = 200
)

var ErrInvalidRequest = errors.New("invalid replay request")

type UseCase struct {
	Events ports.EventRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.FarmID = strings.TrimSpace(req.FarmID)
	if req.FarmID == "" || req.FromDay < 0 || req.ToDay < 0 {
		return Response{}, ErrInvalidRequest
	}
	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	events, err := u.Events.ListByFarm(ctx, req.FarmID, limit)
	if err != nil {
		return Response{}, err
	}
	events = filterByDayWindow(events, req.FromDay, req.ToDay)
	return Response{Events: events, LatestBowls: reconstruct(events)}, nil
}

func filterByDayWindow(events []watering.DomainEvent, from, to int) []watering.DomainEvent {
	if from <= 0 && to <= 0 {
		return events
	}
	out := make([]watering.DomainEvent, 0, len(events))
	for _, evt := range events {
		day := int(num(evt.Payload["day"]))
		if from > 0 && day < from {
			continue
		}
		if to > 0 && day > to {
			continue
		}
		out = append(out, evt)
	}
	return out
}

// reconstruct folds newest-first events into the latest state per bowl.
func reconstruct(events []watering.DomainEvent) []BowlState {
	latest := map[string]BowlState{}
	for i := len(events) - 1; i >= 0; i-- {
		evt := events[i]
		if evt.Type != watering.EventDayStarted {
			continue
		}
		day := int(num(evt.Payload["day"]))
		for _, entry := range bowlEntries(evt.Payload["bowls"]) {
			id, _ := entry["bowl_id"].(string)
			if id == "" {
				continue
			}
			filled, _ := entry["filled"].(bool)
			reason, _ := entry["reason"].(string)
			latest[id] = BowlState{BowlID: id, Filled: filled, Reason: reason, LastDay: day}
		}
	}
	out := make([]BowlState, 0, len(latest))
	for _, s := range latest {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BowlID < out[j].BowlID })
	return out
}

// bowlEntries accepts both in-memory payloads and ones decoded from JSON.
func bowlEntries(v any) []map[string]any {
	switch list := v.(type) {
	case []map[string]any:
		return list
	case []any:
		out := make([]map[string]any, 0, len(list))
		for _, item := range list {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	default:
		return nil
	}
}

func num(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}
