package memory

import (
	"context"

	"petbowl/internal/app/ports"
	"petbowl/internal/domain/watering"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(_ context.Context, farmID string, events []watering.DomainEvent) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.events[farmID] = append(r.store.events[farmID], events...)
	return nil
}

// ListByFarm returns newest first.
func (r EventRepo) ListByFarm(_ context.Context, farmID string, limit int) ([]watering.DomainEvent, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	all := r.store.events[farmID]
	if len(all) == 0 {
		return nil, ports.ErrNotFound
	}
	n := len(all)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]watering.DomainEvent, 0, n)
	for i := len(all) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, all[i])
	}
	return out, nil
}
