package memory

import (
	"context"

	"petbowl/internal/domain/watering"
)

type BowlRecordRepo struct {
	store *Store
}

func NewBowlRecordRepo(store *Store) BowlRecordRepo {
	return BowlRecordRepo{store: store}
}

func (r BowlRecordRepo) ListByFarm(_ context.Context, farmID string) (map[string]watering.BowlRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make(map[string]watering.BowlRecord, len(r.store.records[farmID]))
	for k, v := range r.store.records[farmID] {
		out[k] = v
	}
	return out, nil
}

func (r BowlRecordRepo) Upsert(_ context.Context, farmID string, records []watering.BowlRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	byBowl, ok := r.store.records[farmID]
	if !ok {
		byBowl = make(map[string]watering.BowlRecord, len(records))
		r.store.records[farmID] = byBowl
	}
	for _, rec := range records {
		byBowl[rec.BowlID] = rec
	}
	return nil
}
