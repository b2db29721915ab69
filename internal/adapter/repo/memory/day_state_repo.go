package memory

import "context"

type DayStateRepo struct {
	store *Store
}

func NewDayStateRepo(store *Store) DayStateRepo {
	return DayStateRepo{store: store}
}

func (r DayStateRepo) LastDay(_ context.Context) (int, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.lastDay, r.store.hasDay, nil
}

func (r DayStateRepo) SaveLastDay(_ context.Context, day int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.lastDay = day
	r.store.hasDay = true
	return nil
}
