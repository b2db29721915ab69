package memory

import (
	"context"
	"sort"

	"petbowl/internal/app/ports"
	"petbowl/internal/domain/world"
)

type FarmRepo struct {
	store *Store
}

func NewFarmRepo(store *Store) FarmRepo {
	return FarmRepo{store: store}
}

func (r FarmRepo) Create(_ context.Context, snapshot world.Snapshot) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, exists := r.store.farms[snapshot.FarmID]; exists {
		return ports.ErrConflict
	}
	r.store.farms[snapshot.FarmID] = cloneSnapshot(snapshot)
	return nil
}

func (r FarmRepo) Get(_ context.Context, farmID string) (world.Snapshot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	farm, ok := r.store.farms[farmID]
	if !ok {
		return world.Snapshot{}, ports.ErrNotFound
	}
	return cloneSnapshot(farm), nil
}

func (r FarmRepo) ListFarmIDs(_ context.Context) ([]string, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]string, 0, len(r.store.farms))
	for id := range r.store.farms {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}

func (r FarmRepo) SetWeather(_ context.Context, farmID string, weather world.Weather) error {
	return r.update(farmID, func(f *world.Snapshot) error {
		f.Weather = weather
		return nil
	})
}

func (r FarmRepo) SetDay(_ context.Context, farmID string, day int) error {
	return r.update(farmID, func(f *world.Snapshot) error {
		f.Day = day
		return nil
	})
}

func (r FarmRepo) SaveBuilding(_ context.Context, farmID string, b world.Building) error {
	return r.update(farmID, func(f *world.Snapshot) error {
		for _, existing := range f.Buildings {
			if existing.ID == b.ID {
				return ports.ErrConflict
			}
		}
		f.Buildings = append(f.Buildings, b)
		return nil
	})
}

func (r FarmRepo) DeleteBuilding(_ context.Context, farmID, buildingID string) error {
	return r.update(farmID, func(f *world.Snapshot) error {
		for i, b := range f.Buildings {
			if b.ID == buildingID {
				f.Buildings = append(f.Buildings[:i], f.Buildings[i+1:]...)
				delete(r.store.records[farmID], buildingID)
				return nil
			}
		}
		return ports.ErrNotFound
	})
}

func (r FarmRepo) SetWatered(_ context.Context, farmID, buildingID string, watered bool) error {
	return r.update(farmID, func(f *world.Snapshot) error {
		for i := range f.Buildings {
			if f.Buildings[i].ID == buildingID {
				f.Buildings[i].Watered = watered
				return nil
			}
		}
		return ports.ErrNotFound
	})
}

func (r FarmRepo) SaveObject(_ context.Context, farmID string, o world.Object) error {
	return r.update(farmID, func(f *world.Snapshot) error {
		for _, existing := range f.Objects {
			if existing.ID == o.ID || existing.Position == o.Position {
				return ports.ErrConflict
			}
		}
		f.Objects = append(f.Objects, o)
		return nil
	})
}

func (r FarmRepo) DeleteObject(_ context.Context, farmID, objectID string) error {
	return r.update(farmID, func(f *world.Snapshot) error {
		for i, o := range f.Objects {
			if o.ID == objectID {
				f.Objects = append(f.Objects[:i], f.Objects[i+1:]...)
				return nil
			}
		}
		return ports.ErrNotFound
	})
}

func (r FarmRepo) update(farmID string, fn func(f *world.Snapshot) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	farm, ok := r.store.farms[farmID]
	if !ok {
		return ports.ErrNotFound
	}
	farm = cloneSnapshot(farm)
	if err := fn(&farm); err != nil {
		return err
	}
	r.store.farms[farmID] = farm
	return nil
}
