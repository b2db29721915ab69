package memory

import (
	"sync"

	"petbowl/internal/domain/watering"
	"petbowl/internal/domain/world"
)

type Store struct {
	txMu sync.Mutex

	mu       sync.RWMutex
	farms    map[string]world.Snapshot
	records  map[string]map[string]watering.BowlRecord
	events   map[string][]watering.DomainEvent
	lastDay  int
	hasDay   bool
	settings *watering.Config
}

func NewStore() *Store {
	return &Store{
		farms:   make(map[string]world.Snapshot),
		records: make(map[string]map[string]watering.BowlRecord),
		events:  make(map[string][]watering.DomainEvent),
	}
}

func (s *Store) SeedFarm(snapshot world.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.farms[snapshot.FarmID] = cloneSnapshot(snapshot)
}

func cloneSnapshot(in world.Snapshot) world.Snapshot {
	out := in
	out.Buildings = append([]world.Building(nil), in.Buildings...)
	out.Objects = append([]world.Object(nil), in.Objects...)
	return out
}
