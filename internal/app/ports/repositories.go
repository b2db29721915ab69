package ports

import (
	"context"

	"petbowl/internal/domain/watering"
	"petbowl/internal/domain/world"
)

// FarmRepository owns the farm snapshot: weather, day, buildings and objects.
type FarmRepository interface {
	Create(ctx context.Context, snapshot world.Snapshot) error
	Get(ctx context.Context, farmID string) (world.Snapshot, error)
	ListFarmIDs(ctx context.Context) ([]string, error)
	SetWeather(ctx context.Context, farmID string, weather world.Weather) error
	SetDay(ctx context.Context, farmID string, day int) error
	SaveBuilding(ctx context.Context, farmID string, b world.Building) error
	DeleteBuilding(ctx context.Context, farmID, buildingID string) error
	SetWatered(ctx context.Context, farmID, buildingID string, watered bool) error
	SaveObject(ctx context.Context, farmID string, o world.Object) error
	DeleteObject(ctx context.Context, farmID, objectID string) error
}

type BowlRecordRepository interface {
	ListByFarm(ctx context.Context, farmID string) (map[string]watering.BowlRecord, error)
	Upsert(ctx context.Context, farmID string, records []watering.BowlRecord) error
}

type EventRepository interface {
	Append(ctx context.Context, farmID string, events []watering.DomainEvent) error
	ListByFarm(ctx context.Context, farmID string, limit int) ([]watering.DomainEvent, error)
}

// SettingsStore persists the player's watering config.
type SettingsStore interface {
	Load(ctx context.Context) (watering.Config, error)
	Save(ctx context.Context, cfg watering.Config) error
}

// DayStateStore remembers the last simulated day that fired a day start.
type DayStateStore interface {
	LastDay(ctx context.Context) (day int, ok bool, err error)
	SaveLastDay(ctx context.Context, day int) error
}
