package gormrepo

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"petbowl/db/migrations"
	"petbowl/internal/app/ports"
	"petbowl/internal/domain/watering"
	"petbowl/internal/domain/world"

	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("PETBOWL_DB_DSN")
	if dsn == "" {
		t.Skip("PETBOWL_DB_DSN is required for integration test")
	}
	db, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	if err := ApplyMigrations(context.Background(), db, migrations.FS); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func resetFarm(db *gorm.DB, farmID string) {
	_ = db.Exec("DELETE FROM domain_events WHERE farm_id = ?", farmID).Error
	_ = db.Exec("DELETE FROM farms WHERE farm_id = ?", farmID).Error
}

func TestFarmRepo_RoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	farmID := "it-farm-roundtrip"
	resetFarm(db, farmID)

	repo := NewFarmRepo(db)
	if err := repo.Create(ctx, world.Snapshot{FarmID: farmID, Day: 1, Weather: world.WeatherSunny}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, world.Snapshot{FarmID: farmID, Day: 1, Weather: world.WeatherSunny}); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if err := repo.SaveBuilding(ctx, farmID, world.Building{ID: "bowl", Kind: world.BuildingPetBowl, Anchor: world.Point{X: 5, Y: 5}, Width: 2, Height: 2}); err != nil {
		t.Fatalf("save building: %v", err)
	}
	if err := repo.SaveObject(ctx, farmID, world.Object{ID: "s1", Kind: world.ObjectQualitySprinkler, Position: world.Point{X: 6, Y: 6}, Radius: 1}); err != nil {
		t.Fatalf("save object: %v", err)
	}
	if err := repo.SaveObject(ctx, farmID, world.Object{ID: "s2", Kind: world.ObjectSprinkler, Position: world.Point{X: 6, Y: 6}}); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected ErrConflict for occupied tile, got %v", err)
	}
	if err := repo.SetWatered(ctx, farmID, "bowl", true); err != nil {
		t.Fatalf("set watered: %v", err)
	}
	if err := repo.SetWeather(ctx, farmID, world.WeatherSnow); err != nil {
		t.Fatalf("set weather: %v", err)
	}

	got, err := repo.Get(ctx, farmID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Weather != world.WeatherSnow || len(got.Buildings) != 1 || !got.Buildings[0].Watered || len(got.Objects) != 1 {
		t.Fatalf("unexpected snapshot %+v", got)
	}
	if got.Objects[0].Radius != 1 {
		t.Fatalf("expected radius 1, got %v", got.Objects[0].Radius)
	}
	if err := repo.DeleteObject(ctx, farmID, "missing"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := repo.Get(ctx, "it-no-such-farm"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown farm, got %v", err)
	}
}

func TestBowlRecordAndEventRepos(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	farmID := "it-farm-records"
	resetFarm(db, farmID)
	farms := NewFarmRepo(db)
	if err := farms.Create(ctx, world.Snapshot{FarmID: farmID, Day: 1, Weather: world.WeatherSunny}); err != nil {
		t.Fatalf("create farm: %v", err)
	}
	if err := farms.SaveBuilding(ctx, farmID, world.Building{ID: "bowl", Kind: world.BuildingPetBowl, Width: 2, Height: 2}); err != nil {
		t.Fatalf("save bowl: %v", err)
	}

	records := NewBowlRecordRepo(db)
	err := NewTxManager(db).RunInTx(ctx, func(txCtx context.Context) error {
		if err := records.Upsert(txCtx, farmID, []watering.BowlRecord{{BowlID: "bowl", LastFilledDay: 2, StartedWatered: true}}); err != nil {
			return err
		}
		return records.Upsert(txCtx, farmID, []watering.BowlRecord{{BowlID: "bowl", LastFilledDay: 3}})
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	got, err := records.ListByFarm(ctx, farmID)
	if err != nil {
		t.Fatalf("list records: %v", err)
	}
	if got["bowl"].LastFilledDay != 3 || got["bowl"].StartedWatered {
		t.Fatalf("unexpected record %+v", got["bowl"])
	}

	if err := farms.DeleteBuilding(ctx, farmID, "bowl"); err != nil {
		t.Fatalf("delete bowl: %v", err)
	}
	got, err = records.ListByFarm(ctx, farmID)
	if err != nil {
		t.Fatalf("list records after delete: %v", err)
	}
	if _, ok := got["bowl"]; ok {
		t.Fatalf("expected bowl record removed with the bowl, got %+v", got)
	}

	events := NewEventRepo(db)
	base := time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC)
	for day := 1; day <= 2; day++ {
		err := events.Append(ctx, farmID, []watering.DomainEvent{{
			Type:       watering.EventDayStarted,
			OccurredAt: base.Add(time.Duration(day) * time.Hour),
			Payload:    map[string]any{"day": day},
		}})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	list, err := events.ListByFarm(ctx, farmID, 1)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(list) != 1 || list[0].Payload["day"] != float64(2) {
		t.Fatalf("expected newest event day 2, got %+v", list)
	}
}

func TestDayStateRepo_SaveAndLoad(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	_ = db.Exec("DELETE FROM world_day_states").Error

	repo := NewDayStateRepo(db)
	if _, ok, err := repo.LastDay(ctx); err != nil || ok {
		t.Fatalf("expected no state, ok=%v err=%v", ok, err)
	}
	if err := repo.SaveLastDay(ctx, 4); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.SaveLastDay(ctx, 5); err != nil {
		t.Fatalf("save again: %v", err)
	}
	day, ok, err := repo.LastDay(ctx)
	if err != nil || !ok || day != 5 {
		t.Fatalf("expected day 5, got %d ok=%v err=%v", day, ok, err)
	}
}

func TestEventRepo_ListRejectsUndecodablePayload(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	farmID := "it-farm-bad-payload"
	resetFarm(db, farmID)

	err := db.Exec(
		"INSERT INTO domain_events(farm_id, type, occurred_at, payload) VALUES (?, ?, ?, ?::jsonb)",
		farmID, watering.EventDayStarted, time.Now(), "[1,2]",
	).Error
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := NewEventRepo(db).ListByFarm(ctx, farmID, 10); err == nil {
		t.Fatalf("expected decode error for non-object payload")
	}
}

func TestFarmRepo_DeleteBuildingMissing(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	farmID := "it-farm-delete"
	resetFarm(db, farmID)

	repo := NewFarmRepo(db)
	if err := repo.Create(ctx, world.Snapshot{FarmID: farmID, Day: 1, Weather: world.WeatherSunny}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.DeleteBuilding(ctx, farmID, "missing"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
