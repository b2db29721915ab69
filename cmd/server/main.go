package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"petbowl/db/migrations"
	httpadapter "petbowl/internal/adapter/http"
	metricsinmem "petbowl/internal/adapter/metrics/inmemory"
	gormrepo "petbowl/internal/adapter/repo/gorm"
	"petbowl/internal/adapter/repo/memory"
	gdatasettings "petbowl/internal/adapter/settings/gdata"
	worldruntime "petbowl/internal/adapter/world/runtime"
	"petbowl/internal/app/daystart"
	"petbowl/internal/app/farm"
	"petbowl/internal/app/ports"
	"petbowl/internal/app/replay"
	"petbowl/internal/app/settings"
	"petbowl/internal/domain/world"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type repos struct {
	tx      ports.TxManager
	farms   ports.FarmRepository
	records ports.BowlRecordRepository
	events  ports.EventRepository
	days    ports.DayStateStore
}

func main() {
	hlog.SetLevel(logLevel(os.Getenv("PETBOWL_LOG_LEVEL")))

	r := mustBuildRepos()
	settingsStore := mustOpenSettings()
	kpiRecorder := metricsinmem.NewRecorder()

	farmUC := farm.UseCase{Farms: r.farms}
	dayStartUC := daystart.UseCase{
		TxManager: r.tx,
		Farms:     r.farms,
		Records:   r.records,
		Events:    r.events,
		Settings:  settingsStore,
		Metrics:   kpiRecorder,
		Now:       time.Now,
		Serial:    &sync.Mutex{},
	}
	seedFarms(farmUC, farmIDsEnv("PETBOWL_FARMS"))

	h := httpadapter.Handler{
		FarmUC:     farmUC,
		DayStartUC: dayStartUC,
		SettingsUC: settings.UseCase{Store: settingsStore},
		ReplayUC:   replay.UseCase{Events: r.events},
		KPI:        kpiRecorder,
	}

	if watchSeconds := intEnv("PETBOWL_WATCH_SECONDS", 5); watchSeconds > 0 {
		watcher := worldruntime.NewWatcher(worldruntime.Config{
			Clock: world.NewClock(world.ClockConfig{
				StartAt:     time.Unix(int64(intEnv("PETBOWL_CLOCK_START_UNIX", 0)), 0),
				DayDuration: time.Duration(intEnv("PETBOWL_DAY_SECONDS", int((20 * time.Minute).Seconds()))) * time.Second,
			}),
			Days:     r.days,
			Starter:  dayStartUC,
			Farms:    r.farms,
			Interval: time.Duration(watchSeconds) * time.Second,
		})
		go watcher.Run(context.Background())
	}

	addr := envOr("PETBOWL_ADDR", ":8080")
	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	hlog.Infof("petbowl server listening on %s", addr)
	s.Spin()
}

// mustBuildRepos uses postgres when PETBOWL_DB_DSN is set, memory otherwise.
func mustBuildRepos() repos {
	dsn := strings.TrimSpace(os.Getenv("PETBOWL_DB_DSN"))
	if dsn == "" {
		hlog.Warnf("PETBOWL_DB_DSN not set, farm state is kept in memory")
		store := memory.NewStore()
		return repos{
			tx:      memory.NewTxManager(store),
			farms:   memory.NewFarmRepo(store),
			records: memory.NewBowlRecordRepo(store),
			events:  memory.NewEventRepo(store),
			days:    memory.NewDayStateRepo(store),
		}
	}

	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		hlog.Fatalf("open postgres: %v", err)
	}
	var migrationFS fs.FS = migrations.FS
	if dir := strings.TrimSpace(os.Getenv("PETBOWL_MIGRATIONS_DIR")); dir != "" {
		migrationFS = os.DirFS(dir)
	}
	if err := gormrepo.ApplyMigrations(context.Background(), db, migrationFS); err != nil {
		hlog.Fatalf("apply migrations: %v", err)
	}
	return repos{
		tx:      gormrepo.NewTxManager(db),
		farms:   gormrepo.NewFarmRepo(db),
		records: gormrepo.NewBowlRecordRepo(db),
		events:  gormrepo.NewEventRepo(db),
		days:    gormrepo.NewDayStateRepo(db),
	}
}

func mustOpenSettings() *gdatasettings.Store {
	appName := envOr("PETBOWL_APP_NAME", "petbowl")
	store, err := gdatasettings.Open(appName)
	if err != nil {
		hlog.Warnf("settings storage unavailable (%v), keeping settings in memory", err)
		return gdatasettings.NewStore(nil)
	}
	return store
}

func seedFarms(uc farm.UseCase, ids []string) {
	for _, id := range ids {
		if _, err := uc.Create(context.Background(), id); err != nil && !errors.Is(err, ports.ErrConflict) {
			hlog.Fatalf("seed farm %s: %v", id, err)
		}
	}
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func farmIDsEnv(key string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return []string{"home"}
	}
	out := []string{}
	seen := map[string]bool{}
	for _, id := range strings.Split(raw, ",") {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func logLevel(raw string) hlog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return hlog.LevelDebug
	case "warn":
		return hlog.LevelWarn
	case "error":
		return hlog.LevelError
	default:
		return hlog.LevelInfo
	}
}
