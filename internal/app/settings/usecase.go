package settings

import (
	"context"

	"petbowl/internal/app/ports"
	"petbowl/internal/domain/watering"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// UseCase reads and writes the player's watering config. It stands in for
// the in-game config menu: Update is "save", Reset restores defaults.
type UseCase struct {
	Store ports.SettingsStore
}

func (u UseCase) Get(ctx context.Context) (watering.Config, error) {
	return u.Store.Load(ctx)
}

func (u UseCase) Update(ctx context.Context, patch watering.Patch) (watering.Config, error) {
	current, err := u.Store.Load(ctx)
	if err != nil {
		return watering.Config{}, err
	}
	next, err := current.Apply(patch)
	if err != nil {
		return watering.Config{}, err
	}
	if err := u.Store.Save(ctx, next); err != nil {
		return watering.Config{}, err
	}
	hlog.CtxInfof(ctx, "settings updated: %+v", next)
	return next, nil
}

func (u UseCase) Reset(ctx context.Context) (watering.Config, error) {
	cfg := watering.DefaultConfig()
	if err := u.Store.Save(ctx, cfg); err != nil {
		return watering.Config{}, err
	}
	hlog.CtxInfof(ctx, "settings reset to defaults")
	return cfg, nil
}
