package gormrepo

import (
	"context"
	"errors"
	"time"

	"petbowl/internal/adapter/repo/gorm/model"

	"gorm.io/gorm"
)

const dayStateKey = "global"

type DayStateRepo struct {
	db *gorm.DB
}

func NewDayStateRepo(db *gorm.DB) DayStateRepo {
	return DayStateRepo{db: db}
}

func (r DayStateRepo) LastDay(ctx context.Context) (int, bool, error) {
	var row model.WorldDayState
	err := r.db.WithContext(ctx).
		Where(&model.WorldDayState{StateKey: dayStateKey}).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return int(row.LastDay), true, nil
}

func (r DayStateRepo) SaveLastDay(ctx context.Context, day int) error {
	last, err := toInt32("last_day", day)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Where(&model.WorldDayState{StateKey: dayStateKey}).
		Assign(model.WorldDayState{
			LastDay:   last,
			UpdatedAt: time.Now(),
		}).
		FirstOrCreate(&model.WorldDayState{}).Error
}
