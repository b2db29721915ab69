package gormrepo

import (
	"context"
	"time"

	"petbowl/internal/adapter/repo/gorm/model"
	"petbowl/internal/domain/watering"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BowlRecordRepo struct {
	db *gorm.DB
}

func NewBowlRecordRepo(db *gorm.DB) BowlRecordRepo {
	return BowlRecordRepo{db: db}
}

func (r BowlRecordRepo) ListByFarm(ctx context.Context, farmID string) (map[string]watering.BowlRecord, error) {
	var rows []model.BowlRecord
	if err := getDBFromCtx(ctx, r.db).Where(&model.BowlRecord{FarmID: farmID}).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]watering.BowlRecord, len(rows))
	for _, row := range rows {
		out[row.BowlID] = watering.BowlRecord{
			BowlID:         row.BowlID,
			LastFilledDay:  int(row.LastFilledDay),
			StartedWatered: row.StartedWatered,
		}
	}
	return out, nil
}

func (r BowlRecordRepo) Upsert(ctx context.Context, farmID string, records []watering.BowlRecord) error {
	if len(records) == 0 {
		return nil
	}
	now := time.Now()
	rows := make([]model.BowlRecord, 0, len(records))
	for _, rec := range records {
		lastFilled, err := toInt32("last_filled_day", rec.LastFilledDay)
		if err != nil {
			return err
		}
		rows = append(rows, model.BowlRecord{
			FarmID:         farmID,
			BowlID:         rec.BowlID,
			LastFilledDay:  lastFilled,
			StartedWatered: rec.StartedWatered,
			UpdatedAt:      now,
		})
	}
	return getDBFromCtx(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "farm_id"}, {Name: "bowl_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"last_filled_day", "started_watered", "updated_at"}),
	}).Create(&rows).Error
}
