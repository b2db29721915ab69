package gormrepo

import (
	"context"
	"errors"
	"time"

	"petbowl/internal/adapter/repo/gorm/model"
	"petbowl/internal/app/ports"
	"petbowl/internal/domain/world"

	"gorm.io/gorm"
)

type FarmRepo struct {
	db *gorm.DB
}

func NewFarmRepo(db *gorm.DB) FarmRepo {
	return FarmRepo{db: db}
}

func (r FarmRepo) Create(ctx context.Context, snapshot world.Snapshot) error {
	day, err := toInt32("day", snapshot.Day)
	if err != nil {
		return err
	}
	m := model.Farm{
		FarmID:  snapshot.FarmID,
		Day:     day,
		Weather: string(snapshot.Weather),
	}
	return translate(getDBFromCtx(ctx, r.db).Create(&m).Error)
}

func (r FarmRepo) Get(ctx context.Context, farmID string) (world.Snapshot, error) {
	db := getDBFromCtx(ctx, r.db)
	var farm model.Farm
	if err := db.Where(&model.Farm{FarmID: farmID}).First(&farm).Error; err != nil {
		return world.Snapshot{}, translate(err)
	}

	var buildings []model.FarmBuilding
	if err := db.Where(&model.FarmBuilding{FarmID: farmID}).Order("building_id").Find(&buildings).Error; err != nil {
		return world.Snapshot{}, err
	}
	var objects []model.FarmObject
	if err := db.Where(&model.FarmObject{FarmID: farmID}).Order("object_id").Find(&objects).Error; err != nil {
		return world.Snapshot{}, err
	}

	out := world.Snapshot{
		FarmID:    farm.FarmID,
		Day:       int(farm.Day),
		Weather:   world.Weather(farm.Weather),
		Buildings: make([]world.Building, 0, len(buildings)),
		Objects:   make([]world.Object, 0, len(objects)),
	}
	for _, b := range buildings {
		out.Buildings = append(out.Buildings, world.Building{
			ID:      b.BuildingID,
			Kind:    world.BuildingKind(b.Kind),
			Anchor:  world.Point{X: int(b.X), Y: int(b.Y)},
			Width:   int(b.Width),
			Height:  int(b.Height),
			Watered: b.Watered,
		})
	}
	for _, o := range objects {
		out.Objects = append(out.Objects, world.Object{
			ID:       o.ObjectID,
			Kind:     world.ObjectKind(o.Kind),
			Position: world.Point{X: int(o.X), Y: int(o.Y)},
			Radius:   o.Radius,
		})
	}
	return out, nil
}

func (r FarmRepo) ListFarmIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := getDBFromCtx(ctx, r.db).Model(&model.Farm{}).Order("farm_id").Pluck("farm_id", &ids).Error
	return ids, err
}

func (r FarmRepo) SetWeather(ctx context.Context, farmID string, weather world.Weather) error {
	return r.updateFarm(ctx, farmID, map[string]any{"weather": string(weather), "updated_at": time.Now()})
}

func (r FarmRepo) SetDay(ctx context.Context, farmID string, day int) error {
	d, err := toInt32("day", day)
	if err != nil {
		return err
	}
	return r.updateFarm(ctx, farmID, map[string]any{"day": d, "updated_at": time.Now()})
}

func (r FarmRepo) updateFarm(ctx context.Context, farmID string, updates map[string]any) error {
	res := getDBFromCtx(ctx, r.db).Model(&model.Farm{}).Where("farm_id = ?", farmID).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r FarmRepo) SaveBuilding(ctx context.Context, farmID string, b world.Building) error {
	dims, err := toInt32s([]string{"x", "y", "width", "height"}, b.Anchor.X, b.Anchor.Y, b.Width, b.Height)
	if err != nil {
		return err
	}
	if err := r.requireFarm(ctx, farmID); err != nil {
		return err
	}
	m := model.FarmBuilding{
		FarmID:     farmID,
		BuildingID: b.ID,
		Kind:       string(b.Kind),
		X:          dims[0],
		Y:          dims[1],
		Width:      dims[2],
		Height:     dims[3],
		Watered:    b.Watered,
	}
	return translate(getDBFromCtx(ctx, r.db).Create(&m).Error)
}

// DeleteBuilding also drops the bowl's fill bookkeeping so a later bowl
// reusing the ID starts clean.
func (r FarmRepo) DeleteBuilding(ctx context.Context, farmID, buildingID string) error {
	return getDBFromCtx(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("farm_id = ? AND building_id = ?", farmID, buildingID).
			Delete(&model.FarmBuilding{})
		if err := affected(res); err != nil {
			return err
		}
		return tx.Where("farm_id = ? AND bowl_id = ?", farmID, buildingID).
			Delete(&model.BowlRecord{}).Error
	})
}

func (r FarmRepo) SetWatered(ctx context.Context, farmID, buildingID string, watered bool) error {
	res := getDBFromCtx(ctx, r.db).
		Model(&model.FarmBuilding{}).
		Where("farm_id = ? AND building_id = ?", farmID, buildingID).
		Update("watered", watered)
	return affected(res)
}

func (r FarmRepo) SaveObject(ctx context.Context, farmID string, o world.Object) error {
	pos, err := toInt32s([]string{"x", "y"}, o.Position.X, o.Position.Y)
	if err != nil {
		return err
	}
	if err := r.requireFarm(ctx, farmID); err != nil {
		return err
	}
	m := model.FarmObject{
		FarmID:   farmID,
		ObjectID: o.ID,
		Kind:     string(o.Kind),
		X:        pos[0],
		Y:        pos[1],
		Radius:   o.Radius,
	}
	return translate(getDBFromCtx(ctx, r.db).Create(&m).Error)
}

func (r FarmRepo) DeleteObject(ctx context.Context, farmID, objectID string) error {
	res := getDBFromCtx(ctx, r.db).
		Where("farm_id = ? AND object_id = ?", farmID, objectID).
		Delete(&model.FarmObject{})
	return affected(res)
}

func (r FarmRepo) requireFarm(ctx context.Context, farmID string) error {
	var count int64
	if err := getDBFromCtx(ctx, r.db).Model(&model.Farm{}).Where("farm_id = ?", farmID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ports.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ports.ErrConflict
	default:
		return err
	}
}

func affected(res *gorm.DB) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}
