package farm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"petbowl/internal/app/ports"
	"petbowl/internal/domain/world"
)

var ErrInvalidRequest = errors.New("invalid farm request")

// UseCase covers the host-side farm operations: creating a farm, placing
// and removing buildings and objects, and setting the weather.
type UseCase struct {
	Farms ports.FarmRepository
}

func (u UseCase) Create(ctx context.Context, farmID string) (world.Snapshot, error) {
	farmID = strings.TrimSpace(farmID)
	if farmID == "" {
		return world.Snapshot{}, ErrInvalidRequest
	}
	snapshot := world.Snapshot{
		FarmID:    farmID,
		Day:       1,
		Weather:   world.WeatherSunny,
		Buildings: []world.Building{},
		Objects:   []world.Object{},
	}
	if err := u.Farms.Create(ctx, snapshot); err != nil {
		return world.Snapshot{}, err
	}
	return snapshot, nil
}

func (u UseCase) Observe(ctx context.Context, farmID string) (world.Snapshot, error) {
	farmID = strings.TrimSpace(farmID)
	if farmID == "" {
		return world.Snapshot{}, ErrInvalidRequest
	}
	return u.Farms.Get(ctx, farmID)
}

func (u UseCase) PlaceBuilding(ctx context.Context, req PlaceBuildingRequest) (world.Building, error) {
	req.FarmID = strings.TrimSpace(req.FarmID)
	if req.FarmID == "" {
		return world.Building{}, ErrInvalidRequest
	}
	b := req.Building
	b.ID = strings.TrimSpace(b.ID)
	if b.IsPetBowl() && b.Width == 0 && b.Height == 0 {
		b.Width, b.Height = world.PetBowlWidth, world.PetBowlHeight
	}
	if err := b.Validate(); err != nil {
		return world.Building{}, err
	}
	snap, err := u.Farms.Get(ctx, req.FarmID)
	if err != nil {
		return world.Building{}, err
	}
	if _, ok := snap.BuildingByID(b.ID); ok {
		return world.Building{}, fmt.Errorf("place building %s: %w", b.ID, ports.ErrConflict)
	}
	for _, existing := range snap.Buildings {
		if existing.Overlaps(b) {
			return world.Building{}, fmt.Errorf("place building %s over %s: %w", b.ID, existing.ID, ports.ErrConflict)
		}
	}
	if err := u.Farms.SaveBuilding(ctx, req.FarmID, b); err != nil {
		return world.Building{}, fmt.Errorf("place building %s: %w", b.ID, err)
	}
	return b, nil
}

func (u UseCase) RemoveBuilding(ctx context.Context, req RemoveRequest) error {
	if strings.TrimSpace(req.FarmID) == "" || strings.TrimSpace(req.ID) == "" {
		return ErrInvalidRequest
	}
	return u.Farms.DeleteBuilding(ctx, strings.TrimSpace(req.FarmID), strings.TrimSpace(req.ID))
}

func (u UseCase) PlaceObject(ctx context.Context, req PlaceObjectRequest) (world.Object, error) {
	req.FarmID = strings.TrimSpace(req.FarmID)
	if req.FarmID == "" {
		return world.Object{}, ErrInvalidRequest
	}
	o := req.Object
	o.ID = strings.TrimSpace(o.ID)
	switch {
	case req.Radius != nil:
		o.Radius = *req.Radius
	case o.IsSprinkler():
		o.Radius = world.SprinklerRadius(o.Kind, req.Nozzle)
	default:
		o.Radius = 0
	}
	if err := o.Validate(); err != nil {
		return world.Object{}, err
	}
	snap, err := u.Farms.Get(ctx, req.FarmID)
	if err != nil {
		return world.Object{}, err
	}
	if taken, ok := snap.ObjectAt(o.Position); ok {
		return world.Object{}, fmt.Errorf("place object %s on tile of %s: %w", o.ID, taken.ID, ports.ErrConflict)
	}
	if err := u.Farms.SaveObject(ctx, req.FarmID, o); err != nil {
		return world.Object{}, fmt.Errorf("place object %s: %w", o.ID, err)
	}
	return o, nil
}

func (u UseCase) RemoveObject(ctx context.Context, req RemoveRequest) error {
	if strings.TrimSpace(req.FarmID) == "" || strings.TrimSpace(req.ID) == "" {
		return ErrInvalidRequest
	}
	return u.Farms.DeleteObject(ctx, strings.TrimSpace(req.FarmID), strings.TrimSpace(req.ID))
}

func (u UseCase) SetWeather(ctx context.Context, req WeatherRequest) (world.Weather, error) {
	req.FarmID = strings.TrimSpace(req.FarmID)
	if req.FarmID == "" {
		return "", ErrInvalidRequest
	}
	w, err := world.ParseWeather(req.Weather)
	if err != nil {
		return "", err
	}
	if err := u.Farms.SetWeather(ctx, req.FarmID, w); err != nil {
		return "", err
	}
	return w, nil
}
