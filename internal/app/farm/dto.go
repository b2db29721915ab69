package farm

import "petbowl/internal/domain/world"

type PlaceBuildingRequest struct {
	FarmID   string
	Building world.Building
}

type PlaceObjectRequest struct {
	FarmID string
	Object world.Object
	// Radius overrides the derived sprinkler radius when set.
	Radius *float64
	Nozzle bool
}

type RemoveRequest struct {
	FarmID string
	ID     string
}

type WeatherRequest struct {
	FarmID  string
	Weather string
}
