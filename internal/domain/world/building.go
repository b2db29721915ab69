package world

import "errors"

type BuildingKind string

const (
	BuildingPetBowl BuildingKind = "pet_bowl"
	BuildingCoop    BuildingKind = "coop"
	BuildingBarn    BuildingKind = "barn"
	BuildingSilo    BuildingKind = "silo"
	BuildingShed    BuildingKind = "shed"
	BuildingWell    BuildingKind = "well"
)

const (
	PetBowlWidth  = 2
	PetBowlHeight = 2
)

// Building is a placed farm structure. Anchor is the top-left footprint tile.
type Building struct {
	ID      string       `json:"id"`
	Kind    BuildingKind `json:"kind"`
	Anchor  Point        `json:"anchor"`
	Width   int          `json:"width"`
	Height  int          `json:"height"`
	Watered bool         `json:"watered"`
}

var ErrInvalidBuilding = errors.New("invalid building")

func IsKnownBuildingKind(kind BuildingKind) bool {
	switch kind {
	case BuildingPetBowl, BuildingCoop, BuildingBarn, BuildingSilo, BuildingShed, BuildingWell:
		return true
	}
	return false
}

func (b Building) Validate() error {
	if b.ID == "" || !IsKnownBuildingKind(b.Kind) || b.Width < 1 || b.Height < 1 {
		return ErrInvalidBuilding
	}
	if !b.Anchor.InBounds() || b.Width > MaxCoord || b.Height > MaxCoord {
		return ErrInvalidBuilding
	}
	return nil
}

func (b Building) IsPetBowl() bool {
	return b.Kind == BuildingPetBowl
}

// WaterTile is the tile holding the dish itself.
func (b Building) WaterTile() Point {
	return b.Anchor.Add(1, 0)
}

func (b Building) Occupies(p Point) bool {
	return p.X >= b.Anchor.X && p.X < b.Anchor.X+b.Width &&
		p.Y >= b.Anchor.Y && p.Y < b.Anchor.Y+b.Height
}

// Overlaps reports whether the two footprints share a tile.
func (b Building) Overlaps(other Building) bool {
	corner := Point{X: max(b.Anchor.X, other.Anchor.X), Y: max(b.Anchor.Y, other.Anchor.Y)}
	return b.Occupies(corner) && other.Occupies(corner)
}
