package world

import "errors"

type ObjectKind string

const (
	ObjectSprinkler        ObjectKind = "sprinkler"
	ObjectQualitySprinkler ObjectKind = "quality_sprinkler"
	ObjectIridiumSprinkler ObjectKind = "iridium_sprinkler"
	ObjectChest            ObjectKind = "chest"
	ObjectScarecrow        ObjectKind = "scarecrow"
	ObjectFence            ObjectKind = "fence"
)

// Object is anything placed on a single farm tile.
type Object struct {
	ID       string     `json:"id"`
	Kind     ObjectKind `json:"kind"`
	Position Point      `json:"position"`
	Radius   float64    `json:"radius"`
}

var ErrInvalidObject = errors.New("invalid object")

func IsKnownObjectKind(kind ObjectKind) bool {
	switch kind {
	case ObjectSprinkler, ObjectQualitySprinkler, ObjectIridiumSprinkler,
		ObjectChest, ObjectScarecrow, ObjectFence:
		return true
	}
	return false
}

func (o Object) Validate() error {
	if o.ID == "" || !IsKnownObjectKind(o.Kind) || o.Radius < 0 || !o.Position.InBounds() {
		return ErrInvalidObject
	}
	return nil
}

func (o Object) IsSprinkler() bool {
	switch o.Kind {
	case ObjectSprinkler, ObjectQualitySprinkler, ObjectIridiumSprinkler:
		return true
	}
	return false
}

// SprinklerRadius is the modified radius for a sprinkler kind. A pressure
// nozzle extends it by one tile. Non-sprinklers have no radius.
func SprinklerRadius(kind ObjectKind, nozzle bool) float64 {
	var r float64
	switch kind {
	case ObjectSprinkler:
		r = 0
	case ObjectQualitySprinkler:
		r = 1
	case ObjectIridiumSprinkler:
		r = 2
	default:
		return 0
	}
	if nozzle {
		r++
	}
	return r
}
