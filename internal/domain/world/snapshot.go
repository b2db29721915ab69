package world

// Snapshot is the farm state handed to the day-start evaluation.
type Snapshot struct {
	FarmID    string     `json:"farm_id"`
	Day       int        `json:"day"`
	Weather   Weather    `json:"weather"`
	Buildings []Building `json:"buildings"`
	Objects   []Object   `json:"objects"`
}

func (s Snapshot) PetBowls() []Building {
	out := make([]Building, 0, len(s.Buildings))
	for _, b := range s.Buildings {
		if b.IsPetBowl() {
			out = append(out, b)
		}
	}
	return out
}

func (s Snapshot) Sprinklers() []Object {
	out := make([]Object, 0, len(s.Objects))
	for _, o := range s.Objects {
		if o.IsSprinkler() {
			out = append(out, o)
		}
	}
	return out
}

func (s Snapshot) BuildingByID(id string) (Building, bool) {
	for _, b := range s.Buildings {
		if b.ID == id {
			return b, true
		}
	}
	return Building{}, false
}

func (s Snapshot) ObjectAt(p Point) (Object, bool) {
	for _, o := range s.Objects {
		if o.Position == p {
			return o, true
		}
	}
	return Object{}, false
}
