package watering

import "petbowl/internal/domain/world"

// Evaluator decides at day start which pet bowls are filled.
type Evaluator struct{}

// Evaluate runs one day-start pass over the snapshot. records holds the
// previous bookkeeping keyed by bowl ID and may be nil. The snapshot is not
// modified; Result.Changed lists the flags the caller has to write back.
func (Evaluator) Evaluate(snapshot world.Snapshot, cfg Config, records map[string]BowlRecord) Result {
	bowls := snapshot.PetBowls()
	out := Result{
		Day:      snapshot.Day,
		Outcomes: make([]Outcome, 0, len(bowls)),
		Records:  make([]BowlRecord, 0, len(bowls)),
	}

	// Rain fills bowls on the host side.
	if snapshot.Weather.IsRaining() {
		out.Skipped = true
		for _, bowl := range bowls {
			out.Outcomes = append(out.Outcomes, Outcome{BowlID: bowl.ID, Filled: bowl.Watered, Reason: ReasonRainSkipped})
			out.Records = append(out.Records, BowlRecord{BowlID: bowl.ID, LastFilledDay: snapshot.Day, StartedWatered: bowl.Watered})
		}
		return out
	}

	sprinklers := snapshot.Sprinklers()
	for _, bowl := range bowls {
		rec := records[bowl.ID]
		rec.BowlID = bowl.ID

		o := decide(bowl, snapshot, cfg, sprinklers, rec)
		o.Changed = o.Filled != bowl.Watered
		switch o.Reason {
		case ReasonCheat, ReasonSnow, ReasonSprinkler:
			rec.LastFilledDay = snapshot.Day
		}
		rec.StartedWatered = o.Filled

		out.Outcomes = append(out.Outcomes, o)
		out.Records = append(out.Records, rec)
	}
	return out
}

func decide(bowl world.Building, snapshot world.Snapshot, cfg Config, sprinklers []world.Object, rec BowlRecord) Outcome {
	o := Outcome{BowlID: bowl.ID, Filled: bowl.Watered, Reason: ReasonNone}
	if cfg.CheatyWatering {
		o.Filled, o.Reason = true, ReasonCheat
		return o
	}
	if cfg.SnowFillsBowl && snapshot.Weather.IsSnowing() {
		o.Filled, o.Reason = true, ReasonSnow
		return o
	}
	if cfg.SprinklersFillBowls {
		if s, ok := CoveringSprinkler(sprinklers, ValidTiles(bowl, cfg.ForceExactBowlTile)); ok {
			o.Filled, o.Reason, o.SprinklerID = true, ReasonSprinkler, s.ID
			return o
		}
	}
	if carried(cfg, rec, snapshot.Day) {
		o.Filled, o.Reason = true, ReasonCarried
	}
	return o
}

func carried(cfg Config, rec BowlRecord, day int) bool {
	if cfg.BowlFilledDuration <= 1 || rec.LastFilledDay <= 0 {
		return false
	}
	age := day - rec.LastFilledDay
	return age >= 0 && age < cfg.BowlFilledDuration
}

// Changed lists the bowls whose flag differs from the snapshot.
func (r Result) Changed() []Outcome {
	out := make([]Outcome, 0, len(r.Outcomes))
	for _, o := range r.Outcomes {
		if o.Changed {
			out = append(out, o)
		}
	}
	return out
}
