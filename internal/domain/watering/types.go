package watering

import "time"

type Reason string

const (
	ReasonCheat       Reason = "cheat"
	ReasonSnow        Reason = "snow"
	ReasonSprinkler   Reason = "sprinkler"
	ReasonCarried     Reason = "carried"
	ReasonNone        Reason = "none"
	ReasonRainSkipped Reason = "rain_skipped"
)

// BowlRecord is the per-bowl bookkeeping kept between days.
type BowlRecord struct {
	BowlID         string `json:"bowl_id"`
	LastFilledDay  int    `json:"last_filled_day"`
	StartedWatered bool   `json:"started_watered"`
}

type Outcome struct {
	BowlID      string `json:"bowl_id"`
	Filled      bool   `json:"filled"`
	Changed     bool   `json:"changed"`
	Reason      Reason `json:"reason"`
	SprinklerID string `json:"sprinkler_id,omitempty"`
}

type Result struct {
	Day      int          `json:"day"`
	Skipped  bool         `json:"skipped"`
	Outcomes []Outcome    `json:"outcomes"`
	Records  []BowlRecord `json:"records"`
}

func (r Result) FilledCount() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Filled {
			n++
		}
	}
	return n
}

const EventDayStarted = "day_started"

type DomainEvent struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}
