package daystart

import (
	"time"

	"petbowl/internal/domain/watering"
	"petbowl/internal/domain/world"
)

func dayStartedEvent(farmID string, weather world.Weather, result watering.Result, now time.Time) watering.DomainEvent {
	bowls := make([]map[string]any, 0, len(result.Outcomes))
	for _, o := range result.Outcomes {
		entry := map[string]any{
			"bowl_id": o.BowlID,
			"filled":  o.Filled,
			"changed": o.Changed,
			"reason":  string(o.Reason),
		}
		if o.SprinklerID != "" {
			entry["sprinkler_id"] = o.SprinklerID
		}
		bowls = append(bowls, entry)
	}
	return watering.DomainEvent{
		Type:       watering.EventDayStarted,
		OccurredAt: now,
		Payload: map[string]any{
			"farm_id": farmID,
			"day":     result.Day,
			"weather": string(weather),
			"skipped": result.Skipped,
			"filled":  result.FilledCount(),
			"bowls":   bowls,
		},
	}
}
