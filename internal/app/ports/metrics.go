package ports

import "petbowl/internal/domain/watering"

type DayStartMetrics interface {
	RecordEvaluation(result watering.Result)
	RecordFailure()
}
