package daystart

import "petbowl/internal/domain/watering"

type Request struct {
	FarmID string
	Day    int
}

type Response struct {
	FarmID   string             `json:"farm_id"`
	Day      int                `json:"day"`
	Skipped  bool               `json:"skipped"`
	Filled   int                `json:"filled"`
	Outcomes []watering.Outcome `json:"outcomes"`
}
