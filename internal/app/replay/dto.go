package replay

import "petbowl/internal/domain/watering"

type Request struct {
	FarmID  string
	Limit   int
	FromDay int
	ToDay   int
}

type BowlState struct {
	BowlID  string `json:"bowl_id"`
	Filled  bool   `json:"filled"`
	Reason  string `json:"reason"`
	LastDay int    `json:"last_day"`
}

type Response struct {
	Events      []watering.DomainEvent `json:"events"`
	LatestBowls []BowlState            `json:"latest_bowls"`
}
