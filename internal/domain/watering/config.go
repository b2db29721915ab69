package watering

import "errors"

const (
	MinFilledDuration = 1
	MaxFilledDuration = 28
)

var ErrInvalidConfig = errors.New("invalid watering config")

// Config holds the player's watering options. The zero value is not the
// default; use DefaultConfig.
type Config struct {
	SprinklersFillBowls bool `yaml:"sprinklers_fill_bowls" json:"sprinklers_fill_bowls"`
	ForceExactBowlTile  bool `yaml:"force_exact_bowl_tile" json:"force_exact_bowl_tile"`
	BowlFilledDuration  int  `yaml:"bowl_filled_duration" json:"bowl_filled_duration"`
	SnowFillsBowl       bool `yaml:"snow_fills_bowl" json:"snow_fills_bowl"`
	CheatyWatering      bool `yaml:"cheaty_watering" json:"cheaty_watering"`
}

func DefaultConfig() Config {
	return Config{
		SprinklersFillBowls: true,
		ForceExactBowlTile:  true,
		BowlFilledDuration:  1,
		SnowFillsBowl:       false,
		CheatyWatering:      false,
	}
}

func (c Config) Validate() error {
	if c.BowlFilledDuration < MinFilledDuration || c.BowlFilledDuration > MaxFilledDuration {
		return ErrInvalidConfig
	}
	return nil
}

// Patch is a partial update; nil fields are left unchanged.
type Patch struct {
	SprinklersFillBowls *bool `json:"sprinklers_fill_bowls,omitempty"`
	ForceExactBowlTile  *bool `json:"force_exact_bowl_tile,omitempty"`
	BowlFilledDuration  *int  `json:"bowl_filled_duration,omitempty"`
	SnowFillsBowl       *bool `json:"snow_fills_bowl,omitempty"`
	CheatyWatering      *bool `json:"cheaty_watering,omitempty"`
}

func (c Config) Apply(p Patch) (Config, error) {
	next := c
	if p.SprinklersFillBowls != nil {
		next.SprinklersFillBowls = *p.SprinklersFillBowls
	}
	if p.ForceExactBowlTile != nil {
		next.ForceExactBowlTile = *p.ForceExactBowlTile
	}
	if p.BowlFilledDuration != nil {
		next.BowlFilledDuration = *p.BowlFilledDuration
	}
	if p.SnowFillsBowl != nil {
		next.SnowFillsBowl = *p.SnowFillsBowl
	}
	if p.CheatyWatering != nil {
		next.CheatyWatering = *p.CheatyWatering
	}
	if err := next.Validate(); err != nil {
		return c, err
	}
	return next, nil
}
