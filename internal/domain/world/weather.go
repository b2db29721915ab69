package world

import (
	"errors"
	"strings"
)

type Weather string

const (
	WeatherSunny Weather = "sunny"
	WeatherRain  Weather = "rain"
	WeatherStorm Weather = "storm"
	WeatherSnow  Weather = "snow"
	WeatherWind  Weather = "wind"
)

var ErrUnknownWeather = errors.New("unknown weather")

func ParseWeather(raw string) (Weather, error) {
	w := Weather(strings.ToLower(strings.TrimSpace(raw)))
	switch w {
	case WeatherSunny, WeatherRain, WeatherStorm, WeatherSnow, WeatherWind:
		return w, nil
	}
	return "", ErrUnknownWeather
}

// IsRaining reports whether the farm is being rained on; storms count.
func (w Weather) IsRaining() bool {
	return w == WeatherRain || w == WeatherStorm
}

func (w Weather) IsSnowing() bool {
	return w == WeatherSnow
}
