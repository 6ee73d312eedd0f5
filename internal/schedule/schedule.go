// Package schedule computes the day/night dimming factor for the strip.
//
// The lights are suppressed during daylight, fade in over three hours
// after sunset, run at full brightness through the night and fade back out
// over the two hours before sunrise.
package schedule

import (
	"time"

	"github.com/nathan-osman/go-sunrise"
)

const (
	// dawnWindow is how long before sunrise the fade-out takes.
	dawnWindow = 2 * time.Hour
	// duskWindow is how long after sunset the fade-in takes.
	duskWindow = 3 * time.Hour
)

// Dimming returns the raw dimming factor for now relative to the day's
// solar window. The result is unclamped: outside the dawn and dusk ramps
// it exceeds 255 (deep night) and callers clamp at the point of use.
func Dimming(now, sunrise, sunset time.Time) int {
	switch {
	case now.After(sunrise) && now.Before(sunset):
		return 0
	case !now.After(sunrise):
		return int(sunrise.Sub(now).Seconds() * 255 / dawnWindow.Seconds())
	default:
		return int(now.Sub(sunset).Seconds() * 255 / duskWindow.Seconds())
	}
}

// Clamp bounds a raw dimming factor to the usable [0,255] range.
func Clamp(factor int) uint8 {
	if factor < 0 {
		return 0
	}
	if factor > 255 {
		return 255
	}
	return uint8(factor)
}

// SolarCalc yields the sunrise and sunset instants for a date at a
// location. It exists so tests can substitute fixed windows.
type SolarCalc func(lat, lon float64, date time.Time) (rise, set time.Time)

// Scheduler derives dimming factors from wall-clock time and a fixed
// location. Coordinates are passed through unvalidated; nonsense values
// produce a meaningless but harmless solar window.
type Scheduler struct {
	Lat, Lon float64
	Calc     SolarCalc
}

// New returns a Scheduler backed by the NOAA-style calculator from
// go-sunrise.
func New(lat, lon float64) *Scheduler {
	return &Scheduler{
		Lat: lat,
		Lon: lon,
		Calc: func(lat, lon float64, date time.Time) (time.Time, time.Time) {
			return sunrise.SunriseSunset(lat, lon, date.Year(), date.Month(), date.Day())
		},
	}
}

// Factor computes the clamped dimming factor for now. The solar window is
// recomputed from the current UTC date on every call; it is cheap enough
// that caching across ticks is not worth the staleness bookkeeping.
// Days without a sunrise or sunset (polar latitudes) run at full
// brightness.
func (s *Scheduler) Factor(now time.Time) uint8 {
	utc := now.UTC()
	rise, set := s.Calc(s.Lat, s.Lon, utc)
	if rise.IsZero() || set.IsZero() {
		return 255
	}
	return Clamp(Dimming(utc, rise, set))
}
