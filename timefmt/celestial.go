package timefmt

import (
	"time"

	"github.com/kelvins/sunrisesunset"
	"github.com/sj14/astral/pkg/astral"
)

// SunTimes holds the principal solar events for one day at one location.
type SunTimes struct {
	Sunrise         time.Time `json:"sunrise"`
	Sunset          time.Time `json:"sunset"`
	Noon            time.Time `json:"noon"`
	GoldenHourStart time.Time `json:"golden_hour_start"`
	GoldenHourEnd   time.Time `json:"golden_hour_end"`
	BlueHourStart   time.Time `json:"blue_hour_start"`
	BlueHourEnd     time.Time `json:"blue_hour_end"`
	DayLength       time.Duration
}

// Sun computes sunrise, sunset, solar noon, and the evening golden/blue hours
// for the given date and observer coordinates.
func Sun(date time.Time, latitude float64, longitude float64) (*SunTimes, error) {
	observer := astral.Observer{
		Latitude:  latitude,
		Longitude: longitude,
	}

	out := &SunTimes{
		Noon: astral.Noon(observer, date).Round(time.Second),
	}

	if at, err := astral.Sunrise(observer, date); err == nil {
		out.Sunrise = at.Round(time.Second)
	} else {
		return nil, err
	}

	if at, err := astral.Sunset(observer, date); err == nil {
		out.Sunset = at.Round(time.Second)
	} else {
		return nil, err
	}

	if start, end, err := astral.GoldenHour(observer, date, astral.SunDirectionSetting); err == nil {
		out.GoldenHourStart = start.Round(time.Second)
		out.GoldenHourEnd = end.Round(time.Second)
	} else {
		return nil, err
	}

	if start, end, err := astral.BlueHour(observer, date, astral.SunDirectionSetting); err == nil {
		out.BlueHourStart = start.Round(time.Second)
		out.BlueHourEnd = end.Round(time.Second)
	} else {
		return nil, err
	}

	out.DayLength = out.Sunset.Sub(out.Sunrise)

	return out, nil
}

// SunriseSunsetUTC returns the sunrise and sunset clock times for the given
// date and coordinates at the given UTC offset (in hours), using the simpler
// NOAA table method.
func SunriseSunsetUTC(date time.Time, latitude float64, longitude float64, utcOffset float64) (time.Time, time.Time, error) {
	p := sunrisesunset.Parameters{
		Latitude:  latitude,
		Longitude: longitude,
		UtcOffset: utcOffset,
		Date:      date,
	}

	return p.GetSunriseSunset()
}
