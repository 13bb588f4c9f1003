// Package timefmt provides flexible time parsing, named output formats, and
// calendar/celestial helpers.
package timefmt

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	humanize "github.com/dustin/go-humanize"
	"github.com/ghetzel/go-stockutil/stringutil"
)

// Parse converts the given value into a time.Time.  Strings are parsed with
// dateparse (accepting most common layouts), numbers are treated as epoch
// seconds, and time.Time values pass through.
func Parse(value interface{}) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case string:
		return dateparse.ParseAny(v)
	default:
		return stringutil.ConvertToTime(value)
	}
}

// Format returns the given time formatted using a named format or an explicit
// Go layout string.  Supported names: kitchen, timer, rfc3339, rfc3339ns,
// rfc822, rfc822z, epoch, epoch-ms, epoch-us, epoch-ns, day, slash,
// slash-dmy, ymd, ruby, human.
func Format(value interface{}, format ...string) (string, error) {
	if v, err := Parse(value); err == nil {
		var tmFormat string
		var formatName string

		if len(format) == 0 {
			tmFormat = time.RFC3339
		} else {
			formatName = format[0]

			switch formatName {
			case `kitchen`:
				tmFormat = time.Kitchen
			case `timer`:
				tmFormat = `15:04:05`
			case `rfc3339`:
				tmFormat = time.RFC3339
			case `rfc3339ns`:
				tmFormat = time.RFC3339Nano
			case `rfc822`:
				tmFormat = time.RFC822
			case `rfc822z`:
				tmFormat = time.RFC822Z
			case `epoch`:
				return fmt.Sprintf("%d", v.Unix()), nil
			case `epoch-ms`:
				return fmt.Sprintf("%d", int64(v.UnixNano()/1000000)), nil
			case `epoch-us`:
				return fmt.Sprintf("%d", int64(v.UnixNano()/1000)), nil
			case `epoch-ns`:
				return fmt.Sprintf("%d", int64(v.UnixNano())), nil
			case `day`:
				tmFormat = `Monday`
			case `slash`:
				tmFormat = `01/02/2006`
			case `slash-dmy`:
				tmFormat = `02/01/2006`
			case `ymd`:
				tmFormat = `2006-01-02`
			case `ruby`:
				tmFormat = time.RubyDate
			default:
				tmFormat = formatName
			}
		}

		var vStr string

		switch tmFormat {
		case `human`:
			vStr = humanize.Time(v)
		default:
			vStr = v.Format(tmFormat)
		}

		if formatName == `timer` {
			if len(strings.Split(vStr, `:`)) == 3 {
				vStr = strings.TrimPrefix(vStr, `00:`)
			}
		}

		return vStr, nil
	} else {
		return ``, err
	}
}

// Now returns the current time formatted using the given named format.
func Now(format ...string) (string, error) {
	return Format(time.Now(), format...)
}

// Ago returns the given reference time (now by default) minus the given
// duration string ("90m", "1h30m").
func Ago(durationString string, fromTime ...time.Time) (time.Time, error) {
	from := time.Now()

	if len(fromTime) > 0 {
		from = fromTime[0]
	}

	if duration, err := time.ParseDuration(durationString); err == nil {
		return from.Add(-1 * duration), nil
	} else {
		return time.Time{}, err
	}
}

// Since returns the amount of time elapsed since the given time, optionally
// rounded to the nearest interval: "s", "m", or "h" (plus long forms).
func Since(at interface{}, interval ...string) (time.Duration, error) {
	if tm, err := Parse(at); err == nil {
		since := time.Since(tm)

		if len(interval) > 0 {
			switch strings.ToLower(interval[0]) {
			case `s`, `sec`, `second`:
				since = since.Round(time.Second)
			case `m`, `min`, `minute`:
				since = since.Round(time.Minute)
			case `h`, `hr`, `hour`:
				since = since.Round(time.Hour)
			}
		}

		return since, nil
	} else {
		return 0, err
	}
}

// Duration converts the given value from a count of unit ("ns", "us", "ms",
// "s", "m", "h", "d", "y") into the given named time format ("timer" by
// default).
func Duration(value interface{}, unit string, formats ...string) (string, error) {
	if v, err := stringutil.ConvertToInteger(value); err == nil {
		duration := time.Duration(v)
		format := `timer`

		if len(formats) > 0 {
			format = formats[0]
		}

		switch unit {
		case `ns`, ``:
			break
		case `us`:
			duration = duration * time.Microsecond
		case `ms`:
			duration = duration * time.Millisecond
		case `s`:
			duration = duration * time.Second
		case `m`:
			duration = duration * time.Minute
		case `h`:
			duration = duration * time.Hour
		case `d`:
			duration = duration * time.Hour * 24
		case `y`:
			duration = duration * time.Hour * 24 * 365
		default:
			return ``, fmt.Errorf("unrecognized unit %q", unit)
		}

		basetime := time.Date(0, 0, 0, 0, 0, 0, 0, time.UTC)
		basetime = basetime.Add(duration)

		return Format(basetime, format)
	} else {
		return ``, err
	}
}

// StartOfDay returns midnight at the start of the given time's day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the final nanosecond of the given time's day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// StartOfWeek returns midnight on the Monday of the given time's week.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7

	return day.AddDate(0, 0, -offset)
}

// StartOfMonth returns midnight on the first day of the given time's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the final nanosecond of the given time's month.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}
