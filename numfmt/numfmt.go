// Package numfmt provides number formatting, parsing, and summary statistics.
package numfmt

import (
	"fmt"
	"math"

	humanize "github.com/dustin/go-humanize"
	"github.com/ghetzel/go-stockutil/stringutil"
	"github.com/ghetzel/go-stockutil/typeutil"
)

// Parse converts the given value (string, numeric, or boolean) into a
// float64.
func Parse(value interface{}) (float64, error) {
	return stringutil.ConvertToFloat(value)
}

// ParseInt converts the given value into an int64, truncating any fractional
// component.
func ParseInt(value interface{}) (int64, error) {
	return stringutil.ConvertToInteger(value)
}

// Round rounds the given value to the given number of decimal places (zero by
// default).
func Round(value float64, places ...int) float64 {
	n := 0

	if len(places) > 0 {
		n = places[0]
	}

	factor := math.Pow(10, float64(n))

	return math.Round(value*factor) / factor
}

// Clamp constrains value to the inclusive range [lower, upper].
func Clamp(value float64, lower float64, upper float64) float64 {
	if value < lower {
		return lower
	} else if value > upper {
		return upper
	}

	return value
}

// Percent formats value as a percentage of outOf (100 by default), with the
// given fmt.Sprintf format ("%.f" by default).
func Percent(value interface{}, args ...interface{}) (string, error) {
	if v, err := stringutil.ConvertToFloat(value); err == nil {
		outOf := 100.0
		format := "%.f"

		if len(args) > 0 {
			if o, err := stringutil.ConvertToFloat(args[0]); err == nil {
				outOf = o
			} else {
				return ``, err
			}
		}

		if len(args) > 1 {
			format = fmt.Sprintf("%v", args[1])
		}

		return fmt.Sprintf(format, (v/outOf)*100.0), nil
	} else {
		return ``, err
	}
}

// Bytes formats the given byte count as a humanized SI string ("1.2 MB").
func Bytes(n uint64) string {
	return humanize.Bytes(n)
}

// IBytes formats the given byte count as a humanized IEC string ("1.2 MiB").
func IBytes(n uint64) string {
	return humanize.IBytes(n)
}

// Comma formats the given integer with thousands separators.
func Comma(n int64) string {
	return humanize.Comma(n)
}

// Commaf formats the given float with thousands separators.
func Commaf(n float64) string {
	return humanize.Commaf(n)
}

// SI formats the given value with an SI metric prefix and unit ("2.2 Mm").
func SI(value float64, unit string) string {
	return humanize.SI(value, unit)
}

// Ordinal formats the given integer as an English ordinal ("1st", "22nd").
func Ordinal(n int) string {
	return humanize.Ordinal(n)
}

// Thousandify separates the given value every three decimal places using sep
// (comma by default) and decimal point dec (period by default).
func Thousandify(value interface{}, sepDec ...string) string {
	var separator string
	var decimal string

	if len(sepDec) > 0 {
		separator = sepDec[0]
	}

	if len(sepDec) > 1 {
		decimal = sepDec[1]
	}

	return stringutil.Thousandify(value, separator, decimal)
}

// IsNumeric returns whether the given value parses as a number.
func IsNumeric(value interface{}) bool {
	s := typeutil.String(value)
	return stringutil.IsInteger(s) || stringutil.IsFloat(s)
}
