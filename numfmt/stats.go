package numfmt

import (
	"github.com/ghetzel/go-stockutil/sliceutil"
	"github.com/ghetzel/go-stockutil/stringutil"
	"github.com/montanaflynn/stats"
)

// Summary holds descriptive statistics for a series of values.
type Summary struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"stddev"`
	Sum    float64 `json:"sum"`
}

func toFloats(in interface{}) (stats.Float64Data, error) {
	values := sliceutil.Sliceify(in)
	out := make(stats.Float64Data, 0, len(values))

	for _, value := range values {
		if v, err := stringutil.ConvertToFloat(value); err == nil {
			out = append(out, v)
		} else {
			return nil, err
		}
	}

	return out, nil
}

// Summarize computes descriptive statistics for the given slice of values.
// Values may be any scalar type convertible to a float.
func Summarize(in interface{}) (*Summary, error) {
	data, err := toFloats(in)

	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Count: len(data),
	}

	if summary.Count == 0 {
		return summary, nil
	}

	if summary.Min, err = data.Min(); err != nil {
		return nil, err
	}

	if summary.Max, err = data.Max(); err != nil {
		return nil, err
	}

	if summary.Mean, err = data.Mean(); err != nil {
		return nil, err
	}

	if summary.Median, err = data.Median(); err != nil {
		return nil, err
	}

	if summary.StdDev, err = data.StandardDeviation(); err != nil {
		return nil, err
	}

	if summary.Sum, err = data.Sum(); err != nil {
		return nil, err
	}

	return summary, nil
}

// Percentile returns the value at the given percentile (0-100) of the given
// series.
func Percentile(in interface{}, percent float64) (float64, error) {
	if data, err := toFloats(in); err == nil {
		return stats.Percentile(data, percent)
	} else {
		return 0, err
	}
}
