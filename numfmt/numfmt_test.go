package numfmt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	assert := require.New(t)

	v, err := Parse(`3.14`)
	assert.NoError(err)
	assert.Equal(3.14, v)

	i, err := ParseInt(`42`)
	assert.NoError(err)
	assert.Equal(int64(42), i)

	_, err = Parse(`not a number`)
	assert.Error(err)
}

func TestRoundAndClamp(t *testing.T) {
	assert := require.New(t)

	assert.Equal(3.0, Round(3.4))
	assert.Equal(4.0, Round(3.5))
	assert.Equal(3.14, Round(3.14159, 2))
	assert.Equal(3.142, Round(3.14159, 3))

	assert.Equal(5.0, Clamp(10, 0, 5))
	assert.Equal(0.0, Clamp(-1, 0, 5))
	assert.Equal(3.0, Clamp(3, 0, 5))
}

func TestPercent(t *testing.T) {
	assert := require.New(t)

	out, err := Percent(50)
	assert.NoError(err)
	assert.Equal(`50`, out)

	out, err = Percent(1, 4)
	assert.NoError(err)
	assert.Equal(`25`, out)

	out, err = Percent(1, 3, `%.1f`)
	assert.NoError(err)
	assert.Equal(`33.3`, out)
}

func TestHumanize(t *testing.T) {
	assert := require.New(t)

	assert.Equal(`1.0 MB`, Bytes(1000000))
	assert.Equal(`1.0 MiB`, IBytes(1048576))
	assert.Equal(`1,234,567`, Comma(1234567))
	assert.Equal(`1st`, Ordinal(1))
	assert.Equal(`22nd`, Ordinal(22))
	assert.Equal(`1,234`, Thousandify(1234))
}

func TestIsNumeric(t *testing.T) {
	assert := require.New(t)

	assert.True(IsNumeric(`42`))
	assert.True(IsNumeric(`-3.5`))
	assert.True(IsNumeric(7))
	assert.False(IsNumeric(`banana`))
}

func TestSummarize(t *testing.T) {
	assert := require.New(t)

	summary, err := Summarize([]float64{1, 2, 3, 4, 5})
	assert.NoError(err)
	assert.Equal(5, summary.Count)
	assert.Equal(1.0, summary.Min)
	assert.Equal(5.0, summary.Max)
	assert.Equal(3.0, summary.Mean)
	assert.Equal(3.0, summary.Median)
	assert.Equal(15.0, summary.Sum)

	// mixed scalar types are converted
	summary, err = Summarize([]interface{}{`1`, 2, 3.0})
	assert.NoError(err)
	assert.Equal(2.0, summary.Mean)

	summary, err = Summarize(nil)
	assert.NoError(err)
	assert.Zero(summary.Count)

	_, err = Summarize([]string{`a`})
	assert.Error(err)
}

func TestPercentile(t *testing.T) {
	assert := require.New(t)

	p, err := Percentile([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 90)
	assert.NoError(err)
	assert.Equal(9.0, p)
}
