package tabular

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableBasics(t *testing.T) {
	assert := require.New(t)

	table := New(`name`, `age`)
	assert.NoError(table.Append(`alice`, 34))
	assert.NoError(table.Append(`bob`)) // short rows pad with nil
	assert.Error(table.Append(`carol`, 1, 2))

	assert.Equal(2, table.Len())
	assert.Equal(1, table.ColumnIndex(`age`))
	assert.Equal(-1, table.ColumnIndex(`nope`))

	ages, err := table.Column(`age`)
	assert.NoError(err)
	assert.Equal([]interface{}{34, nil}, ages)

	_, err = table.Column(`nope`)
	assert.Error(err)

	records := table.Records()
	assert.Len(records, 2)
	assert.Equal(`alice`, records[0][`name`])
	assert.Equal(34, records[0][`age`])
	assert.Nil(records[1][`age`])
}

func TestFromRecords(t *testing.T) {
	assert := require.New(t)

	table := FromRecords([]map[string]interface{}{
		{`name`: `alice`, `age`: 34},
		{`name`: `bob`, `city`: `austin`},
	})

	// union of keys, sorted
	assert.Equal([]string{`age`, `city`, `name`}, table.Columns)
	assert.Equal(2, table.Len())

	explicit := FromRecords([]map[string]interface{}{
		{`name`: `alice`, `age`: 34},
	}, `name`, `age`)

	assert.Equal([]string{`name`, `age`}, explicit.Columns)
	assert.Equal([]interface{}{`alice`, 34}, explicit.Rows[0])
}

func TestSortBy(t *testing.T) {
	assert := require.New(t)

	table := New(`name`, `score`)
	table.Append(`bob`, 10)
	table.Append(`alice`, 2)
	table.Append(`carol`, 30)

	assert.NoError(table.SortBy(`score`))
	scores, _ := table.Column(`score`)
	assert.Equal([]interface{}{2, 10, 30}, scores)

	assert.NoError(table.SortBy(`name`, true))
	names, _ := table.Column(`name`)
	assert.Equal([]interface{}{`carol`, `bob`, `alice`}, names)

	assert.Error(table.SortBy(`nope`))
}

func TestCSVRoundTrip(t *testing.T) {
	assert := require.New(t)

	table, err := FromCSV(strings.NewReader("name,age\nalice,34\nbob,28\n"), ',')
	assert.NoError(err)
	assert.Equal([]string{`name`, `age`}, table.Columns)
	assert.Equal(2, table.Len())

	// cells are autotyped
	ages, _ := table.Column(`age`)
	assert.EqualValues(34, ages[0])

	var out bytes.Buffer
	assert.NoError(table.CSV(&out, ','))
	assert.Equal("name,age\nalice,34\nbob,28\n", out.String())

	tsv, err := FromCSV(strings.NewReader("a\tb\n1\t2\n"), '\t')
	assert.NoError(err)
	assert.Equal([]string{`a`, `b`}, tsv.Columns)
}

func TestSummarize(t *testing.T) {
	assert := require.New(t)

	table, err := FromCSV(strings.NewReader("v\n1\n2\n3\n4\n"), ',')
	assert.NoError(err)

	summary, err := table.Summarize(`v`)
	assert.NoError(err)
	assert.Equal(4, summary.Count)
	assert.Equal(2.5, summary.Mean)
	assert.Equal(10.0, summary.Sum)
}

func TestXMLToMap(t *testing.T) {
	assert := require.New(t)

	doc := []byte(`<root version="2"><item id="1">first</item><item id="2">second</item><only>one</only></root>`)

	out, err := XMLToMap(doc)
	assert.NoError(err)
	assert.Equal(`root`, out[`name`])

	attrs := out[`attributes`].(map[string]interface{})
	assert.EqualValues(2, attrs[`version`])

	children := out[`children`].(map[string]interface{})

	items := children[`item`].([]interface{})
	assert.Len(items, 2)
	assert.Equal(`first`, items[0].(map[string]interface{})[`text`])

	only := children[`only`].(map[string]interface{})
	assert.Equal(`one`, only[`text`])

	_, err = XMLToMap([]byte(`<unclosed`))
	assert.Error(err)
}

func TestRender(t *testing.T) {
	assert := require.New(t)

	table := New(`name`, `n`)
	table.Append(`alice`, 1)
	table.Append(`日本`, 22)

	rendered := table.String()
	lines := strings.Split(strings.TrimSuffix(rendered, "\n"), "\n")
	assert.Len(lines, 4)
	assert.Contains(lines[0], `name`)
	assert.Contains(lines[1], `-----`)

	// every line is the same display width once trailing pad is kept
	assert.Contains(rendered, `alice`)
	assert.Contains(rendered, `日本`)
}
