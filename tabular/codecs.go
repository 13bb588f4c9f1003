package tabular

import (
	"encoding/csv"
	"encoding/xml"
	"io"
	"strings"

	"github.com/ghetzel/go-stockutil/sliceutil"
	"github.com/ghetzel/go-stockutil/typeutil"
)

// FromCSV reads delimited data whose first row is a header and returns a
// table with autotyped cells.
func FromCSV(r io.Reader, delim rune) (*Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = delim
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()

	if err != nil {
		return nil, err
	}

	table := New()

	for i, row := range records {
		if i == 0 {
			table.Columns = row
		} else {
			cells := make([]interface{}, len(row))

			for j, cell := range row {
				cells[j] = typeutil.Auto(cell)
			}

			if err := table.Append(cells...); err != nil {
				return nil, err
			}
		}
	}

	return table, nil
}

// CSV writes the table as delimited data with a leading header row.
func (self *Table) CSV(w io.Writer, delim rune) error {
	writer := csv.NewWriter(w)
	writer.Comma = delim

	if err := writer.Write(self.Columns); err != nil {
		return err
	}

	for _, row := range self.Rows {
		if err := writer.Write(sliceutil.Stringify(row)); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

type xmlNode struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:"-"`
	Content  string     `xml:",chardata"`
	Children []xmlNode  `xml:",any"`
}

func (self *xmlNode) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	self.Attrs = start.Attr
	type node xmlNode

	return d.DecodeElement((*node)(self), &start)
}

// XMLToMap parses an XML document into a generic map: element name, text
// content, autotyped attributes, and children keyed by element name (repeated
// names become arrays).
func XMLToMap(in []byte) (map[string]interface{}, error) {
	var docroot xmlNode

	if err := xml.Unmarshal(in, &docroot); err == nil {
		return xmlNodeToMap(&docroot), nil
	} else {
		return nil, err
	}
}

func xmlNodeToMap(node *xmlNode) map[string]interface{} {
	out := make(map[string]interface{})

	attrs := make(map[string]interface{})
	children := make(map[string]interface{})

	for _, attr := range node.Attrs {
		attrs[attr.Name.Local] = typeutil.Auto(attr.Value)
	}

	for _, child := range node.Children {
		key := child.XMLName.Local
		value := xmlNodeToMap(&child)

		if existing, ok := children[key]; ok {
			if !typeutil.IsArray(existing) {
				children[key] = append([]interface{}{existing}, value)
			} else if eI, ok := existing.([]interface{}); ok {
				children[key] = append(eI, value)
			}
		} else {
			children[key] = value
		}
	}

	out[`name`] = node.XMLName.Local

	if content := strings.TrimSpace(node.Content); content != `` {
		out[`text`] = content
	}

	out[`attributes`] = attrs

	if len(children) > 0 {
		out[`children`] = children
	}

	return out
}
