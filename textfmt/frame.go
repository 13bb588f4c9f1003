package textfmt

import (
	"strings"
)

// FrameStyle names the characters used to draw a Frame border.
type FrameStyle struct {
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
	Horizontal  string
	Vertical    string
}

var StyleLight = FrameStyle{`┌`, `┐`, `└`, `┘`, `─`, `│`}
var StyleHeavy = FrameStyle{`┏`, `┓`, `┗`, `┛`, `━`, `┃`}
var StyleDouble = FrameStyle{`╔`, `╗`, `╚`, `╝`, `═`, `║`}
var StyleASCII = FrameStyle{`+`, `+`, `+`, `+`, `-`, `|`}

// Frame wraps the given text to the given interior width and surrounds it
// with a box-drawing border.  Lines are padded so the right border aligns
// even when the text contains wide runes.
func Frame(text string, width int, style ...FrameStyle) string {
	border := StyleLight

	if len(style) > 0 {
		border = style[0]
	}

	if width <= 0 {
		width = 76
	}

	var lines []string

	for _, line := range strings.Split(Wrap(text, width), "\n") {
		lines = append(lines, line)
	}

	inner := 0

	for _, line := range lines {
		if w := Width(line); w > inner {
			inner = w
		}
	}

	var out strings.Builder

	out.WriteString(border.TopLeft + strings.Repeat(border.Horizontal, inner+2) + border.TopRight + "\n")

	for _, line := range lines {
		out.WriteString(border.Vertical + ` ` + PadRight(line, inner) + ` ` + border.Vertical + "\n")
	}

	out.WriteString(border.BottomLeft + strings.Repeat(border.Horizontal, inner+2) + border.BottomRight)

	return out.String()
}
