// Package textfmt provides display-width-aware text formatting: padding,
// centering, wrapping, truncation, framing, and case transforms.
package textfmt

import (
	"strings"

	"github.com/ghetzel/go-stockutil/rxutil"
	"github.com/ghetzel/go-stockutil/stringutil"
	"github.com/mattn/go-runewidth"
)

// Width returns the number of terminal cells the given string occupies,
// accounting for wide (CJK) runes.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// PadRight pads s with pad (space by default) until it occupies width cells.
func PadRight(s string, width int, pad ...string) string {
	return padded(s, width, pad, false)
}

// PadLeft left-pads s with pad (space by default) until it occupies width cells.
func PadLeft(s string, width int, pad ...string) string {
	return padded(s, width, pad, true)
}

func padded(s string, width int, pad []string, left bool) string {
	fill := ` `

	if len(pad) > 0 && pad[0] != `` {
		fill = pad[0]
	}

	for Width(s) < width {
		if left {
			s = fill + s
		} else {
			s = s + fill
		}
	}

	return s
}

// Center pads s on both sides until it occupies width cells, favoring the
// right side when the remainder is odd.
func Center(s string, width int) string {
	gap := width - Width(s)

	if gap <= 0 {
		return s
	}

	left := gap / 2

	return strings.Repeat(` `, left) + s + strings.Repeat(` `, gap-left)
}

// Truncate shortens s to at most width cells, appending the given ellipsis
// (or "…" by default) when truncation occurs.  Multibyte runes are never
// split.
func Truncate(s string, width int, ellipsis ...string) string {
	tail := `…`

	if len(ellipsis) > 0 {
		tail = ellipsis[0]
	}

	if Width(s) <= width {
		return s
	}

	return runewidth.Truncate(s, width, tail)
}

// Elide truncates the given text in a word-aware manner to at most n bytes,
// trimming any trailing partial word.
func Elide(s string, n int) string {
	if len(s) > n {
		s = s[0:n]
	}

	if match := rxutil.Match(`(\W*\s+[\w\.\(\)\[\]\{\}]{0,16})$`, s); match != nil {
		s = match.ReplaceGroup(1, ``)
	}

	return s
}

// ElideWords truncates the given text to at most n words.
func ElideWords(s string, n int) string {
	return stringutil.ElideWords(s, n)
}

// Wrap breaks s into lines no wider than width cells, preferring to break on
// whitespace.
func Wrap(s string, width int) string {
	return runewidth.Wrap(s, width)
}

// Indent prefixes every line of s with the given prefix.
func Indent(s string, prefix string) string {
	lines := strings.Split(s, "\n")

	for i, line := range lines {
		if line != `` {
			lines[i] = prefix + line
		}
	}

	return strings.Join(lines, "\n")
}

// Dedent removes the longest common leading whitespace from every non-empty
// line of s.
func Dedent(s string) string {
	lines := strings.Split(s, "\n")
	margin := ``
	first := true

	for _, line := range lines {
		if strings.TrimSpace(line) == `` {
			continue
		}

		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]

		if first {
			margin = indent
			first = false
		} else {
			for !strings.HasPrefix(indent, margin) {
				margin = margin[:len(margin)-1]
			}
		}
	}

	if margin == `` {
		return s
	}

	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, margin)
	}

	return strings.Join(lines, "\n")
}

// Camelize returns a copy of s transformed into camelCase.
func Camelize(s string) string {
	str := stringutil.Camelize(s)

	for i, v := range str {
		return strings.ToLower(string(v)) + str[i+1:]
	}

	return str
}

// Pascalize returns a copy of s transformed into PascalCase.
func Pascalize(s string) string {
	return stringutil.Camelize(s)
}

// Underscore returns a copy of s transformed into snake_case.
func Underscore(s string) string {
	return stringutil.Underscore(s)
}

// Hyphenate returns a copy of s transformed into hyphen-case.
func Hyphenate(s string) string {
	return stringutil.Hyphenate(s)
}
