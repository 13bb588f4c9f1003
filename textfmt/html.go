package textfmt

import (
	"bytes"
	htmlmain "html"
	"strings"

	"github.com/alecthomas/chroma/formatters/html"
	"github.com/alecthomas/chroma/lexers"
	"github.com/alecthomas/chroma/styles"
	strip "github.com/grokify/html-strip-tags-go"
	"github.com/kyokomi/emoji"
	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"
)

// StripHTML strips HTML tags from the given text, leaving the text content
// behind with entities unescaped.
func StripHTML(in string) string {
	stripped := strip.StripTags(in)
	stripped = htmlmain.UnescapeString(stripped)
	return stripped
}

// SanitizeHTML removes unsafe markup (scripts, event handlers) from the given
// HTML fragment, preserving common formatting tags.
func SanitizeHTML(in string) string {
	return bluemonday.UGCPolicy().Sanitize(in)
}

// Markdown renders the given Markdown source as HTML.
func Markdown(in string) string {
	return string(blackfriday.Run([]byte(in)))
}

// Emojify expands ":shortcode:" sequences in the given text into their
// Unicode emoji equivalents.
func Emojify(in string) string {
	return emoji.Sprint(in)
}

// Highlight renders the given source code as HTML with syntax highlighting
// for the named lexer ("go", "python", ...).  Unknown lexers fall back to
// plain text.
func Highlight(source string, lexerName string, styleName ...string) (string, error) {
	lexer := lexers.Get(lexerName)

	if lexer == nil {
		lexer = lexers.Fallback
	}

	style := styles.Get(`monokai`)

	if len(styleName) > 0 {
		if s := styles.Get(styleName[0]); s != nil {
			style = s
		}
	}

	if style == nil {
		style = styles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, source)

	if err != nil {
		return ``, err
	}

	var out bytes.Buffer

	if err := html.New(html.WithClasses(false)).Format(&out, style, iterator); err == nil {
		return out.String(), nil
	} else {
		return ``, err
	}
}

// Slugify lowercases the given text and replaces runs of non-alphanumeric
// characters with hyphens, producing a URL-safe identifier.
func Slugify(in string) string {
	var out strings.Builder
	lastHyphen := true

	for _, r := range strings.ToLower(StripHTML(in)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			out.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			out.WriteRune('-')
			lastHyphen = true
		}
	}

	return strings.Trim(out.String(), `-`)
}
