package nethelp

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// ParseHTML parses an HTML document for use with Select.
func ParseHTML(data []byte) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(bytes.NewReader(data))
}

// Select returns the elements in doc matching the given CSS selector, each as
// a map containing the element's text, inner HTML, and attributes.
func Select(doc *goquery.Document, selector string) []map[string]interface{} {
	elements := make([]map[string]interface{}, 0)

	doc.Find(selector).Each(func(i int, match *goquery.Selection) {
		attrs := make(map[string]interface{})

		if len(match.Nodes) > 0 {
			for _, attr := range match.Nodes[0].Attr {
				attrs[attr.Key] = attr.Val
			}
		}

		element := map[string]interface{}{
			`text`:       match.Text(),
			`attributes`: attrs,
		}

		if inner, err := match.Html(); err == nil {
			element[`html`] = inner
		}

		elements = append(elements, element)
	})

	return elements
}

// Scrape fetches the given URL and returns the elements matching the given
// CSS selector.
func Scrape(ctx context.Context, url string, selector string) ([]map[string]interface{}, error) {
	response, err := Get(ctx, url)

	if err != nil {
		return nil, err
	}

	if response.IsError() {
		return nil, fmt.Errorf("request failed: %s", response.Status)
	}

	if doc, err := ParseHTML(response.Body); err == nil {
		return Select(doc, selector), nil
	} else {
		return nil, err
	}
}

// Article holds the readable content extracted from a web page.
type Article struct {
	Title   string `json:"title"`
	Byline  string `json:"byline,omitempty"`
	Text    string `json:"text"`
	HTML    string `json:"html"`
	Excerpt string `json:"excerpt,omitempty"`
}

// ReadArticle fetches the given URL and extracts its main readable content,
// discarding navigation and boilerplate.
func ReadArticle(url string, timeout time.Duration) (*Article, error) {
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	if article, err := readability.FromURL(url, timeout); err == nil {
		return &Article{
			Title:   article.Title,
			Byline:  article.Byline,
			Text:    article.TextContent,
			HTML:    article.Content,
			Excerpt: article.Excerpt,
		}, nil
	} else {
		return nil, err
	}
}
