// Package nethelp provides HTTP request/response conveniences, URL and
// cookie helpers, HTML scraping, and a small TCP listener.
package nethelp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/ghetzel/go-stockutil/sliceutil"
	"github.com/ghetzel/go-stockutil/typeutil"
	yaml "gopkg.in/yaml.v2"

	"github.com/ghetzel/go-toolbelt/tabular"
)

var DefaultTimeout = 60 * time.Second
var DefaultParamJoiner = `;`

// Client is the http.Client used by package-level request functions.
var Client = &http.Client{
	Timeout: DefaultTimeout,
}

// RequestOptions controls a single HTTP request.
type RequestOptions struct {
	// query string parameters; array values are joined with DefaultParamJoiner
	Params map[string]interface{}

	// additional request headers
	Headers map[string]string

	// request body: io.Reader, []byte, and string pass through verbatim;
	// any other value is JSON-encoded with Content-Type: application/json
	Body interface{}

	// overrides the Content-Type used when decoding the response
	ResponseType string

	// overrides the client used to perform the request
	Client *http.Client
}

// Response is a fully-read HTTP response.
type Response struct {
	StatusCode  int
	Status      string
	ContentType string
	Headers     http.Header
	Body        []byte
}

// String returns the response body as a string.
func (self *Response) String() string {
	return string(self.Body)
}

// Decode parses the response body according to its Content-Type: JSON, YAML,
// XML, and CSV/TSV are supported.  Unknown types return the body as a string.
func (self *Response) Decode() (interface{}, error) {
	switch self.ContentType {
	case `application/json`, `text/json`:
		var out interface{}

		if err := json.Unmarshal(self.Body, &out); err == nil {
			return out, nil
		} else {
			return nil, err
		}
	case `application/x-yaml`, `application/yaml`, `text/yaml`:
		var out interface{}

		if err := yaml.Unmarshal(self.Body, &out); err == nil {
			return out, nil
		} else {
			return nil, err
		}
	case `application/xml`, `text/xml`:
		return tabular.XMLToMap(self.Body)
	case `text/csv`:
		return tabular.FromCSV(bytes.NewReader(self.Body), ',')
	case `text/tab-separated-values`:
		return tabular.FromCSV(bytes.NewReader(self.Body), '\t')
	default:
		return string(self.Body), nil
	}
}

// IsError returns whether the response status is 400 or greater.
func (self *Response) IsError() bool {
	return self.StatusCode >= 400
}

// Request performs an HTTP request and returns the fully-read response.  The
// response is returned (not an error) for non-2xx statuses; use IsError.
func Request(ctx context.Context, method string, targetURL string, options *RequestOptions) (*Response, error) {
	if options == nil {
		options = new(RequestOptions)
	}

	body, contentType, err := encodeBody(options.Body)

	if err != nil {
		return nil, err
	}

	request, err := http.NewRequestWithContext(ctx, strings.ToUpper(method), targetURL, body)

	if err != nil {
		return nil, err
	}

	qs := request.URL.Query()

	for k, v := range options.Params {
		if typeutil.IsArray(v) {
			qs.Set(k, strings.Join(sliceutil.Stringify(v), DefaultParamJoiner))
		} else {
			qs.Set(k, typeutil.String(v))
		}
	}

	request.URL.RawQuery = qs.Encode()

	if contentType != `` {
		request.Header.Set(`Content-Type`, contentType)
	}

	for k, v := range options.Headers {
		request.Header.Set(k, v)
	}

	client := Client

	if options.Client != nil {
		client = options.Client
	}

	if response, err := client.Do(request); err == nil {
		defer response.Body.Close()

		data, err := io.ReadAll(response.Body)

		if err != nil {
			return nil, err
		}

		out := &Response{
			StatusCode: response.StatusCode,
			Status:     response.Status,
			Headers:    response.Header,
			Body:       data,
		}

		if options.ResponseType != `` {
			out.ContentType = options.ResponseType
		} else if mediatype, _, err := mime.ParseMediaType(response.Header.Get(`Content-Type`)); err == nil {
			out.ContentType = mediatype
		}

		return out, nil
	} else {
		return nil, err
	}
}

// Get performs a GET request.
func Get(ctx context.Context, url string, options ...*RequestOptions) (*Response, error) {
	return Request(ctx, http.MethodGet, url, first(options))
}

// Post performs a POST request.
func Post(ctx context.Context, url string, options ...*RequestOptions) (*Response, error) {
	return Request(ctx, http.MethodPost, url, first(options))
}

// Put performs a PUT request.
func Put(ctx context.Context, url string, options ...*RequestOptions) (*Response, error) {
	return Request(ctx, http.MethodPut, url, first(options))
}

// Delete performs a DELETE request.
func Delete(ctx context.Context, url string, options ...*RequestOptions) (*Response, error) {
	return Request(ctx, http.MethodDelete, url, first(options))
}

// GetJSON performs a GET request and decodes the JSON response into out.
func GetJSON(ctx context.Context, url string, out interface{}, options ...*RequestOptions) error {
	if response, err := Get(ctx, url, options...); err == nil {
		if response.IsError() {
			return fmt.Errorf("request failed: %s", response.Status)
		}

		return json.Unmarshal(response.Body, out)
	} else {
		return err
	}
}

func first(options []*RequestOptions) *RequestOptions {
	if len(options) > 0 {
		return options[0]
	}

	return nil
}

func encodeBody(in interface{}) (io.Reader, string, error) {
	switch v := in.(type) {
	case nil:
		return nil, ``, nil
	case io.Reader:
		return v, ``, nil
	case []byte:
		return bytes.NewReader(v), ``, nil
	case string:
		return strings.NewReader(v), ``, nil
	default:
		if data, err := json.Marshal(v); err == nil {
			return bytes.NewReader(data), `application/json`, nil
		} else {
			return nil, ``, err
		}
	}
}
