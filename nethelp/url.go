package nethelp

import (
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"path"
	"sort"
	"strings"

	"github.com/ghetzel/go-stockutil/stringutil"
	"github.com/ghetzel/go-stockutil/typeutil"
	"golang.org/x/net/publicsuffix"
)

// JoinURL joins a base URL with additional path segments, preserving the
// base's query string and fragment.
func JoinURL(base string, segments ...string) (string, error) {
	if u, err := url.Parse(base); err == nil {
		parts := append([]string{u.Path}, segments...)
		u.Path = path.Join(parts...)
		return u.String(), nil
	} else {
		return ``, err
	}
}

// SplitURL breaks a URL into its components: scheme, host, port, path, query
// (as a map with autotyped values), and fragment.
func SplitURL(raw string) (map[string]interface{}, error) {
	if u, err := url.Parse(raw); err == nil {
		query := make(map[string]interface{})

		for k, v := range u.Query() {
			if len(v) == 1 {
				query[k] = typeutil.Auto(v[0])
			} else {
				query[k] = v
			}
		}

		return map[string]interface{}{
			`scheme`:   u.Scheme,
			`host`:     u.Hostname(),
			`port`:     typeutil.Auto(u.Port()),
			`path`:     u.Path,
			`query`:    query,
			`fragment`: u.Fragment,
		}, nil
	} else {
		return nil, err
	}
}

// SetQuery returns a copy of the given URL with the given query parameters
// set, replacing any existing values for the same keys.
func SetQuery(raw string, params map[string]interface{}) (string, error) {
	if u, err := url.Parse(raw); err == nil {
		qs := u.Query()

		for k, v := range params {
			qs.Set(k, typeutil.String(v))
		}

		u.RawQuery = qs.Encode()
		return u.String(), nil
	} else {
		return ``, err
	}
}

// JoinCookies formats the given map as a Cookie request header value, with
// keys in sorted order.
func JoinCookies(cookies map[string]string) string {
	keys := make([]string, 0, len(cookies))

	for k := range cookies {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))

	for _, k := range keys {
		pairs = append(pairs, k+`=`+cookies[k])
	}

	return strings.Join(pairs, `; `)
}

// SplitCookies parses a Cookie request header value into a map.
func SplitCookies(header string) map[string]string {
	out := make(map[string]string)

	for _, pair := range strings.Split(header, `;`) {
		pair = strings.TrimSpace(pair)

		if pair == `` {
			continue
		}

		k, v := stringutil.SplitPair(pair, `=`)
		out[k] = v
	}

	return out
}

// NewCookieJar returns a cookie jar that honors the public suffix list, ready
// to attach to an http.Client.
func NewCookieJar() (http.CookieJar, error) {
	return cookiejar.New(&cookiejar.Options{
		PublicSuffixList: publicsuffix.List,
	})
}
