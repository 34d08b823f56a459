// Package urlparams extracts parameters from location URLs.
package urlparams

import (
	"encoding/json"
	"net/url"
	"strings"
)

// Parse returns the parameters of locationURL from both the query string and
// the fragment, fragment values taking precedence. Values written as JSON
// string literals are unquoted. An empty or unparsable URL yields an empty
// map.
func Parse(locationURL string) map[string]string {
	params := make(map[string]string)
	if locationURL == "" {
		return params
	}

	u, err := url.Parse(locationURL)
	if err != nil {
		return params
	}

	collect(params, u.RawQuery)
	collect(params, u.EscapedFragment())

	return params
}

func collect(dst map[string]string, raw string) {
	if raw == "" {
		return
	}
	// ParseQuery keeps every well-formed pair even when it reports an error.
	values, _ := url.ParseQuery(raw)
	for key, vs := range values {
		if key == "" || len(vs) == 0 {
			continue
		}
		dst[key] = unquote(vs[0])
	}
}

func unquote(v string) string {
	if len(v) < 2 || !strings.HasPrefix(v, `"`) || !strings.HasSuffix(v, `"`) {
		return v
	}
	var s string
	if err := json.Unmarshal([]byte(v), &s); err != nil {
		return v
	}
	return s
}
