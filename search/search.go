// Package search implements the web search providers that feed raw result
// triples into the personmatch engine. Providers are thin I/O glue: they
// issue queries, parse responses into Results and validate links, nothing
// more. All matching intelligence lives in the engine.
package search

import (
	"errors"
	"net/url"
)

// Common errors returned by providers.
var (
	ErrNoCredentials = errors.New("no API credentials configured")
)

// validLink reports whether a result link is a usable absolute URL.
// Results with malformed links are dropped at the door; the engine's
// URL-handle extraction assumes scheme and host are present.
func validLink(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
