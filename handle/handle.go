// Package handle extracts a candidate username from a profile URL.
// Platform-specific rules run first (LinkedIn, Facebook, Instagram), then a
// generic last-path-segment fallback. Extraction never fails: anything
// unparseable yields an empty string, which downstream scoring treats as
// "no evidence".
package handle

import (
	"net/url"
	"regexp"
	"strings"
)

// Reserved path words that are site chrome, not usernames.
var reservedWords = map[string]bool{
	"profile": true, "people": true, "pages": true, "public": true,
	"home": true, "watch": true, "marketplace": true,
}

// Reserved words extended with content-type segments, used by the generic rule.
var reservedSegments = map[string]bool{
	"profile": true, "people": true, "pages": true, "public": true,
	"home": true, "watch": true, "marketplace": true,
	"p": true, "reel": true, "stories": true,
	"events": true, "groups": true, "photos": true, "posts": true,
}

// extractor is one platform rule. extract returns the handle and whether the
// decision is final: a rejected content link (photos, reels, posts) is final
// even though the handle is empty, so it never falls through to the generic
// rule and gets mistaken for a profile.
type extractor struct {
	match   func(host string) bool
	extract func(path string) (handle string, done bool)
}

// Tried in order, generic fallback last.
var extractors = []extractor{
	{hostContains("linkedin.com"), linkedinHandle},
	{hostAny("facebook.com", "fb.com"), facebookHandle},
	{hostContains("instagram.com"), instagramHandle},
}

// FromURL returns the username a URL appears to identify, or "".
func FromURL(rawURL string) string {
	if rawURL == "" {
		return ""
	}

	u, err := url.Parse(strings.ToLower(rawURL))
	if err != nil {
		return ""
	}
	host := u.Host
	path := strings.Trim(u.Path, "/")

	for _, e := range extractors {
		if !e.match(host) {
			continue
		}
		if h, done := e.extract(path); done {
			return h
		}
	}

	return genericHandle(path)
}

func hostContains(domain string) func(string) bool {
	return func(host string) bool { return strings.Contains(host, domain) }
}

func hostAny(domains ...string) func(string) bool {
	return func(host string) bool {
		for _, d := range domains {
			if strings.Contains(host, d) {
				return true
			}
		}
		return false
	}
}

// LinkedIn appends a short alphanumeric disambiguator to slugs of common
// names ("jane-doe-3b2f1a9").
var linkedinSuffix = regexp.MustCompile(`-[0-9a-z]+$`)

var linkedinPatterns = []*regexp.Regexp{
	regexp.MustCompile(`/in/([^/?]+)`),
	regexp.MustCompile(`/pub/([^/?]+)`),
	regexp.MustCompile(`/([^/?]+)/?$`),
}

func linkedinHandle(path string) (string, bool) {
	for _, pat := range linkedinPatterns {
		m := pat.FindStringSubmatch("/" + path)
		if m == nil {
			continue
		}
		h := linkedinSuffix.ReplaceAllString(m[1], "")
		if len(h) > 1 {
			return h, true
		}
	}
	return "", false
}

var facebookContent = []string{"photos", "events", "groups", "posts"}

var facebookPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^/([^/?]+)(?:\?|$)`),
	regexp.MustCompile(`/people/([^/?]+)`),
	regexp.MustCompile(`/(?:pages|public)/([^/?]+)`),
}

func facebookHandle(path string) (string, bool) {
	if containsSegment(path, facebookContent) {
		return "", true
	}
	for _, pat := range facebookPatterns {
		m := pat.FindStringSubmatch("/" + path)
		if m == nil {
			continue
		}
		h := m[1]
		if len(h) > 1 && !isNumeric(h) && !reservedWords[h] {
			return h, true
		}
	}
	return "", false
}

var instagramContent = []string{"p", "reel", "stories", "tv"}

func instagramHandle(path string) (string, bool) {
	if containsSegment(path, instagramContent) {
		return "", true
	}
	segments := splitPath(path)
	if len(segments) == 0 {
		return "", false
	}
	h := segments[0]
	if len(h) > 1 && !isNumeric(h) {
		return h, true
	}
	return "", false
}

// genericHandle scans path segments from last to first and returns the first
// one that looks like a username rather than an ID or a content marker.
func genericHandle(path string) string {
	segments := splitPath(path)
	for i := len(segments) - 1; i >= 0; i-- {
		s := segments[i]
		if len(s) <= 1 || isNumeric(s) || reservedSegments[s] {
			continue
		}
		if hasLetter(s) {
			return s
		}
	}
	return ""
}

// containsSegment reports whether any path segment equals one of words.
func containsSegment(path string, words []string) bool {
	for _, s := range splitPath(path) {
		for _, w := range words {
			if s == w {
				return true
			}
		}
	}
	return false
}

func splitPath(path string) []string {
	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

func isNumeric(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return s != ""
}

func hasLetter(s string) bool {
	for _, c := range s {
		if c >= 'a' && c <= 'z' {
			return true
		}
	}
	return false
}
