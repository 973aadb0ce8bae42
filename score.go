package personmatch

import (
	"strings"

	"github.com/codeGROOVE-dev/personmatch/handle"
	"github.com/codeGROOVE-dev/personmatch/match"
)

// Weights holds the scoring weights and fuzzy-match thresholds. The defaults
// are heuristic constants carried over from field tuning; they are exposed
// here rather than hard-coded because their "correct" values remain a tuning
// question.
type Weights struct {
	// HandleMatch is the base score for a URL handle fuzzy-matching a name
	// variation. Strong evidence: the account holder chose that handle.
	HandleMatch int
	// TextMatch is the base score for the title+snippet text matching a name
	// variation. Weak evidence: the page merely mentions the name.
	TextMatch int
	// PlatformBonus is added when the link host is a known social platform
	// and there is already some base evidence.
	PlatformBonus int
	// KeywordBonus is added once per extra keyword found in title+snippet,
	// again only atop base evidence.
	KeywordBonus int

	// HandleThreshold is the fuzzy score (0-100) a handle must reach.
	HandleThreshold int
	// TextThreshold is the fuzzy score (0-100) the content text must reach.
	TextThreshold int
}

// DefaultWeights returns the standard scoring configuration.
func DefaultWeights() Weights {
	return Weights{
		HandleMatch:     3,
		TextMatch:       1,
		PlatformBonus:   1,
		KeywordBonus:    1,
		HandleThreshold: 80,
		TextThreshold:   70,
	}
}

// Hosts whose presence corroborates an identity match.
var socialPlatforms = []string{"linkedin.com", "facebook.com", "instagram.com"}

// Score computes the relevance of a single result against the name variation
// set. Zero means "no evidence this refers to the target person"; callers
// discard such results.
func (w Weights) Score(r Result, variations []string, keywords []string) int {
	score := 0

	// A handle extracted from the URL is the strongest signal.
	if h := handle.FromURL(r.Link); h != "" && match.Matches(h, variations, w.HandleThreshold) {
		score = w.HandleMatch
	}

	// Otherwise fall back to the page text.
	text := strings.ToLower(r.Title + " " + r.Snippet)
	if score == 0 && match.Matches(text, variations, w.TextThreshold) {
		score = w.TextMatch
	}
	if score == 0 {
		return 0
	}

	// Corroborating signals only stack on top of base evidence; a social
	// platform link or keyword hit alone proves nothing about identity.
	link := strings.ToLower(r.Link)
	for _, platform := range socialPlatforms {
		if strings.Contains(link, platform) {
			score += w.PlatformBonus
			break
		}
	}

	for _, keyword := range keywords {
		if keyword == "" {
			continue
		}
		if strings.Contains(text, strings.ToLower(keyword)) {
			score += w.KeywordBonus
		}
	}

	return score
}
