// Package match scores textual similarity between a candidate string and a
// set of reference tokens on a 0-100 scale. It is tolerant of widely
// differing lengths: a three-character initialism compares sensibly against a
// full slug, and a short token compares against a whole title+snippet blob.
package match

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Ratio returns the normalized similarity of two strings: 100 means equal,
// 0 means nothing in common.
func Ratio(a, b string) int {
	if a == "" && b == "" {
		return 100
	}
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 100
	}

	dist := levenshtein.ComputeDistance(a, b)
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	return (maxLen - dist) * 100 / maxLen
}

// PartialRatio slides the shorter string across the longer one and returns
// the best window Ratio. This is what lets a short handle match inside a long
// title+snippet text.
func PartialRatio(a, b string) int {
	shorter, longer := []rune(a), []rune(b)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(shorter) == 0 {
		return 0
	}
	if strings.Contains(string(longer), string(shorter)) {
		return 100
	}

	best := 0
	for i := 0; i+len(shorter) <= len(longer); i++ {
		window := string(longer[i : i+len(shorter)])
		if r := Ratio(string(shorter), window); r > best {
			best = r
			if best == 100 {
				break
			}
		}
	}
	return best
}

// Similarity is the score used for matching: the better of the full ratio and
// the windowed partial ratio.
func Similarity(a, b string) int {
	full := Ratio(a, b)
	partial := PartialRatio(a, b)
	if partial > full {
		return partial
	}
	return full
}

// Best returns the candidate with the highest similarity to text, along with
// its score. An empty text or candidate set scores 0.
func Best(text string, candidates []string) (string, int) {
	if text == "" || len(candidates) == 0 {
		return "", 0
	}

	text = strings.ToLower(text)
	bestCandidate, bestScore := "", 0
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if s := Similarity(text, c); s > bestScore {
			bestCandidate, bestScore = c, s
			if bestScore == 100 {
				break
			}
		}
	}
	return bestCandidate, bestScore
}

// Matches reports whether any candidate reaches the similarity threshold.
// Empty text or an empty candidate set never matches.
func Matches(text string, candidates []string, threshold int) bool {
	if text == "" || len(candidates) == 0 {
		return false
	}
	_, score := Best(text, candidates)
	return score >= threshold
}
