// Package nameparse splits free-text person names into structured parts and
// expands them into the lowercase identity tokens people tend to pick as
// usernames and profile slugs.
package nameparse

import (
	"sort"
	"strings"
)

// Parts holds the structured pieces of a person's name. The zero value with
// Full set is the "unparseable" result: valid, empty and safe to expand.
type Parts struct {
	Full          string
	First         string
	Middle        string
	Last          string
	FirstInitial  string
	MiddleInitial string
	LastInitial   string
}

// Honorifics and suffixes that carry no identity signal in a username.
var (
	titles = map[string]bool{
		"mr": true, "mrs": true, "ms": true, "miss": true, "mx": true,
		"dr": true, "prof": true, "professor": true, "rev": true,
		"sir": true, "dame": true, "hon": true, "capt": true, "sgt": true,
	}
	suffixes = map[string]bool{
		"jr": true, "sr": true, "ii": true, "iii": true, "iv": true, "v": true,
		"phd": true, "md": true, "esq": true, "dds": true, "jd": true,
		"mba": true, "cpa": true,
	}
	// Surname particles attach to the word that follows them.
	particles = map[string]bool{
		"van": true, "von": true, "de": true, "del": true, "della": true,
		"der": true, "den": true, "da": true, "di": true, "du": true,
		"la": true, "le": true, "st": true, "bin": true, "al": true,
		"mac": true, "ter": true,
	}
)

// Parse decomposes a full name into Parts. It never fails: input that cannot
// be split degrades to a Parts with only Full set, which expands to an empty
// variation set downstream.
func Parse(fullName string) Parts {
	fullName = strings.TrimSpace(fullName)
	p := Parts{Full: fullName}
	if fullName == "" {
		return p
	}

	words := strings.Fields(fullName)

	// Strip leading titles and trailing suffixes.
	for len(words) > 0 && titles[normalizeWord(words[0])] {
		words = words[1:]
	}
	for len(words) > 0 && suffixes[normalizeWord(words[len(words)-1])] {
		words = words[:len(words)-1]
	}
	if len(words) == 0 {
		return p
	}

	switch len(words) {
	case 1:
		p.First = words[0]
	case 2:
		p.First = words[0]
		p.Last = words[1]
	default:
		p.First = words[0]
		last := []string{words[len(words)-1]}
		middle := words[1 : len(words)-1]
		// Pull surname particles into the last name: "Ludwig van Beethoven"
		// has no middle name.
		for len(middle) > 0 && particles[normalizeWord(middle[len(middle)-1])] {
			last = append([]string{middle[len(middle)-1]}, last...)
			middle = middle[:len(middle)-1]
		}
		p.Middle = strings.Join(middle, " ")
		p.Last = strings.Join(last, " ")
	}

	p.FirstInitial = initial(p.First)
	p.MiddleInitial = initial(p.Middle)
	p.LastInitial = initial(p.Last)
	return p
}

func normalizeWord(w string) string {
	return strings.Trim(strings.ToLower(w), ".,")
}

func initial(s string) string {
	if s == "" {
		return ""
	}
	return string([]rune(s)[0])
}

// Separators people put between name parts when choosing a handle.
var separators = []string{"", ".", "-", "_"}

// pairTemplate names two parts joined by one separator, in both orders.
type pairTemplate struct {
	a, b func(lowered Parts) string
}

// tripleTemplate names three parts joined by two independent separators.
type tripleTemplate struct {
	a, b, c func(lowered Parts) string
}

func first(p Parts) string  { return p.First }
func middle(p Parts) string { return p.Middle }
func last(p Parts) string   { return p.Last }
func fi(p Parts) string     { return p.FirstInitial }
func mi(p Parts) string     { return p.MiddleInitial }
func li(p Parts) string     { return p.LastInitial }

var pairTemplates = []pairTemplate{
	{first, last},
	{fi, last},
	{first, li},
	{fi, li},
}

var tripleTemplates = []tripleTemplate{
	{first, middle, last},
	{first, mi, last},
	{fi, middle, last},
	{fi, mi, last},
	{fi, mi, li},
}

// Variations expands name parts into the set of lowercase tokens a person
// might use as a username or URL slug. The expansion is deliberately
// exhaustive: extracted handles are short and noisy, and the match must
// tolerate any separator or initials convention. Output is sorted, deduped
// and contains no token of length <= 1.
func Variations(p Parts) []string {
	lowered := Parts{
		Full:          strings.ToLower(p.Full),
		First:         strings.ToLower(p.First),
		Middle:        strings.ToLower(p.Middle),
		Last:          strings.ToLower(p.Last),
		FirstInitial:  strings.ToLower(p.FirstInitial),
		MiddleInitial: strings.ToLower(p.MiddleInitial),
		LastInitial:   strings.ToLower(p.LastInitial),
	}

	set := make(map[string]bool)
	add := func(s string) {
		if len(s) > 1 {
			set[s] = true
		}
	}

	add(lowered.First)
	add(lowered.Middle)
	add(lowered.Last)

	for _, tmpl := range pairTemplates {
		a, b := tmpl.a(lowered), tmpl.b(lowered)
		if a == "" || b == "" {
			continue
		}
		for _, sep := range separators {
			add(a + sep + b)
			add(b + sep + a)
		}
	}

	for _, tmpl := range tripleTemplates {
		a, b, c := tmpl.a(lowered), tmpl.b(lowered), tmpl.c(lowered)
		if a == "" || b == "" || c == "" {
			continue
		}
		for _, sep1 := range separators {
			for _, sep2 := range separators {
				add(a + sep1 + b + sep2 + c)
			}
		}
	}

	if lowered.Full != "" {
		for _, sep := range separators {
			add(strings.ReplaceAll(lowered.Full, " ", sep))
		}
	}

	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
