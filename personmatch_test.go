package personmatch

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/codeGROOVE-dev/personmatch/nameparse"
)

func variationsFor(name string) []string {
	return nameparse.Variations(nameparse.Parse(name))
}

func TestScore(t *testing.T) {
	variations := variationsFor("Jane Marie Doe")
	w := DefaultWeights()

	tests := []struct {
		name     string
		result   Result
		keywords []string
		want     int
	}{
		{
			name: "handle match on platform",
			result: Result{
				Title:   "Jane Doe - LinkedIn",
				Link:    "https://linkedin.com/in/janedoe",
				Snippet: "Software engineer",
			},
			want: 4, // handle 3 + platform 1
		},
		{
			name: "handle match off platform",
			result: Result{
				Title: "janedoe's page",
				Link:  "https://example.com/users/janedoe",
			},
			want: 3,
		},
		{
			name: "text-only match on platform",
			result: Result{
				Title:   "Jane Doe posted an update",
				Link:    "https://facebook.com/groups/somegroup",
				Snippet: "A group discussion",
			},
			want: 2, // text 1 + platform 1
		},
		{
			name: "text-only match off platform",
			result: Result{
				Title:   "Jane Doe wins award",
				Link:    "https://news.example.com/2024/award-winners",
				Snippet: "Local resident honored",
			},
			want: 1,
		},
		{
			name: "no match scores zero",
			result: Result{
				Title:   "Completely unrelated article",
				Link:    "https://example.com/articles/88421",
				Snippet: "Nothing to see here",
			},
			want: 0,
		},
		{
			name: "platform alone is not evidence",
			result: Result{
				Title:   "Trending posts this week",
				Link:    "https://facebook.com/marketplace",
				Snippet: "Buy and sell locally",
			},
			want: 0,
		},
		{
			name: "keywords stack on base evidence",
			result: Result{
				Title:   "Jane Doe - LinkedIn",
				Link:    "https://linkedin.com/in/janedoe",
				Snippet: "Engineer in Boston, MIT graduate",
			},
			keywords: []string{"Boston", "MIT"},
			want:     6, // handle 3 + platform 1 + 2 keywords
		},
		{
			name: "keywords without base evidence score zero",
			result: Result{
				Title:   "Boston travel guide",
				Link:    "https://example.com/guides/777",
				Snippet: "Best things to do in Boston",
			},
			keywords: []string{"Boston"},
			want:     0,
		},
		{
			name: "keyword counts once even when repeated",
			result: Result{
				Title:   "Jane Doe, Boston | Boston profiles",
				Link:    "https://linkedin.com/in/janedoe",
				Snippet: "Boston based",
			},
			keywords: []string{"Boston"},
			want:     5, // handle 3 + platform 1 + 1 keyword
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := w.Score(tt.result, variations, tt.keywords)
			if got != tt.want {
				t.Errorf("Score(%q) = %d, want %d", tt.result.Link, got, tt.want)
			}
		})
	}
}

func TestScoreEmptyVariations(t *testing.T) {
	w := DefaultWeights()
	r := Result{Title: "Jane Doe - LinkedIn", Link: "https://linkedin.com/in/janedoe"}

	if got := w.Score(r, nil, nil); got != 0 {
		t.Errorf("Score with no variations = %d, want 0", got)
	}
}

func TestCustomWeights(t *testing.T) {
	variations := variationsFor("Jane Doe")
	w := Weights{HandleMatch: 10, PlatformBonus: 5, HandleThreshold: 80, TextThreshold: 70}
	r := Result{Title: "Jane Doe", Link: "https://linkedin.com/in/janedoe"}

	if got := w.Score(r, variations, nil); got != 15 {
		t.Errorf("Score with custom weights = %d, want 15", got)
	}
}

func TestDedupe(t *testing.T) {
	in := []Result{
		{Title: "first", Link: "https://a.example.com"},
		{Title: "second", Link: "https://b.example.com"},
		{Title: "duplicate of first", Link: "https://a.example.com"},
		{Title: "third", Link: "https://c.example.com"},
		{Title: "duplicate of second", Link: "https://b.example.com"},
	}

	want := []Result{
		{Title: "first", Link: "https://a.example.com"},
		{Title: "second", Link: "https://b.example.com"},
		{Title: "third", Link: "https://c.example.com"},
	}

	got := Dedupe(in)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Dedupe mismatch (-want +got):\n%s", diff)
	}
	if len(got) > len(in) {
		t.Errorf("Dedupe grew the input: %d > %d", len(got), len(in))
	}
}

func TestRankStable(t *testing.T) {
	in := []Result{
		{Title: "low first", Link: "https://a.example.com", Score: 1},
		{Title: "high", Link: "https://b.example.com", Score: 4},
		{Title: "low second", Link: "https://c.example.com", Score: 1},
		{Title: "mid", Link: "https://d.example.com", Score: 2},
	}

	want := []Result{
		{Title: "high", Link: "https://b.example.com", Score: 4},
		{Title: "mid", Link: "https://d.example.com", Score: 2},
		{Title: "low first", Link: "https://a.example.com", Score: 1},
		{Title: "low second", Link: "https://c.example.com", Score: 1},
	}

	got := Rank(in)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Rank mismatch (-want +got):\n%s", diff)
	}
}

func TestRankIsPermutation(t *testing.T) {
	in := []Result{
		{Link: "https://a.example.com", Score: 2},
		{Link: "https://b.example.com", Score: 5},
		{Link: "https://c.example.com", Score: 3},
	}

	got := Rank(append([]Result(nil), in...))
	if len(got) != len(in) {
		t.Fatalf("Rank changed length: %d != %d", len(got), len(in))
	}

	links := make(map[string]bool)
	for _, r := range got {
		links[r.Link] = true
	}
	for _, r := range in {
		if !links[r.Link] {
			t.Errorf("Rank dropped %q", r.Link)
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Score < got[i].Score {
			t.Errorf("Rank not descending at %d: %d < %d", i, got[i-1].Score, got[i].Score)
		}
	}
}

func TestEvaluate(t *testing.T) {
	variations := variationsFor("Jane Marie Doe")

	in := []Result{
		{
			Title:   "Jane Doe wins local award",
			Link:    "https://news.example.com/award-winners",
			Snippet: "Jane Doe honored at ceremony",
		},
		{
			Title:   "Jane Doe - LinkedIn",
			Link:    "https://linkedin.com/in/janedoe",
			Snippet: "Software engineer",
		},
		{
			Title:   "Jane Doe - LinkedIn",
			Link:    "https://linkedin.com/in/janedoe",
			Snippet: "duplicate entry",
		},
		{
			Title:   "Unrelated listing",
			Link:    "https://example.com/listings/40213",
			Snippet: "Two bedroom apartment",
		},
	}

	got := Evaluate(in, variations, nil, DefaultWeights())

	if len(got) != 2 {
		t.Fatalf("Evaluate returned %d results, want 2: %+v", len(got), got)
	}
	if got[0].Link != "https://linkedin.com/in/janedoe" {
		t.Errorf("Evaluate[0].Link = %q, want the LinkedIn handle match first", got[0].Link)
	}
	if got[0].Score < 4 {
		t.Errorf("Evaluate[0].Score = %d, want >= 4 (handle match + platform bonus)", got[0].Score)
	}
	if got[1].Link != "https://news.example.com/award-winners" {
		t.Errorf("Evaluate[1].Link = %q, want the text-only match second", got[1].Link)
	}
	if got[1].Score != 1 {
		t.Errorf("Evaluate[1].Score = %d, want 1", got[1].Score)
	}
}

func TestQueries(t *testing.T) {
	queries := Queries("Jane Doe")

	if len(queries) == 0 {
		t.Fatal("Queries returned nothing")
	}
	if queries[0] != `"Jane Doe" site:linkedin.com/in/` {
		t.Errorf("Queries[0] = %q, want the LinkedIn /in/ query first", queries[0])
	}
	for _, q := range queries {
		if !strings.Contains(q, `"Jane Doe"`) {
			t.Errorf("query %q does not quote the name", q)
		}
	}
}
