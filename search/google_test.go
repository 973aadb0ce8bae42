package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/codeGROOVE-dev/personmatch"
)

func TestGoogleCSESearch(t *testing.T) {
	var gotQuery, gotKey, gotCX string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotKey = r.URL.Query().Get("key")
		gotCX = r.URL.Query().Get("cx")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"items": [
				{"title": " Jane Doe - LinkedIn ", "link": "https://linkedin.com/in/janedoe", "snippet": "Engineer"},
				{"title": "no link", "link": "", "snippet": "dropped"},
				{"title": "relative link", "link": "/not/absolute", "snippet": "dropped too"},
				{"title": "News", "link": "https://news.example.com/article", "snippet": "Jane Doe wins"}
			]
		}`))
	}))
	defer server.Close()

	g, err := NewGoogleCSE(
		WithGoogleCredentials("test-key", "test-cx"),
		WithGoogleEndpoint(server.URL),
	)
	if err != nil {
		t.Fatalf("NewGoogleCSE: %v", err)
	}

	results, err := g.Search(context.Background(), `"Jane Doe" site:linkedin.com/in/`)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if gotQuery != `"Jane Doe" site:linkedin.com/in/` {
		t.Errorf("query param = %q", gotQuery)
	}
	if gotKey != "test-key" || gotCX != "test-cx" {
		t.Errorf("credentials = (%q, %q), want (test-key, test-cx)", gotKey, gotCX)
	}

	want := []personmatch.Result{
		{Title: "Jane Doe - LinkedIn", Link: "https://linkedin.com/in/janedoe", Snippet: "Engineer"},
		{Title: "News", Link: "https://news.example.com/article", Snippet: "Jane Doe wins"},
	}
	if diff := cmp.Diff(want, results); diff != "" {
		t.Errorf("Search mismatch (-want +got):\n%s", diff)
	}
}

func TestGoogleCSESearchEmptyItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	g, err := NewGoogleCSE(
		WithGoogleCredentials("k", "c"),
		WithGoogleEndpoint(server.URL),
	)
	if err != nil {
		t.Fatalf("NewGoogleCSE: %v", err)
	}

	results, err := g.Search(context.Background(), "anything")
	if err != nil {
		t.Fatalf("Search with empty items should not error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Search returned %d results, want 0", len(results))
	}
}

func TestNewGoogleCSERequiresCredentials(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GOOGLE_CSE_ID", "")

	if _, err := NewGoogleCSE(); err == nil {
		t.Fatal("NewGoogleCSE without credentials should fail")
	}
}

func TestValidLink(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://example.com/page", true},
		{"http://example.com", true},
		{"/relative/path", false},
		{"example.com/no-scheme", false},
		{"", false},
		{"https://exa mple.com/%zz", false},
	}

	for _, tt := range tests {
		if got := validLink(tt.url); got != tt.want {
			t.Errorf("validLink(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}
