package auth

import (
	"context"
	"net/url"
	"testing"
)

func TestNewCookieJar(t *testing.T) {
	jar, err := NewCookieJar("duckduckgo.com", map[string]string{
		"kl": "us-en",
		"ah": "us-en",
	})
	if err != nil {
		t.Fatalf("NewCookieJar: %v", err)
	}

	u, err := url.Parse("https://duckduckgo.com/html/")
	if err != nil {
		t.Fatalf("url.Parse: %v", err)
	}

	cookies := jar.Cookies(u)
	if len(cookies) == 0 {
		t.Fatal("jar returned no cookies for the domain")
	}

	got := make(map[string]string, len(cookies))
	for _, c := range cookies {
		got[c.Name] = c.Value
	}
	if got["kl"] != "us-en" || got["ah"] != "us-en" {
		t.Errorf("jar cookies = %v, want kl and ah set", got)
	}
}

func TestNewCookieJarSkipsEmptyValues(t *testing.T) {
	jar, err := NewCookieJar("duckduckgo.com", map[string]string{"kl": ""})
	if err != nil {
		t.Fatalf("NewCookieJar: %v", err)
	}

	u, err := url.Parse("https://duckduckgo.com/")
	if err != nil {
		t.Fatalf("url.Parse: %v", err)
	}
	if cookies := jar.Cookies(u); len(cookies) != 0 {
		t.Errorf("jar has %d cookies, want 0 (empty values skipped)", len(cookies))
	}
}

func TestEnvSource(t *testing.T) {
	t.Setenv("DDG_KL", "us-en")
	t.Setenv("DDG_DF", "w")

	src := EnvSource{}
	cookies, err := src.Cookies(context.Background(), "duckduckgo.com")
	if err != nil {
		t.Fatalf("Cookies failed: %v", err)
	}

	if cookies["kl"] != "us-en" {
		t.Errorf("kl = %q, want %q", cookies["kl"], "us-en")
	}
	if cookies["df"] != "w" {
		t.Errorf("df = %q, want %q", cookies["df"], "w")
	}
}

func TestEnvSourceUnknownDomain(t *testing.T) {
	src := EnvSource{}
	cookies, err := src.Cookies(context.Background(), "unknown.example.com")
	if err != nil {
		t.Fatalf("Cookies failed: %v", err)
	}

	if cookies != nil {
		t.Error("cookies should be nil for unknown domain")
	}
}

func TestEnvSourceNoCookies(t *testing.T) {
	t.Setenv("DDG_KL", "")
	t.Setenv("DDG_DF", "")
	t.Setenv("DDG_AH", "")

	src := EnvSource{}
	cookies, err := src.Cookies(context.Background(), "duckduckgo.com")
	if err != nil {
		t.Fatalf("Cookies failed: %v", err)
	}

	if cookies != nil {
		t.Error("cookies should be nil when env vars not set")
	}
}

func TestEnvVarsForDomain(t *testing.T) {
	vars := EnvVarsForDomain("duckduckgo.com")
	if len(vars) != 3 {
		t.Errorf("EnvVarsForDomain returned %d vars, want 3", len(vars))
	}

	if got := EnvVarsForDomain("unknown.example.com"); got != nil {
		t.Errorf("EnvVarsForDomain for unknown domain = %v, want nil", got)
	}
}

type staticSource struct {
	cookies map[string]string
}

func (s staticSource) Cookies(_ context.Context, _ string) (map[string]string, error) {
	return s.cookies, nil
}

func TestChainSources(t *testing.T) {
	ctx := context.Background()

	empty := staticSource{}
	first := staticSource{cookies: map[string]string{"a": "1"}}
	second := staticSource{cookies: map[string]string{"b": "2"}}

	got, err := ChainSources(ctx, "duckduckgo.com", empty, first, second)
	if err != nil {
		t.Fatalf("ChainSources: %v", err)
	}
	if got["a"] != "1" {
		t.Errorf("ChainSources = %v, want cookies from first non-empty source", got)
	}

	got, err = ChainSources(ctx, "duckduckgo.com", empty)
	if err != nil {
		t.Fatalf("ChainSources: %v", err)
	}
	if got != nil {
		t.Errorf("ChainSources with no cookies = %v, want nil", got)
	}
}
