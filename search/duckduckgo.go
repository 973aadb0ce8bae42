package search

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/codeGROOVE-dev/personmatch"
	"github.com/codeGROOVE-dev/personmatch/auth"
	"github.com/codeGROOVE-dev/personmatch/httpcache"
)

const (
	ddgEndpoint = "https://html.duckduckgo.com/html/"
	ddgDomain   = "duckduckgo.com"
)

// DuckDuckGo scrapes the HTML (no-JS) DuckDuckGo results page. It needs no
// credentials, which makes it the free supplement to the keyed Google
// provider: failures here degrade the session, never abort it.
type DuckDuckGo struct {
	httpClient *http.Client
	cache      httpcache.Cacher
	logger     *slog.Logger
	endpoint   string
	maxResults int
}

// DDGOption configures a DuckDuckGo provider.
type DDGOption func(*ddgConfig)

type ddgConfig struct {
	cache          httpcache.Cacher
	logger         *slog.Logger
	endpoint       string
	maxResults     int
	browserCookies bool
}

// WithDDGCache sets the HTTP response cache.
func WithDDGCache(cache httpcache.Cacher) DDGOption {
	return func(c *ddgConfig) { c.cache = cache }
}

// WithDDGLogger sets a custom logger.
func WithDDGLogger(logger *slog.Logger) DDGOption {
	return func(c *ddgConfig) { c.logger = logger }
}

// WithDDGEndpoint overrides the results endpoint (used by tests).
func WithDDGEndpoint(endpoint string) DDGOption {
	return func(c *ddgConfig) { c.endpoint = endpoint }
}

// WithDDGBrowserCookies enables loading duckduckgo.com cookies from browser
// stores; a recognized session is throttled less aggressively.
func WithDDGBrowserCookies() DDGOption {
	return func(c *ddgConfig) { c.browserCookies = true }
}

// WithDDGMaxResults caps the number of results parsed per query.
func WithDDGMaxResults(n int) DDGOption {
	return func(c *ddgConfig) { c.maxResults = n }
}

// NewDuckDuckGo creates a DuckDuckGo HTML provider.
func NewDuckDuckGo(ctx context.Context, opts ...DDGOption) (*DuckDuckGo, error) {
	cfg := &ddgConfig{
		logger:     slog.Default(),
		endpoint:   ddgEndpoint,
		maxResults: 10,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	if cfg.browserCookies {
		cookies, err := auth.ChainSources(ctx, ddgDomain, auth.EnvSource{}, auth.NewBrowserSource(cfg.logger))
		if err != nil {
			cfg.logger.Debug("browser cookie lookup failed", "domain", ddgDomain, "error", err)
		}
		if len(cookies) > 0 {
			jar, err := auth.NewCookieJar(ddgDomain, cookies)
			if err != nil {
				return nil, fmt.Errorf("cookie jar: %w", err)
			}
			client.Jar = jar
			cfg.logger.Debug("loaded browser cookies", "domain", ddgDomain, "count", len(cookies))
		}
	}

	return &DuckDuckGo{
		httpClient: client,
		cache:      cfg.cache,
		logger:     cfg.logger,
		endpoint:   cfg.endpoint,
		maxResults: cfg.maxResults,
	}, nil
}

// Name identifies the provider in logs.
func (*DuckDuckGo) Name() string { return "duckduckgo" }

// Search issues one query against the HTML results page.
func (d *DuckDuckGo) Search(ctx context.Context, query string) ([]personmatch.Result, error) {
	params := url.Values{}
	params.Set("q", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.endpoint+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", httpcache.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	body, err := httpcache.FetchURL(ctx, d.cache, d.httpClient, req, d.logger)
	if err != nil {
		return nil, fmt.Errorf("duckduckgo search: %w", err)
	}

	return d.parseResults(body)
}

func (d *DuckDuckGo) parseResults(body []byte) ([]personmatch.Result, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("duckduckgo search: parse HTML: %w", err)
	}

	var results []personmatch.Result
	doc.Find("div.result").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		anchor := sel.Find("a.result__a").First()
		href, ok := anchor.Attr("href")
		if !ok {
			return true
		}

		link := unwrapRedirect(href)
		if !validLink(link) {
			return true
		}

		results = append(results, personmatch.Result{
			Title:   strings.TrimSpace(anchor.Text()),
			Link:    link,
			Snippet: strings.TrimSpace(sel.Find(".result__snippet").First().Text()),
		})
		return len(results) < d.maxResults
	})

	return results, nil
}

// unwrapRedirect resolves DuckDuckGo's redirect-wrapped result links
// ("//duckduckgo.com/l/?uddg=<encoded target>") to the target URL.
func unwrapRedirect(href string) string {
	if strings.HasPrefix(href, "//") {
		href = "https:" + href
	}

	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if !strings.HasSuffix(u.Host, ddgDomain) || !strings.HasPrefix(u.Path, "/l/") {
		return href
	}

	target := u.Query().Get("uddg")
	if target == "" {
		return href
	}
	return target
}
