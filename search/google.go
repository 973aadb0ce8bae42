package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/personmatch"
	"github.com/codeGROOVE-dev/personmatch/httpcache"
)

const googleEndpoint = "https://www.googleapis.com/customsearch/v1"

// GoogleCSE queries the Google Custom Search JSON API.
type GoogleCSE struct {
	httpClient *http.Client
	cache      httpcache.Cacher
	logger     *slog.Logger
	apiKey     string
	cseID      string
	endpoint   string
	num        int
}

// GoogleOption configures a GoogleCSE provider.
type GoogleOption func(*googleConfig)

type googleConfig struct {
	cache    httpcache.Cacher
	logger   *slog.Logger
	apiKey   string
	cseID    string
	endpoint string
	num      int
}

// WithGoogleCredentials sets the API key and custom search engine ID
// explicitly, overriding the GOOGLE_API_KEY and GOOGLE_CSE_ID env vars.
func WithGoogleCredentials(apiKey, cseID string) GoogleOption {
	return func(c *googleConfig) { c.apiKey, c.cseID = apiKey, cseID }
}

// WithGoogleCache sets the HTTP response cache.
func WithGoogleCache(cache httpcache.Cacher) GoogleOption {
	return func(c *googleConfig) { c.cache = cache }
}

// WithGoogleLogger sets a custom logger.
func WithGoogleLogger(logger *slog.Logger) GoogleOption {
	return func(c *googleConfig) { c.logger = logger }
}

// WithGoogleEndpoint overrides the API endpoint (used by tests).
func WithGoogleEndpoint(endpoint string) GoogleOption {
	return func(c *googleConfig) { c.endpoint = endpoint }
}

// WithGoogleResultCount sets the number of results requested per query (1-10).
func WithGoogleResultCount(num int) GoogleOption {
	return func(c *googleConfig) { c.num = num }
}

// NewGoogleCSE creates a Google Custom Search provider. Credentials come from
// options or the GOOGLE_API_KEY / GOOGLE_CSE_ID environment variables.
func NewGoogleCSE(opts ...GoogleOption) (*GoogleCSE, error) {
	cfg := &googleConfig{
		logger:   slog.Default(),
		endpoint: googleEndpoint,
		num:      10,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.apiKey == "" {
		cfg.apiKey = os.Getenv("GOOGLE_API_KEY")
	}
	if cfg.cseID == "" {
		cfg.cseID = os.Getenv("GOOGLE_CSE_ID")
	}
	if cfg.apiKey == "" || cfg.cseID == "" {
		return nil, fmt.Errorf("%w: set GOOGLE_API_KEY and GOOGLE_CSE_ID or use WithGoogleCredentials", ErrNoCredentials)
	}

	return &GoogleCSE{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		cache:      cfg.cache,
		logger:     cfg.logger,
		apiKey:     cfg.apiKey,
		cseID:      cfg.cseID,
		endpoint:   cfg.endpoint,
		num:        cfg.num,
	}, nil
}

// Name identifies the provider in logs.
func (*GoogleCSE) Name() string { return "google" }

// googleResponse is the slice of the CSE JSON response we care about.
type googleResponse struct {
	Items []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"items"`
}

// Search issues one query and returns its parsed results. An empty items
// array is not an error.
func (g *GoogleCSE) Search(ctx context.Context, query string) ([]personmatch.Result, error) {
	params := url.Values{}
	params.Set("key", g.apiKey)
	params.Set("cx", g.cseID)
	params.Set("q", query)
	params.Set("num", fmt.Sprint(g.num))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", httpcache.UserAgent)

	body, err := httpcache.FetchURL(ctx, g.cache, g.httpClient, req, g.logger)
	if err != nil {
		return nil, fmt.Errorf("google search: %w", err)
	}

	var resp googleResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("google search: decode response: %w", err)
	}

	results := make([]personmatch.Result, 0, len(resp.Items))
	for _, item := range resp.Items {
		link := strings.TrimSpace(item.Link)
		if link == "" || !validLink(link) {
			continue
		}
		results = append(results, personmatch.Result{
			Title:   strings.TrimSpace(item.Title),
			Link:    link,
			Snippet: strings.TrimSpace(item.Snippet),
		})
	}
	return results, nil
}
