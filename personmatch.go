// Package personmatch resolves whether web search results plausibly refer to
// a specific named individual, and ranks them by confidence.
//
// The engine is pure: it consumes (title, link, snippet) triples already in
// memory, expands the target name into identity tokens, extracts candidate
// handles from result URLs, fuzzy-matches them, and produces an integer
// relevance score per result. Search providers are collaborators plugged in
// through the Provider interface.
//
// Basic usage:
//
//	results, err := personmatch.Search(ctx, "Jane Marie Doe",
//	    personmatch.WithProviders(google, ddg),
//	    personmatch.WithKeywords([]string{"Boston", "MIT"}))
//
// Or run the engine over results you already have:
//
//	variations := nameparse.Variations(nameparse.Parse("Jane Marie Doe"))
//	ranked := personmatch.Evaluate(results, variations, nil, personmatch.DefaultWeights())
package personmatch

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/codeGROOVE-dev/personmatch/nameparse"
)

// Result is a single web search result. Score is zero on input and assigned
// exactly once by the scoring engine; results that stay at zero are dropped.
type Result struct {
	Title   string
	Link    string
	Snippet string
	Score   int
}

// Provider supplies raw search results for a query. Implementations live in
// the search package; anything that can turn a query string into result
// triples will do.
type Provider interface {
	Name() string
	Search(ctx context.Context, query string) ([]Result, error)
}

// Option configures a Search call.
type Option func(*config)

type config struct {
	logger    *slog.Logger
	providers []Provider
	keywords  []string
	weights   Weights
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithProviders sets the search providers queried for raw results.
func WithProviders(providers ...Provider) Option {
	return func(c *config) { c.providers = providers }
}

// WithKeywords sets extra context keywords (city, employer, school) that
// boost results already matching the name.
func WithKeywords(keywords []string) Option {
	return func(c *config) { c.keywords = keywords }
}

// WithWeights overrides the default scoring weights and thresholds.
func WithWeights(w Weights) Option {
	return func(c *config) { c.weights = w }
}

// Search runs a full session: expands the name, queries every provider with
// every query, deduplicates, scores and ranks. Provider failures are logged
// and skipped; a session never aborts because one query went bad.
func Search(ctx context.Context, fullName string, opts ...Option) ([]Result, error) {
	cfg := &config{logger: slog.Default(), weights: DefaultWeights()}
	for _, opt := range opts {
		opt(cfg)
	}

	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		cfg.logger.Error("no name provided for search")
		return nil, nil
	}

	cfg.logger.Info("starting search", "name", fullName)

	parts := nameparse.Parse(fullName)
	variations := nameparse.Variations(parts)
	queries := Queries(fullName)

	var all []Result
	for i, query := range queries {
		if ctx.Err() != nil {
			break
		}
		cfg.logger.Info("searching", "query", query, "n", i+1, "total", len(queries))

		for _, p := range cfg.providers {
			results, err := p.Search(ctx, query)
			if err != nil {
				cfg.logger.Warn("provider query failed", "provider", p.Name(), "query", query, "error", err)
				continue
			}
			cfg.logger.Debug("provider returned results", "provider", p.Name(), "count", len(results))
			all = append(all, results...)
		}
	}

	ranked := evaluate(all, variations, cfg.keywords, cfg.weights)
	cfg.logger.Info("search completed", "raw", len(all), "relevant", len(ranked))
	return ranked, nil
}

// Evaluate runs the pure engine over in-memory results: deduplicate by link,
// score each result against the name variations, drop zero-score results and
// rank the rest. Scoring is side-effect free per result, so it fans out
// across goroutines.
func Evaluate(results []Result, variations []string, keywords []string, w Weights) []Result {
	return evaluate(results, variations, keywords, w)
}

func evaluate(results []Result, variations []string, keywords []string, w Weights) []Result {
	unique := Dedupe(results)

	var wg sync.WaitGroup
	for i := range unique {
		wg.Add(1)
		go func(r *Result) {
			defer wg.Done()
			r.Score = w.Score(*r, variations, keywords)
		}(&unique[i])
	}
	wg.Wait()

	scored := unique[:0]
	for _, r := range unique {
		if r.Score > 0 {
			scored = append(scored, r)
		}
	}

	return Rank(scored)
}

// Dedupe drops results whose link appeared earlier in the sequence,
// preserving first-seen order.
func Dedupe(results []Result) []Result {
	seen := make(map[string]bool, len(results))
	unique := make([]Result, 0, len(results))
	for _, r := range results {
		if seen[r.Link] {
			continue
		}
		seen[r.Link] = true
		unique = append(unique, r)
	}
	return unique
}
