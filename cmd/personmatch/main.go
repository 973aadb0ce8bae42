// Command personmatch searches the web for a person and ranks the results by
// how confidently they refer to that person.
//
// Usage:
//
//	personmatch "Jane Marie Doe"
//	personmatch -extra "Boston,MIT" "Jane Marie Doe"   # context keywords
//
// Google Custom Search is used when GOOGLE_API_KEY and GOOGLE_CSE_ID are set;
// DuckDuckGo needs no credentials and is always queried.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/personmatch"
	"github.com/codeGROOVE-dev/personmatch/httpcache"
	"github.com/codeGROOVE-dev/personmatch/search"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	verbose := flag.Bool("v", false, "verbose logging (same as -debug)")
	extra := flag.String("extra", "", "extra context keywords, comma separated (city, education, occupation)")
	noBrowser := flag.Bool("no-browser", false, "disable reading cookies from browser stores")
	noCache := flag.Bool("no-cache", false, "disable response caching (enabled by default with 24h TTL)")
	cacheTTL := flag.Duration("cache-ttl", 24*time.Hour, "cache time-to-live")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: personmatch [options] <full name>")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
		fmt.Fprintln(os.Stderr, "\nProviders:")
		fmt.Fprintln(os.Stderr, "  - Google Custom Search (set GOOGLE_API_KEY and GOOGLE_CSE_ID)")
		fmt.Fprintln(os.Stderr, "  - DuckDuckGo HTML (no credentials)")
		os.Exit(1)
	}

	name := strings.TrimSpace(flag.Arg(0))
	if name == "" {
		fmt.Fprintln(os.Stderr, "Error: no name provided")
		os.Exit(1)
	}

	var keywords []string
	for _, k := range strings.Split(*extra, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}

	// Setup logger
	logLevel := slog.LevelInfo
	if *debug || *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	// Setup cache
	var cache *httpcache.Cache
	if !*noCache {
		var err error
		cache, err = httpcache.New(*cacheTTL)
		if err != nil {
			logger.Warn("failed to initialize cache, continuing without cache", "error", err)
		} else {
			defer func() {
				if err := cache.Close(); err != nil {
					logger.Warn("failed to close cache", "error", err)
				}
			}()
			logger.Debug("response cache initialized", "ttl", cacheTTL.String())
		}
	}

	ctx := context.Background()

	// Setup providers
	var providers []personmatch.Provider

	var googleOpts []search.GoogleOption
	googleOpts = append(googleOpts, search.WithGoogleLogger(logger))
	if cache != nil {
		googleOpts = append(googleOpts, search.WithGoogleCache(cache))
	}
	google, err := search.NewGoogleCSE(googleOpts...)
	if err != nil {
		logger.Warn("Google search unavailable", "error", err)
	} else {
		providers = append(providers, google)
	}

	var ddgOpts []search.DDGOption
	ddgOpts = append(ddgOpts, search.WithDDGLogger(logger))
	if cache != nil {
		ddgOpts = append(ddgOpts, search.WithDDGCache(cache))
	}
	if !*noBrowser {
		ddgOpts = append(ddgOpts, search.WithDDGBrowserCookies())
	}
	ddg, err := search.NewDuckDuckGo(ctx, ddgOpts...)
	if err != nil {
		logger.Warn("DuckDuckGo search unavailable", "error", err)
	} else {
		providers = append(providers, ddg)
	}

	if len(providers) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no search providers available")
		os.Exit(1) //nolint:gocritic // exitAfterDefer is acceptable in main
	}

	results, err := personmatch.Search(ctx, name,
		personmatch.WithLogger(logger),
		personmatch.WithProviders(providers...),
		personmatch.WithKeywords(keywords),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("found relevant results", "count", len(results))
	if err := outputJSON(results); err != nil {
		fmt.Fprintf(os.Stderr, "Output error: %v\n", err)
		os.Exit(1)
	}
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
