package auth

import (
	"context"
	"os"
)

// domainEnvVars maps search domains to their environment variable configurations.
// Each entry maps env var name to cookie name.
var domainEnvVars = map[string]map[string]string{
	"duckduckgo.com": {
		"DDG_KL": "kl", // region and language, e.g. "us-en"
		"DDG_DF": "df", // date filter
		"DDG_AH": "ah", // preferred result domains
	},
}

// EnvSource reads cookies from environment variables.
type EnvSource struct{}

// Cookies returns cookies for the given domain from environment variables.
func (EnvSource) Cookies(_ context.Context, domain string) (map[string]string, error) {
	envMap, ok := domainEnvVars[domain]
	if !ok {
		return nil, nil //nolint:nilnil // no cookies for unknown domain is not an error
	}

	cookies := make(map[string]string)
	for envVar, cookieName := range envMap {
		if value := os.Getenv(envVar); value != "" {
			cookies[cookieName] = value
		}
	}

	if len(cookies) == 0 {
		return nil, nil //nolint:nilnil // no env vars set is not an error
	}
	return cookies, nil
}

// EnvVarsForDomain returns the environment variable names for a domain.
// This is useful for generating help messages.
func EnvVarsForDomain(domain string) []string {
	envMap, ok := domainEnvVars[domain]
	if !ok {
		return nil
	}

	vars := make([]string, 0, len(envMap))
	for envVar := range envMap {
		vars = append(vars, envVar)
	}
	return vars
}
