package ratelimit

import "strings"

// unlimited marks endpoints that bypass the limiter.
var unlimited = EndpointConfig{}

// MatchEndpoint finds the budget for a request. Exact paths win over
// prefixes; GET /health is never limited. Returns nil when nothing matches.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == "GET" {
		cfg := unlimited
		return &cfg
	}

	for i := range configs {
		if configs[i].Path == path && configs[i].Method == method {
			return &configs[i]
		}
	}

	for i := range configs {
		c := &configs[i]
		if c.Method == method && strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) {
			return c
		}
	}
	return nil
}
