package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig is the budget for one endpoint.
type EndpointConfig struct {
	Path   string        // exact path, or a prefix when it ends with "/"
	Method string        // HTTP method
	Limit  int           // requests per window
	Window time.Duration // refill window
	Burst  int           // bucket capacity, Limit when 0
}

// LookupFunc resolves an environment variable.
type LookupFunc func(key string) (string, bool)

// LoadConfig reads the limiter configuration from the process environment.
func LoadConfig() *Config {
	return LoadConfigFrom(os.LookupEnv)
}

// LoadConfigFrom reads the limiter configuration through lookup:
//
//	RATE_LIMIT_ENABLED, RATE_LIMIT_DEFAULT_LIMIT, RATE_LIMIT_DEFAULT_WINDOW,
//	RATE_LIMIT_GENERATE_LIMIT, RATE_LIMIT_REMOTE_LIMIT,
//	RATE_LIMIT_CLEANUP_INTERVAL, RATE_LIMIT_WHITELIST, RATE_LIMIT_BLACKLIST
func LoadConfigFrom(lookup LookupFunc) *Config {
	env := envReader{lookup: lookup}
	if !env.bool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    env.int("RATE_LIMIT_DEFAULT_LIMIT", 600),
		DefaultWindow:   env.duration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: env.duration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       parseIPList(env.string("RATE_LIMIT_WHITELIST", "")),
		Blacklist:       parseIPList(env.string("RATE_LIMIT_BLACKLIST", "")),
		EndpointConfigs: DefaultEndpointConfigs(
			env.int("RATE_LIMIT_GENERATE_LIMIT", 120),
			env.int("RATE_LIMIT_REMOTE_LIMIT", 20),
		),
	}
}

// DefaultEndpointConfigs returns the per-endpoint budgets. Local generation
// is cheap and gets generateLimit per minute; anything that reaches the
// remote service gets remoteLimit per hour.
func DefaultEndpointConfigs(generateLimit, remoteLimit int) []EndpointConfig {
	return []EndpointConfig{
		{Path: "/roadmap/remote", Method: "POST", Limit: remoteLimit, Window: time.Hour, Burst: 3},
		{Path: "/roadmap/compare", Method: "POST", Limit: remoteLimit, Window: time.Hour, Burst: 3},

		{Path: "/roadmap/generate", Method: "POST", Limit: generateLimit, Window: time.Minute, Burst: 20},
		{Path: "/roadmap/stream", Method: "POST", Limit: generateLimit, Window: time.Minute, Burst: 20},
		{Path: "/roadmap/gaps", Method: "POST", Limit: generateLimit, Window: time.Minute, Burst: 20},
		{Path: "/roadmap/prompt", Method: "POST", Limit: generateLimit, Window: time.Minute, Burst: 20},

		// catalog reads fall back to the default limit
	}
}

type envReader struct {
	lookup LookupFunc
}

func (e envReader) string(key, def string) string {
	if v, ok := e.lookup(key); ok && v != "" {
		return v
	}
	return def
}

func (e envReader) int(key string, def int) int {
	if n, err := strconv.Atoi(e.string(key, "")); err == nil {
		return n
	}
	return def
}

func (e envReader) bool(key string, def bool) bool {
	if b, err := strconv.ParseBool(e.string(key, "")); err == nil {
		return b
	}
	return def
}

func (e envReader) duration(key string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(e.string(key, "")); err == nil {
		return d
	}
	return def
}

func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
