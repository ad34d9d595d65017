// Package config loads CLI and server settings from a JSON or YAML file and
// the environment.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable setting. All fields are optional; zero values
// are filled by MergeWithDefaults.
type Config struct {
	// Remote roadmap service
	RemoteURL     string `json:"remote_url,omitempty" yaml:"remote_url,omitempty"`
	RemoteTimeout string `json:"remote_timeout,omitempty" yaml:"remote_timeout,omitempty"` // Go duration, e.g. "30s"

	// Gemini fallback
	APIKey  string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
	LLMTier string `json:"llm_tier,omitempty" yaml:"llm_tier,omitempty"` // lite, standard or advanced

	// Cache
	RedisAddress  string `json:"redis_address,omitempty" yaml:"redis_address,omitempty"`
	RedisPassword string `json:"redis_password,omitempty" yaml:"redis_password,omitempty"`
	RedisDB       int    `json:"redis_db,omitempty" yaml:"redis_db,omitempty"`
	CacheTTL      string `json:"cache_ttl,omitempty" yaml:"cache_ttl,omitempty"`

	// Server
	Port             int    `json:"port,omitempty" yaml:"port,omitempty"`
	SimulatedLatency string `json:"simulated_latency,omitempty" yaml:"simulated_latency,omitempty"`

	Verbose bool `json:"verbose,omitempty" yaml:"verbose,omitempty"`
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		RemoteTimeout:    "60s",
		LLMTier:          "standard",
		CacheTTL:         "24h",
		Port:             8080,
		SimulatedLatency: "0s",
	}
}

// LoadConfig reads a config file. Files ending in .yaml or .yml are parsed
// as YAML, everything else as JSON.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}
	return &cfg, nil
}

// Validate checks value ranges and duration syntax.
func (c *Config) Validate() error {
	for name, value := range map[string]string{
		"remote_timeout":    c.RemoteTimeout,
		"cache_ttl":         c.CacheTTL,
		"simulated_latency": c.SimulatedLatency,
	} {
		if value == "" {
			continue
		}
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("config error: '%s' is not a duration: %q", name, value)
		}
		if d < 0 {
			return fmt.Errorf("config error: '%s' must be non-negative", name)
		}
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.RedisDB < 0 {
		return fmt.Errorf("config error: 'redis_db' must be non-negative")
	}
	switch c.LLMTier {
	case "", "lite", "standard", "advanced":
	default:
		return fmt.Errorf("config error: 'llm_tier' must be lite, standard or advanced")
	}
	if c.RemoteURL != "" && !strings.HasPrefix(c.RemoteURL, "http://") && !strings.HasPrefix(c.RemoteURL, "https://") {
		return fmt.Errorf("config error: 'remote_url' must be an http(s) URL")
	}
	return nil
}

// MergeWithDefaults returns a copy of c with zero fields taken from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	strs := []struct {
		dst *string
		src string
	}{
		{&result.RemoteURL, defaults.RemoteURL},
		{&result.RemoteTimeout, defaults.RemoteTimeout},
		{&result.APIKey, defaults.APIKey},
		{&result.LLMTier, defaults.LLMTier},
		{&result.RedisAddress, defaults.RedisAddress},
		{&result.RedisPassword, defaults.RedisPassword},
		{&result.CacheTTL, defaults.CacheTTL},
		{&result.SimulatedLatency, defaults.SimulatedLatency},
	}
	for _, s := range strs {
		if *s.dst == "" {
			*s.dst = s.src
		}
	}

	if result.RedisDB == 0 {
		result.RedisDB = defaults.RedisDB
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}
	return result
}

// ApplyEnv overrides fields from environment variables looked up through
// lookup (os.LookupEnv in production).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	set := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	set("ROADMAP_REMOTE_URL", &c.RemoteURL)
	set("ROADMAP_REMOTE_TIMEOUT", &c.RemoteTimeout)
	set("GEMINI_API_KEY", &c.APIKey)
	set("ROADMAP_LLM_TIER", &c.LLMTier)
	set("REDIS_ADDRESS", &c.RedisAddress)
	set("REDIS_PASSWORD", &c.RedisPassword)
	set("ROADMAP_CACHE_TTL", &c.CacheTTL)
	set("ROADMAP_SIMULATED_LATENCY", &c.SimulatedLatency)

	for key, dst := range map[string]*int{"REDIS_DB": &c.RedisDB, "PORT": &c.Port} {
		v, ok := lookup(key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: %s must be an integer: %q", key, v)
		}
		*dst = n
	}
	return nil
}

// Load reads path when non-empty, overlays the environment, fills defaults
// and validates the result.
func Load(path string) (Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	merged := cfg.MergeWithDefaults(Defaults())
	if err := merged.Validate(); err != nil {
		return Config{}, err
	}
	return merged, nil
}

// Timeout is RemoteTimeout parsed, or 0 when unset or invalid.
func (c Config) Timeout() time.Duration { return parseDuration(c.RemoteTimeout) }

// CacheTTLDuration is CacheTTL parsed, or 0 when unset or invalid.
func (c Config) CacheTTLDuration() time.Duration { return parseDuration(c.CacheTTL) }

// Latency is SimulatedLatency parsed, or 0 when unset or invalid.
func (c Config) Latency() time.Duration { return parseDuration(c.SimulatedLatency) }

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0
	}
	return d
}
