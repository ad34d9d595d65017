package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jonathan/career-roadmap/internal/cache"
	"github.com/jonathan/career-roadmap/internal/config"
	"github.com/jonathan/career-roadmap/internal/llm"
	"github.com/jonathan/career-roadmap/internal/remote"
)

// errNoRemote means neither a service URL nor an API key is configured.
var errNoRemote = errors.New("no remote roadmap source: set ROADMAP_REMOTE_URL (or remote_url) or GEMINI_API_KEY with --llm")

// newCache returns Redis when an address is configured, memory otherwise.
func newCache(ctx context.Context, cfg config.Config, logger *slog.Logger) cache.Cache {
	if cfg.RedisAddress == "" {
		return cache.NewMemory()
	}
	rc, err := cache.NewRedis(ctx, cache.RedisOptions{
		Address:  cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		logger.Warn("redis unavailable, caching in memory", "address", cfg.RedisAddress, "error", err)
		return cache.NewMemory()
	}
	return rc
}

// newFetcher builds the configured remote source. useLLM selects Gemini
// over the HTTP service. The returned cleanup releases clients and caches.
func newFetcher(ctx context.Context, cfg config.Config, useLLM bool, logger *slog.Logger) (remote.Fetcher, func(), error) {
	if useLLM {
		client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			if errors.Is(err, llm.ErrNoAPIKey) {
				return nil, nil, errNoRemote
			}
			return nil, nil, err
		}
		gen := remote.NewLLMGenerator(client, llm.ParseTier(cfg.LLMTier), logger)
		return gen, func() { _ = client.Close() }, nil
	}

	if cfg.RemoteURL == "" {
		return nil, nil, errNoRemote
	}
	c := newCache(ctx, cfg, logger)
	client := remote.NewClient(remote.Options{
		BaseURL:  cfg.RemoteURL,
		Timeout:  cfg.Timeout(),
		Cache:    c,
		CacheTTL: cfg.CacheTTLDuration(),
		Logger:   logger,
	})
	return client, func() { _ = c.Close() }, nil
}

// optionalFetcher is newFetcher for callers that can run without a remote.
func optionalFetcher(ctx context.Context, cfg config.Config, logger *slog.Logger) (remote.Fetcher, func(), error) {
	useLLM := cfg.RemoteURL == "" && cfg.APIKey != ""
	f, cleanup, err := newFetcher(ctx, cfg, useLLM, logger)
	if errors.Is(err, errNoRemote) {
		return nil, func() {}, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up remote source: %w", err)
	}
	return f, cleanup, nil
}
