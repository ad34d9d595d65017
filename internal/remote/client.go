// Package remote fetches prebuilt roadmaps from an external generation
// service or a language model. Fetchers never return Go errors: every
// outcome is a types.RoadmapResult the caller can render or fall back from.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jonathan/career-roadmap/internal/cache"
	"github.com/jonathan/career-roadmap/internal/types"
)

// DefaultTimeout bounds a single service call.
const DefaultTimeout = 60 * time.Second

const generatePath = "/roadmap/generate"

// Fetcher produces a roadmap for a request.
type Fetcher interface {
	Fetch(ctx context.Context, req Request) types.RoadmapResult
}

// Options configures a Client.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Cache      cache.Cache
	CacheTTL   time.Duration
	Logger     *slog.Logger
}

// Client posts requests to a roadmap service.
type Client struct {
	baseURL  string
	http     *http.Client
	cache    cache.Cache
	cacheTTL time.Duration
	logger   *slog.Logger
}

// NewClient returns a client for the service at opts.BaseURL, e.g.
// "https://example.com/api".
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:  strings.TrimRight(opts.BaseURL, "/"),
		http:     httpClient,
		cache:    opts.Cache,
		cacheTTL: opts.CacheTTL,
		logger:   logger,
	}
}

// Fetch implements Fetcher.
func (c *Client) Fetch(ctx context.Context, req Request) types.RoadmapResult {
	resp, err := c.fetch(ctx, req)
	return Result(resp, err)
}

func (c *Client) fetch(ctx context.Context, req Request) (*types.RoadmapResponse, error) {
	body, err := json.Marshal(BuildPayload(req))
	if err != nil {
		return nil, serviceError(DefaultErrorMessage, err)
	}

	key := cache.Key("remote", body)
	if resp, ok := c.cached(ctx, key); ok {
		return resp, nil
	}

	url := c.baseURL + generatePath
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, networkError(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		c.logger.Warn("roadmap service unreachable", "url", url, "error", err)
		return nil, networkError(err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	c.logger.Info("roadmap service responded",
		"url", url,
		"status", httpResp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, serviceError(fmt.Sprintf("API request failed with status %d", httpResp.StatusCode), nil)
	}

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, networkError(err)
	}

	resp, err := Decode(raw)
	if err != nil {
		c.logger.Warn("roadmap service returned an unusable document", "url", url, "error", err)
		return nil, err
	}
	c.store(ctx, key, resp)
	return resp, nil
}

func (c *Client) cached(ctx context.Context, key string) (*types.RoadmapResponse, bool) {
	if c.cache == nil {
		return nil, false
	}
	data, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		c.logger.Warn("roadmap cache read failed", "key", key, "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var resp types.RoadmapResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		c.logger.Warn("discarding unreadable cached roadmap", "key", key, "error", err)
		return nil, false
	}
	c.logger.Debug("roadmap cache hit", "key", key)
	return &resp, true
}

func (c *Client) store(ctx context.Context, key string, resp *types.RoadmapResponse) {
	if c.cache == nil {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, key, data, c.cacheTTL); err != nil {
		c.logger.Warn("roadmap cache write failed", "key", key, "error", err)
	}
}

// Result converts a fetch outcome into the value handed to callers.
func Result(resp *types.RoadmapResponse, err error) types.RoadmapResult {
	if err == nil {
		return types.RoadmapResult{Success: true, Data: resp}
	}
	var remoteErr *Error
	if errors.As(err, &remoteErr) {
		return types.RoadmapResult{Error: remoteErr.Message}
	}
	return types.RoadmapResult{Error: DefaultErrorMessage}
}
