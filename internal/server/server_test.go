package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-roadmap/internal/remote"
	"github.com/jonathan/career-roadmap/internal/roadmap"
	"github.com/jonathan/career-roadmap/internal/server/middleware"
	"github.com/jonathan/career-roadmap/internal/server/ratelimit"
	"github.com/jonathan/career-roadmap/internal/types"
)

const validBody = `{
	"profile": {
		"currentJob": "Frontend Developer",
		"experience": "3 years",
		"skills": ["JavaScript (Advanced)", {"name": "React", "level": "Intermediate"}, "CSS (Advanced)"]
	},
	"target": {"title": "Senior Frontend Engineer", "level": "Senior", "domain": "Frontend"},
	"timeCommitment": "15 hours per week"
}`

type fakeFetcher struct {
	result types.RoadmapResult
	calls  atomic.Int32
	last   remote.Request
}

func (f *fakeFetcher) Fetch(_ context.Context, req remote.Request) types.RoadmapResult {
	f.calls.Add(1)
	f.last = req
	return f.result
}

func newTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.RateLimit == nil {
		cfg.RateLimit = &ratelimit.Config{Enabled: false}
	}
	s, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestNew_InvalidPort(t *testing.T) {
	_, err := New(Config{Port: 70000, RateLimit: &ratelimit.Config{}})
	assert.Error(t, err)
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, Config{})

	w := do(t, s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]string{"status": "ok"}, decodeBody[map[string]string](t, w))
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t, Config{})
	w := do(t, s, http.MethodOptions, "/roadmap/generate", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestCatalogEndpoints(t *testing.T) {
	s := newTestServer(t, Config{})

	w := do(t, s, http.MethodGet, "/catalog/job-titles", "")
	require.Equal(t, http.StatusOK, w.Code)
	titles := decodeBody[map[string][]string](t, w)
	assert.NotEmpty(t, titles["jobTitles"])

	w = do(t, s, http.MethodGet, "/catalog/career-paths", "")
	require.Equal(t, http.StatusOK, w.Code)
	paths := decodeBody[map[string]map[string]types.CareerPath](t, w)
	assert.NotEmpty(t, paths["careerPaths"])
}

func TestGapsEndpoint(t *testing.T) {
	s := newTestServer(t, Config{})

	w := do(t, s, http.MethodPost, "/roadmap/gaps", validBody)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decodeBody[GapsResponse](t, w)
	require.NotEmpty(t, resp.Gaps)
	for i := 1; i < len(resp.Gaps); i++ {
		assert.GreaterOrEqual(t, resp.Gaps[i-1].Gap, resp.Gaps[i].Gap)
	}
	total := 0
	for _, g := range resp.Gaps {
		total += g.Gap
	}
	assert.Equal(t, total, resp.Summary.TotalGap)
	assert.Equal(t, total*2, resp.Summary.RecommendedWeeks)
}

func TestGenerateEndpoint(t *testing.T) {
	s := newTestServer(t, Config{})

	w := do(t, s, http.MethodPost, "/roadmap/generate", validBody)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	doc := decodeBody[roadmap.Document](t, w)
	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, types.LevelSenior, doc.Target.Level)
	require.NotEmpty(t, doc.Items)
	require.NotEmpty(t, doc.Phases)
	for _, it := range doc.Items {
		assert.GreaterOrEqual(t, it.Phase, 1)
		assert.LessOrEqual(t, it.Phase, 4)
	}
	assert.Equal(t, "Foundation Building", doc.Phases[0].Title)
}

func TestGenerateEndpoint_MatchesEngine(t *testing.T) {
	s := newTestServer(t, Config{})
	w := do(t, s, http.MethodPost, "/roadmap/generate", validBody)
	require.Equal(t, http.StatusOK, w.Code)
	doc := decodeBody[roadmap.Document](t, w)

	profile := types.CurrentProfile{
		CurrentJob: "Frontend Developer",
		Experience: "3 years",
		Skills:     []string{"JavaScript (Advanced)", "React (Intermediate)", "CSS (Advanced)"},
	}
	target := types.TargetRole{Title: "Senior Frontend Engineer", Level: types.LevelSenior, Domain: types.DomainFrontend}
	want := roadmap.GenerateRoadmap(profile, target)

	require.Len(t, doc.Items, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, doc.Items[i].ID)
	}
}

func TestGenerateEndpoint_Validation(t *testing.T) {
	s := newTestServer(t, Config{})

	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "not JSON", body: `{`, want: http.StatusBadRequest},
		{name: "missing target", body: `{"profile": {"currentJob": "Dev", "experience": "1 year"}}`, want: http.StatusBadRequest},
		{name: "unknown level", body: `{"profile": {"currentJob": "Dev", "experience": "1 year"}, "target": {"title": "X", "level": "Guru", "domain": "Frontend"}}`, want: http.StatusBadRequest},
		{name: "unknown domain", body: `{"profile": {"currentJob": "Dev", "experience": "1 year"}, "target": {"title": "X", "level": "Mid", "domain": "Games"}}`, want: http.StatusBadRequest},
		{name: "skill without name", body: `{"profile": {"currentJob": "Dev", "experience": "1 year", "skills": [{"level": "High"}]}, "target": {"title": "X", "level": "Mid", "domain": "Data"}}`, want: http.StatusBadRequest},
		{name: "too large", body: `{"careerGoals": "` + strings.Repeat("a", maxBodyBytes) + `"}`, want: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, s, http.MethodPost, "/roadmap/generate", tt.body)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
			assert.NotEmpty(t, decodeBody[map[string]string](t, w)["error"])
		})
	}
}

func TestGenerateEndpoint_WrongMethod(t *testing.T) {
	s := newTestServer(t, Config{})
	w := do(t, s, http.MethodGet, "/roadmap/generate", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestPromptEndpoint(t *testing.T) {
	s := newTestServer(t, Config{})

	w := do(t, s, http.MethodPost, "/roadmap/prompt", validBody)
	require.Equal(t, http.StatusOK, w.Code)
	prompt := decodeBody[map[string]string](t, w)["prompt"]
	assert.Contains(t, prompt, "Senior Frontend Engineer")
	assert.Contains(t, prompt, "React (Intermediate)")
	for _, phase := range []string{"Foundation Building", "Skill Development", "Advanced Mastery", "Real-World Application"} {
		assert.Contains(t, prompt, phase)
	}
}

func TestStreamEndpoint(t *testing.T) {
	s := newTestServer(t, Config{})
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/roadmap/stream", "application/json", strings.NewReader(validBody))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	var events []string
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 4<<20)
	for scanner.Scan() {
		if name, ok := strings.CutPrefix(scanner.Text(), "event: "); ok {
			events = append(events, name)
		}
	}
	require.NoError(t, scanner.Err())

	require.GreaterOrEqual(t, len(events), 3)
	assert.Equal(t, "gaps", events[0])
	assert.Equal(t, "complete", events[len(events)-1])
	for _, e := range events[1 : len(events)-1] {
		assert.Equal(t, "phase", e)
	}
}

func TestRemoteEndpoint_Success(t *testing.T) {
	remoteData := &types.RoadmapResponse{
		Phases: []types.RoadmapPhase{{ID: 1, Title: "Foundation Building", Items: []types.PhaseItem{
			{ID: "r1", Title: "Ship something", Type: types.ExtensionKind("action"), Priority: types.ExtensionPriority("Important")},
		}}},
		TotalEstimatedHours: 40,
		TotalEstimatedWeeks: 1,
	}
	f := &fakeFetcher{result: types.RoadmapResult{Success: true, Data: remoteData}}
	s := newTestServer(t, Config{Remote: f})

	w := do(t, s, http.MethodPost, "/roadmap/remote", validBody)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.JSONEq(t, "true", string(body["success"]))
	assert.NotContains(t, body, "fallback")
	assert.Contains(t, string(body["data"]), `"priority":"Important"`)

	assert.EqualValues(t, 1, f.calls.Load())
	assert.Equal(t, "15 hours per week", f.last.TimeCommitment)
	assert.Equal(t, []string{"JavaScript (Advanced)", "React (Intermediate)", "CSS (Advanced)"}, f.last.Profile.Skills)
}

func TestRemoteEndpoint_FallsBackToLocal(t *testing.T) {
	f := &fakeFetcher{result: types.RoadmapResult{Error: remote.NetworkErrorMessage}}
	s := newTestServer(t, Config{Remote: f})

	w := do(t, s, http.MethodPost, "/roadmap/remote", validBody)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody[struct {
		Success  bool                   `json:"success"`
		Error    string                 `json:"error"`
		Fallback *types.RoadmapResponse `json:"fallback"`
	}](t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, remote.NetworkErrorMessage, resp.Error)
	require.NotNil(t, resp.Fallback)
	assert.NotEmpty(t, resp.Fallback.Phases)
}

func TestRemoteEndpoint_NotConfigured(t *testing.T) {
	s := newTestServer(t, Config{})

	w := do(t, s, http.MethodPost, "/roadmap/remote", validBody)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "is not configured")
	assert.Contains(t, w.Body.String(), `"fallback"`)
}

func TestCompareEndpoint(t *testing.T) {
	local := newTestServer(t, Config{})
	w := do(t, local, http.MethodPost, "/roadmap/generate", validBody)
	require.Equal(t, http.StatusOK, w.Code)
	doc := decodeBody[roadmap.Document](t, w)

	altered := doc.Response()
	altered.Phases = altered.Phases[:1]
	f := &fakeFetcher{result: types.RoadmapResult{Success: true, Data: altered}}
	s := newTestServer(t, Config{Remote: f})

	w = do(t, s, http.MethodPost, "/roadmap/compare", validBody)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decodeBody[CompareResponse](t, w)
	require.NotNil(t, resp.Local)
	assert.True(t, resp.Remote.Success)
	assert.Contains(t, resp.Diff, "--- local")
	assert.Contains(t, resp.Diff, "-Phase 2: Skill Development")
}

func TestCompareEndpoint_RemoteFailure(t *testing.T) {
	f := &fakeFetcher{result: types.RoadmapResult{Error: "Failed to generate roadmap"}}
	s := newTestServer(t, Config{Remote: f})

	w := do(t, s, http.MethodPost, "/roadmap/compare", validBody)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[CompareResponse](t, w)
	assert.False(t, resp.Remote.Success)
	assert.Empty(t, resp.Diff)
	assert.NotNil(t, resp.Local)
}

func TestCompareEndpoint_NotConfigured(t *testing.T) {
	s := newTestServer(t, Config{})
	w := do(t, s, http.MethodPost, "/roadmap/compare", validBody)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestSimulatedLatency_HonoursCancellation(t *testing.T) {
	s := newTestServer(t, Config{Latency: time.Hour})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	req := httptest.NewRequest(http.MethodPost, "/roadmap/generate", bytes.NewBufferString(validBody)).WithContext(ctx)
	w := httptest.NewRecorder()

	start := time.Now()
	s.Handler().ServeHTTP(w, req)

	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.NotContains(t, w.Body.String(), `"items"`)
}

func TestSimulatedLatency_Delays(t *testing.T) {
	s := newTestServer(t, Config{Latency: 30 * time.Millisecond})

	start := time.Now()
	w := do(t, s, http.MethodPost, "/roadmap/generate", validBody)
	require.Equal(t, http.StatusOK, w.Code)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestRateLimit(t *testing.T) {
	s := newTestServer(t, Config{RateLimit: &ratelimit.Config{
		Enabled:         true,
		DefaultLimit:    100,
		DefaultWindow:   time.Minute,
		EndpointConfigs: []ratelimit.EndpointConfig{{Path: "/roadmap/prompt", Method: "POST", Limit: 2, Window: time.Hour}},
	}})

	for i := 0; i < 2; i++ {
		w := do(t, s, http.MethodPost, "/roadmap/prompt", validBody)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}

	w := do(t, s, http.MethodPost, "/roadmap/prompt", validBody)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Equal(t, "rate_limit_exceeded", decodeBody[map[string]any](t, w)["error"])

	w = do(t, s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimit_RejectionCarriesRequestIDAndCORS(t *testing.T) {
	s := newTestServer(t, Config{RateLimit: &ratelimit.Config{
		Enabled:         true,
		DefaultLimit:    100,
		DefaultWindow:   time.Minute,
		EndpointConfigs: []ratelimit.EndpointConfig{{Path: "/roadmap/prompt", Method: "POST", Limit: 1, Window: time.Hour}},
	}})

	require.Equal(t, http.StatusOK, do(t, s, http.MethodPost, "/roadmap/prompt", validBody).Code)

	w := do(t, s, http.MethodPost, "/roadmap/prompt", validBody)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, middleware.RequestIDHeader, w.Header().Get("Access-Control-Expose-Headers"))

	req := httptest.NewRequest(http.MethodPost, "/roadmap/prompt", strings.NewReader(validBody))
	req.Header.Set(middleware.RequestIDHeader, "client-trace-7")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "client-trace-7", rec.Header().Get(middleware.RequestIDHeader))
}

func TestSSEWriter_NumbersEvents(t *testing.T) {
	w := httptest.NewRecorder()
	sse, err := NewSSEWriter(w)
	require.NoError(t, err)

	require.NoError(t, sse.WriteEvent("gaps", map[string]int{"n": 1}))
	sse.WriteComplete("rm-1", 80, 2)

	out := w.Body.String()
	assert.Contains(t, out, "id: 1\nevent: gaps\ndata: {\"n\":1}\n\n")
	assert.Contains(t, out, "id: 2\nevent: complete\n")
	assert.Contains(t, out, `"status":"completed"`)
}
