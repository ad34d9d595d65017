package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/jonathan/career-roadmap/internal/cache"
	"github.com/jonathan/career-roadmap/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wrappedBody = `{
  "success": true,
  "roadmap": {
    "phases": [{
      "id": 1, "title": "Foundation Building", "goal": "g", "focus": "f",
      "estimatedHours": 40, "estimatedWeeks": 1,
      "items": [{
        "id": "a1", "title": "Ship a side project", "description": "d",
        "type": "action", "priority": "Important", "difficulty": "Beginner",
        "duration": "1 week", "estimatedHours": 40, "prerequisites": [],
        "skills": ["Git"], "completed": false, "category": "Technical",
        "resources": [], "phase": 1
      }]
    }],
    "totalEstimatedHours": 40,
    "totalEstimatedWeeks": 1
  }
}`

const bareBody = `{"phases": [{"id": 2, "title": "Skill Development", "items": [
  {"id": "s1", "title": "Master Go", "type": "skill", "priority": "High", "phase": 2}
]}]}`

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleRequest() Request {
	return Request{
		Profile: types.CurrentProfile{
			CurrentJob: "Frontend Developer",
			Experience: "18 months",
			Skills:     []string{"JavaScript (Intermediate)", "Git"},
		},
		Target: types.TargetRole{
			Title:  "Senior Frontend Developer",
			Level:  types.LevelSenior,
			Domain: types.DomainFrontend,
		},
		CareerGoals:    "Lead a frontend team",
		LearningStyle:  "Hands-on",
		TimeCommitment: "15 hours/week",
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc, c cache.Cache) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Options{BaseURL: srv.URL + "/api/", Cache: c, Logger: quietLogger()})
}

func TestFetch_WrappedShape(t *testing.T) {
	var got Payload
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/roadmap/generate", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(wrappedBody))
	}, nil)

	result := client.Fetch(context.Background(), sampleRequest())

	require.True(t, result.Success, result.Error)
	require.NotNil(t, result.Data)
	assert.Equal(t, 40, result.Data.TotalEstimatedHours)
	require.Len(t, result.Data.Phases, 1)
	item := result.Data.Phases[0].Items[0]
	assert.True(t, item.Type.IsExtension())
	assert.Equal(t, types.ItemTypeAction, item.Type.String())
	assert.True(t, item.Priority.IsExtension())
	assert.Equal(t, types.PriorityImportant, item.Priority.String())

	assert.Equal(t, "Frontend Developer", got.CurrentJobTitle)
	assert.Equal(t, 2, got.YearsOfExperience)
	assert.Equal(t, 15, got.WeeklyTimeCommitment)
	assert.Equal(t, types.LevelSenior, got.TargetLevel)
	require.Len(t, got.Skills, 2)
	assert.Equal(t, "Beginner", got.Skills[1].Level)
}

func TestFetch_BareShape(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(bareBody))
	}, nil)

	result := client.Fetch(context.Background(), sampleRequest())

	require.True(t, result.Success, result.Error)
	assert.Zero(t, result.Data.TotalEstimatedHours)
	assert.Zero(t, result.Data.TotalEstimatedWeeks)
	p, ok := result.Data.Phases[0].Items[0].Priority.Known()
	assert.True(t, ok)
	assert.Equal(t, types.PriorityHigh, p)
}

func TestFetch_ServiceFailures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"explicit failure", 200, `{"success": false, "error": "Quota exceeded"}`, "Quota exceeded"},
		{"failure without message", 200, `{"success": false}`, DefaultErrorMessage},
		{"wrapped without phases", 200, `{"success": true, "roadmap": {"totalEstimatedHours": 3}}`, DefaultErrorMessage},
		{"null phases", 200, `{"phases": null}`, DefaultErrorMessage},
		{"not json", 200, `<html>oops</html>`, DefaultErrorMessage},
		{"server error", 500, `{"error": "boom"}`, "API request failed with status 500"},
		{"not found", 404, ``, "API request failed with status 404"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}, nil)

			result := client.Fetch(context.Background(), sampleRequest())
			assert.False(t, result.Success)
			assert.Nil(t, result.Data)
			assert.Equal(t, tt.wantErr, result.Error)
		})
	}
}

func TestFetch_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(Options{BaseURL: url, Logger: quietLogger()})
	result := client.Fetch(context.Background(), sampleRequest())

	assert.False(t, result.Success)
	assert.Equal(t, NetworkErrorMessage, result.Error)
}

func TestFetch_CacheHit(t *testing.T) {
	var calls atomic.Int32
	mem := cache.NewMemory()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(wrappedBody))
	}, mem)

	first := client.Fetch(context.Background(), sampleRequest())
	second := client.Fetch(context.Background(), sampleRequest())

	require.True(t, first.Success)
	require.True(t, second.Success)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, first.Data, second.Data)
	assert.Equal(t, 1, mem.Len())
}

func TestFetch_FailuresNotCached(t *testing.T) {
	var calls atomic.Int32
	mem := cache.NewMemory()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}, mem)

	client.Fetch(context.Background(), sampleRequest())
	client.Fetch(context.Background(), sampleRequest())

	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, 0, mem.Len())
}

func TestDecode_PrefersWrapped(t *testing.T) {
	resp, err := Decode([]byte(`{"success": true, "roadmap": {"phases": [], "totalEstimatedHours": 7}, "phases": [{"id": 9}]}`))
	require.NoError(t, err)
	assert.Empty(t, resp.Phases)
	assert.Equal(t, 7, resp.TotalEstimatedHours)
}

func TestDecode_ErrorKinds(t *testing.T) {
	_, err := Decode([]byte(`{"success": false, "error": "nope"}`))
	var remoteErr *Error
	require.True(t, errors.As(err, &remoteErr))
	assert.Equal(t, KindService, remoteErr.Kind)
	assert.Equal(t, "nope", remoteErr.Message)
	assert.Contains(t, err.Error(), "service")
}

func TestDecode_FractionalHoursAndStringIDs(t *testing.T) {
	body := `{"success": true, "roadmap": {
	  "phases": [
	    {"id": "phase-1", "title": "Foundation Building", "estimatedHours": 37.5, "estimatedWeeks": 0.9,
	     "items": [{"id": "a", "title": "Learn Go", "type": "skill", "priority": "High",
	                "estimatedHours": 12.4, "phase": "1"}]},
	    {"id": "advanced", "title": "Advanced Mastery", "estimatedHours": "20"}
	  ],
	  "totalEstimatedHours": 57.5, "totalEstimatedWeeks": 1.6}}`

	resp, err := Decode([]byte(body))
	require.NoError(t, err)
	require.Len(t, resp.Phases, 2)

	first := resp.Phases[0]
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 38, first.EstimatedHours)
	assert.Equal(t, 1, first.EstimatedWeeks)
	assert.Equal(t, 12, first.Items[0].EstimatedHours)
	assert.Equal(t, 1, first.Items[0].Phase)

	second := resp.Phases[1]
	assert.Equal(t, 2, second.ID, "unnumbered phases take their position")
	assert.Equal(t, 20, second.EstimatedHours)

	assert.Equal(t, 58, resp.TotalEstimatedHours)
	assert.Equal(t, 2, resp.TotalEstimatedWeeks)
}

func TestFetch_FractionalHours(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"phases": [{"id": 1, "estimatedHours": 37.5, "items": []}], "totalEstimatedHours": 37.5}`))
	}, nil)

	result := client.Fetch(context.Background(), sampleRequest())

	require.True(t, result.Success, result.Error)
	assert.Equal(t, 38, result.Data.Phases[0].EstimatedHours)
	assert.Equal(t, 38, result.Data.TotalEstimatedHours)
}

func TestFetch_UnreadableBodyLogsCause(t *testing.T) {
	var logs bytes.Buffer
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>oops</html>`))
	}))
	t.Cleanup(srv.Close)
	client := NewClient(Options{BaseURL: srv.URL, Logger: slog.New(slog.NewTextHandler(&logs, nil))})

	result := client.Fetch(context.Background(), sampleRequest())

	assert.False(t, result.Success)
	assert.Equal(t, DefaultErrorMessage, result.Error)
	assert.Contains(t, logs.String(), "roadmap service returned an unusable document")
	assert.Contains(t, logs.String(), "invalid character")
}

func TestResult(t *testing.T) {
	ok := Result(&types.RoadmapResponse{}, nil)
	assert.True(t, ok.Success)

	net := Result(nil, networkError(errors.New("dial tcp: refused")))
	assert.Equal(t, NetworkErrorMessage, net.Error)

	other := Result(nil, errors.New("unexpected"))
	assert.Equal(t, DefaultErrorMessage, other.Error)
}

func TestRequestFrom(t *testing.T) {
	req := RequestFrom(types.GenerateRequest{
		Profile: types.ProfileInput{
			CurrentJob: "Student",
			Experience: "6 months",
			Skills:     []types.ProfileSkill{{Name: "Python", Level: "Beginner"}, {Name: "Git"}},
		},
		Target:         types.TargetRole{Title: "Data Analyst", Level: types.LevelJunior, Domain: types.DomainData},
		TimeCommitment: "8",
	})

	assert.Equal(t, []string{"Python (Beginner)", "Git"}, req.Profile.Skills)
	payload := BuildPayload(req)
	assert.Equal(t, 1, payload.YearsOfExperience)
	assert.Equal(t, 8, payload.WeeklyTimeCommitment)
	assert.Equal(t, types.DomainData, payload.TargetDomain)
}
