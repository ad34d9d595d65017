package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-roadmap/internal/gaps"
	"github.com/jonathan/career-roadmap/internal/remote"
	"github.com/jonathan/career-roadmap/internal/report"
	"github.com/jonathan/career-roadmap/internal/roadmap"
	"github.com/jonathan/career-roadmap/internal/schemas"
	"github.com/jonathan/career-roadmap/internal/types"
)

const maxBodyBytes = 1 << 20

// GapsResponse is the body of POST /roadmap/gaps.
type GapsResponse struct {
	Gaps    []types.SkillGap `json:"gaps"`
	Summary types.GapSummary `json:"summary"`
}

// RemoteResponse is the body of POST /roadmap/remote. Fallback holds the
// locally generated roadmap whenever the remote service failed.
type RemoteResponse struct {
	types.RoadmapResult
	Fallback *types.RoadmapResponse `json:"fallback,omitempty"`
}

// CompareResponse is the body of POST /roadmap/compare.
type CompareResponse struct {
	Local  *types.RoadmapResponse `json:"local"`
	Remote types.RoadmapResult    `json:"remote"`
	Diff   string                 `json:"diff"`
}

func (s *Server) handleJobTitles(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"jobTitles": s.kb.JobTitles()})
}

func (s *Server) handleCareerPaths(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"careerPaths": s.kb.CareerPaths()})
}

func (s *Server) handleGaps(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeRequest(w, r)
	if err != nil {
		s.failWith(w, r, err)
		return
	}

	found := s.generator.AnalyzeGaps(req.Profile, req.Target)
	if found == nil {
		found = []types.SkillGap{}
	}
	s.jsonResponse(w, http.StatusOK, GapsResponse{Gaps: found, Summary: gaps.Summarize(found)})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeRequest(w, r)
	if err != nil {
		s.failWith(w, r, err)
		return
	}

	doc, err := s.generate(r.Context(), req)
	if err != nil {
		s.failWith(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, doc)
}

func (s *Server) handlePrompt(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeRequest(w, r)
	if err != nil {
		s.failWith(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"prompt": roadmap.GeneratePrompt(req.Profile, req.Target),
	})
}

// handleStream sends the gap analysis, then one event per phase, then a
// completion event.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeRequest(w, r)
	if err != nil {
		s.failWith(w, r, err)
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	ctx := r.Context()
	doc, err := s.generate(ctx, req)
	if err != nil {
		sse.WriteError(err.Error())
		return
	}

	if err := sse.WriteEvent("gaps", GapsResponse{Gaps: doc.Gaps, Summary: doc.Summary}); err != nil {
		return
	}
	for _, phase := range doc.Phases {
		if ctx.Err() != nil {
			return
		}
		if err := sse.WriteEvent("phase", phase); err != nil {
			return
		}
	}
	sse.WriteComplete(doc.ID, doc.TotalEstimatedHours, doc.TotalEstimatedWeeks)
}

func (s *Server) handleRemote(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeRequest(w, r)
	if err != nil {
		s.failWith(w, r, err)
		return
	}

	var result types.RoadmapResult
	if s.remote == nil {
		result = types.RoadmapResult{Error: (&ErrUnavailable{Service: "remote roadmap service"}).Error()}
	} else {
		result = s.remote.Fetch(r.Context(), req)
	}

	resp := RemoteResponse{RoadmapResult: result}
	if !result.Success {
		doc, err := s.generate(r.Context(), req)
		if err != nil {
			s.failWith(w, r, err)
			return
		}
		resp.Fallback = doc.Response()
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleCompare generates locally and fetches remotely in parallel, then
// diffs the two outlines.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeRequest(w, r)
	if err != nil {
		s.failWith(w, r, err)
		return
	}
	if s.remote == nil {
		s.failWith(w, r, &ErrUnavailable{Service: "remote roadmap service"})
		return
	}

	var (
		doc    roadmap.Document
		result types.RoadmapResult
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		doc, err = s.generate(ctx, req)
		return err
	})
	g.Go(func() error {
		result = s.remote.Fetch(ctx, req)
		return nil
	})
	if err := g.Wait(); err != nil {
		s.failWith(w, r, err)
		return
	}

	resp := CompareResponse{Local: doc.Response(), Remote: result}
	if result.Success {
		resp.Diff, err = report.CompareRoadmaps(resp.Local, result.Data, "local", "remote")
		if err != nil {
			s.failWith(w, r, err)
			return
		}
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// generate runs one roadmap generation after the configured latency.
// A cancelled context yields an error and no partial document.
func (s *Server) generate(ctx context.Context, req remote.Request) (roadmap.Document, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return roadmap.Document{}, err
	}
	res := s.generator.Generate(req.Profile, req.Target)
	if err := ctx.Err(); err != nil {
		return roadmap.Document{}, err
	}
	return roadmap.NewDocument(uuid.NewString(), req.Target, res), nil
}

func (s *Server) simulateLatency(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// decodeRequest reads a GenerateRequest body, checks it against the request
// schema and the struct validation tags, and adapts it for the engine.
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request) (remote.Request, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return remote.Request{}, &ErrRequestTooLarge{Limit: tooLarge.Limit}
		}
		return remote.Request{}, &ErrValidation{Message: "failed to read request body"}
	}

	var in types.GenerateRequest
	if err := json.Unmarshal(body, &in); err != nil {
		return remote.Request{}, &ErrValidation{Message: "invalid JSON body: " + err.Error()}
	}

	if err := schemas.Validate(schemas.Request, body); err != nil {
		var ve *schemas.ValidationError
		if errors.As(err, &ve) && len(ve.Errors) > 0 {
			return remote.Request{}, &ErrValidation{Field: ve.Errors[0].Field, Message: ve.Errors[0].Message}
		}
		return remote.Request{}, err
	}

	if err := in.Validate(); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return remote.Request{}, &ErrValidation{Field: fe.Namespace(), Message: "failed on " + fe.Tag()}
		}
		return remote.Request{}, &ErrValidation{Message: err.Error()}
	}

	return remote.RequestFrom(in), nil
}
