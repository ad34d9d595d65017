package remote

import (
	"encoding/json"

	"github.com/jonathan/career-roadmap/internal/types"
)

// envelope covers both response shapes: {success, roadmap, error} and the
// bare {phases, totalEstimatedHours, totalEstimatedWeeks}.
type envelope struct {
	Success bool         `json:"success"`
	Roadmap *bareRoadmap `json:"roadmap"`
	Error   string       `json:"error"`
	bareRoadmap
}

type bareRoadmap struct {
	Phases              []types.RoadmapPhase `json:"phases"`
	TotalEstimatedHours types.WholeNumber    `json:"totalEstimatedHours"`
	TotalEstimatedWeeks types.WholeNumber    `json:"totalEstimatedWeeks"`
}

// response numbers phases that arrived without a usable id by position.
func (b *bareRoadmap) response() *types.RoadmapResponse {
	for i := range b.Phases {
		if b.Phases[i].ID == 0 {
			b.Phases[i].ID = i + 1
		}
	}
	return &types.RoadmapResponse{
		Phases:              b.Phases,
		TotalEstimatedHours: b.TotalEstimatedHours.Int(),
		TotalEstimatedWeeks: b.TotalEstimatedWeeks.Int(),
	}
}

// Decode reads a service response body. A wrapped roadmap wins over bare
// phases. A body with neither is a service error carrying the body's error
// text, or the default message.
func Decode(body []byte) (*types.RoadmapResponse, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, serviceError(DefaultErrorMessage, err)
	}

	if env.Success && env.Roadmap != nil && env.Roadmap.Phases != nil {
		return env.Roadmap.response(), nil
	}
	if env.Phases != nil {
		return env.bareRoadmap.response(), nil
	}
	return nil, serviceError(env.Error, nil)
}
