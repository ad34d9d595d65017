package remote

import (
	"github.com/jonathan/career-roadmap/internal/profile"
	"github.com/jonathan/career-roadmap/internal/types"
)

// Request is everything a roadmap source needs to draft a roadmap.
type Request struct {
	Profile        types.CurrentProfile
	Target         types.TargetRole
	CareerGoals    string
	LearningStyle  string
	TimeCommitment string
}

// RequestFrom adapts a validated boundary request.
func RequestFrom(r types.GenerateRequest) Request {
	return Request{
		Profile:        profile.FromInput(r.Profile),
		Target:         r.Target,
		CareerGoals:    r.CareerGoals,
		LearningStyle:  r.LearningStyle,
		TimeCommitment: r.TimeCommitment,
	}
}

// Payload is the JSON body posted to the roadmap service.
type Payload struct {
	CurrentJobTitle      string                 `json:"currentJobTitle"`
	YearsOfExperience    int                    `json:"yearsOfExperience"`
	Skills               []profile.PayloadSkill `json:"skills"`
	TargetJobTitle       string                 `json:"targetJobTitle"`
	TargetLevel          types.Level            `json:"targetLevel"`
	TargetDomain         types.Domain           `json:"targetDomain"`
	CareerGoals          string                 `json:"careerGoals"`
	LearningStyle        string                 `json:"learningStyle"`
	WeeklyTimeCommitment int                    `json:"weeklyTimeCommitment"`
}

// BuildPayload converts a request into the service's wire format.
func BuildPayload(req Request) Payload {
	return Payload{
		CurrentJobTitle:      req.Profile.CurrentJob,
		YearsOfExperience:    profile.ExperienceYears(req.Profile.Experience),
		Skills:               profile.PayloadSkills(req.Profile.Skills),
		TargetJobTitle:       req.Target.Title,
		TargetLevel:          req.Target.Level,
		TargetDomain:         req.Target.Domain,
		CareerGoals:          req.CareerGoals,
		LearningStyle:        req.LearningStyle,
		WeeklyTimeCommitment: profile.WeeklyHours(req.TimeCommitment),
	}
}
