package profile

import (
	"testing"

	"github.com/jonathan/career-roadmap/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestFromInput(t *testing.T) {
	in := types.ProfileInput{
		CurrentJob: "  Frontend Developer ",
		Experience: "3 years",
		Skills: []types.ProfileSkill{
			{Name: "JavaScript", Level: "Intermediate"},
			{Name: "   "},
			{Name: "Git"},
		},
		Specializations: []string{"Accessibility"},
	}

	got := FromInput(in)

	assert.Equal(t, "Frontend Developer", got.CurrentJob)
	assert.Equal(t, "3 years", got.Experience)
	assert.Equal(t, []string{"JavaScript (Intermediate)", "Git"}, got.Skills)
	assert.Equal(t, []string{"Accessibility"}, got.Specializations)
}

func TestFromInput_EmptySkills(t *testing.T) {
	got := FromInput(types.ProfileInput{CurrentJob: "Student", Experience: "none"})
	assert.NotNil(t, got.Skills)
	assert.Empty(t, got.Skills)
}

func TestPayloadSkills(t *testing.T) {
	got := PayloadSkills([]string{"JavaScript (Intermediate)", "Docker", "", "React(Advanced)"})

	assert.Equal(t, []PayloadSkill{
		{Name: "JavaScript", Level: "Intermediate"},
		{Name: "Docker", Level: DefaultSkillLevel},
		{Name: "React", Level: "Advanced"},
	}, got)
}

func TestExperienceYears(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"3 years", 3},
		{"1 year", 1},
		{"10years", 10},
		{"18 months", 2},
		{"6 months", 1},
		{"5 months", 0},
		{"2 years 6 months", 2},
		{"a while", 1},
		{"", 1},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ExperienceYears(tt.in))
		})
	}
}

func TestWeeklyHours(t *testing.T) {
	assert.Equal(t, 15, WeeklyHours("15 hours/week"))
	assert.Equal(t, 20, WeeklyHours(" 20"))
	assert.Equal(t, DefaultWeeklyHours, WeeklyHours("about ten"))
	assert.Equal(t, DefaultWeeklyHours, WeeklyHours(""))
	assert.Equal(t, DefaultWeeklyHours, WeeklyHours("0"))
}
