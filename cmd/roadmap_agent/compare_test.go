package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-roadmap/internal/report"
	"github.com/jonathan/career-roadmap/internal/types"
)

func TestLoadRoadmapFile_GenerateOutput(t *testing.T) {
	doc, err := generateDocument(seniorFrontendRequest())
	require.NoError(t, err)
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	resp, err := loadRoadmapFile(writeFile(t, "roadmap.json", string(data)))
	require.NoError(t, err)
	assert.Equal(t, doc.TotalEstimatedHours, resp.TotalEstimatedHours)
	require.Len(t, resp.Phases, len(doc.Phases))

	diff, err := report.CompareRoadmaps(doc.Response(), resp, "local", "file")
	require.NoError(t, err)
	assert.Empty(t, diff)
}

func TestLoadRoadmapFile_WrappedShape(t *testing.T) {
	body := `{"success": true, "roadmap": {"phases": [{"id": 1, "title": "Foundation Building", "items": [
		{"id": "a", "title": "Pair with a mentor", "type": "action", "priority": "Important", "estimatedHours": 10}
	]}], "totalEstimatedHours": 10, "totalEstimatedWeeks": 1}}`

	resp, err := loadRoadmapFile(writeFile(t, "wrapped.json", body))
	require.NoError(t, err)
	item := resp.Phases[0].Items[0]
	assert.True(t, item.Type.IsExtension())
	assert.Equal(t, "Important", item.Priority.String())
}

func TestLoadRoadmapFile_Errors(t *testing.T) {
	_, err := loadRoadmapFile("/nonexistent.json")
	assert.Error(t, err)

	_, err = loadRoadmapFile(writeFile(t, "empty.json", `{"success": false}`))
	assert.ErrorContains(t, err, "failed to decode roadmap file")
}

func TestAlternativeRoadmap(t *testing.T) {
	req := seniorFrontendRequest()

	alt, target, err := alternativeRoadmap(req, "", "Junior", "")
	require.NoError(t, err)
	assert.Equal(t, types.LevelJunior, target.Level)
	assert.Equal(t, req.Target.Title, target.Title)

	local, err := generateDocument(req)
	require.NoError(t, err)
	diff, err := report.CompareRoadmaps(local.Response(), alt, "local", "junior")
	require.NoError(t, err)
	assert.Contains(t, diff, "-  [Critical] course: Technical Leadership Training")
}

func TestAlternativeRoadmap_Invalid(t *testing.T) {
	_, _, err := alternativeRoadmap(seniorFrontendRequest(), "", "", "Games")
	assert.ErrorContains(t, err, "invalid alternative target")
}
