package roadmap

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-roadmap/internal/schemas"
	"github.com/jonathan/career-roadmap/internal/types"
)

func TestNewDocument(t *testing.T) {
	profile, target := seniorFrontend()
	res := New(nil).Generate(profile, target)

	doc := NewDocument("rm-1", target, res)

	assert.Equal(t, "rm-1", doc.ID)
	assert.Equal(t, target, doc.Target)
	assert.Len(t, doc.Items, len(res.Items))
	assert.Equal(t, len(res.Gaps), doc.Summary.Critical+doc.Summary.High+doc.Summary.Medium+doc.Summary.Low)

	hours := 0
	for _, it := range doc.Items {
		hours += it.EstimatedHours
	}
	assert.Equal(t, hours, doc.TotalEstimatedHours)
	assert.Equal(t, doc.TotalEstimatedHours, doc.Response().TotalEstimatedHours)
}

func TestNewDocument_MatchesSchema(t *testing.T) {
	profile, target := seniorFrontend()
	doc := NewDocument("rm-1", target, New(nil).Generate(profile, target))

	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.NoError(t, schemas.Validate(schemas.Roadmap, raw))
}

func TestNewDocument_EmptyResult(t *testing.T) {
	target := types.TargetRole{Title: "X", Level: types.LevelJunior, Domain: types.DomainFrontend}
	doc := NewDocument("rm-2", target, Result{})

	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"items":[]`)
	assert.Contains(t, string(raw), `"gaps":[]`)
	assert.Contains(t, string(raw), `"phases":[]`)
	assert.NoError(t, schemas.Validate(schemas.Roadmap, raw))
}
