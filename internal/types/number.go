package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// WholeNumber is an integer field of a remote roadmap. Remote services and
// models send hours as fractions and ids as strings, so decoding accepts a
// JSON number (rounded), a numeric string, a string ending in digits such as
// "phase-2", or null.
type WholeNumber int

var trailingDigits = regexp.MustCompile(`(\d+)\s*$`)

// Int returns the value as an int.
func (n WholeNumber) Int() int {
	return int(n)
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *WholeNumber) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*n = 0
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = WholeNumber(math.Round(f))
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("expected a number, got %s", data)
	}
	s = strings.TrimSpace(s)
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		*n = WholeNumber(math.Round(f))
		return nil
	}
	if m := trailingDigits.FindStringSubmatch(s); m != nil {
		v, err := strconv.Atoi(m[1])
		if err == nil {
			*n = WholeNumber(v)
			return nil
		}
	}
	*n = 0
	return nil
}

// UnmarshalJSON decodes the item with tolerant hour and phase fields.
func (it *PhaseItem) UnmarshalJSON(data []byte) error {
	type plain PhaseItem
	var aux struct {
		plain
		EstimatedHours WholeNumber `json:"estimatedHours"`
		Phase          WholeNumber `json:"phase"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*it = PhaseItem(aux.plain)
	it.EstimatedHours = aux.EstimatedHours.Int()
	it.Phase = aux.Phase.Int()
	return nil
}

// UnmarshalJSON decodes the phase with tolerant id, hour and week fields.
func (p *RoadmapPhase) UnmarshalJSON(data []byte) error {
	type plain RoadmapPhase
	var aux struct {
		plain
		ID             WholeNumber `json:"id"`
		EstimatedHours WholeNumber `json:"estimatedHours"`
		EstimatedWeeks WholeNumber `json:"estimatedWeeks"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*p = RoadmapPhase(aux.plain)
	p.ID = aux.ID.Int()
	p.EstimatedHours = aux.EstimatedHours.Int()
	p.EstimatedWeeks = aux.EstimatedWeeks.Int()
	return nil
}

// UnmarshalJSON decodes the roadmap with tolerant totals.
func (r *RoadmapResponse) UnmarshalJSON(data []byte) error {
	type plain RoadmapResponse
	var aux struct {
		plain
		TotalEstimatedHours WholeNumber `json:"totalEstimatedHours"`
		TotalEstimatedWeeks WholeNumber `json:"totalEstimatedWeeks"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*r = RoadmapResponse(aux.plain)
	r.TotalEstimatedHours = aux.TotalEstimatedHours.Int()
	r.TotalEstimatedWeeks = aux.TotalEstimatedWeeks.Int()
	return nil
}
