package task

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuadrant_Valid(t *testing.T) {
	for _, q := range Quadrants() {
		assert.True(t, q.Valid(), "quadrant %s", q)
	}
	assert.False(t, Quadrant("LATER").Valid())
	assert.False(t, Quadrant("").Valid())
}

func TestClassificationResult_JSONShape(t *testing.T) {
	r := ClassificationResult{
		Quadrant:          QuadrantDoFirst,
		Confidence:        0.95,
		Explanation:       "urgent and important",
		IsUrgent:          true,
		IsImportant:       true,
		UrgencyScore:      2.75,
		ImportanceScore:   1,
		UrgencySignals:    []string{"urgent"},
		ImportanceSignals: []string{"tax"},
		Source:            SourceRules,
		LatencyMs:         0.4,
	}

	raw, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "DO_FIRST", decoded["quadrant"])
	assert.Equal(t, "rules", decoded["source"])
	assert.Contains(t, decoded, "should_escalate")
	assert.Contains(t, decoded, "urgency_score")
}

func TestParsedTask_OmitsEmptyDue(t *testing.T) {
	p := ParsedTask{Title: "Water the plants"}
	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "due_date")
	assert.NotContains(t, string(raw), "due_time")

	due := time.Date(2026, 2, 5, 9, 0, 0, 0, time.UTC)
	p = ParsedTask{Title: "Call Mom", DueDate: &due, DueTime: "9:00 AM"}
	raw, err = json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "due_date")
	assert.Contains(t, string(raw), "9:00 AM")
}
