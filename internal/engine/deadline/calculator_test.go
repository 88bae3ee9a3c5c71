package deadline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/turtacn/TaskTriage-Engine/internal/config"
)

var testNow = time.Date(2026, 2, 4, 12, 0, 0, 0, time.UTC)

func newCalculator() *Calculator {
	return NewCalculator(config.DefaultEngine().Deadline)
}

func due(t time.Time) *time.Time { return &t }

func TestScore_NoDueDate(t *testing.T) {
	assert.Equal(t, 0.0, newCalculator().Score(nil, testNow))
}

func TestScore_Bands(t *testing.T) {
	c := newCalculator()

	cases := []struct {
		name string
		due  time.Time
		want float64
	}{
		{"due today late evening", time.Date(2026, 2, 4, 23, 59, 0, 0, time.UTC), 0.75},
		{"due today early morning", time.Date(2026, 2, 4, 0, 1, 0, 0, time.UTC), 0.75},
		{"due tomorrow", time.Date(2026, 2, 5, 9, 0, 0, 0, time.UTC), 0.65},
		{"in two days", time.Date(2026, 2, 6, 9, 0, 0, 0, time.UTC), 0.50},
		{"in three days", time.Date(2026, 2, 7, 9, 0, 0, 0, time.UTC), 0.50},
		{"in four days", time.Date(2026, 2, 8, 9, 0, 0, 0, time.UTC), 0.25},
		{"in seven days", time.Date(2026, 2, 11, 9, 0, 0, 0, time.UTC), 0.25},
		{"in eight days", time.Date(2026, 2, 12, 9, 0, 0, 0, time.UTC), 0.24},
		{"in thirty-two days", time.Date(2026, 3, 8, 9, 0, 0, 0, time.UTC), 0.0},
		{"one day overdue", time.Date(2026, 2, 3, 9, 0, 0, 0, time.UTC), 0.80},
		{"four days overdue", time.Date(2026, 1, 31, 9, 0, 0, 0, time.UTC), 0.95},
		{"long overdue caps at one", time.Date(2025, 11, 4, 9, 0, 0, 0, time.UTC), 1.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, c.Score(due(tc.due), testNow), 1e-9)
		})
	}
}

func TestScore_DayGranularityNotElapsedHours(t *testing.T) {
	c := newCalculator()

	// 21 hours away but on the next calendar date: tomorrow, not today.
	nearMidnight := time.Date(2026, 2, 4, 23, 0, 0, 0, time.UTC)
	nextMorning := time.Date(2026, 2, 5, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, 0.65, c.Score(due(nextMorning), nearMidnight))
}

func TestScore_Monotonicity(t *testing.T) {
	c := newCalculator()

	// Non-increasing as the deadline moves further into the future.
	prev := 2.0
	for d := 0; d <= 60; d++ {
		v := c.Score(due(testNow.AddDate(0, 0, d)), testNow)
		assert.LessOrEqual(t, v, prev, "day +%d", d)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
		prev = v
	}

	// Non-decreasing as the deadline becomes more overdue.
	prev = -1.0
	for d := 1; d <= 30; d++ {
		v := c.Score(due(testNow.AddDate(0, 0, -d)), testNow)
		assert.GreaterOrEqual(t, v, prev, "day -%d", d)
		assert.LessOrEqual(t, v, 1.0)
		prev = v
	}
}

func TestScore_AlternateProfile(t *testing.T) {
	cfg := config.DefaultEngine().Deadline
	cfg.DueToday = 0.9
	cfg.DueTomorrow = 0.8
	c := NewCalculator(cfg)

	assert.Equal(t, 0.9, c.Score(due(testNow), testNow))
	assert.Equal(t, 0.8, c.Score(due(testNow.AddDate(0, 0, 1)), testNow))
}
