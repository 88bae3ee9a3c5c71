package classify

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/TaskTriage-Engine/internal/config"
	"github.com/turtacn/TaskTriage-Engine/internal/engine/deadline"
	"github.com/turtacn/TaskTriage-Engine/internal/engine/patterns"
	"github.com/turtacn/TaskTriage-Engine/pkg/types/common"
	"github.com/turtacn/TaskTriage-Engine/pkg/types/task"
)

var testNow = time.Date(2026, 2, 4, 12, 0, 0, 0, time.UTC)

func newTestEngine(clock common.Clock) *Engine {
	cfg := config.DefaultEngine()
	lib := patterns.MustNewLibrary()
	calc := deadline.NewCalculator(cfg.Deadline)
	return NewEngine(lib, calc, cfg.Thresholds, clock, nil)
}

func fixedEngine() *Engine {
	return newTestEngine(common.NewFixedClock(testNow))
}

func due(t time.Time) *time.Time { return &t }

func TestClassify_QuadrantScenarios(t *testing.T) {
	e := fixedEngine()

	cases := []struct {
		text string
		want task.Quadrant
	}{
		{"Urgent: Submit tax return by today deadline", task.QuadrantDoFirst},
		{"Browse Reddit for interesting posts", task.QuadrantEliminate},
		{"Order office supplies - printer ink running low", task.QuadrantDelegate},
		{"Research investment options for retirement", task.QuadrantSchedule},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			got := e.Classify(tc.text, nil)
			assert.Equal(t, tc.want, got.Quadrant)
			assert.NotEmpty(t, got.Explanation)
		})
	}
}

func TestClassify_RuleOrder(t *testing.T) {
	e := fixedEngine()

	cases := []struct {
		name       string
		text       string
		due        *time.Time
		wantQuad   task.Quadrant
		wantConf   float64
	}{
		{
			name:     "two low-priority signals eliminate",
			text:     "maybe reorganize the garage someday",
			wantQuad: task.QuadrantEliminate,
			wantConf: 0.85,
		},
		{
			name:     "single low-priority signal with nothing else",
			text:     "scroll through instagram",
			wantQuad: task.QuadrantEliminate,
			wantConf: 0.75,
		},
		{
			name:     "administrative work delegates",
			text:     "order office supplies and restock the printer ink",
			wantQuad: task.QuadrantDelegate,
			wantConf: 0.80, // 0.70 + min(3,2)*0.05
		},
		{
			name:     "urgent and important does first",
			text:     "urgent tax filing",
			wantQuad: task.QuadrantDoFirst,
			wantConf: 0.85, // 0.75 + min(1+1,4)*0.05
		},
		{
			name:     "urgent important with critical deadline gets bonus",
			text:     "urgent tax filing",
			due:      due(testNow),
			wantQuad: task.QuadrantDoFirst,
			wantConf: 0.95, // 0.85 + 0.10 deadline bonus
		},
		{
			name:     "critical deadline alone does first",
			text:     "water the plants",
			due:      due(testNow),
			wantQuad: task.QuadrantDoFirst,
			wantConf: 0.80,
		},
		{
			name:     "important not urgent schedules",
			text:     "research investment options for retirement",
			wantQuad: task.QuadrantSchedule,
			wantConf: 0.80, // 0.70 + min(2,3)*0.05
		},
		{
			name:     "urgent not important delegates",
			text:     "reply to the email asap",
			wantQuad: task.QuadrantDelegate,
			wantConf: 0.70, // 0.65 + min(1,2)*0.05
		},
		{
			name:     "future phrasing schedules",
			text:     "revisit the pricing model next month",
			wantQuad: task.QuadrantSchedule,
			wantConf: 0.60,
		},
		{
			name:     "mid-range deadline schedules",
			text:     "water the plants",
			due:      due(testNow.AddDate(0, 0, 3)),
			wantQuad: task.QuadrantSchedule,
			wantConf: 0.65,
		},
		{
			name:     "default schedules for review",
			text:     "water the plants",
			wantQuad: task.QuadrantSchedule,
			wantConf: 0.55,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := e.Classify(tc.text, tc.due)
			assert.Equal(t, tc.wantQuad, got.Quadrant)
			assert.InDelta(t, tc.wantConf, got.Confidence, 1e-9)
		})
	}
}

func TestClassify_DefaultRuleExplanation(t *testing.T) {
	e := fixedEngine()
	got := e.Classify("water the plants", nil)
	assert.Equal(t, "no clear urgency — scheduling for review.", got.Explanation)
}

func TestClassify_EmptyInput(t *testing.T) {
	e := fixedEngine()

	for _, text := range []string{"", "   ", "\t\n"} {
		got := e.Classify(text, nil)
		assert.Equal(t, task.QuadrantSchedule, got.Quadrant)
		assert.InDelta(t, 0.55, got.Confidence, 1e-9)
		assert.True(t, got.ShouldEscalate)
		assert.NotEmpty(t, got.Explanation)
		assert.Empty(t, got.UrgencySignals)
		assert.Empty(t, got.ImportanceSignals)
	}
}

func TestClassify_VeryLongInput(t *testing.T) {
	e := fixedEngine()
	long := strings.Repeat("review the quarterly numbers and ", 5000)
	got := e.Classify(long, nil)
	assert.True(t, got.Quadrant.Valid())
}

func TestClassify_CaseInsensitive(t *testing.T) {
	e := fixedEngine()
	for _, text := range []string{"URGENT task", "urgent task", "UrGeNt task"} {
		got := e.Classify(text, nil)
		assert.True(t, got.IsUrgent, "text %q", text)
	}
}

func TestClassify_EscalationInvariant(t *testing.T) {
	e := fixedEngine()

	texts := []string{
		"", "water the plants", "urgent tax filing", "browse reddit maybe",
		"order office supplies", "revisit later", "asap", "important family matter",
	}
	for _, text := range texts {
		got := e.Classify(text, nil)
		assert.Equal(t, got.Confidence < 0.65, got.ShouldEscalate, "text %q", text)
		assert.Equal(t, got.ShouldEscalate, e.ShouldEscalateToLLM(got), "text %q", text)
	}
}

func TestClassify_ConfidenceCap(t *testing.T) {
	e := fixedEngine()

	// Many urgency and importance signals plus a critical deadline would
	// exceed the cap without clamping.
	got := e.Classify("urgent critical emergency tax legal contract audit deadline today", due(testNow))
	assert.InDelta(t, 0.95, got.Confidence, 1e-9)
	assert.LessOrEqual(t, got.Confidence, 0.95)
}

func TestClassify_ScoresAndSignals(t *testing.T) {
	e := fixedEngine()

	got := e.Classify("Urgent: Submit tax return by today deadline", due(testNow))
	// urgent, deadline, today matched in definition order.
	assert.Equal(t, []string{"Urgent", "deadline", "today"}, got.UrgencySignals)
	assert.Equal(t, []string{"tax"}, got.ImportanceSignals)
	assert.InDelta(t, 3.75, got.UrgencyScore, 1e-9) // 3 signals + 0.75 deadline
	assert.InDelta(t, 1.0, got.ImportanceScore, 1e-9)
	assert.True(t, got.IsUrgent)
	assert.True(t, got.IsImportant)
	assert.Equal(t, task.SourceRules, got.Source)
}

func TestClassify_DeadlineAloneMakesUrgent(t *testing.T) {
	e := fixedEngine()

	// Tomorrow scores 0.65 which meets the soon-deadline threshold.
	got := e.Classify("water the plants", due(testNow.AddDate(0, 0, 1)))
	assert.True(t, got.IsUrgent)

	// Five days out scores 0.25 which does not.
	got = e.Classify("water the plants", due(testNow.AddDate(0, 0, 5)))
	assert.False(t, got.IsUrgent)
}

func TestClassify_ScheduleDeadlineTracksThreshold(t *testing.T) {
	cfg := config.DefaultEngine()
	cfg.Thresholds.ScheduleDeadlineUrgency = 0.20
	lib := patterns.MustNewLibrary()
	calc := deadline.NewCalculator(cfg.Deadline)
	e := NewEngine(lib, calc, cfg.Thresholds, common.NewFixedClock(testNow), nil)

	// Five days out scores 0.25: below the stock 0.50 cut-off, above 0.20.
	fiveDays := due(testNow.AddDate(0, 0, 5))
	got := e.Classify("water the plants", fiveDays)
	assert.Equal(t, task.QuadrantSchedule, got.Quadrant)
	assert.InDelta(t, 0.65, got.Confidence, 1e-9)

	stock := fixedEngine().Classify("water the plants", fiveDays)
	assert.InDelta(t, 0.55, stock.Confidence, 1e-9)
}

func TestClassify_LowPriorityBlocksImportance(t *testing.T) {
	e := fixedEngine()

	// Importance signal present, but a low-priority hedge disables it; the
	// conflicting signals fall through the ordered rules to the default.
	got := e.Classify("maybe look into investment options", nil)
	assert.False(t, got.IsImportant)
	assert.Equal(t, task.QuadrantSchedule, got.Quadrant)
	assert.InDelta(t, 0.55, got.Confidence, 1e-9)
	assert.True(t, got.ShouldEscalate)
}

func TestClassify_Determinism(t *testing.T) {
	e := fixedEngine()

	first := e.Classify("Urgent: Submit tax return by today deadline", due(testNow))
	for i := 0; i < 10; i++ {
		again := e.Classify("Urgent: Submit tax return by today deadline", due(testNow))
		require.Equal(t, first, again, "iteration %d", i)
	}
}

func TestClassifyBatch_OrderPreserved(t *testing.T) {
	e := fixedEngine()

	texts := []string{
		"urgent tax filing",
		"browse reddit maybe",
		"order office supplies",
		"",
	}
	got := e.ClassifyBatch(texts)
	require.Len(t, got, len(texts))
	assert.Equal(t, task.QuadrantDoFirst, got[0].Quadrant)
	assert.Equal(t, task.QuadrantEliminate, got[1].Quadrant)
	assert.Equal(t, task.QuadrantDelegate, got[2].Quadrant)
	assert.Equal(t, task.QuadrantSchedule, got[3].Quadrant)

	// Batch elements match individual classification.
	for i, text := range texts {
		assert.Equal(t, e.Classify(text, nil), got[i], "index %d", i)
	}
}

func TestClassifyBatch_Empty(t *testing.T) {
	e := fixedEngine()
	assert.Empty(t, e.ClassifyBatch(nil))
	assert.Empty(t, e.ClassifyBatch([]string{}))
}

func TestClassify_LatencyBudget(t *testing.T) {
	e := newTestEngine(common.SystemClock{})

	start := time.Now()
	got := e.Classify("Urgent: Submit tax return by today deadline", nil)
	single := time.Since(start)
	assert.Less(t, single, 100*time.Millisecond)
	assert.GreaterOrEqual(t, got.LatencyMs, 0.0)

	texts := make([]string, 80)
	for i := range texts {
		texts[i] = "review the quarterly compliance numbers with the team"
	}
	start = time.Now()
	e.ClassifyBatch(texts)
	avg := time.Since(start) / 80
	assert.Less(t, avg, 10*time.Millisecond)
}
