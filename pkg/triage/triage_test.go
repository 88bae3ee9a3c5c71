package triage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/TaskTriage-Engine/internal/config"
	"github.com/turtacn/TaskTriage-Engine/internal/engine/escalate"
	"github.com/turtacn/TaskTriage-Engine/internal/engine/patterns"
	"github.com/turtacn/TaskTriage-Engine/internal/infrastructure/monitoring/metrics"
	apperrors "github.com/turtacn/TaskTriage-Engine/pkg/errors"
	"github.com/turtacn/TaskTriage-Engine/pkg/types/common"
	"github.com/turtacn/TaskTriage-Engine/pkg/types/task"
)

// Wednesday, 2026-02-04 12:00 UTC.
var facadeNow = time.Date(2026, time.February, 4, 12, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	opts = append([]Option{WithClock(common.NewFixedClock(facadeNow))}, opts...)
	e, err := New(config.DefaultEngine(), opts...)
	require.NoError(t, err)
	return e
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.DefaultEngine()
	cfg.Thresholds.Escalation = 1.5

	_, err := New(cfg)

	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeConfigInvalid))
}

func TestNew_BadCustomPattern(t *testing.T) {
	cfg := config.DefaultEngine()
	cfg.Patterns.ExtraUrgency = []string{"[unclosed"}

	_, err := New(cfg)

	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodePatternCompile))
}

func TestClassify_EndToEnd(t *testing.T) {
	e := newTestEngine(t)

	got := e.Classify(context.Background(), "URGENT: Submit tax documents today!", nil)

	assert.Equal(t, task.QuadrantDoFirst, got.Quadrant)
	assert.True(t, got.IsUrgent)
	assert.True(t, got.IsImportant)
	assert.Equal(t, task.SourceRules, got.Source)
	assert.False(t, got.ShouldEscalate)
}

func TestClassify_WithDueDate(t *testing.T) {
	e := newTestEngine(t)
	due := facadeNow.Add(6 * time.Hour)

	got := e.Classify(context.Background(), "Submit the quarterly report", &due)

	assert.Equal(t, task.QuadrantDoFirst, got.Quadrant)
	assert.True(t, got.IsUrgent)
}

func TestClassify_EscalatesToSecondary(t *testing.T) {
	secondary := escalate.ClassifierFunc(func(_ context.Context, _ string) (task.ClassificationResult, error) {
		return task.ClassificationResult{Quadrant: task.QuadrantDelegate, Confidence: 0.8}, nil
	})
	e := newTestEngine(t, WithSecondary(secondary))

	got := e.Classify(context.Background(), "check the thing", nil)

	assert.Equal(t, task.QuadrantDelegate, got.Quadrant)
	assert.Equal(t, task.SourceEscalated, got.Source)
	assert.False(t, got.ShouldEscalate)
}

func TestClassify_LowConfidenceSecondaryStaysFlagged(t *testing.T) {
	secondary := escalate.ClassifierFunc(func(_ context.Context, _ string) (task.ClassificationResult, error) {
		return task.ClassificationResult{Quadrant: task.QuadrantDelegate, Confidence: 0.3}, nil
	})
	e := newTestEngine(t, WithSecondary(secondary))

	got := e.Classify(context.Background(), "check the thing", nil)

	assert.Equal(t, task.SourceEscalated, got.Source)
	assert.True(t, got.ShouldEscalate)
	assert.Equal(t, got.Confidence < 0.65, got.ShouldEscalate)
	assert.Equal(t, got.ShouldEscalate, e.ShouldEscalateToLLM(got))
}

func TestClassify_SecondaryFailureKeepsRuleVerdict(t *testing.T) {
	secondary := escalate.ClassifierFunc(func(_ context.Context, _ string) (task.ClassificationResult, error) {
		return task.ClassificationResult{}, errors.New("unreachable")
	})
	e := newTestEngine(t, WithSecondary(secondary))

	got := e.Classify(context.Background(), "check the thing", nil)

	assert.Equal(t, task.QuadrantSchedule, got.Quadrant)
	assert.Equal(t, task.SourceRules, got.Source)
	assert.True(t, got.ShouldEscalate)
}

func TestClassify_ConfidentVerdictSkipsSecondary(t *testing.T) {
	called := false
	secondary := escalate.ClassifierFunc(func(_ context.Context, _ string) (task.ClassificationResult, error) {
		called = true
		return task.ClassificationResult{}, nil
	})
	e := newTestEngine(t, WithSecondary(secondary))

	got := e.Classify(context.Background(), "URGENT: Submit tax documents today!", nil)

	assert.False(t, called)
	assert.Equal(t, task.SourceRules, got.Source)
}

func TestClassifyBatch_PreservesOrder(t *testing.T) {
	e := newTestEngine(t)
	texts := []string{
		"URGENT: Submit tax documents today!",
		"Browse reddit for memes",
		"Order office supplies",
	}

	got := e.ClassifyBatch(context.Background(), texts)

	require.Len(t, got, 3)
	assert.Equal(t, task.QuadrantDoFirst, got[0].Quadrant)
	assert.Equal(t, task.QuadrantEliminate, got[1].Quadrant)
	assert.Equal(t, task.QuadrantDelegate, got[2].Quadrant)
}

func TestParse_EndToEnd(t *testing.T) {
	e := newTestEngine(t)

	got := e.Parse("remind me to call mom tomorrow morning")

	assert.Equal(t, "Call Mom", got.Title)
	require.NotNil(t, got.DueDate)
	assert.True(t, got.DueDate.Equal(time.Date(2026, time.February, 5, 9, 0, 0, 0, time.UTC)))
	assert.Equal(t, "9:00 AM", got.DueTime)
}

func TestParseThenClassify(t *testing.T) {
	e := newTestEngine(t)

	parsed := e.Parse("urgent: review the compliance contract today")
	got := e.Classify(context.Background(), parsed.Title, parsed.DueDate)

	// The stripped title keeps its importance signals; the due date carries
	// the urgency forward even though "urgent" and "today" were consumed.
	require.NotNil(t, parsed.DueDate)
	assert.Equal(t, task.QuadrantDoFirst, got.Quadrant)
}

func TestDeadlineUrgency(t *testing.T) {
	e := newTestEngine(t)

	assert.Equal(t, 0.0, e.DeadlineUrgency(nil))

	today := facadeNow.Add(2 * time.Hour)
	assert.InDelta(t, 0.75, e.DeadlineUrgency(&today), 1e-9)

	week := facadeNow.AddDate(0, 0, 7)
	assert.InDelta(t, 0.25, e.DeadlineUrgency(&week), 1e-9)
}

func TestShouldEscalateToLLM(t *testing.T) {
	e := newTestEngine(t)

	low := e.Classify(context.Background(), "check the thing", nil)
	high := e.Classify(context.Background(), "URGENT: Submit tax documents today!", nil)

	assert.True(t, e.ShouldEscalateToLLM(low))
	assert.False(t, e.ShouldEscalateToLLM(high))
}

func TestPatternCount(t *testing.T) {
	e := newTestEngine(t)

	for _, cat := range patterns.Categories() {
		assert.GreaterOrEqual(t, e.PatternCount(cat), 20, "category %s", cat)
	}
}

func TestMustNew_PanicsOnInvalid(t *testing.T) {
	cfg := config.DefaultEngine()
	cfg.Temporal.MorningHour = 99

	assert.Panics(t, func() { MustNew(cfg) })
}

func TestEngine_Deterministic(t *testing.T) {
	e := newTestEngine(t)

	first := e.Classify(context.Background(), "URGENT: Submit tax documents today!", nil)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, e.Classify(context.Background(), "URGENT: Submit tax documents today!", nil))
	}
}

func TestEngine_RecordsMetrics(t *testing.T) {
	collector := metrics.NewInMemoryCollector()
	e := newTestEngine(t, WithMetrics(metrics.NewTriageMetrics(collector)))

	e.Classify(context.Background(), "URGENT: Submit tax documents today!", nil)
	e.ClassifyBatch(context.Background(), []string{"Browse reddit", "Pay rent"})
	e.Parse("Call Mom tomorrow morning")

	assert.Equal(t, float64(1), collector.CounterValue("classifications_total", "DO_FIRST", "rules"))
	assert.Equal(t, float64(1), collector.CounterValue("classifications_total", "ELIMINATE", "rules"))
	assert.Equal(t, float64(1), collector.CounterValue("parses_total", "true", "false"))
	assert.Equal(t, float64(1), collector.CounterValue("escalations_total", "skipped"))
	assert.Equal(t, []float64{2}, collector.HistogramObservations("batch_size"))
	assert.Equal(t, float64(26), collector.GaugeValue("pattern_library_size", "urgency"))
}
