package metrics

import (
	"strconv"
	"time"

	"github.com/turtacn/TaskTriage-Engine/pkg/types/task"
)

// Namespace is the metric prefix shared by every triage metric.
const Namespace = "tasktriage"

// Default buckets.  Classification is expected to finish well under a
// millisecond, parsing within a few milliseconds.
var (
	DefaultLatencyBuckets   = []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1}
	DefaultBatchSizeBuckets = []float64{1, 5, 10, 25, 50, 100, 250}
)

// TriageMetrics holds the engine's metric instruments.
type TriageMetrics struct {
	ClassificationsTotal     CounterVec
	ClassificationDuration   HistogramVec
	ClassificationConfidence HistogramVec
	EscalationsTotal         CounterVec
	BatchSize                HistogramVec
	ParsesTotal              CounterVec
	ParseDuration            HistogramVec
	PatternLibrarySize       GaugeVec
	ErrorsTotal              CounterVec
}

// NewTriageMetrics registers the engine metric set on collector.
func NewTriageMetrics(collector Collector) *TriageMetrics {
	m := &TriageMetrics{}

	m.ClassificationsTotal = collector.RegisterCounter("classifications_total", "Classified tasks", "quadrant", "source")
	m.ClassificationDuration = collector.RegisterHistogram("classification_duration_seconds", "Single-task classification duration", DefaultLatencyBuckets, "mode")
	m.ClassificationConfidence = collector.RegisterHistogram("classification_confidence", "Classification confidence", []float64{.5, .55, .6, .65, .7, .75, .8, .85, .9, .95}, "quadrant")
	m.EscalationsTotal = collector.RegisterCounter("escalations_total", "Low-confidence escalation outcomes", "outcome")
	m.BatchSize = collector.RegisterHistogram("batch_size", "Tasks per batch request", DefaultBatchSizeBuckets)
	m.ParsesTotal = collector.RegisterCounter("parses_total", "Temporal parses", "has_due_date", "is_urgent")
	m.ParseDuration = collector.RegisterHistogram("parse_duration_seconds", "Temporal parse duration", DefaultLatencyBuckets)
	m.PatternLibrarySize = collector.RegisterGauge("pattern_library_size", "Compiled patterns per category", "category")
	m.ErrorsTotal = collector.RegisterCounter("errors_total", "Errors by component and code", "component", "code")

	return m
}

// Helpers

func RecordClassification(m *TriageMetrics, result task.ClassificationResult, duration time.Duration) {
	if m == nil {
		return
	}
	m.ClassificationsTotal.WithLabelValues(string(result.Quadrant), string(result.Source)).Inc()
	m.ClassificationDuration.WithLabelValues("single").Observe(duration.Seconds())
	m.ClassificationConfidence.WithLabelValues(string(result.Quadrant)).Observe(result.Confidence)
}

func RecordBatch(m *TriageMetrics, size int, duration time.Duration) {
	if m == nil {
		return
	}
	m.BatchSize.WithLabelValues().Observe(float64(size))
	m.ClassificationDuration.WithLabelValues("batch").Observe(duration.Seconds())
}

func RecordEscalation(m *TriageMetrics, outcome string) {
	if m == nil {
		return
	}
	m.EscalationsTotal.WithLabelValues(outcome).Inc()
}

func RecordParse(m *TriageMetrics, parsed task.ParsedTask, duration time.Duration) {
	if m == nil {
		return
	}
	m.ParsesTotal.WithLabelValues(
		strconv.FormatBool(parsed.DueDate != nil),
		strconv.FormatBool(parsed.IsUrgent),
	).Inc()
	m.ParseDuration.WithLabelValues().Observe(duration.Seconds())
}

func RecordError(m *TriageMetrics, component, code string) {
	if m == nil {
		return
	}
	m.ErrorsTotal.WithLabelValues(component, code).Inc()
}
