// Package triage is the public entry point of the engine.  It assembles the
// pattern library, deadline calculator, rule classifier, temporal parser,
// and escalation reconciler from one EngineConfig and exposes them behind a
// single Engine type.  Everything runs in-process and offline; the only
// optional external touchpoint is a caller-supplied secondary classifier.
package triage

import (
	"context"
	"time"

	"github.com/turtacn/TaskTriage-Engine/internal/config"
	"github.com/turtacn/TaskTriage-Engine/internal/engine/classify"
	"github.com/turtacn/TaskTriage-Engine/internal/engine/deadline"
	"github.com/turtacn/TaskTriage-Engine/internal/engine/escalate"
	"github.com/turtacn/TaskTriage-Engine/internal/engine/patterns"
	"github.com/turtacn/TaskTriage-Engine/internal/engine/temporal"
	"github.com/turtacn/TaskTriage-Engine/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/TaskTriage-Engine/internal/infrastructure/monitoring/metrics"
	apperrors "github.com/turtacn/TaskTriage-Engine/pkg/errors"
	"github.com/turtacn/TaskTriage-Engine/pkg/types/common"
	"github.com/turtacn/TaskTriage-Engine/pkg/types/task"
)

// Option customizes Engine construction.
type Option func(*options)

type options struct {
	clock     common.Clock
	logger    logging.Logger
	metrics   *metrics.TriageMetrics
	secondary escalate.Classifier
}

// WithClock replaces the wall clock.  Tests pass a fixed clock to make
// every output, including deadline scores, reproducible.
func WithClock(clock common.Clock) Option {
	return func(o *options) { o.clock = clock }
}

// WithLogger attaches a logger.  Absent this option the engine is silent.
func WithLogger(logger logging.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithMetrics attaches a metric set.  Absent this option nothing is
// recorded.
func WithMetrics(m *metrics.TriageMetrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithSecondary attaches a secondary classifier consulted for
// low-confidence verdicts.  Absent this option escalation-flagged results
// are returned as-is.
func WithSecondary(c escalate.Classifier) Option {
	return func(o *options) { o.secondary = c }
}

// Engine classifies tasks into Eisenhower quadrants and parses
// natural-language due dates.  Safe for concurrent use.
type Engine struct {
	classifier *classify.Engine
	calculator *deadline.Calculator
	parser     *temporal.Parser
	reconciler *escalate.Reconciler
	library    *patterns.Library
	clock      common.Clock
	metrics    *metrics.TriageMetrics
	logger     logging.Logger

	hasSecondary bool
}

// New builds an Engine from cfg.  The configuration is validated and the
// pattern library compiled up front, so a returned Engine cannot fail later.
func New(cfg config.EngineConfig, opts ...Option) (*Engine, error) {
	o := &options{
		clock:  common.SystemClock{},
		logger: logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(o)
	}

	if err := cfg.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeConfigInvalid, "engine configuration rejected")
	}

	lib, err := patterns.NewLibrary(cfg.Patterns)
	if err != nil {
		return nil, err
	}
	calc := deadline.NewCalculator(cfg.Deadline)

	e := &Engine{
		classifier:   classify.NewEngine(lib, calc, cfg.Thresholds, o.clock, o.logger),
		calculator:   calc,
		parser:       temporal.NewParser(cfg.Temporal, o.clock, o.logger),
		reconciler:   escalate.NewReconciler(o.secondary, cfg.Thresholds.Escalation, o.logger),
		library:      lib,
		clock:        o.clock,
		metrics:      o.metrics,
		logger:       o.logger.Named("triage"),
		hasSecondary: o.secondary != nil,
	}

	if e.metrics != nil {
		for _, cat := range patterns.Categories() {
			e.metrics.PatternLibrarySize.WithLabelValues(string(cat)).Set(float64(lib.Size(cat)))
		}
	}
	return e, nil
}

// MustNew panics when cfg is invalid.  Intended for the default
// configuration and for wiring code that has already validated cfg.
func MustNew(cfg config.EngineConfig, opts ...Option) *Engine {
	e, err := New(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// Classify assigns text with an optional due instant to a quadrant.  When a
// secondary classifier is configured and the rule verdict's confidence falls
// below the escalation threshold, the secondary's verdict replaces it;
// otherwise the rule verdict stands.
func (e *Engine) Classify(ctx context.Context, text string, due *time.Time) task.ClassificationResult {
	started := e.clock.Now()
	ruled := e.classifier.Classify(text, due)

	result := ruled
	switch {
	case !ruled.ShouldEscalate:
		// Confident verdict, no escalation bookkeeping.
	case !e.hasSecondary:
		metrics.RecordEscalation(e.metrics, "skipped")
	default:
		result = e.reconciler.Reconcile(ctx, text, ruled)
		if result.Source == task.SourceEscalated {
			metrics.RecordEscalation(e.metrics, "accepted")
		} else {
			metrics.RecordEscalation(e.metrics, "fallback")
		}
	}

	metrics.RecordClassification(e.metrics, result, e.clock.Now().Sub(started))
	return result
}

// ClassifyBatch classifies texts independently, preserving input order.
// Each element goes through the same escalation path as Classify.
func (e *Engine) ClassifyBatch(ctx context.Context, texts []string) []task.ClassificationResult {
	started := e.clock.Now()
	results := make([]task.ClassificationResult, len(texts))
	for i, text := range texts {
		results[i] = e.Classify(ctx, text, nil)
	}
	metrics.RecordBatch(e.metrics, len(texts), e.clock.Now().Sub(started))
	return results
}

// Parse extracts a due date, due time, urgency flag, and cleaned title from
// natural-language task text.
func (e *Engine) Parse(input string) task.ParsedTask {
	started := e.clock.Now()
	parsed := e.parser.Parse(input)
	metrics.RecordParse(e.metrics, parsed, e.clock.Now().Sub(started))
	return parsed
}

// DeadlineUrgency returns the calendar-day deadline urgency contribution
// for due at the current clock instant.  A nil due scores zero.
func (e *Engine) DeadlineUrgency(due *time.Time) float64 {
	return e.calculator.Score(due, e.clock.Now())
}

// ShouldEscalateToLLM reports whether a cached result's confidence asks for
// a second opinion.
func (e *Engine) ShouldEscalateToLLM(r task.ClassificationResult) bool {
	return e.classifier.ShouldEscalateToLLM(r)
}

// PatternCount returns the number of compiled patterns in a category.
func (e *Engine) PatternCount(cat patterns.Category) int {
	return e.library.Size(cat)
}
