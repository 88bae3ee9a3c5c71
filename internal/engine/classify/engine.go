// Package classify combines pattern signal counts with deadline urgency
// through an ordered rule list to produce a quadrant assignment with a
// confidence score, a human-readable explanation, and an escalation flag.
//
// Classify is a total function: any string, including empty or very long
// input, yields a well-formed result.  The only shared state is the compiled
// pattern library and the rule list, both immutable after construction, so
// an Engine is safe for unrestricted concurrent use.
package classify

import (
	"regexp"
	"time"

	"github.com/turtacn/TaskTriage-Engine/internal/config"
	"github.com/turtacn/TaskTriage-Engine/internal/engine/deadline"
	"github.com/turtacn/TaskTriage-Engine/internal/engine/patterns"
	"github.com/turtacn/TaskTriage-Engine/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/TaskTriage-Engine/pkg/types/common"
	"github.com/turtacn/TaskTriage-Engine/pkg/types/task"
)

// soonRe detects near-term temporal phrasing that makes a task urgent even
// without an explicit urgency word or deadline.
var soonRe = regexp.MustCompile(`(?i)\b(soon|today|tonight|tomorrow|this week|end of day|eod)\b`)

// futureRe detects far-future phrasing used by the schedule_future rule.
var futureRe = regexp.MustCompile(`(?i)\b(next month|next year|next quarter|eventually|someday|one day|at some point|no deadline|no due date|no rush|later)\b`)

// Engine is the rule-based quadrant classifier.
type Engine struct {
	lib        *patterns.Library
	calc       *deadline.Calculator
	thresholds config.ThresholdConfig
	rules      []rule
	clock      common.Clock
	logger     logging.Logger
}

// NewEngine constructs a classifier from an already-compiled pattern
// library, a deadline calculator, a threshold profile, and an injected
// clock.  A nil logger is replaced with a no-op logger.
func NewEngine(
	lib *patterns.Library,
	calc *deadline.Calculator,
	thresholds config.ThresholdConfig,
	clock common.Clock,
	logger logging.Logger,
) *Engine {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Engine{
		lib:        lib,
		calc:       calc,
		thresholds: thresholds,
		rules:      buildRules(thresholds),
		clock:      clock,
		logger:     logger.Named("classify"),
	}
}

// Classify assigns text (and an optional due instant) to a quadrant.
// It never fails; degenerate input falls through to the default rule with a
// low confidence and the escalation flag set.
func (e *Engine) Classify(text string, due *time.Time) task.ClassificationResult {
	started := e.clock.Now()
	now := started

	s := e.collectSignals(text, due, now)

	var out outcome
	ruleName := ""
	for _, r := range e.rules {
		if r.applies(s) {
			out = r.produce(s)
			ruleName = r.name
			break
		}
	}

	confidence := out.confidence
	if confidence > e.thresholds.ConfidenceCap {
		confidence = e.thresholds.ConfidenceCap
	}

	result := task.ClassificationResult{
		Quadrant:          out.quadrant,
		Confidence:        confidence,
		Explanation:       out.explanation,
		IsUrgent:          s.isUrgent,
		IsImportant:       s.isImportant,
		UrgencyScore:      float64(s.urgencyCount) + s.deadlineUrgency,
		ImportanceScore:   float64(s.importanceCount),
		UrgencySignals:    s.urgencySignals,
		ImportanceSignals: s.importanceSignals,
		ShouldEscalate:    confidence < e.thresholds.Escalation,
		Source:            task.SourceRules,
		LatencyMs:         float64(e.clock.Now().Sub(started).Nanoseconds()) / 1e6,
	}

	e.logger.Debug("classified",
		logging.String("rule", ruleName),
		logging.String("quadrant", string(result.Quadrant)),
		logging.Float64("confidence", result.Confidence),
		logging.Bool("should_escalate", result.ShouldEscalate),
	)

	return result
}

// ClassifyBatch classifies each text independently and returns results in
// input order.  Elements share no mutable state; callers may parallelize
// over the input themselves without changing the outcome.
func (e *Engine) ClassifyBatch(texts []string) []task.ClassificationResult {
	results := make([]task.ClassificationResult, len(texts))
	for i, text := range texts {
		results[i] = e.Classify(text, nil)
	}
	return results
}

// ShouldEscalateToLLM re-derives the escalation decision from a cached
// result.  Identical to the ShouldEscalate field by construction.
func (e *Engine) ShouldEscalateToLLM(r task.ClassificationResult) bool {
	return r.Confidence < e.thresholds.Escalation
}

func (e *Engine) collectSignals(text string, due *time.Time, now time.Time) *signals {
	s := &signals{
		urgencySignals:    e.lib.MatchAll(text, patterns.CategoryUrgency),
		importanceSignals: e.lib.MatchAll(text, patterns.CategoryImportance),
	}
	s.urgencyCount = len(s.urgencySignals)
	s.importanceCount = len(s.importanceSignals)
	s.delegationCount = e.lib.Count(text, patterns.CategoryDelegation)
	s.lowPriorityCount = e.lib.Count(text, patterns.CategoryLowPriority)
	s.deadlineUrgency = e.calc.Score(due, now)
	s.hasSoonPhrase = soonRe.MatchString(text)
	s.hasFuturePhrase = futureRe.MatchString(text)

	s.isUrgent = s.urgencyCount >= 1 ||
		s.hasSoonPhrase ||
		s.deadlineUrgency >= e.thresholds.SoonDeadlineUrgency
	s.isImportant = s.importanceCount >= 1 &&
		s.lowPriorityCount == 0 &&
		s.delegationCount == 0

	return s
}
