// Package escalate reconciles the rule engine's verdict with an optional
// secondary classifier consulted for low-confidence results.  The package
// defines only the seam: callers supply the secondary implementation, and
// every execution path degrades to the rule verdict, so classification
// keeps working with no secondary configured at all.
package escalate

import (
	"context"

	"github.com/turtacn/TaskTriage-Engine/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/TaskTriage-Engine/pkg/types/task"
)

// Classifier is a secondary classification backend consulted when the rule
// engine's confidence falls below the escalation threshold.
type Classifier interface {
	// Classify returns a verdict for content.  An error means the backend
	// was unavailable or declined; the caller falls back to its own result.
	Classify(ctx context.Context, content string) (task.ClassificationResult, error)
}

// ClassifierFunc adapts a function to the Classifier interface.
type ClassifierFunc func(ctx context.Context, content string) (task.ClassificationResult, error)

func (f ClassifierFunc) Classify(ctx context.Context, content string) (task.ClassificationResult, error) {
	return f(ctx, content)
}

// Reconciler merges rule verdicts with secondary verdicts.
type Reconciler struct {
	secondary Classifier
	threshold float64
	logger    logging.Logger
}

// NewReconciler builds a Reconciler.  secondary may be nil, in which case
// Reconcile always returns the rule verdict unchanged.  threshold is the
// escalation confidence cut-off; an adopted secondary verdict below it keeps
// its escalation flag set, so ShouldEscalate stays derived from confidence
// on every path.
func NewReconciler(secondary Classifier, threshold float64, logger logging.Logger) *Reconciler {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Reconciler{secondary: secondary, threshold: threshold, logger: logger.Named("escalate")}
}

// Reconcile returns the verdict to report for content given the rule
// engine's result.  The secondary is consulted only when the rule result
// asks for escalation; its verdict, when obtained, is marked with the
// escalated source and carries the rule result's latency forward.  Any
// secondary error keeps the rule verdict.
func (r *Reconciler) Reconcile(ctx context.Context, content string, ruled task.ClassificationResult) task.ClassificationResult {
	if !ruled.ShouldEscalate || r.secondary == nil {
		return ruled
	}

	second, err := r.secondary.Classify(ctx, content)
	if err != nil {
		r.logger.Warn("secondary classifier failed, keeping rule verdict",
			logging.String("quadrant", string(ruled.Quadrant)),
			logging.Err(err),
		)
		return ruled
	}
	if !second.Quadrant.Valid() {
		r.logger.Warn("secondary classifier returned unknown quadrant, keeping rule verdict",
			logging.String("quadrant", string(second.Quadrant)),
		)
		return ruled
	}

	second.Source = task.SourceEscalated
	second.ShouldEscalate = second.Confidence < r.threshold
	second.LatencyMs = ruled.LatencyMs
	r.logger.Debug("escalated verdict accepted",
		logging.String("rule_quadrant", string(ruled.Quadrant)),
		logging.String("final_quadrant", string(second.Quadrant)),
	)
	return second
}
