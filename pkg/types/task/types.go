// Package task defines the public value types produced by the triage engine.
// Every value is immutable once returned: the engine never retains or mutates
// a result after handing it to the caller.
package task

import "time"

// Quadrant is one of the four Eisenhower priority buckets.
type Quadrant string

const (
	QuadrantDoFirst   Quadrant = "DO_FIRST"  // urgent and important
	QuadrantSchedule  Quadrant = "SCHEDULE"  // important, not urgent
	QuadrantDelegate  Quadrant = "DELEGATE"  // urgent, not important
	QuadrantEliminate Quadrant = "ELIMINATE" // neither
)

// Quadrants lists all quadrants in display order.
func Quadrants() []Quadrant {
	return []Quadrant{QuadrantDoFirst, QuadrantSchedule, QuadrantDelegate, QuadrantEliminate}
}

// Valid reports whether q is one of the four defined quadrants.
func (q Quadrant) Valid() bool {
	switch q {
	case QuadrantDoFirst, QuadrantSchedule, QuadrantDelegate, QuadrantEliminate:
		return true
	}
	return false
}

// ClassificationResult is the immutable outcome of a single classification
// call.  ShouldEscalate is derived from Confidence and the engine's
// escalation threshold; it is never set independently.
type ClassificationResult struct {
	Quadrant   Quadrant `json:"quadrant"`
	Confidence float64  `json:"confidence"`

	// Explanation is a human-readable justification; never empty.
	Explanation string `json:"explanation"`

	// IsUrgent and IsImportant surface the two decision inputs for
	// debugging and UI display.
	IsUrgent    bool `json:"is_urgent"`
	IsImportant bool `json:"is_important"`

	// UrgencyScore is the raw urgency signal count plus the deadline
	// contribution; ImportanceScore is the raw importance signal count.
	// Neither is bounded to [0,1].
	UrgencyScore    float64 `json:"urgency_score"`
	ImportanceScore float64 `json:"importance_score"`

	// UrgencySignals and ImportanceSignals hold the literal substrings that
	// matched, in pattern-definition order, for "why" explanations.
	UrgencySignals    []string `json:"urgency_signals,omitempty"`
	ImportanceSignals []string `json:"importance_signals,omitempty"`

	// ShouldEscalate is true when Confidence fell below the escalation
	// threshold and the caller should defer to a heavier classifier.
	ShouldEscalate bool `json:"should_escalate"`

	// Source identifies which classifier produced this result.
	Source ClassifierSource `json:"source"`

	// LatencyMs is the wall-clock cost of the call, informational only.
	LatencyMs float64 `json:"latency_ms"`
}

// ClassifierSource identifies the origin of a ClassificationResult.
type ClassifierSource string

const (
	// SourceRules marks a result produced by the rule-based engine.
	SourceRules ClassifierSource = "rules"
	// SourceEscalated marks a result produced by a secondary classifier
	// after the rule-based result asked for escalation.
	SourceEscalated ClassifierSource = "escalated"
)

// ParsedTask is the immutable outcome of temporal-expression parsing.
type ParsedTask struct {
	// Title is the residual task title after consumed phrases were
	// stripped; falls back to the original trimmed input when stripping
	// would leave it empty.  Never empty for non-blank input.
	Title string `json:"title"`

	// DueDate is the extracted due instant; nil when no temporal phrase
	// was recognised.
	DueDate *time.Time `json:"due_date,omitempty"`

	// DueTime is the human-readable clock time, e.g. "2:30 PM"; empty
	// when no explicit or implied time-of-day was found.
	DueTime string `json:"due_time,omitempty"`

	// IsUrgent is set when an urgency marker word was present.
	IsUrgent bool `json:"is_urgent"`

	// Keywords collects the "urgent" marker and the temporal families
	// consumed during parsing, in consumption order.
	Keywords []string `json:"keywords,omitempty"`
}
