package classify

import (
	"fmt"
	"strings"

	"github.com/turtacn/TaskTriage-Engine/internal/config"
	"github.com/turtacn/TaskTriage-Engine/pkg/types/task"
)

// signals carries the per-call decision inputs derived before rule
// evaluation.  It is local to a single Classify call.
type signals struct {
	urgencySignals     []string
	importanceSignals  []string
	urgencyCount       int
	importanceCount    int
	delegationCount    int
	lowPriorityCount   int
	deadlineUrgency    float64
	hasSoonPhrase      bool
	hasFuturePhrase    bool
	isUrgent           bool
	isImportant        bool
}

// outcome is what a matched rule produces.
type outcome struct {
	quadrant    task.Quadrant
	confidence  float64
	explanation string
}

// rule is one entry of the ordered decision list.  Rules are evaluated in
// slice order and the first rule whose predicate holds wins, which keeps the
// priority ordering self-documenting and each rule unit-testable.
type rule struct {
	name    string
	applies func(s *signals) bool
	produce func(s *signals) outcome
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func joinSignals(sig []string, max int) string {
	if len(sig) > max {
		sig = sig[:max]
	}
	return strings.Join(sig, ", ")
}

// buildRules assembles the ordered rule list for the given threshold
// profile.  Base confidences and count bonuses are fixed rule data; only the
// deadline cut-offs come from configuration.
func buildRules(t config.ThresholdConfig) []rule {
	return []rule{
		{
			name:    "eliminate_strong",
			applies: func(s *signals) bool { return s.lowPriorityCount >= 2 },
			produce: func(s *signals) outcome {
				return outcome{task.QuadrantEliminate, 0.85,
					"multiple low-priority signals — candidate for elimination"}
			},
		},
		{
			name: "eliminate_weak",
			applies: func(s *signals) bool {
				return s.lowPriorityCount >= 1 && s.urgencyCount == 0 && s.importanceCount == 0
			},
			produce: func(s *signals) outcome {
				return outcome{task.QuadrantEliminate, 0.75,
					"low-priority phrasing with no urgency or importance signals"}
			},
		},
		{
			name: "delegate_admin",
			applies: func(s *signals) bool {
				return s.delegationCount >= 1 && !s.isImportant && !s.isUrgent
			},
			produce: func(s *signals) outcome {
				conf := 0.70 + float64(min(s.delegationCount, 2))*0.05
				return outcome{task.QuadrantDelegate, conf,
					"routine or administrative work — good candidate for delegation"}
			},
		},
		{
			name:    "do_first",
			applies: func(s *signals) bool { return s.isUrgent && s.isImportant },
			produce: func(s *signals) outcome {
				conf := 0.75 + float64(min(s.urgencyCount+s.importanceCount, 4))*0.05
				if s.deadlineUrgency >= t.CriticalDeadlineUrgency {
					conf += 0.10
				}
				expl := "urgent and important"
				if len(s.urgencySignals) > 0 || len(s.importanceSignals) > 0 {
					expl = fmt.Sprintf("urgent and important (urgency: %s; importance: %s)",
						joinSignals(s.urgencySignals, 3), joinSignals(s.importanceSignals, 3))
				}
				return outcome{task.QuadrantDoFirst, conf, expl}
			},
		},
		{
			name:    "do_first_deadline",
			applies: func(s *signals) bool { return s.deadlineUrgency >= t.CriticalDeadlineUrgency },
			produce: func(s *signals) outcome {
				return outcome{task.QuadrantDoFirst, 0.80,
					"deadline is critical — do first regardless of other signals"}
			},
		},
		{
			name:    "schedule_important",
			applies: func(s *signals) bool { return !s.isUrgent && s.isImportant },
			produce: func(s *signals) outcome {
				conf := 0.70 + float64(min(s.importanceCount, 3))*0.05
				return outcome{task.QuadrantSchedule, conf,
					fmt.Sprintf("important but not urgent (importance: %s) — schedule dedicated time",
						joinSignals(s.importanceSignals, 3))}
			},
		},
		{
			name:    "delegate_urgent",
			applies: func(s *signals) bool { return s.isUrgent && !s.isImportant },
			produce: func(s *signals) outcome {
				conf := 0.65 + float64(min(s.urgencyCount, 2))*0.05
				return outcome{task.QuadrantDelegate, conf,
					"urgent but not important — delegate if possible"}
			},
		},
		{
			name:    "delegate_fallback",
			applies: func(s *signals) bool { return s.delegationCount >= 1 },
			produce: func(s *signals) outcome {
				return outcome{task.QuadrantDelegate, 0.65,
					"delegation phrasing present — consider handing off"}
			},
		},
		{
			name:    "schedule_future",
			applies: func(s *signals) bool { return s.hasFuturePhrase },
			produce: func(s *signals) outcome {
				return outcome{task.QuadrantSchedule, 0.60,
					"far-future phrasing — schedule for later"}
			},
		},
		{
			name:    "schedule_deadline",
			applies: func(s *signals) bool { return s.deadlineUrgency >= t.ScheduleDeadlineUrgency },
			produce: func(s *signals) outcome {
				return outcome{task.QuadrantSchedule, 0.65,
					"deadline within a few days — schedule time for it"}
			},
		},
		{
			name:    "schedule_default",
			applies: func(s *signals) bool { return true },
			produce: func(s *signals) outcome {
				return outcome{task.QuadrantSchedule, 0.55,
					"no clear urgency — scheduling for review."}
			},
		},
	}
}
