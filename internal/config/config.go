// Package config defines all configuration structures for TaskTriage-Engine.
// No I/O or parsing logic lives here — only plain data types and validation.
//
// Every numeric knob of the engine (escalation threshold, confidence cap,
// deadline urgency bands, default clock times) is lifted into these structs
// so tests can exercise alternate threshold profiles without touching logic.
package config

import (
	"fmt"

	"github.com/turtacn/TaskTriage-Engine/internal/infrastructure/monitoring/logging"
)

// Config is the root configuration for the module.
type Config struct {
	Log    logging.LogConfig `mapstructure:"log"`
	Engine EngineConfig      `mapstructure:"engine"`
}

// EngineConfig carries every tunable of the triage engine.  It is read-only
// after construction; the engine never mutates it.
type EngineConfig struct {
	Thresholds ThresholdConfig `mapstructure:"thresholds"`
	Deadline   DeadlineConfig  `mapstructure:"deadline"`
	Temporal   TemporalConfig  `mapstructure:"temporal"`
	Patterns   PatternConfig   `mapstructure:"patterns"`
}

// ThresholdConfig holds the confidence and urgency cut-offs used by the
// classification rules.
type ThresholdConfig struct {
	// Escalation is the confidence below which a result is flagged for
	// escalation to a heavier classifier.
	Escalation float64 `mapstructure:"escalation"`

	// ConfidenceCap is the soft upper bound applied to every confidence.
	ConfidenceCap float64 `mapstructure:"confidence_cap"`

	// SoonDeadlineUrgency is the deadline-urgency score at or above which
	// a task counts as urgent regardless of text signals.
	SoonDeadlineUrgency float64 `mapstructure:"soon_deadline_urgency"`

	// CriticalDeadlineUrgency is the deadline-urgency score at or above
	// which a task is forced into DoFirst regardless of importance signals.
	CriticalDeadlineUrgency float64 `mapstructure:"critical_deadline_urgency"`

	// ScheduleDeadlineUrgency is the deadline-urgency score at or above
	// which an otherwise unsignalled task is scheduled rather than left to
	// the default rule.  Matches the 2-3 day deadline band.
	ScheduleDeadlineUrgency float64 `mapstructure:"schedule_deadline_urgency"`
}

// DeadlineConfig holds the step-function bands mapping a calendar-day delta
// to a deadline urgency score.
type DeadlineConfig struct {
	// OverdueBase and OverduePerDay shape the overdue branch:
	// min(1.0, OverdueBase + days_overdue * OverduePerDay).
	OverdueBase   float64 `mapstructure:"overdue_base"`
	OverduePerDay float64 `mapstructure:"overdue_per_day"`

	// Fixed band values for due today, tomorrow, in 2-3 days, in 4-7 days.
	DueToday        float64 `mapstructure:"due_today"`
	DueTomorrow     float64 `mapstructure:"due_tomorrow"`
	TwoToThreeDays  float64 `mapstructure:"two_to_three_days"`
	FourToSevenDays float64 `mapstructure:"four_to_seven_days"`

	// FarDecayPerDay is subtracted per day beyond 7:
	// max(0.0, FourToSevenDays - (delta-7) * FarDecayPerDay).
	FarDecayPerDay float64 `mapstructure:"far_decay_per_day"`
}

// TemporalConfig holds the default clock times the parser assigns to
// recognised phrases.  Hours are in 24-hour local time.
type TemporalConfig struct {
	EndOfDayHour  int `mapstructure:"end_of_day_hour"`  // "today", "EOD", "this week"
	MorningHour   int `mapstructure:"morning_hour"`     // "tomorrow", weekdays, "morning"
	AfternoonHour int `mapstructure:"afternoon_hour"`   // "afternoon"
	EveningHour   int `mapstructure:"evening_hour"`     // "evening", "tonight"
	WeekendHour   int `mapstructure:"weekend_hour"`     // "this weekend"

	// AssumePMBelowHour: a bare clock hour below this value with no AM/PM
	// suffix is read as PM ("at 3" → 15:00).
	AssumePMBelowHour int `mapstructure:"assume_pm_below_hour"`
}

// PatternConfig lets deployments append custom signal patterns to the four
// built-in categories.  Entries are case-insensitive regular expressions;
// compile errors surface when the engine is constructed.
type PatternConfig struct {
	ExtraUrgency     []string `mapstructure:"extra_urgency"`
	ExtraImportance  []string `mapstructure:"extra_importance"`
	ExtraDelegation  []string `mapstructure:"extra_delegation"`
	ExtraLowPriority []string `mapstructure:"extra_low_priority"`
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	return c.Engine.Validate()
}

// Validate checks the engine configuration for internal consistency.
func (c *EngineConfig) Validate() error {
	t := c.Thresholds
	for name, v := range map[string]float64{
		"thresholds.escalation":                t.Escalation,
		"thresholds.confidence_cap":            t.ConfidenceCap,
		"thresholds.soon_deadline_urgency":     t.SoonDeadlineUrgency,
		"thresholds.critical_deadline_urgency": t.CriticalDeadlineUrgency,
		"thresholds.schedule_deadline_urgency": t.ScheduleDeadlineUrgency,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("config: %s must be within [0,1], got %v", name, v)
		}
	}
	if t.Escalation > t.ConfidenceCap {
		return fmt.Errorf("config: thresholds.escalation (%v) must not exceed thresholds.confidence_cap (%v)",
			t.Escalation, t.ConfidenceCap)
	}

	d := c.Deadline
	for name, v := range map[string]float64{
		"deadline.overdue_base":       d.OverdueBase,
		"deadline.overdue_per_day":    d.OverduePerDay,
		"deadline.due_today":          d.DueToday,
		"deadline.due_tomorrow":       d.DueTomorrow,
		"deadline.two_to_three_days":  d.TwoToThreeDays,
		"deadline.four_to_seven_days": d.FourToSevenDays,
		"deadline.far_decay_per_day":  d.FarDecayPerDay,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("config: %s must be within [0,1], got %v", name, v)
		}
	}

	tm := c.Temporal
	for name, h := range map[string]int{
		"temporal.end_of_day_hour": tm.EndOfDayHour,
		"temporal.morning_hour":    tm.MorningHour,
		"temporal.afternoon_hour":  tm.AfternoonHour,
		"temporal.evening_hour":    tm.EveningHour,
		"temporal.weekend_hour":    tm.WeekendHour,
	} {
		if h < 0 || h > 23 {
			return fmt.Errorf("config: %s must be within [0,23], got %d", name, h)
		}
	}
	if tm.AssumePMBelowHour < 0 || tm.AssumePMBelowHour > 12 {
		return fmt.Errorf("config: temporal.assume_pm_below_hour must be within [0,12], got %d", tm.AssumePMBelowHour)
	}

	return nil
}
