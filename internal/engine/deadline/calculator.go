// Package deadline maps a due instant to a continuous urgency score in
// [0,1].  The score is a pure step function on the whole-calendar-day delta
// between now and the due date; time of day never breaks a tie.
package deadline

import (
	"math"
	"time"

	"github.com/turtacn/TaskTriage-Engine/internal/config"
)

// Calculator computes deadline urgency from the band profile in cfg.
// Immutable after construction and safe for concurrent use.
type Calculator struct {
	cfg config.DeadlineConfig
}

// NewCalculator returns a Calculator using the supplied band profile.
func NewCalculator(cfg config.DeadlineConfig) *Calculator {
	return &Calculator{cfg: cfg}
}

// Score returns the urgency contribution of a due instant:
//
//	no due date        → 0.0
//	overdue by d days  → min(1.0, overdue_base + d*overdue_per_day)
//	due today          → due_today
//	due tomorrow       → due_tomorrow
//	in 2-3 days        → two_to_three_days
//	in 4-7 days        → four_to_seven_days
//	beyond 7 days      → max(0.0, four_to_seven_days - (delta-7)*far_decay_per_day)
//
// The day delta is computed between local calendar dates in now's location,
// so "due today" holds for any hour of the current date.
func (c *Calculator) Score(due *time.Time, now time.Time) float64 {
	if due == nil {
		return 0.0
	}

	delta := daysBetween(now, *due)

	switch {
	case delta < 0:
		v := c.cfg.OverdueBase + float64(-delta)*c.cfg.OverduePerDay
		if v > 1.0 {
			return 1.0
		}
		return v
	case delta == 0:
		return c.cfg.DueToday
	case delta == 1:
		return c.cfg.DueTomorrow
	case delta <= 3:
		return c.cfg.TwoToThreeDays
	case delta <= 7:
		return c.cfg.FourToSevenDays
	default:
		v := c.cfg.FourToSevenDays - float64(delta-7)*c.cfg.FarDecayPerDay
		if v < 0.0 {
			return 0.0
		}
		return v
	}
}

// daysBetween returns the number of whole calendar days from now's date to
// t's date, both taken in now's location.  Negative when t is in the past.
func daysBetween(now, t time.Time) int {
	loc := now.Location()
	a := midnight(now.In(loc))
	b := midnight(t.In(loc))
	// Round rather than truncate so a DST-shortened or -lengthened day still
	// counts as one whole day.
	return int(math.Round(b.Sub(a).Hours() / 24))
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
