// Package temporal extracts an implied due date/time from natural-language
// task phrasing ("tomorrow morning", "by Friday at 3pm") and returns the
// residual title with the consumed phrases stripped.
//
// The processing model is a best-effort, greedy, order-dependent
// scan-and-strip over a fixed list of pattern families, each tried against
// the text remaining after earlier families consumed their matches.  It is
// deliberately not a grammar: later steps may override earlier ones exactly
// as enumerated in Parse.  Unparseable input simply leaves DueDate nil; the
// parser never fails to return a title.
package temporal

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/turtacn/TaskTriage-Engine/internal/config"
	"github.com/turtacn/TaskTriage-Engine/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/TaskTriage-Engine/pkg/types/common"
	"github.com/turtacn/TaskTriage-Engine/pkg/types/task"
)

var (
	urgencyMarkerRe = regexp.MustCompile(`(?i)\b(urgent(?:ly)?|asap|immediately|critical|right now|now)\b`)

	todayRe       = regexp.MustCompile(`(?i)\btoday\b`)
	tomorrowRe    = regexp.MustCompile(`(?i)\b(?:tomorrow|tmrw)\b`)
	nextWeekRe    = regexp.MustCompile(`(?i)\bnext week\b`)
	thisWeekRe    = regexp.MustCompile(`(?i)\bthis week\b`)
	thisWeekendRe = regexp.MustCompile(`(?i)\bthis weekend\b`)
	nextMonthRe   = regexp.MustCompile(`(?i)\bnext month\b`)

	weekdayRe = regexp.MustCompile(`(?i)\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday|mon|tues|tue|wed|thurs|thur|thu|fri|sat|sun)\b`)

	// Clock-time forms, tried in order: "at 3[:30][pm]", "3:30[pm]", "3pm".
	atTimeRe     = regexp.MustCompile(`(?i)\bat (\d{1,2})(?::(\d{2}))?\s*(am|pm)?\b`)
	colonTimeRe  = regexp.MustCompile(`(?i)\b(\d{1,2}):(\d{2})\s*(am|pm)?\b`)
	suffixTimeRe = regexp.MustCompile(`(?i)\b(\d{1,2})\s*(am|pm)\b`)

	morningRe   = regexp.MustCompile(`(?i)\bmorning\b`)
	afternoonRe = regexp.MustCompile(`(?i)\bafternoon\b`)
	eveningRe   = regexp.MustCompile(`(?i)\b(?:evening|tonight)\b`)
	eodRe       = regexp.MustCompile(`(?i)\b(?:end of (?:the )?day|eod)\b`)

	relativeRe = regexp.MustCompile(`(?i)\bin (\d+) (days?|weeks?)\b`)

	fillerRe     = regexp.MustCompile(`(?i)^(?:please|i need to|i have to|i must|i want to|need to|have to|remember to|remind me to|don't forget to|dont forget to|make sure to|todo:?|task:?)\s+`)
	danglingRe   = regexp.MustCompile(`(?i)[\s,]+(?:by|on|at|in|for|before|due|until|till|this|next)[\s,]*$`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

var weekdayByName = map[string]time.Weekday{
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tues": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thurs": time.Thursday, "thur": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
	"sunday": time.Sunday, "sun": time.Sunday,
}

// Parser extracts due dates from task text.  Immutable after construction
// and safe for concurrent use.
type Parser struct {
	cfg    config.TemporalConfig
	clock  common.Clock
	logger logging.Logger
}

// NewParser constructs a Parser with the given default-time profile and
// injected clock.  A nil logger is replaced with a no-op logger.
func NewParser(cfg config.TemporalConfig, clock common.Clock, logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Parser{cfg: cfg, clock: clock, logger: logger.Named("temporal")}
}

// dayFamily is one absolute-day pattern family.  Families are tried in
// definition order and only the first match is applied.
type dayFamily struct {
	re      *regexp.Regexp
	resolve func(now time.Time) time.Time
}

func (p *Parser) dayFamilies() []dayFamily {
	return []dayFamily{
		{todayRe, func(now time.Time) time.Time {
			return dateAt(now, 0, p.cfg.EndOfDayHour)
		}},
		{tomorrowRe, func(now time.Time) time.Time {
			return dateAt(now, 1, p.cfg.MorningHour)
		}},
		{nextWeekRe, func(now time.Time) time.Time {
			return dateAt(now, 7, p.cfg.MorningHour)
		}},
		{thisWeekRe, func(now time.Time) time.Time {
			// Upcoming Friday; on Friday itself, roll to next week's.
			days := int(time.Friday-now.Weekday()+7) % 7
			if days == 0 {
				days = 7
			}
			return dateAt(now, days, p.cfg.EndOfDayHour)
		}},
		{thisWeekendRe, func(now time.Time) time.Time {
			days := int(time.Saturday-now.Weekday()+7) % 7
			return dateAt(now, days, p.cfg.WeekendHour)
		}},
		{nextMonthRe, func(now time.Time) time.Time {
			n := now.AddDate(0, 1, 0)
			return time.Date(n.Year(), n.Month(), n.Day(), p.cfg.MorningHour, 0, 0, 0, n.Location())
		}},
	}
}

// Parse extracts a due date, due time, urgency flag, and cleaned title from
// input.  It is a total function: any string yields a well-formed ParsedTask.
func (p *Parser) Parse(input string) task.ParsedTask {
	now := p.clock.Now()
	original := strings.TrimSpace(input)
	text := original

	result := task.ParsedTask{Keywords: []string{}}

	// Step 1: urgency markers.  Detected here, stripped in the cleanup pass.
	if urgencyMarkerRe.MatchString(text) {
		result.IsUrgent = true
		result.Keywords = append(result.Keywords, "urgent")
	}

	var due time.Time
	haveDate := false
	haveTime := false

	// Step 2: absolute day families; only the first matching family applies.
	for _, f := range p.dayFamilies() {
		if loc := f.re.FindStringIndex(text); loc != nil {
			due = f.resolve(now)
			haveDate = true
			result.Keywords = append(result.Keywords, strings.ToLower(text[loc[0]:loc[1]]))
			text = stripSpan(text, loc)
			break
		}
	}

	// Step 3: named weekdays, only when no absolute family matched.
	// The next occurrence of the weekday, never today.
	if !haveDate {
		if m := weekdayRe.FindStringSubmatchIndex(text); m != nil {
			name := strings.ToLower(text[m[2]:m[3]])
			wd := weekdayByName[name]
			days := int(wd-now.Weekday()+7) % 7
			if days == 0 {
				days = 7
			}
			due = dateAt(now, days, p.cfg.MorningHour)
			haveDate = true
			result.Keywords = append(result.Keywords, name)
			text = stripSpan(text, m[0:2])
		}
	}

	// Step 4: explicit clock time, only refining an existing date.
	if haveDate {
		if hour, minute, loc, ok := p.findClockTime(text); ok {
			due = withClock(due, hour, minute)
			result.DueTime = formatClock(due)
			haveTime = true
			text = stripSpan(text, loc)
		}
	}

	// Step 5: coarse day parts; explicit time from step 4 wins.
	if !haveTime && haveDate {
		for _, dp := range []struct {
			re   *regexp.Regexp
			hour int
		}{
			{morningRe, p.cfg.MorningHour},
			{afternoonRe, p.cfg.AfternoonHour},
			{eveningRe, p.cfg.EveningHour},
		} {
			if loc := dp.re.FindStringIndex(text); loc != nil {
				due = withClock(due, dp.hour, 0)
				result.DueTime = formatClock(due)
				haveTime = true
				result.Keywords = append(result.Keywords, strings.ToLower(text[loc[0]:loc[1]]))
				text = stripSpan(text, loc)
				break
			}
		}
	}

	// "End of day" sets today when dateless and always forces the end-of-day
	// hour.
	if !haveTime {
		if loc := eodRe.FindStringIndex(text); loc != nil {
			if !haveDate {
				due = dateAt(now, 0, p.cfg.EndOfDayHour)
				haveDate = true
			} else {
				due = withClock(due, p.cfg.EndOfDayHour, 0)
			}
			result.DueTime = formatClock(due)
			haveTime = true
			result.Keywords = append(result.Keywords, "end of day")
			text = stripSpan(text, loc)
		}
	}

	// Step 6: relative offsets computed from now; highest specificity, so
	// they override any date from steps 2-3 while keeping an explicit time.
	if m := relativeRe.FindStringSubmatchIndex(text); m != nil {
		n, _ := strconv.Atoi(text[m[2]:m[3]])
		unit := strings.ToLower(text[m[4]:m[5]])
		days := n
		if strings.HasPrefix(unit, "week") {
			days = n * 7
		}
		offset := now.AddDate(0, 0, days)
		if haveTime {
			offset = withClock(offset, due.Hour(), due.Minute())
		}
		due = offset
		haveDate = true
		result.Keywords = append(result.Keywords, strings.ToLower(text[m[0]:m[1]]))
		text = stripSpan(text, m[0:2])
	}

	if haveDate {
		d := due
		result.DueDate = &d
	}

	// Steps 7-8: cleanup and fallback.
	title := p.cleanTitle(text)
	if title == "" {
		title = original
	}
	result.Title = title

	p.logger.Debug("parsed",
		logging.Bool("has_due", haveDate),
		logging.Bool("is_urgent", result.IsUrgent),
	)

	return result
}

// findClockTime locates the first explicit clock time in text and returns
// the 24-hour reading.  Bare hours below the configured bound with no AM/PM
// suffix are assumed PM.
func (p *Parser) findClockTime(text string) (hour, minute int, loc []int, ok bool) {
	for _, re := range []*regexp.Regexp{atTimeRe, colonTimeRe, suffixTimeRe} {
		m := re.FindStringSubmatchIndex(text)
		if m == nil {
			continue
		}
		h, err := strconv.Atoi(text[m[2]:m[3]])
		if err != nil || h > 23 {
			continue
		}
		minute := 0
		suffix := ""
		if len(m) >= 6 && m[4] >= 0 {
			v := text[m[4]:m[5]]
			if n, convErr := strconv.Atoi(v); convErr == nil && re != suffixTimeRe {
				minute = n
			} else {
				suffix = strings.ToLower(v)
			}
		}
		if len(m) >= 8 && m[6] >= 0 {
			suffix = strings.ToLower(text[m[6]:m[7]])
		}
		if minute > 59 {
			continue
		}

		switch suffix {
		case "pm":
			if h < 12 {
				h += 12
			}
		case "am":
			if h == 12 {
				h = 0
			}
		default:
			if h < p.cfg.AssumePMBelowHour {
				h += 12
			}
		}
		return h, minute, m[0:2], true
	}
	return 0, 0, nil, false
}

// cleanTitle strips urgency markers, leading filler phrases, and connectors
// orphaned by phrase removal, collapses whitespace, and capitalizes each
// word.
func (p *Parser) cleanTitle(text string) string {
	text = urgencyMarkerRe.ReplaceAllString(text, " ")

	text = strings.TrimSpace(text)
	for {
		next := fillerRe.ReplaceAllString(text, "")
		if next == text {
			break
		}
		text = strings.TrimSpace(next)
	}

	for {
		next := strings.TrimSpace(danglingRe.ReplaceAllString(text, ""))
		if next == text {
			break
		}
		text = next
	}

	text = whitespaceRe.ReplaceAllString(text, " ")
	text = strings.Trim(text, " \t\n-—,.;:")
	return capitalizeWords(text)
}

func capitalizeWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// stripSpan removes text[loc[0]:loc[1]], leaving a single space so word
// boundaries survive for later families.
func stripSpan(text string, loc []int) string {
	return text[:loc[0]] + " " + text[loc[1]:]
}

// dateAt returns now's date plus days, at the given whole hour.
func dateAt(now time.Time, days, hour int) time.Time {
	d := now.AddDate(0, 0, days)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, d.Location())
}

func withClock(t time.Time, hour, minute int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, t.Location())
}

func formatClock(t time.Time) string {
	return t.Format("3:04 PM")
}
