package config

// Default returns a fully-populated Config carrying the stock engine profile.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// DefaultEngine returns the stock engine profile on its own, for callers
// embedding the engine as a library without the full Config.
func DefaultEngine() EngineConfig {
	return Default().Engine
}

// ApplyDefaults fills every unset field of cfg with the stock value.
// Explicitly-set fields are left untouched, so a partial YAML file only
// overrides what it names.
func ApplyDefaults(cfg *Config) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}

	t := &cfg.Engine.Thresholds
	if t.Escalation == 0 {
		t.Escalation = 0.65
	}
	if t.ConfidenceCap == 0 {
		t.ConfidenceCap = 0.95
	}
	if t.SoonDeadlineUrgency == 0 {
		t.SoonDeadlineUrgency = 0.65
	}
	if t.CriticalDeadlineUrgency == 0 {
		t.CriticalDeadlineUrgency = 0.75
	}
	if t.ScheduleDeadlineUrgency == 0 {
		t.ScheduleDeadlineUrgency = 0.50
	}

	d := &cfg.Engine.Deadline
	if d.OverdueBase == 0 {
		d.OverdueBase = 0.75
	}
	if d.OverduePerDay == 0 {
		d.OverduePerDay = 0.05
	}
	if d.DueToday == 0 {
		d.DueToday = 0.75
	}
	if d.DueTomorrow == 0 {
		d.DueTomorrow = 0.65
	}
	if d.TwoToThreeDays == 0 {
		d.TwoToThreeDays = 0.50
	}
	if d.FourToSevenDays == 0 {
		d.FourToSevenDays = 0.25
	}
	if d.FarDecayPerDay == 0 {
		d.FarDecayPerDay = 0.01
	}

	tm := &cfg.Engine.Temporal
	if tm.EndOfDayHour == 0 {
		tm.EndOfDayHour = 17
	}
	if tm.MorningHour == 0 {
		tm.MorningHour = 9
	}
	if tm.AfternoonHour == 0 {
		tm.AfternoonHour = 14
	}
	if tm.EveningHour == 0 {
		tm.EveningHour = 18
	}
	if tm.WeekendHour == 0 {
		tm.WeekendHour = 10
	}
	if tm.AssumePMBelowHour == 0 {
		tm.AssumePMBelowHour = 8
	}
}
