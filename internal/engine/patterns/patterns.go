// Package patterns owns the four read-only signal pattern sets driving
// quadrant classification.  A Library is built once at startup and is safe
// for concurrent use; matching has no side effects.
package patterns

import (
	"regexp"

	"github.com/turtacn/TaskTriage-Engine/internal/config"
	apperrors "github.com/turtacn/TaskTriage-Engine/pkg/errors"
)

// Category names one of the four signal pattern sets.
type Category string

const (
	CategoryUrgency     Category = "urgency"
	CategoryImportance  Category = "importance"
	CategoryDelegation  Category = "delegation"
	CategoryLowPriority Category = "low_priority"
)

// Categories lists all pattern categories in evaluation order.
func Categories() []Category {
	return []Category{CategoryUrgency, CategoryImportance, CategoryDelegation, CategoryLowPriority}
}

// signalPattern is one compiled matcher.  Matching is case-insensitive; the
// expression source carries no (?i) because compile adds it uniformly.
type signalPattern struct {
	re *regexp.Regexp
}

// Library holds the compiled pattern sets.  Immutable after construction.
type Library struct {
	sets map[Category][]signalPattern
}

// NewLibrary compiles the built-in pattern tables plus any custom patterns
// from cfg, preserving definition order (built-ins first, extras after).
// A custom pattern that fails to compile aborts construction.
func NewLibrary(cfg config.PatternConfig) (*Library, error) {
	sources := map[Category][]string{
		CategoryUrgency:     append(append([]string{}, urgencyPatterns...), cfg.ExtraUrgency...),
		CategoryImportance:  append(append([]string{}, importancePatterns...), cfg.ExtraImportance...),
		CategoryDelegation:  append(append([]string{}, delegationPatterns...), cfg.ExtraDelegation...),
		CategoryLowPriority: append(append([]string{}, lowPriorityPatterns...), cfg.ExtraLowPriority...),
	}

	lib := &Library{sets: make(map[Category][]signalPattern, len(sources))}
	for cat, exprs := range sources {
		compiled := make([]signalPattern, 0, len(exprs))
		for _, expr := range exprs {
			re, err := regexp.Compile("(?i)" + expr)
			if err != nil {
				return nil, apperrors.Wrap(err, apperrors.ErrCodePatternCompile,
					"cannot compile signal pattern").WithDetail(string(cat) + ": " + expr)
			}
			compiled = append(compiled, signalPattern{re: re})
		}
		lib.sets[cat] = compiled
	}
	return lib, nil
}

// MustNewLibrary panics on compile failure.  Only the built-in tables reach
// it, so a panic here indicates a programming error in this package.
func MustNewLibrary() *Library {
	lib, err := NewLibrary(config.PatternConfig{})
	if err != nil {
		panic(err)
	}
	return lib
}

// MatchAll returns the literal substrings of text matched by the category's
// patterns, in pattern-definition order (not position in text).  Each pattern
// contributes at most one match.  An unknown category or a text with no
// matches yields an empty slice, never an error.
func (l *Library) MatchAll(text string, cat Category) []string {
	matched := []string{}
	for _, p := range l.sets[cat] {
		if m := p.re.FindString(text); m != "" {
			matched = append(matched, m)
		}
	}
	return matched
}

// Count returns the number of category patterns that match text.
func (l *Library) Count(text string, cat Category) int {
	n := 0
	for _, p := range l.sets[cat] {
		if p.re.MatchString(text) {
			n++
		}
	}
	return n
}

// Size returns the number of compiled patterns in a category.
func (l *Library) Size(cat Category) int {
	return len(l.sets[cat])
}
