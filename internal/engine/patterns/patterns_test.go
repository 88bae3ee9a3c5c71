package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/TaskTriage-Engine/internal/config"
	apperrors "github.com/turtacn/TaskTriage-Engine/pkg/errors"
)

func TestTables_MinimumSize(t *testing.T) {
	lib := MustNewLibrary()
	for _, cat := range Categories() {
		assert.GreaterOrEqual(t, lib.Size(cat), 20, "category %s", cat)
	}
}

func TestMatchAll_DefinitionOrder(t *testing.T) {
	lib := MustNewLibrary()

	// "deadline" is defined before "today" in the urgency table; the text
	// places them in the opposite order.
	got := lib.MatchAll("today is the deadline", CategoryUrgency)
	assert.Equal(t, []string{"deadline", "today"}, got)
}

func TestMatchAll_CaseInsensitive(t *testing.T) {
	lib := MustNewLibrary()

	for _, text := range []string{"URGENT task", "urgent task", "UrGeNt task"} {
		got := lib.MatchAll(text, CategoryUrgency)
		require.Len(t, got, 1, "text %q", text)
	}
}

func TestMatchAll_ReturnsLiteralMatch(t *testing.T) {
	lib := MustNewLibrary()
	got := lib.MatchAll("This is URGENT", CategoryUrgency)
	require.Len(t, got, 1)
	assert.Equal(t, "URGENT", got[0])
}

func TestMatchAll_NoMatches(t *testing.T) {
	lib := MustNewLibrary()
	for _, cat := range Categories() {
		got := lib.MatchAll("water the office plants", cat)
		assert.NotNil(t, got)
		assert.Empty(t, got, "category %s", cat)
	}
}

func TestMatchAll_WordBoundaries(t *testing.T) {
	lib := MustNewLibrary()

	// "assignment" must not trip the "assign" delegation pattern.
	assert.Zero(t, lib.Count("finish the assignment", CategoryDelegation))
	// "knowledge" must not trip anything via "now"-like substrings.
	assert.Zero(t, lib.Count("document the knowledge base", CategoryUrgency))
}

func TestCategoryContent(t *testing.T) {
	lib := MustNewLibrary()

	cases := []struct {
		text string
		cat  Category
		min  int
	}{
		{"Urgent: Submit tax return by today deadline", CategoryUrgency, 3},
		{"Urgent: Submit tax return by today deadline", CategoryImportance, 1},
		{"Order office supplies - printer ink running low", CategoryDelegation, 2},
		{"Browse Reddit for interesting posts", CategoryLowPriority, 2},
		{"production is down, customers are affected", CategoryUrgency, 1},
		{"production is down, customers are affected", CategoryImportance, 1},
		{"book a conference room for the standup", CategoryDelegation, 2},
		{"maybe binge that netflix series someday", CategoryLowPriority, 4},
	}

	for _, tc := range cases {
		got := lib.Count(tc.text, tc.cat)
		assert.GreaterOrEqual(t, got, tc.min, "%q in %s: got %d", tc.text, tc.cat, got)
	}
}

func TestNewLibrary_ExtraPatterns(t *testing.T) {
	lib, err := NewLibrary(config.PatternConfig{
		ExtraUrgency: []string{`\bsev ?1\b`},
	})
	require.NoError(t, err)

	got := lib.MatchAll("SEV1 in checkout flow", CategoryUrgency)
	assert.Contains(t, got, "SEV1")
	// Extras are appended after built-ins; built-in match order is preserved.
	full := lib.MatchAll("urgent sev1", CategoryUrgency)
	assert.Equal(t, []string{"urgent", "sev1"}, full)
}

func TestNewLibrary_BadExtraPattern(t *testing.T) {
	_, err := NewLibrary(config.PatternConfig{
		ExtraLowPriority: []string{`(unclosed`},
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodePatternCompile))
}
