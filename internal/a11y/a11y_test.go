package a11y

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestEvaluateHeadingLevels_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		levels    []int
		wantHasH1 bool
		wantValid bool
	}{
		{"single h1", []int{1}, true, true},
		{"descending then deeper by one", []int{1, 2, 2, 3}, true, true},
		{"skip from h1 to h3", []int{1, 3}, true, false},
		{"no h1", []int{2, 3}, false, false},
		{"empty document", nil, false, false},
		{"decrease always allowed", []int{1, 2, 3, 1, 2}, true, true},
		{"skip after decrease", []int{1, 3, 2}, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := EvaluateHeadingLevels(tt.levels)
			assert.Equal(t, tt.wantHasH1, report.HasH1, "HasH1")
			assert.Equal(t, tt.wantValid, report.Valid, "Valid")
			assert.Equal(t, tt.levels, report.Levels)
		})
	}
}

func testEvaluateHeadingLevels_DecreasesNeverInvalidate(t *rapid.T) {
	// Start at h1 and only ever step down one level or jump back up
	// (toward h1); such sequences are always valid.
	steps := rapid.SliceOfN(rapid.IntRange(0, 5), 0, 30).Draw(t, "steps")
	levels := []int{1}
	current := 1
	for _, s := range steps {
		if s == 0 && current < 6 {
			current++
		} else {
			current = 1 + s%current
		}
		levels = append(levels, current)
	}

	report := EvaluateHeadingLevels(levels)
	if !report.Valid {
		t.Fatalf("sequence %v should be valid", levels)
	}
}

func TestEvaluateHeadingLevels_DecreasesNeverInvalidate(t *testing.T) {
	t.Parallel()
	rapid.Check(t, testEvaluateHeadingLevels_DecreasesNeverInvalidate)
}

func testEvaluateHeadingLevels_JumpOverLevelInvalidates(t *rapid.T) {
	prefix := rapid.SliceOfN(rapid.IntRange(1, 3), 0, 10).Draw(t, "prefix")
	levels := append([]int{1}, prefix...)
	last := levels[len(levels)-1]
	jump := rapid.IntRange(last+2, 6).Draw(t, "jump")
	levels = append(levels, jump)

	// The prefix itself may already contain a jump; appending another
	// must never make the sequence valid.
	report := EvaluateHeadingLevels(levels)
	if report.Valid {
		t.Fatalf("sequence %v ends with a jump from %d to %d yet reported valid", levels, last, jump)
	}
}

func TestEvaluateHeadingLevels_JumpOverLevelInvalidates(t *testing.T) {
	t.Parallel()
	rapid.Check(t, testEvaluateHeadingLevels_JumpOverLevelInvalidates)
}

func TestSplitBySeverity(t *testing.T) {
	t.Parallel()

	violations := []Violation{
		{ID: "color-contrast", Impact: "serious"},
		{ID: "image-alt", Impact: "critical"},
		{ID: "region", Impact: "moderate"},
		{ID: "meta-viewport", Impact: "minor"},
		{ID: "unknown-impact", Impact: ""},
	}

	blocking, advisory := SplitBySeverity(violations)

	require.Len(t, blocking, 2)
	assert.Equal(t, "color-contrast", blocking[0].ID)
	assert.Equal(t, "image-alt", blocking[1].ID)

	require.Len(t, advisory, 3)
	assert.Equal(t, "region", advisory[0].ID)
	assert.Equal(t, "meta-viewport", advisory[1].ID)
	assert.Equal(t, "unknown-impact", advisory[2].ID)
}

func TestSplitBySeverity_Empty(t *testing.T) {
	t.Parallel()

	blocking, advisory := SplitBySeverity(nil)
	assert.Empty(t, blocking)
	assert.Empty(t, advisory)
}

func TestDefaultTags_CoverWCAG21AA(t *testing.T) {
	t.Parallel()

	assert.ElementsMatch(t,
		[]string{"wcag2a", "wcag2aa", "wcag21a", "wcag21aa"},
		DefaultTags,
	)
}
