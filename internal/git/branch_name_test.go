package git

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		subject  string
		expected string
	}{
		{
			name:     "simple subject",
			subject:  "Add widget parser",
			expected: "add-widget-parser",
		},
		{
			name:     "punctuation collapses into single dashes",
			subject:  "fix: handle nil pointer (again!)",
			expected: "fix-handle-nil-pointer-again",
		},
		{
			name:     "leading and trailing symbols are dropped",
			subject:  "[WIP] rework scheduler!!!",
			expected: "wip-rework-scheduler",
		},
		{
			name:     "unicode is treated as separator",
			subject:  "añadir soporte de índices",
			expected: "a-adir-soporte-de-ndices",
		},
		{
			name:     "long subjects are truncated",
			subject:  strings.Repeat("abcd ", 20),
			expected: "abcd-abcd-abcd-abcd-abcd-abcd-abcd-abcd-abcd-abc",
		},
		{
			name:     "symbol-only subject falls back",
			subject:  "!!! ???",
			expected: "change",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.subject))
			assert.LessOrEqual(t, len(Slugify(tt.subject)), maxSlugLength)
		})
	}
}

func TestBranchNameFor(t *testing.T) {
	t.Run("prefix is prepended", func(t *testing.T) {
		assert.Equal(t, "pr/add-widget-parser", BranchNameFor("pr/", "Add widget parser"))
	})

	t.Run("derivation is deterministic", func(t *testing.T) {
		first := BranchNameFor("pr/", "Fix the flaky retry loop")
		second := BranchNameFor("pr/", "Fix the flaky retry loop")
		assert.Equal(t, first, second)
	})
}
