package slug_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/sluggable/pkg/slug"
)

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		n        int
		expected string
	}{
		{name: "shorter than limit", input: "abc", n: 5, expected: "abc"},
		{name: "exact limit", input: "abcde", n: 5, expected: "abcde"},
		{name: "cuts mid word", input: "testing-123", n: 5, expected: "testi"},
		{name: "keeps trailing separator", input: "testing-123", n: 8, expected: "testing-"},
		{name: "zero disables", input: "testing", n: 0, expected: "testing"},
		{name: "negative disables", input: "testing", n: -1, expected: "testing"},
		{name: "multi-byte runes", input: "žluťoučký", n: 4, expected: "žluť"},
		{name: "empty", input: "", n: 3, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, slug.Truncate(tt.input, tt.n))
		})
	}
}

func TestTruncateLongInput(t *testing.T) {
	t.Parallel()

	s := slug.Make(strings.Repeat("a", 300))
	out := slug.Truncate(s, 256)
	assert.Equal(t, 256, utf8.RuneCountInString(out))
}
