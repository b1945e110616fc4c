package internal_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/sluggable/internal"
)

func TestUpdateHistory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		previous string
		next     string
		history  []string
		expected []string
	}{
		{name: "first change", previous: "original", next: "foo-bar-baz", expected: []string{"original"}},
		{name: "unchanged", previous: "a", next: "a", history: []string{"x"}, expected: []string{"x"}},
		{name: "un-retire", previous: "foo-bar-baz", next: "original", history: []string{"original"}, expected: []string{"foo-bar-baz"}},
		{name: "previous moves to end", previous: "a", next: "c", history: []string{"a", "b"}, expected: []string{"b", "a"}},
		{name: "empty previous not recorded", previous: "", next: "a", history: []string{"a", "b"}, expected: []string{"b"}},
		{name: "clearing the slug", previous: "a", next: "", history: nil, expected: []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, internal.UpdateHistory(tt.previous, tt.next, tt.history))
		})
	}
}

func TestUpdateHistory_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	history := []string{"a", "b", "c"}
	_ = internal.UpdateHistory("c", "b", history)
	assert.Equal(t, []string{"a", "b", "c"}, history)
}

func TestUpdateHistory_Alternating(t *testing.T) {
	t.Parallel()

	current := "original"
	var history []string
	for _, next := range []string{"one", "two", "one", "two"} {
		history = internal.UpdateHistory(current, next, history)
		current = next
	}
	assert.Equal(t, []string{"original", "one"}, history)

	for i := range 50 {
		next := []string{"a", "b", "original"}[i%3]
		history = internal.UpdateHistory(current, next, history)
		current = next

		assert.NotContains(t, history, current)
		sorted := slices.Clone(history)
		slices.Sort(sorted)
		assert.Equal(t, len(sorted), len(slices.Compact(sorted)), "no duplicates")
	}
}
