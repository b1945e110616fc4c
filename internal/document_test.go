package internal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sluggable/internal"
)

func TestDocument_ChangeTracking(t *testing.T) {
	t.Parallel()

	t.Run("new document", func(t *testing.T) {
		t.Parallel()

		doc := internal.NewDocument("Post", map[string]any{"title": "Hello"})
		assert.True(t, doc.IsNew())
		assert.True(t, doc.Changed("title"))
		assert.False(t, doc.Changed("slug"))
		assert.Nil(t, doc.Was("title"))

		doc.Set("slug", "")
		assert.False(t, doc.Changed("slug"), "empty counts as unset")
	})

	t.Run("loaded document", func(t *testing.T) {
		t.Parallel()

		doc := internal.LoadDocument("1", "Post", map[string]any{"slug": "a", "n": 1}, nil)
		assert.False(t, doc.IsNew())
		assert.False(t, doc.Changed("slug"))

		doc.Set("slug", "b")
		assert.True(t, doc.Changed("slug"))
		assert.Equal(t, "a", doc.Was("slug"))

		doc.Set("n", float64(1))
		assert.False(t, doc.Changed("n"))

		doc.MarkPersisted()
		assert.False(t, doc.Changed("slug"))
		assert.Equal(t, "b", doc.Was("slug"))
	})

	t.Run("unset", func(t *testing.T) {
		t.Parallel()

		doc := internal.LoadDocument("1", "Post", map[string]any{"slug": "a"}, nil)
		doc.Unset("slug")
		assert.True(t, doc.Changed("slug"))
		assert.Equal(t, "", doc.String("slug"))
	})
}

func TestDocument_String(t *testing.T) {
	t.Parallel()

	doc := internal.NewDocument("Post", map[string]any{
		"s":   "text",
		"n":   42,
		"f":   1.5,
		"nil": nil,
	})
	assert.Equal(t, "text", doc.String("s"))
	assert.Equal(t, "42", doc.String("n"))
	assert.Equal(t, "1.5", doc.String("f"))
	assert.Equal(t, "", doc.String("nil"))
	assert.Equal(t, "", doc.String("missing"))
}

func TestDocument_Clone(t *testing.T) {
	t.Parallel()

	doc := internal.LoadDocument("1", "Post", map[string]any{"slug": "a"}, []string{"old"})
	c := doc.Clone()

	c.Set("slug", "b")
	c.PriorSlugs[0] = "changed"

	assert.Equal(t, "a", doc.String("slug"))
	assert.Equal(t, []string{"old"}, doc.PriorSlugs)
	assert.False(t, c.IsNew())
	assert.True(t, c.Changed("slug"))

	fresh := internal.NewDocument("Post", nil).Clone()
	require.NotNil(t, fresh.Fields)
	assert.True(t, fresh.IsNew())
}

func TestValuesEqual(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"nil and nil", nil, nil, true},
		{"nil and empty", nil, "", true},
		{"strings", "a", "a", true},
		{"different strings", "a", "A", false},
		{"int and float", 1, float64(1), true},
		{"int64 and int", int64(7), 7, true},
		{"different numbers", 1, 2, false},
		{"number and string", 1, "1", false},
		{"nil and zero", nil, 0, false},
		{"bools", true, true, true},
		{"slices", []string{"a"}, []string{"a"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, internal.ValuesEqual(tt.a, tt.b))
			assert.Equal(t, tt.want, internal.ValuesEqual(tt.b, tt.a))
		})
	}
}
