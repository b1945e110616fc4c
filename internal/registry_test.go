package internal_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sluggable/internal"
)

func TestRegistry_BaseTypeOwnsPool(t *testing.T) {
	t.Parallel()

	reg := internal.NewRegistry().MustRegister(
		internal.TypeDef{Name: "Animal", Config: internal.NewConfig("name")},
		internal.TypeDef{Name: "Dog", Parent: "Animal"},
		internal.TypeDef{Name: "Puppy", Parent: "Dog"},
	)

	for _, name := range []string{"Animal", "Dog", "Puppy"} {
		owner, err := reg.Owner(name)
		require.NoError(t, err)
		assert.Equal(t, "Animal", owner, name)

		pool, err := reg.Pool(name)
		require.NoError(t, err)
		assert.Equal(t, []string{"Animal", "Dog", "Puppy"}, pool, name)
	}

	sub, err := reg.Subtree("Dog")
	require.NoError(t, err)
	assert.Equal(t, []string{"Dog", "Puppy"}, sub)

	cfg, err := reg.Config("Puppy")
	require.NoError(t, err)
	assert.Equal(t, "name", cfg.SourceField)
}

func TestRegistry_SubtypeOwnsPool(t *testing.T) {
	t.Parallel()

	reg := internal.NewRegistry().MustRegister(
		internal.TypeDef{Name: "Animal"},
		internal.TypeDef{Name: "Dog", Parent: "Animal", Config: internal.NewConfig("name")},
		internal.TypeDef{Name: "Cat", Parent: "Animal"},
	)

	_, err := reg.Config("Animal")
	require.ErrorIs(t, err, internal.ErrNotSluggable)
	_, err = reg.Config("Cat")
	require.ErrorIs(t, err, internal.ErrNotSluggable)

	pool, err := reg.Pool("Dog")
	require.NoError(t, err)
	assert.Equal(t, []string{"Dog"}, pool)

	sub, err := reg.Subtree("Animal")
	require.NoError(t, err)
	assert.Equal(t, []string{"Animal", "Dog", "Cat"}, sub)
}

func TestRegistry_AncestorConfigShadowsSubtype(t *testing.T) {
	t.Parallel()

	reg := internal.NewRegistry().MustRegister(
		internal.TypeDef{Name: "Animal", Config: internal.NewConfig("name")},
		internal.TypeDef{Name: "Dog", Parent: "Animal", Config: internal.NewConfig("nickname", internal.WithStartSuffix(10))},
	)

	cfg, err := reg.Config("Dog")
	require.NoError(t, err)
	assert.Equal(t, "name", cfg.SourceField)
	assert.Equal(t, 2, cfg.StartSuffix)

	def, ok := reg.Def("Dog")
	require.True(t, ok)
	assert.Equal(t, "nickname", def.Config.SourceField)
}

func TestRegistry_Errors(t *testing.T) {
	t.Parallel()

	reg := internal.NewRegistry()
	require.NoError(t, reg.Register(internal.TypeDef{Name: "Post", Config: internal.NewConfig("title")}))

	err := reg.Register(internal.TypeDef{Name: "Post"})
	assert.ErrorIs(t, err, internal.ErrTypeExists)

	err = reg.Register(internal.TypeDef{Name: "Dog", Parent: "Animal"})
	assert.ErrorIs(t, err, internal.ErrUnknownParent)

	err = reg.Register(internal.TypeDef{})
	assert.ErrorIs(t, err, internal.ErrInvalidConfig)

	_, err = reg.Config("Missing")
	assert.ErrorIs(t, err, internal.ErrUnknownType)
	_, err = reg.Subtree("Missing")
	assert.ErrorIs(t, err, internal.ErrUnknownType)

	assert.Equal(t, []string{"Post"}, reg.Types())
	assert.Panics(t, func() {
		reg.MustRegister(internal.TypeDef{Name: "Post"})
	})
}

func TestRegistry_ConfigIsCopied(t *testing.T) {
	t.Parallel()

	cfg := internal.NewConfig("title")
	reg := internal.NewRegistry().MustRegister(internal.TypeDef{Name: "Post", Config: cfg})

	cfg.SlugField = "changed"

	got, err := reg.Config("Post")
	require.NoError(t, err)
	assert.Equal(t, "slug", got.SlugField)
}

func TestRegistry_RoutableID(t *testing.T) {
	t.Parallel()

	reg := internal.NewRegistry().MustRegister(
		internal.TypeDef{Name: "Employer", Config: internal.NewConfig("title", internal.WithSlugField("handle"))},
		internal.TypeDef{Name: "Plain"},
	)

	doc := internal.LoadDocument("42", "Employer", map[string]any{"handle": "original"}, nil)
	assert.Equal(t, "original", reg.RoutableID(doc))

	doc.Set("handle", nil)
	assert.Equal(t, "42", reg.RoutableID(doc))

	plain := internal.LoadDocument("7", "Plain", map[string]any{"slug": "kept"}, nil)
	assert.Equal(t, "kept", reg.RoutableID(plain))
}

func TestRegistry_ConcurrentReads(t *testing.T) {
	t.Parallel()

	reg := internal.NewRegistry().MustRegister(
		internal.TypeDef{Name: "Animal", Config: internal.NewConfig("name")},
	)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%5 == 0 {
				_ = reg.Register(internal.TypeDef{Name: "Sub" + string(rune('A'+i)), Parent: "Animal"})
				return
			}
			_, _ = reg.Pool("Animal")
			_, _ = reg.Config("Animal")
		}()
	}
	wg.Wait()

	pool, err := reg.Pool("Animal")
	require.NoError(t, err)
	assert.Len(t, pool, 5)
}
