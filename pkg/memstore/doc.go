// Package memstore is an in-memory sluggable.Store.
//
// It keeps documents in insertion order and hands out copies, so callers can
// mutate what they read without touching stored state. Ids are UUIDv4 strings.
// Use it in tests, or for small data sets that fit in a process:
//
//	reg := sluggable.NewRegistry().MustRegister(sluggable.TypeDef{
//	    Name:   "Post",
//	    Config: sluggable.NewConfig("title"),
//	})
//	repo := sluggable.NewRepository(reg, memstore.New(memstore.WithUniqueSlugs(reg)))
//
// WithUniqueSlugs turns on the uniqueness backstop: writes that would give two
// documents of one pool the same slug within a scope fail with
// sluggable.ErrDuplicateSlug.
package memstore
