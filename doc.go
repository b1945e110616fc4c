// Package sluggable assigns human-readable, URL-safe, collision-free slugs to
// documents and keeps a history of replaced slugs so old links keep resolving.
//
// # Quick Start
//
// Register document types, pick a store and save documents through a Repository:
//
//	reg := sluggable.NewRegistry().MustRegister(
//	    sluggable.TypeDef{
//	        Name:   "Post",
//	        Config: sluggable.NewConfig("title", sluggable.WithScope("account_id")),
//	    },
//	)
//
//	repo := sluggable.NewRepository(reg, memstore.New())
//
//	post := sluggable.NewDocument("Post", map[string]any{"title": "Hello World", "account_id": 1})
//	if err := repo.Save(ctx, post); err != nil {
//	    return err
//	}
//	post.String("slug") // "hello-world"
//
// # Collisions
//
// A candidate already used by another document in the same pool and scope gets
// a numeric suffix: "hello-world-2", "hello-world-3" and so on, counting from
// WithStartSuffix. The scan is capped by WithMaxAttempts; running out yields a
// *ConfigError wrapping ErrCollisionExhausted.
//
// The scan is not atomic. Back it with a unique index in the store
// (pgstore.EnsureSlugIndex, memstore.WithUniqueSlugs); Repository.Save
// regenerates the slug when the store rejects it with ErrDuplicateSlug.
//
// # Type Hierarchies
//
// Types may share storage with a parent type. A subtype of a sluggable type is
// sluggable too and shares the slug namespace of its topmost sluggable
// ancestor, using that ancestor's configuration. A sluggable subtype of a
// plain type has a namespace of its own.
//
// # Triggers and Policies
//
// Trigger and Stage decide when Repository assigns a slug: OnCreate (default),
// OnCreateOrUpdate or Manual, before validation (default) or before save.
// PolicyTrack regenerates when the trigger fires unless the caller set the
// slug explicitly, and records replaced slugs in Document.PriorSlugs.
// PolicyAssignOnce only fills an empty slug.
//
// # Lookups
//
// FindBySlug returns a Result whose Outcome is Found, Redirect or NotFound.
// Redirect means the value was an old slug, or the live slug in a different
// case; Result.NewSlug holds the canonical slug to redirect to:
//
//	res, err := repo.FindBySlugOrID(ctx, "Post", value)
//	switch {
//	case err != nil:
//	    return err
//	case res.Outcome == sluggable.Redirect:
//	    http.Redirect(w, r, "/posts/"+res.NewSlug, http.StatusMovedPermanently)
//	case res.Outcome == sluggable.NotFound:
//	    http.NotFound(w, r)
//	}
//
// The -OrFail variants report NotFound as a *NotFoundError matching ErrNotFound.
// Package slugroute wires this into chi routers.
package sluggable
