// Package pgstore implements a PostgreSQL document store for sluggable.
//
// Documents live in a single table with their fields in a JSONB column and
// their slug history in a TEXT[] column. The package wraps
// [github.com/jackc/pgx/v5/pgxpool] for connections and
// [github.com/pressly/goose/v3] for the embedded schema migrations.
//
// # Usage
//
//	pool, err := pgstore.Connect(ctx, pgstore.DefaultConfig(os.Getenv("SLUGGABLE_DATABASE_URL")))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer pool.Close()
//
//	if err := pgstore.Migrate(ctx, pool, "", logger); err != nil {
//		log.Fatal(err)
//	}
//
//	store := pgstore.New(pool)
//	repo := sluggable.NewRepository(registry, store)
//
// # Uniqueness
//
// Slug uniqueness is checked by the collision scan before each write.
// Concurrent writers can still pass the scan together, so [EnsureSlugIndex]
// creates a partial unique index per type pool. A violation surfaces as
// [sluggable.ErrDuplicateSlug], which the repository answers by generating
// the next free slug.
//
// # Transactions
//
// [Store.WithTx] binds a Store to a transaction:
//
//	err := store.WithTx(ctx, func(tx *pgstore.Store) error {
//		return sluggable.NewRepository(registry, tx).Save(ctx, doc)
//	})
package pgstore
