package pgstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sluggable"
	"github.com/dmitrymomot/sluggable/pkg/pgstore"
)

func TestConnect_InvalidURL(t *testing.T) {
	t.Parallel()

	_, err := pgstore.Connect(context.Background(), pgstore.DefaultConfig("://not a url"))
	require.ErrorIs(t, err, pgstore.ErrFailedToParseDBConfig)
}

func TestHealthcheck_NilPool(t *testing.T) {
	t.Parallel()

	err := pgstore.Healthcheck(nil)(context.Background())
	require.ErrorIs(t, err, pgstore.ErrHealthcheckFailed)
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := pgstore.DefaultConfig("postgres://localhost/db")
	assert.Equal(t, "postgres://localhost/db", cfg.ConnectionString)
	assert.Equal(t, pgstore.DefaultMigrationsTable, cfg.MigrationsTable)
	assert.Equal(t, 3, cfg.RetryAttempts)
}

func TestStore_NonUUIDIDs(t *testing.T) {
	t.Parallel()

	// Id validation happens before any query, so no connection is needed.
	store := pgstore.New(nil)
	ctx := context.Background()

	_, err := store.FindByID(ctx, nil, "not-a-uuid")
	require.ErrorIs(t, err, sluggable.ErrNoDocument)

	err = store.Update(ctx, sluggable.LoadDocument("42", "Article", nil, nil))
	require.ErrorIs(t, err, sluggable.ErrNoDocument)

	err = store.Delete(ctx, "42")
	require.ErrorIs(t, err, sluggable.ErrNoDocument)

	doc := sluggable.NewDocument("Article", nil)
	doc.ID = "42"
	err = store.Insert(ctx, doc)
	require.ErrorIs(t, err, pgstore.ErrInvalidID)
}

func TestEnsureSlugIndex_RegistryErrors(t *testing.T) {
	t.Parallel()

	reg := sluggable.NewRegistry().MustRegister(sluggable.TypeDef{Name: "Note"})

	_, err := pgstore.EnsureSlugIndex(context.Background(), nil, reg, "Note")
	require.ErrorIs(t, err, sluggable.ErrNotSluggable)

	_, err = pgstore.EnsureSlugIndex(context.Background(), nil, reg, "Missing")
	require.ErrorIs(t, err, sluggable.ErrUnknownType)
}
