package pgstore

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sluggable"
)

func TestBuildWhere(t *testing.T) {
	t.Parallel()

	t.Run("empty filter", func(t *testing.T) {
		t.Parallel()

		w := buildWhere(sluggable.Filter{})
		assert.Empty(t, w.String())
		assert.Empty(t, w.args)
	})

	t.Run("collision query", func(t *testing.T) {
		t.Parallel()

		w := buildWhere(sluggable.Filter{
			Types:     []string{"Animal", "Dog"},
			Equal:     map[string]any{"slug": "rover", "account_id": 1},
			ExcludeID: "abc",
		})
		assert.Equal(t,
			" WHERE doc_type = ANY($1) AND fields @> $2::jsonb AND fields @> $3::jsonb AND id::text <> $4",
			w.String(),
		)
		require.Len(t, w.args, 4)
		assert.Equal(t, []string{"Animal", "Dog"}, w.args[0])
		assert.Equal(t, map[string]any{"account_id": 1}, w.args[1])
		assert.Equal(t, map[string]any{"slug": "rover"}, w.args[2])
		assert.Equal(t, "abc", w.args[3])
	})

	t.Run("blank values match missing fields", func(t *testing.T) {
		t.Parallel()

		w := buildWhere(sluggable.Filter{Equal: map[string]any{"account_id": nil, "region": ""}})
		assert.Equal(t,
			" WHERE COALESCE(fields->>$1, '') = '' AND COALESCE(fields->>$2, '') = ''",
			w.String(),
		)
		assert.Equal(t, []any{"account_id", "region"}, w.args)
	})

	t.Run("case-insensitive and history lookups", func(t *testing.T) {
		t.Parallel()

		w := buildWhere(sluggable.Filter{
			Types:     []string{"Employer"},
			Fold:      map[string]string{"slug": "FOO"},
			PriorSlug: "original",
		})
		assert.Equal(t,
			" WHERE doc_type = ANY($1) AND lower(fields->>$2) = lower($3) AND $4 = ANY(prior_slugs)",
			w.String(),
		)
		assert.Equal(t, []any{[]string{"Employer"}, "slug", "FOO", "original"}, w.args)
	})
}

func TestSlugIndexSQL(t *testing.T) {
	t.Parallel()

	t.Run("unscoped", func(t *testing.T) {
		t.Parallel()

		name, sql, err := slugIndexSQL([]string{"Animal", "Dog"}, "slug", "")
		require.NoError(t, err)
		assert.Regexp(t, `^sluggable_slug_[0-9a-f]{8}$`, name)
		assert.Equal(t,
			`CREATE UNIQUE INDEX IF NOT EXISTS "`+name+`" ON sluggable_documents ((fields->>'slug')) `+
				`WHERE doc_type IN ('Animal', 'Dog') AND COALESCE(fields->>'slug', '') <> ''`,
			sql,
		)
	})

	t.Run("scoped", func(t *testing.T) {
		t.Parallel()

		_, sql, err := slugIndexSQL([]string{"Training"}, "slug", "job_title_id")
		require.NoError(t, err)
		assert.Contains(t, sql, `((COALESCE(fields->>'job_title_id', '')), (fields->>'slug'))`)
	})

	t.Run("name depends on pool and fields", func(t *testing.T) {
		t.Parallel()

		a, _, err := slugIndexSQL([]string{"Animal"}, "slug", "")
		require.NoError(t, err)
		b, _, err := slugIndexSQL([]string{"Animal", "Dog"}, "slug", "")
		require.NoError(t, err)
		c, _, err := slugIndexSQL([]string{"Animal"}, "slug", "")
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
		assert.Equal(t, a, c)
	})

	t.Run("quotes literals", func(t *testing.T) {
		t.Parallel()

		_, sql, err := slugIndexSQL([]string{"O'Brien"}, "sl'ug", "")
		require.NoError(t, err)
		assert.Contains(t, sql, `'O''Brien'`)
		assert.Contains(t, sql, `fields->>'sl''ug'`)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		t.Parallel()

		_, _, err := slugIndexSQL(nil, "slug", "")
		require.ErrorIs(t, err, ErrInvalidIdentifier)

		_, _, err = slugIndexSQL([]string{"A\x00"}, "slug", "")
		require.ErrorIs(t, err, ErrInvalidIdentifier)

		_, _, err = slugIndexSQL([]string{"A"}, "", "")
		require.ErrorIs(t, err, ErrInvalidIdentifier)
	})
}

func TestMapError(t *testing.T) {
	t.Parallel()

	s := New(nil)
	doc := sluggable.NewDocument("Post", nil)
	ctx := context.Background()

	t.Run("slug index violation", func(t *testing.T) {
		t.Parallel()
		err := s.mapError(ctx, doc, &pgconn.PgError{Code: uniqueViolation, ConstraintName: slugIndexPrefix + "0a1b2c3d"})
		assert.ErrorIs(t, err, sluggable.ErrDuplicateSlug)
		assert.NotErrorIs(t, err, ErrDuplicateID)
	})

	t.Run("primary key violation", func(t *testing.T) {
		t.Parallel()
		err := s.mapError(ctx, doc, fmt.Errorf("insert: %w", &pgconn.PgError{Code: uniqueViolation, ConstraintName: Table + "_pkey"}))
		assert.ErrorIs(t, err, ErrDuplicateID)
		assert.NotErrorIs(t, err, sluggable.ErrDuplicateSlug)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		assert.Equal(t, boom, s.mapError(ctx, doc, boom))
	})
}
