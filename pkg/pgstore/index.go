package pgstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/sluggable"
)

// slugIndexPrefix starts the name of every index created by EnsureSlugIndex.
const slugIndexPrefix = "sluggable_slug_"

// Execer is the subset of DB needed for DDL.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// EnsureSlugIndex creates the unique index that backs slug uniqueness for the
// pool of typeName. It returns the index name. Creating an existing index is a no-op.
func EnsureSlugIndex(ctx context.Context, db Execer, registry *sluggable.Registry, typeName string) (string, error) {
	cfg, err := registry.Config(typeName)
	if err != nil {
		return "", err
	}
	pool, err := registry.Pool(typeName)
	if err != nil {
		return "", err
	}

	name, sql, err := slugIndexSQL(pool, cfg.SlugField, cfg.ScopeField)
	if err != nil {
		return "", err
	}
	if _, err := db.Exec(ctx, sql); err != nil {
		return "", fmt.Errorf("pgstore: create index %s: %w", name, err)
	}
	return name, nil
}

func slugIndexSQL(pool []string, slugField, scopeField string) (string, string, error) {
	if len(pool) == 0 {
		return "", "", fmt.Errorf("%w: empty type pool", ErrInvalidIdentifier)
	}
	for _, s := range append([]string{slugField, scopeField}, pool...) {
		if strings.ContainsRune(s, 0) {
			return "", "", fmt.Errorf("%w: %q", ErrInvalidIdentifier, s)
		}
	}
	if slugField == "" {
		return "", "", errors.Join(ErrInvalidIdentifier, sluggable.ErrInvalidConfig)
	}

	key := strings.Join(pool, ",") + "|" + scopeField + "|" + slugField
	name := slugIndexPrefix + uuid.NewSHA1(uuid.NameSpaceOID, []byte(key)).String()[:8]

	slugExpr := "fields->>" + quoteLiteral(slugField)
	columns := "(" + slugExpr + ")"
	if scopeField != "" {
		columns = "(COALESCE(fields->>" + quoteLiteral(scopeField) + ", '')), " + columns
	}

	types := make([]string, len(pool))
	for i, t := range pool {
		types[i] = quoteLiteral(t)
	}

	sql := fmt.Sprintf(
		"CREATE UNIQUE INDEX IF NOT EXISTS %s ON %s (%s) WHERE doc_type IN (%s) AND COALESCE(%s, '') <> ''",
		pgx.Identifier{name}.Sanitize(), Table, columns, strings.Join(types, ", "), slugExpr,
	)
	return name, sql, nil
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
