package pgstore

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/sluggable"
	"github.com/dmitrymomot/sluggable/pkg/logger"
)

// Table is the documents table created by Migrate.
const Table = "sluggable_documents"

const (
	uniqueViolation = "23505"
	primaryKey      = Table + "_pkey"
)

const selectColumns = "SELECT id::text, doc_type, fields, prior_slugs FROM " + Table

// DB is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store logger. Default: discard.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// Store keeps documents in a single JSONB table.
type Store struct {
	db     DB
	logger *slog.Logger
}

func New(db DB, opts ...Option) *Store {
	s := &Store{db: db, logger: logger.NewNope()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithTx runs fn with a Store bound to a transaction.
// The transaction is rolled back when fn returns an error or panics.
func (s *Store) WithTx(ctx context.Context, fn func(*Store) error) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(&Store{db: tx, logger: s.logger}); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

// First returns the oldest document matching f.
func (s *Store) First(ctx context.Context, f sluggable.Filter) (*sluggable.Document, error) {
	w := buildWhere(f)
	row := s.db.QueryRow(ctx, selectColumns+w.String()+" ORDER BY created_at, id LIMIT 1", w.args...)
	doc, err := scanDocument(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, sluggable.ErrNoDocument
	}
	return doc, err
}

// Find returns every document matching f, oldest first.
func (s *Store) Find(ctx context.Context, f sluggable.Filter) ([]*sluggable.Document, error) {
	w := buildWhere(f)
	rows, err := s.db.Query(ctx, selectColumns+w.String()+" ORDER BY created_at, id", w.args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*sluggable.Document, error) {
		return scanDocument(row)
	})
}

// FindByID returns the document with id when its type is one of types.
// Ids that are not UUIDs never match.
func (s *Store) FindByID(ctx context.Context, types []string, id string) (*sluggable.Document, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, sluggable.ErrNoDocument
	}

	sql := selectColumns + " WHERE id = $1"
	args := []any{uid}
	if len(types) > 0 {
		sql += " AND doc_type = ANY($2)"
		args = append(args, types)
	}

	doc, err := scanDocument(s.db.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, sluggable.ErrNoDocument
	}
	return doc, err
}

// Insert writes doc, generating a UUID when doc has no id.
// An id that is already taken is reported as ErrDuplicateID and any other
// unique index violation as ErrDuplicateSlug.
func (s *Store) Insert(ctx context.Context, doc *sluggable.Document) error {
	id := doc.ID
	if id == "" {
		id = uuid.NewString()
	}
	uid, err := uuid.Parse(id)
	if err != nil {
		return errors.Join(ErrInvalidID, err)
	}

	_, err = s.db.Exec(ctx,
		"INSERT INTO "+Table+" (id, doc_type, fields, prior_slugs) VALUES ($1, $2, $3, $4)",
		uid, doc.Type, fieldsOf(doc), priorSlugsOf(doc),
	)
	if err != nil {
		return s.mapError(ctx, doc, err)
	}
	doc.ID = id
	return nil
}

func (s *Store) Update(ctx context.Context, doc *sluggable.Document) error {
	uid, err := uuid.Parse(doc.ID)
	if err != nil {
		return sluggable.ErrNoDocument
	}

	tag, err := s.db.Exec(ctx,
		"UPDATE "+Table+" SET fields = $2, prior_slugs = $3, updated_at = now() WHERE id = $1 AND doc_type = $4",
		uid, fieldsOf(doc), priorSlugsOf(doc), doc.Type,
	)
	if err != nil {
		return s.mapError(ctx, doc, err)
	}
	if tag.RowsAffected() == 0 {
		return sluggable.ErrNoDocument
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return sluggable.ErrNoDocument
	}
	tag, err := s.db.Exec(ctx, "DELETE FROM "+Table+" WHERE id = $1", uid)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return sluggable.ErrNoDocument
	}
	return nil
}

func (s *Store) mapError(ctx context.Context, doc *sluggable.Document, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		s.logger.DebugContext(ctx, "unique violation",
			slog.String("type", doc.Type),
			slog.String("constraint", pgErr.ConstraintName),
		)
		if pgErr.ConstraintName == primaryKey {
			return errors.Join(ErrDuplicateID, err)
		}
		return errors.Join(sluggable.ErrDuplicateSlug, err)
	}
	return err
}

func scanDocument(row pgx.Row) (*sluggable.Document, error) {
	var (
		id, docType string
		fields      map[string]any
		prior       []string
	)
	if err := row.Scan(&id, &docType, &fields, &prior); err != nil {
		return nil, err
	}
	return sluggable.LoadDocument(id, docType, fields, prior), nil
}

func fieldsOf(doc *sluggable.Document) map[string]any {
	if doc.Fields == nil {
		return map[string]any{}
	}
	return doc.Fields
}

func priorSlugsOf(doc *sluggable.Document) []string {
	if doc.PriorSlugs == nil {
		return []string{}
	}
	return doc.PriorSlugs
}

var _ sluggable.Store = (*Store)(nil)
