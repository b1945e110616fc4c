package internal_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sluggable/internal"
	"github.com/dmitrymomot/sluggable/pkg/memstore"
)

// conflictStore reports a match for every query.
type conflictStore struct {
	internal.Store
	queries atomic.Int32
}

func (s *conflictStore) First(context.Context, internal.Filter) (*internal.Document, error) {
	s.queries.Add(1)
	return internal.LoadDocument("other", "Post", map[string]any{}, nil), nil
}

// failingStore fails every query with err.
type failingStore struct {
	internal.Store
	err error
}

func (s failingStore) First(context.Context, internal.Filter) (*internal.Document, error) {
	return nil, s.err
}

func (s failingStore) Find(context.Context, internal.Filter) ([]*internal.Document, error) {
	return nil, s.err
}

// racingStore lets a competing writer take the next slug right before the
// first n inserts, emulating two processes passing the collision scan together.
type racingStore struct {
	*memstore.Store
	slugField string
	races     atomic.Int32
}

func (s *racingStore) Insert(ctx context.Context, doc *internal.Document) error {
	if s.races.Add(-1) >= 0 {
		rival := internal.NewDocument(doc.Type, map[string]any{
			s.slugField: doc.String(s.slugField),
		})
		if err := s.Store.Insert(ctx, rival); err != nil {
			return err
		}
	}
	return s.Store.Insert(ctx, doc)
}

func articleRegistry(t *testing.T, opts ...internal.ConfigOption) *internal.Registry {
	t.Helper()
	reg := internal.NewRegistry()
	require.NoError(t, reg.Register(internal.TypeDef{
		Name:   "Article",
		Fields: []string{"title", "account_id"},
		Config: internal.NewConfig("title", opts...),
	}))
	return reg
}

func newArticle(title string) *internal.Document {
	return internal.NewDocument("Article", map[string]any{"title": title})
}

func save(t *testing.T, repo *internal.Repository, doc *internal.Document) *internal.Document {
	t.Helper()
	require.NoError(t, repo.Save(context.Background(), doc))
	return doc
}
