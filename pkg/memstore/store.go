package memstore

import (
	"context"
	"errors"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/sluggable"
)

// ErrDuplicateID is returned by Insert when a document with the same id exists.
var ErrDuplicateID = errors.New("memstore: duplicate id")

// Option configures a Store.
type Option func(*Store)

// WithUniqueSlugs rejects writes that duplicate a slug within a pool and scope,
// as resolved by registry.
func WithUniqueSlugs(registry *sluggable.Registry) Option {
	return func(s *Store) {
		s.registry = registry
	}
}

// WithIDGenerator replaces the UUIDv4 generator used for new documents.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		s.newID = fn
	}
}

// Store is a goroutine-safe in-memory document store.
type Store struct {
	registry *sluggable.Registry
	newID    func() string
	docs     map[string]*sluggable.Document
	order    []string
	mu       sync.RWMutex
}

func New(opts ...Option) *Store {
	s := &Store{
		docs:  make(map[string]*sluggable.Document),
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// First returns the earliest inserted document matching f.
func (s *Store) First(_ context.Context, f sluggable.Filter) (*sluggable.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.order {
		if d := s.docs[id]; matches(d, f) {
			return load(d), nil
		}
	}
	return nil, sluggable.ErrNoDocument
}

// Find returns every document matching f in insertion order.
func (s *Store) Find(_ context.Context, f sluggable.Filter) ([]*sluggable.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*sluggable.Document
	for _, id := range s.order {
		if d := s.docs[id]; matches(d, f) {
			out = append(out, load(d))
		}
	}
	return out, nil
}

func (s *Store) FindByID(_ context.Context, types []string, id string) (*sluggable.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.docs[id]
	if !ok || !matchesType(d, types) {
		return nil, sluggable.ErrNoDocument
	}
	return load(d), nil
}

// Insert stores a copy of doc, assigning an id when doc has none.
func (s *Store) Insert(_ context.Context, doc *sluggable.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := doc.ID
	if id == "" {
		id = s.newID()
	}
	if _, ok := s.docs[id]; ok {
		return ErrDuplicateID
	}

	stored := snapshot(doc)
	stored.ID = id
	if err := s.checkUnique(stored); err != nil {
		return err
	}

	doc.ID = id
	s.docs[id] = stored
	s.order = append(s.order, id)
	return nil
}

// Update replaces the stored copy of doc.
func (s *Store) Update(_ context.Context, doc *sluggable.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[doc.ID]; !ok {
		return sluggable.ErrNoDocument
	}

	stored := snapshot(doc)
	if err := s.checkUnique(stored); err != nil {
		return err
	}
	s.docs[doc.ID] = stored
	return nil
}

// Delete removes the document with id. Deleting a missing id is not an error.
func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[id]; !ok {
		return nil
	}
	delete(s.docs, id)
	s.order = slices.DeleteFunc(s.order, func(v string) bool { return v == id })
	return nil
}

// Len reports the number of stored documents.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// checkUnique must be called with the write lock held.
func (s *Store) checkUnique(doc *sluggable.Document) error {
	if s.registry == nil {
		return nil
	}
	cfg, err := s.registry.Config(doc.Type)
	if err != nil {
		return nil
	}
	slug := doc.String(cfg.SlugField)
	if slug == "" {
		return nil
	}
	pool, err := s.registry.Pool(doc.Type)
	if err != nil {
		return nil
	}

	f := sluggable.Filter{
		Types:     pool,
		Equal:     map[string]any{cfg.SlugField: slug},
		ExcludeID: doc.ID,
	}
	if cfg.ScopeField != "" {
		f.Equal[cfg.ScopeField] = doc.Get(cfg.ScopeField)
	}
	for _, id := range s.order {
		if matches(s.docs[id], f) {
			return sluggable.ErrDuplicateSlug
		}
	}
	return nil
}

func matches(d *sluggable.Document, f sluggable.Filter) bool {
	if !matchesType(d, f.Types) {
		return false
	}
	if f.ExcludeID != "" && d.ID == f.ExcludeID {
		return false
	}
	for field, want := range f.Equal {
		if !sluggable.ValuesEqual(d.Get(field), want) {
			return false
		}
	}
	for field, want := range f.Fold {
		got, ok := d.Get(field).(string)
		// Same folding as SQL lower(), so both stores agree.
		if !ok || strings.ToLower(got) != strings.ToLower(want) {
			return false
		}
	}
	if f.PriorSlug != "" && !slices.Contains(d.PriorSlugs, f.PriorSlug) {
		return false
	}
	return true
}

func matchesType(d *sluggable.Document, types []string) bool {
	return len(types) == 0 || slices.Contains(types, d.Type)
}

// snapshot copies the stored parts of doc.
func snapshot(doc *sluggable.Document) *sluggable.Document {
	return &sluggable.Document{
		ID:         doc.ID,
		Type:       doc.Type,
		Fields:     maps.Clone(doc.Fields),
		PriorSlugs: slices.Clone(doc.PriorSlugs),
	}
}

func load(d *sluggable.Document) *sluggable.Document {
	return sluggable.LoadDocument(d.ID, d.Type, maps.Clone(d.Fields), slices.Clone(d.PriorSlugs))
}

var _ sluggable.Store = (*Store)(nil)
