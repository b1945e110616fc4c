package internal

import "context"

// Filter selects documents. All set conditions must hold.
type Filter struct {
	// Equal matches field values. A nil value matches absent or null fields.
	Equal map[string]any
	// Fold matches string fields case-insensitively against the whole value.
	Fold map[string]string
	// PriorSlug matches documents whose slug history contains the value.
	PriorSlug string
	// ExcludeID skips the document with this id.
	ExcludeID string
	// Types restricts the match to these document types. Empty means any type.
	Types []string
}

// Store persists documents. Implementations must return ErrNoDocument from
// First and FindByID when nothing matches, and ErrDuplicateSlug from writes
// that break a slug uniqueness constraint.
type Store interface {
	First(ctx context.Context, f Filter) (*Document, error)
	Find(ctx context.Context, f Filter) ([]*Document, error)
	// FindByID treats ids the store cannot parse as not found.
	FindByID(ctx context.Context, types []string, id string) (*Document, error)
	// Insert stores a new document, assigning its ID when empty.
	Insert(ctx context.Context, doc *Document) error
	Update(ctx context.Context, doc *Document) error
}
