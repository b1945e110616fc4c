package sluggable

import "github.com/dmitrymomot/sluggable/internal"

var (
	ErrNoDocument    = internal.ErrNoDocument
	ErrDuplicateSlug = internal.ErrDuplicateSlug
	ErrNotFound      = internal.ErrNotFound

	ErrUnknownType   = internal.ErrUnknownType
	ErrNotSluggable  = internal.ErrNotSluggable
	ErrTypeExists    = internal.ErrTypeExists
	ErrUnknownParent = internal.ErrUnknownParent

	ErrInvalidConfig      = internal.ErrInvalidConfig
	ErrUnknownField       = internal.ErrUnknownField
	ErrUnknownTransform   = internal.ErrUnknownTransform
	ErrCollisionExhausted = internal.ErrCollisionExhausted
)
