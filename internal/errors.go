package internal

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDocument is returned by a Store when nothing matches a query.
	ErrNoDocument = errors.New("sluggable: no document")

	// ErrDuplicateSlug is returned by a Store when a write violates slug uniqueness.
	ErrDuplicateSlug = errors.New("sluggable: duplicate slug")

	// ErrNotFound is matched by *NotFoundError.
	ErrNotFound = errors.New("sluggable: document not found")

	ErrUnknownType   = errors.New("sluggable: unknown document type")
	ErrNotSluggable  = errors.New("sluggable: document type is not sluggable")
	ErrTypeExists    = errors.New("sluggable: document type already registered")
	ErrUnknownParent = errors.New("sluggable: unknown parent type")

	ErrInvalidConfig      = errors.New("sluggable: invalid configuration")
	ErrUnknownField       = errors.New("sluggable: unknown field")
	ErrUnknownTransform   = errors.New("sluggable: unknown transform")
	ErrCollisionExhausted = errors.New("sluggable: collision attempts exhausted")
)

// NotFoundError reports a lookup that matched no document.
type NotFoundError struct {
	Type  string
	Value string
	// ByID is set when the lookup also tried the value as a primary key.
	ByID bool
}

func (e *NotFoundError) Error() string {
	if e.ByID {
		return fmt.Sprintf("Couldn't find %s with slug or id: %s", e.Type, e.Value)
	}
	return fmt.Sprintf("Couldn't find %s with slug: %s", e.Type, e.Value)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ConfigError reports a misconfigured document type.
type ConfigError struct {
	Err   error
	Type  string
	Field string
}

func (e *ConfigError) Error() string {
	switch {
	case e.Field != "":
		return fmt.Sprintf("%s (type %s, field %s)", e.Err, e.Type, e.Field)
	case e.Type != "":
		return fmt.Sprintf("%s (type %s)", e.Err, e.Type)
	default:
		return e.Err.Error()
	}
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
