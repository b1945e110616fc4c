package internal

import (
	"strings"

	"github.com/dmitrymomot/sluggable/pkg/slug"
)

// TransformFunc turns a source value into a slug candidate. It must be pure.
type TransformFunc func(string) string

const (
	TransformParameterize = "parameterize"
	TransformUpcase       = "upcase"
	TransformDowncase     = "downcase"
	TransformIdentity     = "identity"
)

var transforms = map[string]TransformFunc{
	TransformParameterize: Parameterize,
	TransformUpcase:       strings.ToUpper,
	TransformDowncase:     strings.ToLower,
	TransformIdentity:     func(s string) string { return s },
}

// LookupTransform returns the named transform.
func LookupTransform(name string) (TransformFunc, bool) {
	fn, ok := transforms[name]
	return fn, ok
}

// TransformNames lists the named transforms.
func TransformNames() []string {
	return []string{TransformParameterize, TransformUpcase, TransformDowncase, TransformIdentity}
}

// Parameterize lower-cases s, folds diacritics and joins words with hyphens.
func Parameterize(s string) string {
	return slug.Make(s)
}

// Transform applies fn to raw and cuts the result to maxLength runes.
// Blank input yields "", which callers treat as "nothing to assign".
// A nil fn means Parameterize.
func Transform(raw string, fn TransformFunc, maxLength int) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	if fn == nil {
		fn = Parameterize
	}
	return slug.Truncate(fn(raw), maxLength)
}
