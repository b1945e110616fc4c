package pgstore

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrymomot/sluggable"
)

// where accumulates SQL predicates and their positional arguments.
type where struct {
	clauses []string
	args    []any
}

func (w *where) arg(v any) string {
	w.args = append(w.args, v)
	return "$" + strconv.Itoa(len(w.args))
}

func (w *where) add(clause string) {
	w.clauses = append(w.clauses, clause)
}

func (w *where) String() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

// buildWhere translates f into a predicate over the documents table.
// Map keys are visited in sorted order so equal filters yield equal SQL.
func buildWhere(f sluggable.Filter) *where {
	w := &where{}

	if len(f.Types) > 0 {
		w.add("doc_type = ANY(" + w.arg(f.Types) + ")")
	}
	for _, field := range slices.Sorted(maps.Keys(f.Equal)) {
		value := f.Equal[field]
		if isBlank(value) {
			w.add("COALESCE(fields->>" + w.arg(field) + ", '') = ''")
			continue
		}
		w.add("fields @> " + w.arg(map[string]any{field: value}) + "::jsonb")
	}
	for _, field := range slices.Sorted(maps.Keys(f.Fold)) {
		w.add("lower(fields->>" + w.arg(field) + ") = lower(" + w.arg(f.Fold[field]) + ")")
	}
	if f.PriorSlug != "" {
		w.add(w.arg(f.PriorSlug) + " = ANY(prior_slugs)")
	}
	if f.ExcludeID != "" {
		w.add("id::text <> " + w.arg(f.ExcludeID))
	}
	return w
}

func isBlank(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}
