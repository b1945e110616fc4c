package internal

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
)

// Document is a record of some registered type.
// It remembers the field values it was loaded with so callers can ask what changed.
type Document struct {
	Fields     map[string]any
	persisted  map[string]any // nil until the document is stored
	ID         string
	Type       string
	PriorSlugs []string
}

// NewDocument creates an unsaved document.
func NewDocument(docType string, fields map[string]any) *Document {
	if fields == nil {
		fields = make(map[string]any)
	}
	return &Document{Type: docType, Fields: fields}
}

// LoadDocument builds a document read from storage. Change tracking starts from fields.
func LoadDocument(id, docType string, fields map[string]any, priorSlugs []string) *Document {
	d := NewDocument(docType, fields)
	d.ID = id
	d.PriorSlugs = priorSlugs
	d.MarkPersisted()
	return d
}

func (d *Document) Get(field string) any {
	return d.Fields[field]
}

// String returns the field formatted as text. Absent and nil fields are "".
func (d *Document) String(field string) string {
	switch v := d.Fields[field].(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func (d *Document) Set(field string, value any) {
	if d.Fields == nil {
		d.Fields = make(map[string]any)
	}
	d.Fields[field] = value
}

func (d *Document) Unset(field string) {
	delete(d.Fields, field)
}

// IsNew reports whether the document has never been stored.
func (d *Document) IsNew() bool {
	return d.persisted == nil
}

// Was returns the stored value of field, or nil for new documents.
func (d *Document) Was(field string) any {
	return d.persisted[field]
}

// Changed reports whether field differs from its stored value.
// For new documents any non-empty value counts as a change.
func (d *Document) Changed(field string) bool {
	return !ValuesEqual(d.persisted[field], d.Fields[field])
}

// MarkPersisted snapshots the current field values as the stored state.
func (d *Document) MarkPersisted() {
	d.persisted = maps.Clone(d.Fields)
	if d.persisted == nil {
		d.persisted = make(map[string]any)
	}
}

// Clone returns a copy that shares no maps or slices with d.
// Field values themselves are copied shallowly.
func (d *Document) Clone() *Document {
	c := &Document{
		ID:         d.ID,
		Type:       d.Type,
		Fields:     maps.Clone(d.Fields),
		PriorSlugs: slices.Clone(d.PriorSlugs),
		persisted:  maps.Clone(d.persisted),
	}
	if c.Fields == nil {
		c.Fields = make(map[string]any)
	}
	if d.persisted != nil && c.persisted == nil {
		c.persisted = make(map[string]any)
	}
	return c
}

// ValuesEqual compares field values the way stores do: nil equals "",
// and numbers compare by value regardless of their Go type.
func ValuesEqual(a, b any) bool {
	if isBlank(a) && isBlank(b) {
		return true
	}
	if fa, ok := toFloat(a); ok {
		fb, ok := toFloat(b)
		return ok && fa == fb
	}
	if sa, ok := a.(string); ok {
		sb, ok := b.(string)
		return ok && sa == sb
	}
	return reflect.DeepEqual(a, b)
}

func isBlank(v any) bool {
	switch v := v.(type) {
	case nil:
		return true
	case string:
		return v == ""
	}
	return false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
