package internal

import (
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrymomot/sluggable/pkg/sanitizer"
)

// TypeDef registers a document type.
type TypeDef struct {
	// Config makes the type sluggable. Subtypes of a sluggable type inherit
	// the configuration of the topmost sluggable ancestor.
	Config *Config
	Name   string
	// Parent is the base type sharing storage with this one.
	Parent string
	// Fields optionally declares the type's fields. When set, the source and
	// scope fields of Config must be among them.
	Fields []string
}

type typeEntry struct {
	def       TypeDef
	transform TransformFunc
	// owner is the topmost sluggable type along the sluggable parent chain.
	owner   string
	subtree []string
}

func (e *typeEntry) sluggable() bool {
	return e.owner != ""
}

// binding is the resolved view of a sluggable type used by one operation.
type binding struct {
	config    Config
	transform TransformFunc
	typeName  string
	owner     string
	pool      []string
	subtree   []string
}

// candidate reads the source field of doc and transforms it.
func (b *binding) candidate(doc *Document) string {
	raw := doc.String(b.config.SourceField)
	if b.config.StripHTML {
		raw = sanitizer.StripHTML(raw)
	}
	return Transform(raw, b.transform, b.config.MaxLength)
}

func (b *binding) scopeKey(doc *Document) ScopeKey {
	key := ScopeKey{Owner: b.owner, Pool: b.pool, ScopeField: b.config.ScopeField}
	if key.ScopeField != "" {
		key.ScopeValue = doc.Get(key.ScopeField)
	}
	return key
}

// Registry holds document types and their effective slug configuration.
// Ownership of a uniqueness pool is fixed when a type is registered, so
// parents must be registered before their subtypes.
type Registry struct {
	types map[string]*typeEntry
	order []string
	mu    sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{types: make(map[string]*typeEntry)}
}

// Register adds a document type.
func (r *Registry) Register(def TypeDef) error {
	if def.Name == "" {
		return &ConfigError{Field: "name", Err: ErrInvalidConfig}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.types[def.Name]; ok {
		return fmt.Errorf("%w: %s", ErrTypeExists, def.Name)
	}

	var parent *typeEntry
	if def.Parent != "" {
		var ok bool
		if parent, ok = r.types[def.Parent]; !ok {
			return fmt.Errorf("%w: %s (parent of %s)", ErrUnknownParent, def.Parent, def.Name)
		}
	}

	entry := &typeEntry{def: def, subtree: []string{def.Name}}
	if def.Config != nil {
		cfg := *def.Config
		fn, err := cfg.resolveTransform(def.Name)
		if err != nil {
			return err
		}
		if err := checkFields(def.Name, def.Fields, cfg.SourceField, cfg.ScopeField); err != nil {
			return err
		}
		entry.def.Config = &cfg
		entry.transform = fn
	}

	switch {
	case parent != nil && parent.sluggable():
		entry.owner = parent.owner
	case entry.def.Config != nil:
		entry.owner = def.Name
	}

	for p := parent; p != nil; p = r.types[p.def.Parent] {
		p.subtree = append(p.subtree, def.Name)
	}

	r.types[def.Name] = entry
	r.order = append(r.order, def.Name)
	return nil
}

// MustRegister registers defs in order and panics on the first error.
func (r *Registry) MustRegister(defs ...TypeDef) *Registry {
	for _, def := range defs {
		if err := r.Register(def); err != nil {
			panic(err)
		}
	}
	return r
}

func checkFields(typeName string, fields []string, names ...string) error {
	if len(fields) == 0 {
		return nil
	}
	for _, name := range names {
		if name != "" && !slices.Contains(fields, name) {
			return &ConfigError{Type: typeName, Field: name, Err: ErrUnknownField}
		}
	}
	return nil
}

// Types returns registered type names in registration order.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}

// Def returns the definition a type was registered with.
func (r *Registry) Def(name string) (TypeDef, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.types[name]
	if !ok {
		return TypeDef{}, false
	}
	return e.def, true
}

// Config returns the effective configuration of a type.
func (r *Registry) Config(name string) (Config, error) {
	b, err := r.binding(name)
	if err != nil {
		return Config{}, err
	}
	return b.config, nil
}

// Owner returns the type whose configuration and uniqueness pool name uses.
func (r *Registry) Owner(name string) (string, error) {
	b, err := r.binding(name)
	if err != nil {
		return "", err
	}
	return b.owner, nil
}

// Pool returns the types sharing a slug namespace with name.
func (r *Registry) Pool(name string) ([]string, error) {
	b, err := r.binding(name)
	if err != nil {
		return nil, err
	}
	return b.pool, nil
}

// Subtree returns name and all of its registered descendants.
func (r *Registry) Subtree(name string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.types[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, name)
	}
	return slices.Clone(e.subtree), nil
}

// SlugField returns the slug field of a type, or DefaultSlugField when the type is not sluggable.
func (r *Registry) SlugField(name string) string {
	if b, err := r.binding(name); err == nil {
		return b.config.SlugField
	}
	return DefaultSlugField
}

// RoutableID returns the live slug of doc, or its id when the slug is empty.
func (r *Registry) RoutableID(doc *Document) string {
	if s := doc.String(r.SlugField(doc.Type)); s != "" {
		return s
	}
	return doc.ID
}

func (r *Registry) binding(name string) (*binding, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.types[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, name)
	}
	if !e.sluggable() {
		return nil, fmt.Errorf("%w: %s", ErrNotSluggable, name)
	}
	owner := r.types[e.owner]
	return &binding{
		config:    *owner.def.Config,
		transform: owner.transform,
		typeName:  name,
		owner:     e.owner,
		pool:      slices.Clone(owner.subtree),
		subtree:   slices.Clone(e.subtree),
	}, nil
}
