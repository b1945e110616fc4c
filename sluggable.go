package sluggable

import (
	"io"

	"github.com/dmitrymomot/sluggable/internal"
)

// Type aliases - public API
type (
	// Document is a stored record with change tracking and a slug history.
	Document = internal.Document

	// Config describes how a document type gets its slug.
	Config = internal.Config

	// ConfigOption configures a Config.
	ConfigOption = internal.ConfigOption

	// TypeDef registers a document type, optionally sluggable.
	TypeDef = internal.TypeDef

	// Registry holds document types and resolves their uniqueness pools.
	Registry = internal.Registry

	// Trigger selects the lifecycle events that assign a slug.
	Trigger = internal.Trigger

	// Stage is the point in a save at which assignment runs.
	Stage = internal.Stage

	// Policy decides whether an existing slug may be regenerated.
	Policy = internal.Policy

	// TransformFunc turns a source value into a slug candidate.
	TransformFunc = internal.TransformFunc

	// Filter selects documents in a Store.
	Filter = internal.Filter

	// Store is the persistence contract the slug machinery runs on.
	Store = internal.Store

	// ScopeKey partitions slug uniqueness.
	ScopeKey = internal.ScopeKey

	// CollisionResolver finds the first free variant of a candidate slug.
	CollisionResolver = internal.CollisionResolver

	// Assigner writes generated slugs into documents.
	Assigner = internal.Assigner

	// AssignerOption configures an Assigner.
	AssignerOption = internal.AssignerOption

	// Resolver finds documents by slug or id.
	Resolver = internal.Resolver

	// ResolverOption configures a Resolver.
	ResolverOption = internal.ResolverOption

	// Outcome classifies a lookup.
	Outcome = internal.Outcome

	// Result is the outcome of a lookup.
	Result = internal.Result

	// Repository saves and finds documents with slug handling wired in.
	Repository = internal.Repository

	// RepositoryOption configures a Repository.
	RepositoryOption = internal.RepositoryOption

	// NotFoundError reports a lookup that matched nothing.
	NotFoundError = internal.NotFoundError

	// ConfigError reports a misconfigured document type.
	ConfigError = internal.ConfigError
)

// Triggers
const (
	OnCreate         = internal.OnCreate
	OnCreateOrUpdate = internal.OnCreateOrUpdate
	Manual           = internal.Manual
)

// Stages
const (
	BeforeValidation = internal.BeforeValidation
	BeforeSave       = internal.BeforeSave
)

// Policies
const (
	PolicyTrack      = internal.PolicyTrack
	PolicyAssignOnce = internal.PolicyAssignOnce
)

// Lookup outcomes
const (
	NotFound = internal.NotFound
	Found    = internal.Found
	Redirect = internal.Redirect
)

// Named transforms
const (
	TransformParameterize = internal.TransformParameterize
	TransformUpcase       = internal.TransformUpcase
	TransformDowncase     = internal.TransformDowncase
	TransformIdentity     = internal.TransformIdentity
)

// Defaults
const (
	DefaultSlugField    = internal.DefaultSlugField
	DefaultMaxLength    = internal.DefaultMaxLength
	DefaultStartSuffix  = internal.DefaultStartSuffix
	DefaultMaxAttempts  = internal.DefaultMaxAttempts
	DefaultSaveAttempts = internal.DefaultSaveAttempts
)

// Constructors

// NewDocument creates an unsaved document.
func NewDocument(docType string, fields map[string]any) *Document {
	return internal.NewDocument(docType, fields)
}

// LoadDocument builds a document read from storage. Stores use it so change
// tracking starts from the stored values.
func LoadDocument(id, docType string, fields map[string]any, priorSlugs []string) *Document {
	return internal.LoadDocument(id, docType, fields, priorSlugs)
}

// NewConfig returns a Config slugifying sourceField.
//
// Example:
//
//	cfg := sluggable.NewConfig("title",
//	    sluggable.WithScope("account_id"),
//	    sluggable.WithTrigger(sluggable.OnCreateOrUpdate),
//	)
func NewConfig(sourceField string, opts ...ConfigOption) *Config {
	return internal.NewConfig(sourceField, opts...)
}

// NewRegistry creates an empty type registry.
//
// Example:
//
//	reg := sluggable.NewRegistry().MustRegister(
//	    sluggable.TypeDef{Name: "Animal", Config: sluggable.NewConfig("name")},
//	    sluggable.TypeDef{Name: "Dog", Parent: "Animal"},
//	)
func NewRegistry() *Registry {
	return internal.NewRegistry()
}

// LoadRegistry reads type definitions from YAML.
func LoadRegistry(r io.Reader) (*Registry, error) {
	return internal.LoadRegistry(r)
}

// LoadRegistryFile reads type definitions from a YAML file.
func LoadRegistryFile(path string) (*Registry, error) {
	return internal.LoadRegistryFile(path)
}

// NewAssigner creates an Assigner over store.
func NewAssigner(registry *Registry, store Store, opts ...AssignerOption) *Assigner {
	return internal.NewAssigner(registry, store, opts...)
}

// NewResolver creates a Resolver over store.
func NewResolver(registry *Registry, store Store, opts ...ResolverOption) *Resolver {
	return internal.NewResolver(registry, store, opts...)
}

// NewRepository creates a Repository over store.
//
// Example:
//
//	repo := sluggable.NewRepository(reg, memstore.New(),
//	    sluggable.WithLogger(log),
//	    sluggable.WithResolverOptions(sluggable.WithCache(slugcache.NewMemory(), 0)),
//	)
//	err := repo.Save(ctx, sluggable.NewDocument("Post", map[string]any{"title": "Hello"}))
func NewRepository(registry *Registry, store Store, opts ...RepositoryOption) *Repository {
	return internal.NewRepository(registry, store, opts...)
}

// Pure helpers

// Transform applies fn to raw and cuts the result to maxLength runes.
// Blank input yields "".
func Transform(raw string, fn TransformFunc, maxLength int) string {
	return internal.Transform(raw, fn, maxLength)
}

// Parameterize lower-cases s, folds diacritics and joins words with hyphens.
func Parameterize(s string) string {
	return internal.Parameterize(s)
}

// LookupTransform returns a named transform.
func LookupTransform(name string) (TransformFunc, bool) {
	return internal.LookupTransform(name)
}

// TransformNames lists the names accepted by WithTransform.
func TransformNames() []string {
	return internal.TransformNames()
}

// UpdateHistory returns the slug history after a slug changes from previous to next.
func UpdateHistory(previous, next string, history []string) []string {
	return internal.UpdateHistory(previous, next, history)
}

// ValuesEqual compares field values the way stores do.
func ValuesEqual(a, b any) bool {
	return internal.ValuesEqual(a, b)
}

// ParseTrigger parses "on_create", "on_create_or_update" or "manual".
func ParseTrigger(s string) (Trigger, error) {
	return internal.ParseTrigger(s)
}

// ParseStage parses "before_validation" or "before_save".
func ParseStage(s string) (Stage, error) {
	return internal.ParseStage(s)
}

// ParsePolicy parses "track" or "assign_once".
func ParsePolicy(s string) (Policy, error) {
	return internal.ParsePolicy(s)
}
