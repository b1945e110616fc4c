package internal

import (
	"fmt"
	"strings"
)

const (
	DefaultSlugField   = "slug"
	DefaultMaxLength   = 256
	DefaultStartSuffix = 2
)

// Trigger selects the lifecycle events that assign a slug.
type Trigger int

const (
	// OnCreate assigns when a document is first stored.
	OnCreate Trigger = iota
	// OnCreateOrUpdate assigns on every save, regenerating from the source field.
	OnCreateOrUpdate
	// Manual never assigns on its own; the host calls Assign.
	Manual
)

var triggerNames = map[Trigger]string{
	OnCreate:         "on_create",
	OnCreateOrUpdate: "on_create_or_update",
	Manual:           "manual",
}

func (t Trigger) String() string {
	if s, ok := triggerNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Trigger(%d)", int(t))
}

// ParseTrigger parses the String form of a Trigger.
func ParseTrigger(s string) (Trigger, error) {
	for t, name := range triggerNames {
		if strings.EqualFold(s, name) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: trigger %q", ErrInvalidConfig, s)
}

// Stage is the point in a save at which assignment runs.
type Stage int

const (
	BeforeValidation Stage = iota
	BeforeSave
)

func (s Stage) String() string {
	switch s {
	case BeforeValidation:
		return "before_validation"
	case BeforeSave:
		return "before_save"
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// ParseStage parses the String form of a Stage.
func ParseStage(s string) (Stage, error) {
	switch strings.ToLower(s) {
	case "before_validation":
		return BeforeValidation, nil
	case "before_save":
		return BeforeSave, nil
	}
	return 0, fmt.Errorf("%w: stage %q", ErrInvalidConfig, s)
}

// Policy decides whether an existing slug may be regenerated.
type Policy int

const (
	// PolicyTrack regenerates when the trigger fires, unless the caller set the
	// slug explicitly, and keeps replaced slugs in the document history.
	PolicyTrack Policy = iota
	// PolicyAssignOnce fills an empty slug and never touches it again.
	PolicyAssignOnce
)

func (p Policy) String() string {
	switch p {
	case PolicyTrack:
		return "track"
	case PolicyAssignOnce:
		return "assign_once"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy parses the String form of a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(s) {
	case "track":
		return PolicyTrack, nil
	case "assign_once":
		return PolicyAssignOnce, nil
	}
	return 0, fmt.Errorf("%w: policy %q", ErrInvalidConfig, s)
}

// Config describes how a document type gets its slug.
type Config struct {
	// TransformFunc overrides Transform when set.
	TransformFunc TransformFunc

	SourceField string
	SlugField   string
	Transform   string
	// ScopeField partitions uniqueness. Empty means unique across the pool.
	ScopeField string

	MaxLength   int
	StartSuffix int
	Trigger     Trigger
	Stage       Stage
	Policy      Policy

	// StripHTML removes markup from the source value before transforming it.
	StripHTML bool
}

// ConfigOption configures a Config.
type ConfigOption func(*Config)

// NewConfig returns a Config that slugifies sourceField with the defaults:
// slug field "slug", parameterize, 256 runes, suffixes from 2, on create before validation.
func NewConfig(sourceField string, opts ...ConfigOption) *Config {
	c := &Config{
		SourceField: sourceField,
		SlugField:   DefaultSlugField,
		Transform:   TransformParameterize,
		MaxLength:   DefaultMaxLength,
		StartSuffix: DefaultStartSuffix,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func WithSlugField(field string) ConfigOption {
	return func(c *Config) {
		c.SlugField = field
	}
}

// WithTransform selects a named transform: parameterize, upcase, downcase or identity.
func WithTransform(name string) ConfigOption {
	return func(c *Config) {
		c.Transform = name
	}
}

func WithTransformFunc(fn TransformFunc) ConfigOption {
	return func(c *Config) {
		c.TransformFunc = fn
	}
}

func WithScope(field string) ConfigOption {
	return func(c *Config) {
		c.ScopeField = field
	}
}

func WithMaxLength(n int) ConfigOption {
	return func(c *Config) {
		c.MaxLength = n
	}
}

func WithStartSuffix(n int) ConfigOption {
	return func(c *Config) {
		c.StartSuffix = n
	}
}

func WithTrigger(t Trigger) ConfigOption {
	return func(c *Config) {
		c.Trigger = t
	}
}

func WithStage(s Stage) ConfigOption {
	return func(c *Config) {
		c.Stage = s
	}
}

func WithPolicy(p Policy) ConfigOption {
	return func(c *Config) {
		c.Policy = p
	}
}

func WithStripHTML() ConfigOption {
	return func(c *Config) {
		c.StripHTML = true
	}
}

// resolveTransform validates c and returns the transform function it uses.
func (c *Config) resolveTransform(typeName string) (TransformFunc, error) {
	invalid := func(field string, err error) error {
		return &ConfigError{Type: typeName, Field: field, Err: err}
	}

	switch {
	case c.SourceField == "":
		return nil, invalid("source", ErrInvalidConfig)
	case c.SlugField == "":
		return nil, invalid("slug", ErrInvalidConfig)
	case c.SlugField == c.SourceField:
		return nil, invalid(c.SlugField, ErrInvalidConfig)
	case c.MaxLength <= 0:
		return nil, invalid("max_length", ErrInvalidConfig)
	case c.StartSuffix < 0:
		return nil, invalid("start_suffix", ErrInvalidConfig)
	case c.Trigger < OnCreate || c.Trigger > Manual:
		return nil, invalid("trigger", ErrInvalidConfig)
	case c.Stage < BeforeValidation || c.Stage > BeforeSave:
		return nil, invalid("stage", ErrInvalidConfig)
	case c.Policy < PolicyTrack || c.Policy > PolicyAssignOnce:
		return nil, invalid("policy", ErrInvalidConfig)
	}

	if c.TransformFunc != nil {
		return c.TransformFunc, nil
	}
	fn, ok := LookupTransform(c.Transform)
	if !ok {
		return nil, invalid("transform", fmt.Errorf("%w: %q", ErrUnknownTransform, c.Transform))
	}
	return fn, nil
}
