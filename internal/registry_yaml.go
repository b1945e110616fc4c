package internal

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// registryFile is the YAML layout read by LoadRegistry:
//
//	types:
//	  - name: Post
//	    fields: [title, account_id]
//	    sluggable:
//	      source: title
//	      scope: account_id
//	      trigger: on_create_or_update
//	  - name: Article
//	    parent: Post
type registryFile struct {
	Types []typeFile `yaml:"types"`
}

type typeFile struct {
	Sluggable *configFile `yaml:"sluggable"`
	Name      string      `yaml:"name"`
	Parent    string      `yaml:"parent"`
	Fields    []string    `yaml:"fields"`
}

type configFile struct {
	MaxLength   *int   `yaml:"max_length"`
	StartSuffix *int   `yaml:"start_suffix"`
	Source      string `yaml:"source"`
	SlugField   string `yaml:"slug_field"`
	Transform   string `yaml:"transform"`
	Scope       string `yaml:"scope"`
	Trigger     string `yaml:"trigger"`
	Stage       string `yaml:"stage"`
	Policy      string `yaml:"policy"`
	StripHTML   bool   `yaml:"strip_html"`
}

func (c *configFile) options() ([]ConfigOption, error) {
	var opts []ConfigOption
	if c.SlugField != "" {
		opts = append(opts, WithSlugField(c.SlugField))
	}
	if c.Transform != "" {
		opts = append(opts, WithTransform(c.Transform))
	}
	if c.Scope != "" {
		opts = append(opts, WithScope(c.Scope))
	}
	if c.MaxLength != nil {
		opts = append(opts, WithMaxLength(*c.MaxLength))
	}
	if c.StartSuffix != nil {
		opts = append(opts, WithStartSuffix(*c.StartSuffix))
	}
	if c.Trigger != "" {
		t, err := ParseTrigger(c.Trigger)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithTrigger(t))
	}
	if c.Stage != "" {
		s, err := ParseStage(c.Stage)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithStage(s))
	}
	if c.Policy != "" {
		p, err := ParsePolicy(c.Policy)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithPolicy(p))
	}
	if c.StripHTML {
		opts = append(opts, WithStripHTML())
	}
	return opts, nil
}

// LoadRegistry reads type definitions from YAML. Unknown keys are rejected.
func LoadRegistry(r io.Reader) (*Registry, error) {
	var file registryFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	reg := NewRegistry()
	for _, t := range file.Types {
		def := TypeDef{Name: t.Name, Parent: t.Parent, Fields: t.Fields}
		if t.Sluggable != nil {
			opts, err := t.Sluggable.options()
			if err != nil {
				return nil, &ConfigError{Type: t.Name, Err: err}
			}
			def.Config = NewConfig(t.Sluggable.Source, opts...)
		}
		if err := reg.Register(def); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// LoadRegistryFile reads type definitions from a YAML file.
func LoadRegistryFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sluggable: open registry: %w", err)
	}
	defer f.Close()
	return LoadRegistry(f)
}
