package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/sluggable"
)

// savedDocument is the output of save and resolve.
type savedDocument struct {
	Fields     map[string]any `json:"fields"`
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Slug       string         `json:"slug"`
	PriorSlugs []string       `json:"prior_slugs"`
}

func newSavedDocument(rt *runtime, doc *sluggable.Document) savedDocument {
	prior := doc.PriorSlugs
	if prior == nil {
		prior = []string{}
	}
	return savedDocument{
		ID:         doc.ID,
		Type:       doc.Type,
		Slug:       doc.String(rt.registry.SlugField(doc.Type)),
		Fields:     doc.Fields,
		PriorSlugs: prior,
	}
}

func (d savedDocument) String() string {
	return fmt.Sprintf("%s %s slug=%q prior_slugs=%q", d.Type, d.ID, d.Slug, d.PriorSlugs)
}

// NewSaveCommand creates or updates a document through the repository.
func NewSaveCommand(rootOpts *RootOptions) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "save <type> <field=value>...",
		Short: "Create or update a document, assigning its slug",
		Long: `Create a document of <type>, or update the one with --id, and save it.

Values are YAML scalars: 1 is a number, true a boolean, "1" a string.
An empty value (field=) removes the field.`,
		Example: `  sluggable save Article title="Hello World" account_id=1
  sluggable save Article --id 0b8f... slug=hello`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			log := newLogger(rootOpts, cmd.ErrOrStderr(), slog.LevelWarn)

			assignments, err := parseAssignments(args[1:])
			if err != nil {
				return commandError("save", err)
			}

			rt, err := openRuntime(ctx, rootOpts, log, requirements{registry: true})
			if err != nil {
				return err
			}
			defer rt.Close()

			docType := args[0]
			doc := sluggable.NewDocument(docType, nil)
			if id != "" {
				doc, err = rt.store.FindByID(ctx, []string{docType}, id)
				if err != nil {
					return &ExitError{Code: ExitFailure, Message: "load " + docType + " " + id, Err: err}
				}
			}
			for _, a := range assignments {
				if a.value == nil {
					doc.Unset(a.field)
					continue
				}
				doc.Set(a.field, a.value)
			}

			if err := rt.repo.Save(ctx, doc); err != nil {
				return commandError("save "+docType, err)
			}

			saved := newSavedDocument(rt, doc)
			out := &OutputFormatter{Writer: cmd.OutOrStdout(), Format: rootOpts.Format}
			return out.Success(saved.String(), saved)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "update the document with this id")
	return cmd
}

type assignment struct {
	value any
	field string
}

func parseAssignments(args []string) ([]assignment, error) {
	out := make([]assignment, 0, len(args))
	for _, arg := range args {
		field, raw, ok := strings.Cut(arg, "=")
		if !ok || field == "" {
			return nil, fmt.Errorf("expected field=value, got %q", arg)
		}
		out = append(out, assignment{field: field, value: parseValue(raw)})
	}
	return out, nil
}

// parseValue decodes raw as a YAML scalar. Anything that is not a scalar is kept as text.
func parseValue(raw string) any {
	if raw == "" {
		return nil
	}
	var v any
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	switch v.(type) {
	case nil, map[string]any, []any:
		return raw
	default:
		return v
	}
}
