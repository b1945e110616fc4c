package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/sluggable"
)

type resolveResult struct {
	Document *savedDocument `json:"document,omitempty"`
	Outcome  string         `json:"outcome"`
	OldSlug  string         `json:"old_slug,omitempty"`
	NewSlug  string         `json:"new_slug,omitempty"`
}

func (r resolveResult) String() string {
	if r.Outcome == sluggable.Redirect.String() {
		return fmt.Sprintf("redirect %s -> %s\n%s", r.OldSlug, r.NewSlug, r.Document)
	}
	return fmt.Sprintf("found\n%s", r.Document)
}

// NewResolveCommand looks a document up by slug or id.
func NewResolveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <type> <slug-or-id>",
		Short: "Find a document by slug, old slug or id",
		Long: `Find a document by its live slug, a slug it had before, a differently cased
slug or its id. Exits with status 1 when nothing matches.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			log := newLogger(rootOpts, cmd.ErrOrStderr(), slog.LevelWarn)

			rt, err := openRuntime(ctx, rootOpts, log, requirements{registry: true})
			if err != nil {
				return err
			}
			defer rt.Close()

			res, err := rt.repo.FindBySlugOrIDOrFail(ctx, args[0], args[1])
			switch {
			case errors.Is(err, sluggable.ErrNotFound):
				return &ExitError{Code: ExitFailure, Message: "resolve", Err: err}
			case err != nil:
				return commandError("resolve", err)
			}

			doc := newSavedDocument(rt, res.Document)
			result := resolveResult{Outcome: res.Outcome.String(), Document: &doc}
			if res.Outcome == sluggable.Redirect {
				result.OldSlug, result.NewSlug = res.OldSlug, res.NewSlug
			}

			out := &OutputFormatter{Writer: cmd.OutOrStdout(), Format: rootOpts.Format}
			return out.Success(result.String(), result)
		},
	}
}
