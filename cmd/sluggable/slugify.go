package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/sluggable"
	"github.com/dmitrymomot/sluggable/pkg/sanitizer"
)

type slugifyOptions struct {
	transform string
	maxLength int
	stripHTML bool
}

// NewSlugifyCommand prints the slug candidate for its arguments.
func NewSlugifyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &slugifyOptions{}

	cmd := &cobra.Command{
		Use:   "slugify <text>...",
		Short: "Print the slug candidate for text",
		Long: `Print the slug candidate generated for text, without collision handling.

Arguments are joined with single spaces.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, ok := sluggable.LookupTransform(opts.transform)
			if !ok {
				return commandError(fmt.Sprintf("unknown transform %q", opts.transform), sluggable.ErrUnknownTransform)
			}
			if opts.maxLength <= 0 {
				return commandError("--max-length must be positive", sluggable.ErrInvalidConfig)
			}

			raw := strings.Join(args, " ")
			if opts.stripHTML {
				raw = sanitizer.StripHTML(raw)
			}
			slug := sluggable.Transform(raw, fn, opts.maxLength)

			out := &OutputFormatter{Writer: cmd.OutOrStdout(), Format: rootOpts.Format}
			return out.Success(slug, map[string]string{"input": raw, "slug": slug})
		},
	}

	cmd.Flags().StringVarP(&opts.transform, "transform", "t", sluggable.TransformParameterize,
		"transform name ("+strings.Join(sluggable.TransformNames(), "|")+")")
	cmd.Flags().IntVar(&opts.maxLength, "max-length", sluggable.DefaultMaxLength, "maximum slug length in runes")
	cmd.Flags().BoolVar(&opts.stripHTML, "strip-html", false, "remove HTML markup first")

	return cmd
}
