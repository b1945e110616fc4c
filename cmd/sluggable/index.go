package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/sluggable/pkg/pgstore"
)

// NewIndexCommand creates the unique slug index for a type's pool.
func NewIndexCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "index <type>",
		Short: "Create the unique slug index for a document type",
		Long: `Create the partial unique index that rejects duplicate slugs within the
uniqueness pool of <type> (the type, its sluggable ancestors and subtypes).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			log := newLogger(rootOpts, cmd.ErrOrStderr(), slog.LevelWarn)

			rt, err := openRuntime(ctx, rootOpts, log, requirements{registry: true, database: true})
			if err != nil {
				return err
			}
			defer rt.Close()

			pool, err := rt.requirePool("index")
			if err != nil {
				return err
			}
			name, err := pgstore.EnsureSlugIndex(ctx, pool, rt.registry, args[0])
			if err != nil {
				return commandError("index "+args[0], err)
			}

			out := &OutputFormatter{Writer: cmd.OutOrStdout(), Format: rootOpts.Format}
			return out.Success(name, map[string]string{"type": args[0], "index": name})
		},
	}
}
