package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/sluggable/pkg/pgstore"
)

// NewMigrateCommand applies the Postgres schema.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	var table string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the PostgreSQL schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			log := newLogger(rootOpts, cmd.ErrOrStderr(), slog.LevelInfo)

			rt, err := openRuntime(ctx, rootOpts, log, requirements{database: true})
			if err != nil {
				return err
			}
			defer rt.Close()

			pool, err := rt.requirePool("migrate")
			if err != nil {
				return err
			}
			if err := pgstore.Migrate(ctx, pool, table, log); err != nil {
				return commandError("migrate", err)
			}

			out := &OutputFormatter{Writer: cmd.OutOrStdout(), Format: rootOpts.Format}
			return out.Success("migrations applied", map[string]string{"table": table})
		},
	}

	cmd.Flags().StringVar(&table, "table", pgstore.DefaultMigrationsTable, "goose version table")
	return cmd
}
