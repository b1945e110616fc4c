package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"
)

// RootOptions holds the global flags.
type RootOptions struct {
	ConfigPath  string
	DatabaseURL string
	RedisURL    string
	Format      string
	Verbose     bool
}

// ValidFormats lists the accepted --format values.
var ValidFormats = []string{"text", "json"}

// NewRootCommand builds the sluggable command tree.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "sluggable",
		Short: "Human-readable, unique and stable slugs for stored documents",
		Long: `sluggable assigns URL slugs to documents, keeps the slugs they had before
and resolves old or differently cased slugs to the live one.

Document types are described in a YAML file passed with --config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return commandError(fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats), nil)
			}
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.ConfigPath, "config", "c", os.Getenv("SLUGGABLE_CONFIG"), "type registry YAML file (env SLUGGABLE_CONFIG)")
	flags.StringVar(&opts.DatabaseURL, "database-url", os.Getenv("SLUGGABLE_DATABASE_URL"), "PostgreSQL connection URL (env SLUGGABLE_DATABASE_URL)")
	flags.StringVar(&opts.RedisURL, "redis-url", os.Getenv("SLUGGABLE_REDIS_URL"), "Redis URL for the lookup cache (env SLUGGABLE_REDIS_URL)")
	flags.StringVar(&opts.Format, "format", "text", "output format (text|json)")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging on stderr")

	cmd.AddCommand(
		NewSlugifyCommand(opts),
		NewMigrateCommand(opts),
		NewIndexCommand(opts),
		NewSaveCommand(opts),
		NewResolveCommand(opts),
		NewServeCommand(opts),
	)

	return cmd
}
