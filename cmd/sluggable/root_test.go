package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRegistry = `
types:
  - name: Article
    fields: [title, account_id, slug]
    sluggable:
      source: title
      scope: account_id
  - name: Note
`

func writeRegistry(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "types.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testRegistry), 0o600))
	return path
}

// execute runs the CLI without database or Redis.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--database-url=", "--redis-url="))
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestRootCommand(t *testing.T) {
	t.Parallel()

	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "sluggable", cmd.Use)
}

func TestCommandPresence(t *testing.T) {
	t.Parallel()

	cmd := NewRootCommand()
	for _, name := range []string{"slugify", "migrate", "index", "save", "resolve", "serve"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	flags := NewRootCommand().PersistentFlags()
	for _, name := range []string{"config", "database-url", "redis-url", "format", "verbose"} {
		assert.NotNil(t, flags.Lookup(name), name)
	}
	assert.Equal(t, "text", flags.Lookup("format").DefValue)
	assert.Equal(t, "v", flags.Lookup("verbose").Shorthand)
}

func TestInvalidFormat(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "slugify", "x", "--format", "xml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestDatabaseCommandsNeedDatabase(t *testing.T) {
	t.Parallel()

	cfg := writeRegistry(t)

	_, err := execute(t, "migrate")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, err = execute(t, "index", "Article", "--config", cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database")
}

func TestRegistryRequired(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "save", "Article", "title=x", "--config=")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "--config")
}
