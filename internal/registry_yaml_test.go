package internal_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sluggable/internal"
)

const registryYAML = `
types:
  - name: Animal
    fields: [name]
    sluggable:
      source: name
  - name: Dog
    parent: Animal
  - name: Training
    fields: [title, job_title_id]
    sluggable:
      source: title
      slug_field: handle
      transform: downcase
      scope: job_title_id
      max_length: 64
      start_suffix: 5
      trigger: on_create_or_update
      stage: before_save
      policy: assign_once
      strip_html: true
`

func TestLoadRegistry(t *testing.T) {
	t.Parallel()

	reg, err := internal.LoadRegistry(strings.NewReader(registryYAML))
	require.NoError(t, err)
	assert.Equal(t, []string{"Animal", "Dog", "Training"}, reg.Types())

	pool, err := reg.Pool("Dog")
	require.NoError(t, err)
	assert.Equal(t, []string{"Animal", "Dog"}, pool)

	cfg, err := reg.Config("Training")
	require.NoError(t, err)
	assert.Equal(t, "title", cfg.SourceField)
	assert.Equal(t, "handle", cfg.SlugField)
	assert.Equal(t, internal.TransformDowncase, cfg.Transform)
	assert.Equal(t, "job_title_id", cfg.ScopeField)
	assert.Equal(t, 64, cfg.MaxLength)
	assert.Equal(t, 5, cfg.StartSuffix)
	assert.Equal(t, internal.OnCreateOrUpdate, cfg.Trigger)
	assert.Equal(t, internal.BeforeSave, cfg.Stage)
	assert.Equal(t, internal.PolicyAssignOnce, cfg.Policy)
	assert.True(t, cfg.StripHTML)

	animal, err := reg.Config("Animal")
	require.NoError(t, err)
	assert.Equal(t, internal.DefaultMaxLength, animal.MaxLength)
	assert.Equal(t, internal.DefaultStartSuffix, animal.StartSuffix)
}

func TestLoadRegistry_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name:    "unknown key",
			yaml:    "types:\n  - name: Post\n    sluggable:\n      source: title\n      colour: red\n",
			wantErr: internal.ErrInvalidConfig,
		},
		{
			name:    "bad trigger",
			yaml:    "types:\n  - name: Post\n    sluggable:\n      source: title\n      trigger: sometimes\n",
			wantErr: internal.ErrInvalidConfig,
		},
		{
			name:    "unknown transform",
			yaml:    "types:\n  - name: Post\n    sluggable:\n      source: title\n      transform: titleize\n",
			wantErr: internal.ErrUnknownTransform,
		},
		{
			name:    "parent declared later",
			yaml:    "types:\n  - name: Dog\n    parent: Animal\n  - name: Animal\n",
			wantErr: internal.ErrUnknownParent,
		},
		{
			name:    "malformed",
			yaml:    "types: [",
			wantErr: internal.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := internal.LoadRegistry(strings.NewReader(tt.yaml))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadRegistry_Empty(t *testing.T) {
	t.Parallel()

	reg, err := internal.LoadRegistry(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, reg.Types())
}

func TestLoadRegistryFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "types.yaml")
	require.NoError(t, os.WriteFile(path, []byte(registryYAML), 0o600))

	reg, err := internal.LoadRegistryFile(path)
	require.NoError(t, err)
	assert.Len(t, reg.Types(), 3)

	_, err = internal.LoadRegistryFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
