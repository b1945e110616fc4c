package internal_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sluggable/internal"
)

func TestNotFoundError(t *testing.T) {
	t.Parallel()

	err := &internal.NotFoundError{Type: "Employer", Value: "foobar"}
	assert.Equal(t, "Couldn't find Employer with slug: foobar", err.Error())
	assert.ErrorIs(t, err, internal.ErrNotFound)

	err = &internal.NotFoundError{Type: "Employer", Value: "foobar", ByID: true}
	assert.Equal(t, "Couldn't find Employer with slug or id: foobar", err.Error())

	wrapped := fmt.Errorf("handler: %w", err)
	var nf *internal.NotFoundError
	require.True(t, errors.As(wrapped, &nf))
	assert.True(t, nf.ByID)
}

func TestConfigError(t *testing.T) {
	t.Parallel()

	err := &internal.ConfigError{Type: "Post", Field: "slug", Err: internal.ErrCollisionExhausted}
	assert.ErrorIs(t, err, internal.ErrCollisionExhausted)
	assert.Contains(t, err.Error(), "collision attempts exhausted")
	assert.Contains(t, err.Error(), "Post")
	assert.Contains(t, err.Error(), "slug")

	bare := &internal.ConfigError{Err: internal.ErrInvalidConfig}
	assert.Equal(t, internal.ErrInvalidConfig.Error(), bare.Error())
}
