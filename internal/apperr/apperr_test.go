package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("bad input")))
	assert.Equal(t, KindConflict, KindOf(Conflict("dup")))
	assert.Equal(t, KindUnauthorized, KindOf(Unauthorized("nope")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("gone")))
	assert.Equal(t, KindInternal, KindOf(Internal("boom", errors.New("cause"))))

	// Untagged errors default to internal.
	assert.Equal(t, KindInternal, KindOf(errors.New("raw")))
	assert.Equal(t, KindInternal, KindOf(nil))
}

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("handler: %w", NotFound("gone"))
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal("Internal server error.", cause)

	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "connection refused")

	// Client-visible message stays clean when there is no cause.
	assert.Equal(t, "gone", NotFound("gone").Error())
}
