package apperror_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/typekit/pkg/apperror"
)

func TestConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     *apperror.Error
		kind    apperror.Kind
		message string
		text    string
	}{
		{"not found", apperror.NotFound("user 1"), apperror.KindNotFound, "user 1", "not found: user 1"},
		{"invalid input", apperror.InvalidInput("Host is required"), apperror.KindInvalidInput, "Host is required", "invalid input: Host is required"},
		{"io", apperror.IO("disk full"), apperror.KindIO, "disk full", "io error: disk full"},
		{"convert", apperror.ConvertError("read failed"), apperror.KindIO, "read failed", "io error: read failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.kind, tt.err.Kind)
			assert.Equal(t, tt.message, tt.err.Message)
			assert.EqualError(t, tt.err, tt.text)
			assert.Equal(t, tt.kind, apperror.KindOf(tt.err))
			assert.Equal(t, tt.message, apperror.MessageOf(tt.err))
		})
	}
}

func TestErrorsIs(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("loading: %w", apperror.InvalidInput("bad port"))

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.NotErrorIs(t, err, apperror.ErrNotFound)
	assert.True(t, apperror.IsInvalidInput(err))
	assert.False(t, apperror.IsIO(err))
	assert.False(t, apperror.IsNotFound(err))

	assert.ErrorIs(t, err, apperror.InvalidInput("bad port"))
	assert.NotErrorIs(t, err, apperror.InvalidInput("bad host"))
}

func TestWrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("eof")
	err := apperror.Wrap(apperror.KindIO, "reading config", cause)

	assert.ErrorIs(t, err, cause)
	assert.True(t, apperror.IsIO(err))
	assert.EqualError(t, err, "io error: reading config: eof")
}

func TestKindOf_Foreign(t *testing.T) {
	t.Parallel()

	assert.Equal(t, apperror.KindUnknown, apperror.KindOf(errors.New("plain")))
	assert.Equal(t, apperror.KindUnknown, apperror.KindOf(nil))
	assert.Equal(t, "", apperror.MessageOf(errors.New("plain")))
	assert.Equal(t, "unknown error", apperror.KindUnknown.String())
}
