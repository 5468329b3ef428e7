package errors_test

import (
	stderrors "errors"
	"fmt"
	"io"
	"testing"

	"github.com/arthur-debert/docprint/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "no such declaration",
			wantStr: "[NOT_FOUND] no such declaration",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "class node without classDef",
			wantStr: "[INVALID_INPUT] class node without classDef",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrDecode, "node %d: unknown kind %q", 3, "struct")
	assert.Equal(t, "node 3: unknown kind \"struct\"", err.Message)
}

func TestWrap(t *testing.T) {
	t.Run("nil error stays nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrWriteFailure, "write"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrWriteFailure, "write %s", "x"))
	})

	t.Run("wrapped error is reachable", func(t *testing.T) {
		err := errors.Wrap(io.ErrClosedPipe, errors.ErrWriteFailure, "write report")
		require.NotNil(t, err)

		assert.Equal(t, "[WRITE_FAILURE] write report: io: read/write on closed pipe", err.Error())
		assert.True(t, stderrors.Is(err, io.ErrClosedPipe))
		assert.Equal(t, io.ErrClosedPipe, stderrors.Unwrap(err))
	})
}

func TestWithDetails(t *testing.T) {
	err := errors.New(errors.ErrFileNotFound, "missing").
		WithDetail("path", "a.json").
		WithDetails(map[string]interface{}{"format": "json"})

	assert.Equal(t, "a.json", err.Details["path"])
	assert.Equal(t, "json", err.Details["format"])
	assert.Equal(t, err.Details, errors.GetErrorDetails(err))
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestIs(t *testing.T) {
	err := errors.New(errors.ErrWriteFailure, "one")
	same := errors.New(errors.ErrWriteFailure, "two")
	other := errors.New(errors.ErrDecode, "three")

	assert.True(t, stderrors.Is(err, same))
	assert.False(t, stderrors.Is(err, other))
}

func TestIsErrorCode(t *testing.T) {
	base := errors.New(errors.ErrConfigValid, "bad color")
	wrapped := fmt.Errorf("loading: %w", base)

	assert.True(t, errors.IsErrorCode(base, errors.ErrConfigValid))
	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrConfigValid))
	assert.False(t, errors.IsErrorCode(wrapped, errors.ErrConfigLoad))
	assert.False(t, errors.IsErrorCode(stderrors.New("plain"), errors.ErrConfigValid))
	assert.False(t, errors.IsErrorCode(nil, errors.ErrConfigValid))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrStyleLoad, errors.GetErrorCode(errors.New(errors.ErrStyleLoad, "x")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
}

func TestErrorChaining(t *testing.T) {
	root := stderrors.New("disk full")
	mid := errors.Wrap(root, errors.ErrWriteFailure, "write report")
	top := errors.Wrap(mid, errors.ErrInternal, "render")

	assert.Equal(t, errors.ErrInternal, errors.GetErrorCode(top))
	assert.True(t, stderrors.Is(top, root))

	var inner *errors.DocprintError
	require.True(t, stderrors.As(stderrors.Unwrap(top), &inner))
	assert.Equal(t, errors.ErrWriteFailure, inner.Code)
}
