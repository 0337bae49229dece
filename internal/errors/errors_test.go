package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	err := Unauthorized("invalid credentials")
	assert.Equal(t, "invalid credentials", err.Error())
}

func TestAppError_ErrorWithCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Network("gateway unreachable", cause)
	assert.Equal(t, "gateway unreachable: connection refused", err.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(cause, ErrCodeInternal, "wrapped")
	assert.True(t, stderrors.Is(err, cause))
}

func TestWrap_NilError(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrCodeInternal, "never"))
}

func TestCodePredicates(t *testing.T) {
	cause := stderrors.New("boom")

	assert.True(t, IsUnauthorized(Unauthorized("x")))
	assert.True(t, IsForbidden(Forbidden("x")))
	assert.True(t, IsForbidden(Wrap(cause, ErrCodeForbidden, "x")))
	assert.True(t, IsNotFound(Wrap(cause, ErrCodeNotFound, "x")))
	assert.True(t, IsValidation(Validation("x")))
	assert.True(t, IsNetwork(Network("x", nil)))

	assert.False(t, IsUnauthorized(Internalf("x")))
	assert.False(t, IsNetwork(stderrors.New("plain")))
}

func TestPredicates_WrappedChain(t *testing.T) {
	inner := Unauthorized("token rejected")
	outer := fmt.Errorf("login: %w", inner)

	assert.True(t, IsUnauthorized(outer))
	assert.Equal(t, ErrCodeUnauthorized, GetCode(outer))
}

func TestGetCode_PlainError(t *testing.T) {
	assert.Equal(t, ErrorCode(""), GetCode(stderrors.New("plain")))
}

func TestFormattedConstructors(t *testing.T) {
	verr := Validationf("field %s", "username")
	require.NotNil(t, verr)
	assert.Equal(t, "field username", verr.Message)

	ierr := Internalf("unknown role %q", "GUEST")
	assert.Equal(t, `unknown role "GUEST"`, ierr.Message)
}
