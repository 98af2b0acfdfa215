package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Error(t *testing.T) {
	t.Run("without wrapped error", func(t *testing.T) {
		err := NewDomainError(ErrorTypeValidation, "bad payload", nil)
		assert.Equal(t, "validation: bad payload", err.Error())
	})

	t.Run("with wrapped error", func(t *testing.T) {
		inner := errors.New("boom")
		err := NewDomainError(ErrorTypeInternal, "store fault", inner)
		assert.Equal(t, "internal: store fault (boom)", err.Error())
		assert.Equal(t, inner, errors.Unwrap(err))
	})
}

func TestDomainError_Is(t *testing.T) {
	err := fmt.Errorf("recording event: %w", ErrUnknownKind)
	assert.True(t, errors.Is(err, ErrUnknownKind))
	assert.True(t, errors.Is(err, ErrInternal), "Is matches on type, not message")
	assert.False(t, errors.Is(err, ErrInvalidInput))
}

func TestErrorTypeCheckers(t *testing.T) {
	assert.True(t, IsValidationError(ErrInvalidInput))
	assert.True(t, IsInternalError(ErrUnknownKind))
	assert.True(t, IsInternalError(ErrUnknownSeverity))
	assert.False(t, IsNotFoundError(ErrInvalidInput))
	assert.False(t, IsValidationError(errors.New("plain")))
}

func TestDomainError_Detailed(t *testing.T) {
	base := NewDomainError(ErrorTypeInternal, "store fault", nil).
		WithDetail("shared", "yes")

	detailed := base.Detailed("kind", "bogus")

	// The copy carries both details; the original stays untouched so
	// sentinels can be shared safely across goroutines.
	assert.NotSame(t, base, detailed)
	assert.Equal(t, "bogus", detailed.Details["kind"])
	assert.Equal(t, "yes", detailed.Details["shared"])
	assert.NotContains(t, base.Details, "kind")

	assert.True(t, errors.Is(detailed, base))
	assert.Equal(t, base.Error(), detailed.Error())
}

func TestDomainError_WithDetail(t *testing.T) {
	err := NewDomainError(ErrorTypeValidation, "bad payload", nil).
		WithDetail("field", "kind")

	details := GetErrorDetails(err)
	assert.Equal(t, "kind", details["field"])
	assert.Equal(t, ErrorTypeValidation, GetErrorType(err))
	assert.Nil(t, GetErrorDetails(errors.New("plain")))
}
