package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vnpayroll/attendance_backend/internal/apperrors"
)

func TestAppError_UnwrapKeepsSentinel(t *testing.T) {
	err := apperrors.NewAppError(409, "employee phone taken", apperrors.ErrDuplicate)

	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.Equal(t, "employee phone taken: resource already exists", err.Error())

	var appErr *apperrors.AppError
	wrapped := fmt.Errorf("enroll: %w", err)
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, 409, appErr.Code)
}

func TestAppError_NilCause(t *testing.T) {
	err := apperrors.NewAppError(500, "boom", nil)
	assert.Equal(t, "boom", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}
