package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceError_Error(t *testing.T) {
	cause := errors.New("pq: connection refused")

	tests := []struct {
		err      *ServiceError
		name     string
		expected string
	}{
		{name: "invalid pin", err: invalidPIN(), expected: "Invalid PIN"},
		{name: "invalid amount", err: invalidAmount(), expected: "Amount must be greater than 0"},
		{name: "unknown account", err: accountNotFound(), expected: "Account not found"},
		{name: "short balance", err: insufficientBalance(300), expected: "Insufficient balance"},
		{
			name:     "storage failure carries operation and cause",
			err:      storageFailure("update balance", cause),
			expected: "storage unavailable: update balance: pq: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestServiceError_Unwrap(t *testing.T) {
	cause := errors.New("deadlock detected")
	wrapped := fmt.Errorf("withdraw: %w", storageFailure("lock account", cause))

	var svcErr *ServiceError
	require.True(t, errors.As(wrapped, &svcErr))
	assert.Equal(t, ErrCodeStorageFailure, svcErr.Code)
	assert.ErrorIs(t, wrapped, cause)

	assert.Nil(t, invalidPIN().Unwrap(), "caller errors have no cause")
}

func TestInsufficientBalance_ReportsCurrentBalance(t *testing.T) {
	err := insufficientBalance(300)

	assert.Equal(t, ErrCodeInsufficientBalance, err.Code)
	require.NotNil(t, err.CurrentBalance)
	assert.Equal(t, 300.0, *err.CurrentBalance)

	for _, other := range []*ServiceError{invalidPIN(), invalidAmount(), accountNotFound()} {
		assert.Nil(t, other.CurrentBalance, other.Code)
	}
}
