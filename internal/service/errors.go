package service

import "fmt"

// ServiceError is the failure variant of every ATM and account operation.
// Code identifies the kind; Message is the caller-facing text.
type ServiceError struct {
	Err     error
	Message string
	Code    string
	// CurrentBalance is set for insufficient_balance only.
	CurrentBalance *float64
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Error codes
const (
	ErrCodeInvalidPIN          = "invalid_pin"
	ErrCodeInvalidAmount       = "invalid_amount"
	ErrCodeAccountNotFound     = "account_not_found"
	ErrCodeInsufficientBalance = "insufficient_balance"
	ErrCodeStorageFailure      = "storage_failure"
	ErrCodeInvalidRequest      = "invalid_request"
	ErrCodeAccountExists       = "account_exists"
)

// Caller-facing messages
const (
	MsgInvalidPIN          = "Invalid PIN"
	MsgInvalidAmount       = "Amount must be greater than 0"
	MsgAccountNotFound     = "Account not found"
	MsgInsufficientBalance = "Insufficient balance"
	MsgAccountExists       = "Account number already exists. Please choose a different one."
	MsgStorageFailure      = "storage unavailable"
)

func invalidPIN() *ServiceError {
	return &ServiceError{Code: ErrCodeInvalidPIN, Message: MsgInvalidPIN}
}

func invalidAmount() *ServiceError {
	return &ServiceError{Code: ErrCodeInvalidAmount, Message: MsgInvalidAmount}
}

func accountNotFound() *ServiceError {
	return &ServiceError{Code: ErrCodeAccountNotFound, Message: MsgAccountNotFound}
}

func insufficientBalance(balance float64) *ServiceError {
	return &ServiceError{
		Code:           ErrCodeInsufficientBalance,
		Message:        MsgInsufficientBalance,
		CurrentBalance: &balance,
	}
}

func storageFailure(op string, err error) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeStorageFailure,
		Message: fmt.Sprintf("%s: %s", MsgStorageFailure, op),
		Err:     err,
	}
}
