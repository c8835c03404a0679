package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents different types of errors in the system
type ErrorType string

const (
	// ErrorTypeInput indicates malformed input rejected at the boundary
	ErrorTypeInput ErrorType = "INPUT"

	// ErrorTypeOfflineNoMatch indicates an offline request with no cached answer
	ErrorTypeOfflineNoMatch ErrorType = "OFFLINE_NO_MATCH"

	// ErrorTypeRemoteTimeout indicates a remote attempt exceeded its deadline
	ErrorTypeRemoteTimeout ErrorType = "REMOTE_TIMEOUT"

	// ErrorTypeRemoteNetwork indicates the remote service was unreachable
	ErrorTypeRemoteNetwork ErrorType = "REMOTE_NETWORK_ERROR"

	// ErrorTypeRemoteThrottled indicates the remote service rate-limited the call
	ErrorTypeRemoteThrottled ErrorType = "REMOTE_THROTTLED"

	// ErrorTypeRemoteAccessDenied indicates an auth failure - a configuration fault
	ErrorTypeRemoteAccessDenied ErrorType = "REMOTE_ACCESS_DENIED"

	// ErrorTypeRemoteValidation indicates the remote service rejected the request
	ErrorTypeRemoteValidation ErrorType = "REMOTE_VALIDATION_ERROR"

	// ErrorTypeRemoteGeneric indicates any other remote failure
	ErrorTypeRemoteGeneric ErrorType = "REMOTE_GENERIC_ERROR"

	// ErrorTypeData indicates the remote service returned an unusable result
	ErrorTypeData ErrorType = "DATA_ERROR"
)

// AppError represents an application error
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with the given type
func New(errType ErrorType, message string, err error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Err:     err,
	}
}

// NewInputError creates a new input validation error
func NewInputError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeInput,
		Message: message,
	}
}

// NewOfflineNoMatchError creates the offline cache-miss error
func NewOfflineNoMatchError() *AppError {
	return &AppError{
		Type:    ErrorTypeOfflineNoMatch,
		Message: "no cached answer available offline",
	}
}

// NewRemoteTimeoutError creates a new remote timeout error
func NewRemoteTimeoutError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeRemoteTimeout,
		Message: message,
		Err:     err,
	}
}

// NewRemoteNetworkError creates a new remote network error
func NewRemoteNetworkError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeRemoteNetwork,
		Message: message,
		Err:     err,
	}
}

// NewRemoteThrottledError creates a new rate-limited error
func NewRemoteThrottledError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeRemoteThrottled,
		Message: message,
		Err:     err,
	}
}

// NewRemoteAccessDeniedError creates a new configuration-fault error
func NewRemoteAccessDeniedError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeRemoteAccessDenied,
		Message: message,
		Err:     err,
	}
}

// NewRemoteValidationError creates a new remote validation error
func NewRemoteValidationError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeRemoteValidation,
		Message: message,
		Err:     err,
	}
}

// NewRemoteGenericError creates a new generic remote error
func NewRemoteGenericError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeRemoteGeneric,
		Message: message,
		Err:     err,
	}
}

// NewDataError creates a new unusable-result error
func NewDataError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeData,
		Message: message,
		Err:     err,
	}
}

// TypeOf returns the error type of err, or ErrorTypeRemoteGeneric if err is
// not an AppError.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeRemoteGeneric
}

// IsRetryable reports whether the failure is transient. Timeouts, network
// failures, throttling, and unusable results are retried; validation and
// auth failures are not.
func IsRetryable(err error) bool {
	switch TypeOf(err) {
	case ErrorTypeRemoteTimeout, ErrorTypeRemoteNetwork, ErrorTypeRemoteThrottled, ErrorTypeData:
		return true
	default:
		return false
	}
}
