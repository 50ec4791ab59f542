// Package errors provides structured error types for sqlbench
// with error codes, categories, and remediation guidance.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error codes for sqlbench
// Format: SQLBENCH-<CATEGORY><NUMBER>
// Categories: C=Config, E=Environment, D=Data, B=Bug
const (
	// Configuration errors (user fix); these abort the whole invocation
	ErrCodeInvalidSuite    ErrorCode = "SQLBENCH-C001"
	ErrCodeMissingSuite    ErrorCode = "SQLBENCH-C002"
	ErrCodeUnknownDriver   ErrorCode = "SQLBENCH-C003"
	ErrCodeInvalidRunCount ErrorCode = "SQLBENCH-C004"
	ErrCodeInvalidMode     ErrorCode = "SQLBENCH-C005"
	ErrCodeNoQueries       ErrorCode = "SQLBENCH-C006"
	ErrCodeNoTargets       ErrorCode = "SQLBENCH-C007"

	// Environment errors (infrastructure fix), contained per database
	ErrCodeConnectFailed ErrorCode = "SQLBENCH-E001"
	ErrCodeAuthFailed    ErrorCode = "SQLBENCH-E002"
	ErrCodeTimeout       ErrorCode = "SQLBENCH-E003"

	// Data errors (investigate)
	ErrCodePrepareFailed ErrorCode = "SQLBENCH-D001"
	ErrCodeLoadFailed    ErrorCode = "SQLBENCH-D002"
	ErrCodeCatalogFailed ErrorCode = "SQLBENCH-D003"

	// Internal errors (report to maintainers)
	ErrCodeLogicError   ErrorCode = "SQLBENCH-B001"
	ErrCodeInvalidState ErrorCode = "SQLBENCH-B002"
)

// Category represents error categories
type Category string

const (
	CategoryConfig      Category = "configuration"
	CategoryEnvironment Category = "environment"
	CategoryData        Category = "data"
	CategoryInternal    Category = "internal"
)

// BenchError is a structured error with code, category, and remediation
type BenchError struct {
	Code        ErrorCode
	Category    Category
	Message     string
	Details     string
	Remediation string
	Cause       error
}

// Error implements the error interface
func (e *BenchError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Details != "" {
		msg += fmt.Sprintf("\n\nDetails:\n  %s", e.Details)
	}
	if e.Remediation != "" {
		msg += fmt.Sprintf("\n\nTo fix:\n  %s", e.Remediation)
	}
	return msg
}

// Unwrap returns the underlying cause
func (e *BenchError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is for error comparison
func (e *BenchError) Is(target error) bool {
	if t, ok := target.(*BenchError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithCause attaches an underlying cause
func (e *BenchError) WithCause(cause error) *BenchError {
	e.Cause = cause
	return e
}

// WithDetails attaches free-text details
func (e *BenchError) WithDetails(details string) *BenchError {
	e.Details = details
	return e
}

// NewConfigError creates a configuration error
func NewConfigError(code ErrorCode, message string, remediation string) *BenchError {
	return &BenchError{
		Code:        code,
		Category:    CategoryConfig,
		Message:     message,
		Remediation: remediation,
	}
}

// NewEnvError creates an environment error
func NewEnvError(code ErrorCode, message string, remediation string) *BenchError {
	return &BenchError{
		Code:        code,
		Category:    CategoryEnvironment,
		Message:     message,
		Remediation: remediation,
	}
}

// NewDataError creates a data error
func NewDataError(code ErrorCode, message string, remediation string) *BenchError {
	return &BenchError{
		Code:        code,
		Category:    CategoryData,
		Message:     message,
		Remediation: remediation,
	}
}

// NewInternalError creates an internal error
func NewInternalError(code ErrorCode, message string) *BenchError {
	return &BenchError{
		Code:     code,
		Category: CategoryInternal,
		Message:  message,
	}
}

// IsConfigError reports whether err (or anything it wraps) is a
// configuration error. Configuration errors are the only category
// fatal to the whole invocation.
func IsConfigError(err error) bool {
	var be *BenchError
	if errors.As(err, &be) {
		return be.Category == CategoryConfig
	}
	return false
}

// CodeOf extracts the error code, or "" for non-structured errors
func CodeOf(err error) ErrorCode {
	var be *BenchError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
