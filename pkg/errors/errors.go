package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Application configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Font configuration document errors
	ErrDocumentParse     ErrorCode = "DOCUMENT_PARSE"
	ErrDocumentSerialize ErrorCode = "DOCUMENT_SERIALIZE"
	ErrExternalRef       ErrorCode = "EXTERNAL_REF"

	// Preference model errors
	ErrSlotNotFound   ErrorCode = "SLOT_NOT_FOUND"
	ErrSlotExists     ErrorCode = "SLOT_EXISTS"
	ErrAliasNotFound  ErrorCode = "ALIAS_NOT_FOUND"
	ErrOptionUnknown  ErrorCode = "OPTION_UNKNOWN"
	ErrOptionValue    ErrorCode = "OPTION_VALUE"
	ErrFamilyNotFound ErrorCode = "FAMILY_NOT_FOUND"

	// Scheme errors
	ErrSchemeNotFound ErrorCode = "SCHEME_NOT_FOUND"
	ErrSchemeExists   ErrorCode = "SCHEME_EXISTS"
	ErrSchemeInvalid  ErrorCode = "SCHEME_INVALID"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
)

// FontweakError represents a structured error with code and details
type FontweakError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FontweakError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FontweakError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *FontweakError) Is(target error) bool {
	var targetErr *FontweakError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new FontweakError with the given code and message
func New(code ErrorCode, message string) *FontweakError {
	return &FontweakError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new FontweakError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FontweakError {
	return &FontweakError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a FontweakError
func Wrap(err error, code ErrorCode, message string) *FontweakError {
	if err == nil {
		return nil
	}
	return &FontweakError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FontweakError {
	if err == nil {
		return nil
	}
	return &FontweakError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *FontweakError) WithDetail(key string, value interface{}) *FontweakError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *FontweakError) WithDetails(details map[string]interface{}) *FontweakError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error, or any error it wraps, has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	for err != nil {
		var fwErr *FontweakError
		if !errors.As(err, &fwErr) {
			return false
		}
		if fwErr.Code == code {
			return true
		}
		err = fwErr.Wrapped
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a FontweakError
func GetErrorCode(err error) ErrorCode {
	var fwErr *FontweakError
	if errors.As(err, &fwErr) {
		return fwErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a FontweakError
func GetErrorDetails(err error) map[string]interface{} {
	var fwErr *FontweakError
	if errors.As(err, &fwErr) {
		return fwErr.Details
	}
	return nil
}
