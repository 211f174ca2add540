// Package errors provides unified error handling with booth-specific error codes.
package errors

import (
	"errors"
	"fmt"
)

// Code classifies a booth failure.
type Code int

const (
	CodeUnknown Code = iota
	CodeInternal
	CodeInvalidArgument
	CodeCameraUnavailable
	CodeCaptureFailed
	CodeComposeFailed
	CodeExportFailed
	CodeOverlayMissing
	CodeSessionBusy
	CodeNotReady
	CodeSessionFailed
	CodeConfigInvalid
)

var codeNames = map[Code]string{
	CodeUnknown:           "UNKNOWN",
	CodeInternal:          "INTERNAL",
	CodeInvalidArgument:   "INVALID_ARGUMENT",
	CodeCameraUnavailable: "CAMERA_UNAVAILABLE",
	CodeCaptureFailed:     "CAPTURE_FAILED",
	CodeComposeFailed:     "COMPOSE_FAILED",
	CodeExportFailed:      "EXPORT_FAILED",
	CodeOverlayMissing:    "OVERLAY_MISSING",
	CodeSessionBusy:       "SESSION_BUSY",
	CodeNotReady:          "NOT_READY",
	CodeSessionFailed:     "SESSION_FAILED",
	CodeConfigInvalid:     "CONFIG_INVALID",
}

// String returns the upper-case name of the code.
func (c Code) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("CODE(%d)", int(c))
}

// AppError is the base error type with structured error code and metadata.
type AppError struct {
	Code     Code
	Message  string
	Metadata map[string]string
	Cause    error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	s := fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
	if len(e.Metadata) > 0 {
		s += fmt.Sprintf(" %v", e.Metadata)
	}
	if e.Cause != nil {
		s += fmt.Sprintf(" caused by: %v", e.Cause)
	}
	return s
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *AppError) Unwrap() error { return e.Cause }

// New creates a new AppError with the given code and message.
func New(code Code, msg string) *AppError {
	return &AppError{Code: code, Message: msg}
}

// Newf creates a new AppError with formatted message.
func Newf(code Code, format string, args ...any) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error with an AppError.
func Wrap(err error, code Code, msg string) *AppError {
	return &AppError{Code: code, Message: msg, Cause: err}
}

// Wrapf wraps an existing error with formatted message.
func Wrapf(err error, code Code, format string, args ...any) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...), Cause: err}
}

// WithMetadata adds metadata to an AppError.
func (e *AppError) WithMetadata(key, value string) *AppError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]string)
	}
	e.Metadata[key] = value
	return e
}

// CodeOf returns the code of the outermost AppError in err's chain.
func CodeOf(err error) Code {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// IsCode checks if any AppError in err's chain has the given code.
func IsCode(err error, code Code) bool {
	for err != nil {
		if appErr, ok := err.(*AppError); ok && appErr.Code == code {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// IsRetryable reports whether the user can reasonably retry the operation.
// The booth never retries on its own.
func IsRetryable(err error) bool {
	switch CodeOf(err) {
	case CodeCameraUnavailable, CodeSessionBusy, CodeSessionFailed:
		return true
	default:
		return false
	}
}
