package config

import (
	"errors"
	"fmt"
)

// ErrValidationFailed matches every *ValidationError.
var ErrValidationFailed = errors.New("validation failed")

// ValidationError describes an invalid setting.
type ValidationError struct {
	// Path is the setting path, such as "history.maxEntries".
	Path    string
	Message string
	Value   any
	Code    ValidationErrorCode
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (value: %q)", e.Path, e.Message, fmt.Sprint(e.Value))
}

// Is reports whether target is ErrValidationFailed.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// ValidationErrorCode categorizes validation errors.
type ValidationErrorCode uint8

const (
	// ErrCodeRequiredMissing indicates a required setting is empty.
	ErrCodeRequiredMissing ValidationErrorCode = iota
	// ErrCodeOutOfRange indicates a numeric value is out of range.
	ErrCodeOutOfRange
	// ErrCodeInvalidEnum indicates the value is not one of the allowed names.
	ErrCodeInvalidEnum
	// ErrCodePatternMismatch indicates a malformed value, such as a bad colour.
	ErrCodePatternMismatch
)

// String returns a name for the error code.
func (c ValidationErrorCode) String() string {
	switch c {
	case ErrCodeRequiredMissing:
		return "required_missing"
	case ErrCodeOutOfRange:
		return "out_of_range"
	case ErrCodeInvalidEnum:
		return "invalid_enum"
	case ErrCodePatternMismatch:
		return "pattern_mismatch"
	default:
		return "unknown"
	}
}
