package habit

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes habit-layer errors.
type ErrorCode string

const (
	// ErrCodeValidation indicates malformed input to habit creation.
	ErrCodeValidation ErrorCode = "VALIDATION"

	// ErrCodeNotFound indicates a read of a habit id with no stored record.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// ErrCodeInvalidHabit indicates a completion-log mutation referencing a
	// habit id that does not exist.
	ErrCodeInvalidHabit ErrorCode = "INVALID_HABIT"

	// ErrCodeInvalidLogEntry indicates a stored log entry that cannot be
	// parsed as a date during record revival.
	ErrCodeInvalidLogEntry ErrorCode = "INVALID_LOG_ENTRY"

	// ErrCodeMalformedLog indicates a log entry that cannot be parsed as a
	// date during streak computation.
	ErrCodeMalformedLog ErrorCode = "MALFORMED_LOG"
)

// Error is a structured error for habit operations.
//
// Validation and not-found conditions are raised immediately at the operation
// boundary and never silently swallowed. Storage backend failures propagate
// unchanged and are NOT wrapped in this type.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// HabitID identifies the affected habit, when known.
	HabitID string

	// Field names the offending record field (for validation/revival errors).
	Field string
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.HabitID != "" && e.Field != "":
		return fmt.Sprintf("%s: %s (habit=%s, field=%s)", e.Code, e.Message, e.HabitID, e.Field)
	case e.HabitID != "":
		return fmt.Sprintf("%s: %s (habit=%s)", e.Code, e.Message, e.HabitID)
	case e.Field != "":
		return fmt.Sprintf("%s: %s (field=%s)", e.Code, e.Message, e.Field)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

// NewValidationError creates an Error for malformed creation input.
func NewValidationError(field, message string) *Error {
	return &Error{Code: ErrCodeValidation, Message: message, Field: field}
}

// NewNotFoundError creates an Error for a missing habit record.
func NewNotFoundError(id string) *Error {
	return &Error{Code: ErrCodeNotFound, Message: "no habit record at id", HabitID: id}
}

// NewInvalidHabitError creates an Error for a log mutation on an unknown id.
func NewInvalidHabitError(id string) *Error {
	return &Error{Code: ErrCodeInvalidHabit, Message: "habit does not exist", HabitID: id}
}

// NewInvalidLogEntryError creates an Error for an unparseable log entry found
// during record revival.
func NewInvalidLogEntryError(id, entry string) *Error {
	return &Error{
		Code:    ErrCodeInvalidLogEntry,
		Message: fmt.Sprintf("log entry %q is not a parseable date", entry),
		HabitID: id,
		Field:   "logs",
	}
}

// NewMalformedLogError creates an Error for an unparseable log entry found
// during streak computation.
func NewMalformedLogError(entry string) *Error {
	return &Error{
		Code:    ErrCodeMalformedLog,
		Message: fmt.Sprintf("log entry %q is not a parseable date", entry),
		Field:   "logs",
	}
}

// codeIs reports whether err is (or wraps) an *Error with the given code.
func codeIs(err error, code ErrorCode) bool {
	var he *Error
	if errors.As(err, &he) {
		return he.Code == code
	}
	return false
}

// IsValidation reports whether the error is a creation validation error.
func IsValidation(err error) bool { return codeIs(err, ErrCodeValidation) }

// IsNotFound reports whether the error is a missing-record error.
func IsNotFound(err error) bool { return codeIs(err, ErrCodeNotFound) }

// IsInvalidHabit reports whether the error is an unknown-id mutation error.
func IsInvalidHabit(err error) bool { return codeIs(err, ErrCodeInvalidHabit) }

// IsInvalidLogEntry reports whether the error is a revival log-entry error.
func IsInvalidLogEntry(err error) bool { return codeIs(err, ErrCodeInvalidLogEntry) }

// IsMalformedLog reports whether the error is a streak-computation log error.
func IsMalformedLog(err error) bool { return codeIs(err, ErrCodeMalformedLog) }
