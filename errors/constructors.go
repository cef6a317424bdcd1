package errors

import (
	"errors"
	"fmt"
)

// New creates a StreamError with the given code and message.
//
// Example:
//
//	var ErrClosed = errors.New(errors.CodeClosed, "I/O operation on closed file")
func New(code ErrorCode, message string) StreamError {
	return &streamError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
	}
}

// Newf creates a StreamError with a formatted message.
func Newf(code ErrorCode, format string, args ...any) StreamError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps err with a code and message while keeping it reachable through
// Unwrap. If err already carries a classification, it is preserved.
//
// Returns nil if err is nil.
//
// Example:
//
//	if _, err := in.Read(buf); err != nil {
//		return errors.Wrap(err, errors.CodeIO, "read failed")
//	}
func Wrap(err error, code ErrorCode, message string) StreamError {
	if err == nil {
		return nil
	}

	classification := getDefaultClassification(code)
	var se StreamError
	if errors.As(err, &se) {
		classification = se.Classification()
	}

	return &streamError{
		code:           code,
		classification: classification,
		message:        message,
		cause:          err,
	}
}

// Wrapf wraps err with a formatted message. Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...any) StreamError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}
