package errors

import "fmt"

// StreamError extends the standard error interface with a code, a retry
// classification and optional context metadata.
type StreamError interface {
	error

	// Code returns the error code identifying the type of error.
	Code() ErrorCode

	// Classification returns whether the error is retryable or permanent.
	Classification() ErrorClassification

	// Message returns the human-readable error message.
	Message() string

	// Context returns attached metadata as a copy.
	// Returns nil if no context has been attached.
	Context() map[string]any

	// Unwrap returns the wrapped error, or nil.
	Unwrap() error
}

// streamError is the concrete implementation of StreamError.
// It is private to enforce construction through package functions.
type streamError struct {
	code           ErrorCode
	classification ErrorClassification
	message        string
	context        map[string]any
	cause          error
}

// Error returns "[CODE] message" or "[CODE] message: cause".
func (e *streamError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

// Code returns the error code.
func (e *streamError) Code() ErrorCode {
	return e.code
}

// Classification returns the error classification.
func (e *streamError) Classification() ErrorClassification {
	return e.classification
}

// Message returns the error message.
func (e *streamError) Message() string {
	return e.message
}

// Unwrap returns the wrapped error for standard library compatibility.
func (e *streamError) Unwrap() error {
	return e.cause
}

// Context returns a copy of the context map.
func (e *streamError) Context() map[string]any {
	if e.context == nil {
		return nil
	}
	ctx := make(map[string]any, len(e.context))
	for k, v := range e.context {
		ctx[k] = v
	}
	return ctx
}
