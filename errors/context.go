package errors

import "errors"

// WithContext adds a single context field to an error and returns the result.
// Existing context fields are preserved.
//
// If err is not a StreamError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	err = errors.WithContext(err, "stream", "stdin")
func WithContext(err error, key string, value any) StreamError {
	if err == nil {
		return nil
	}

	var se StreamError
	if !errors.As(err, &se) {
		se = &streamError{
			code:           CodeUnknown,
			classification: ClassificationPermanent,
			message:        err.Error(),
			cause:          err,
		}
	}

	ctx := se.Context()
	if ctx == nil {
		ctx = make(map[string]any, 1)
	}
	ctx[key] = value

	return &streamError{
		code:           se.Code(),
		classification: se.Classification(),
		message:        se.Message(),
		context:        ctx,
		cause:          se.Unwrap(),
	}
}
