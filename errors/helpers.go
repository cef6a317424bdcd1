package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the ErrorCode from the outermost StreamError in err's chain.
// Returns CodeUnknown if err is nil or carries no StreamError.
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var se StreamError
	if stderrors.As(err, &se) {
		return se.Code()
	}

	return CodeUnknown
}

// GetClassification extracts the classification from err's chain.
// Returns ClassificationPermanent if err is nil or carries no StreamError.
func GetClassification(err error) ErrorClassification {
	if err == nil {
		return ClassificationPermanent
	}

	var se StreamError
	if stderrors.As(err, &se) {
		return se.Classification()
	}

	return ClassificationPermanent
}

// IsRetryable returns true if the error is classified as retryable.
//
// Example:
//
//	if errors.IsRetryable(err) {
//		time.Sleep(backoff)
//		continue
//	}
func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}
