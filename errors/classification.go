package errors

// ErrorClassification indicates whether an error should trigger a retry.
type ErrorClassification string

const (
	// ClassificationRetryable indicates failures that may succeed on retry,
	// typically transport errors such as an interrupted read.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates failures that will not succeed on retry.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

var defaultClassifications = map[ErrorCode]ErrorClassification{
	CodeIO: ClassificationRetryable,

	CodeTypeMismatch:    ClassificationPermanent,
	CodeClosed:          ClassificationPermanent,
	CodeUnsupported:     ClassificationPermanent,
	CodeOutOfMemory:     ClassificationPermanent,
	CodeInvalidArgument: ClassificationPermanent,
	CodeUnknown:         ClassificationPermanent,
}

// getDefaultClassification returns ClassificationPermanent for unmapped codes.
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
