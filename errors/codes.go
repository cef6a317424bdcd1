package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability.
type ErrorCode string

const (
	// CodeTypeMismatch indicates an object is not a recognised stream, its
	// handle is invalid, or an item passed to a write is not a byte sequence.
	CodeTypeMismatch ErrorCode = "TYPE_MISMATCH"

	// CodeClosed indicates an operation on a stream that has been closed.
	CodeClosed ErrorCode = "CLOSED_STREAM"

	// CodeUnsupported indicates the stream lacks a required capability
	// (readable, writable, seekable, descriptor-based, truncatable).
	CodeUnsupported ErrorCode = "UNSUPPORTED"

	// CodeIO indicates the underlying transport reported an error.
	CodeIO ErrorCode = "IO_FAILURE"

	// CodeOutOfMemory indicates a result buffer could not be allocated.
	CodeOutOfMemory ErrorCode = "OUT_OF_MEMORY"

	// CodeInvalidArgument indicates an argument outside its accepted range,
	// such as an unknown whence value.
	CodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"

	// CodeUnknown indicates an error that was not produced by this module.
	CodeUnknown ErrorCode = "UNKNOWN"
)
