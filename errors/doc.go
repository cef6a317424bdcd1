// Package errors provides the structured error taxonomy used by the stream
// adapter and its back-ends.
//
// Every failure surfaced by this module carries an ErrorCode that places it in
// one of a small number of categories, plus a classification that tells the
// caller whether repeating the operation can help.
//
// # Error Codes
//
//   - CodeTypeMismatch: an object or item is not a recognised stream or byte sequence
//   - CodeClosed: the operation was attempted after the stream was closed
//   - CodeUnsupported: the stream lacks the capability the operation needs
//   - CodeIO: the underlying transport reported a failure
//   - CodeOutOfMemory: a result buffer could not be allocated
//   - CodeInvalidArgument: an argument is outside its accepted range
//   - CodeUnknown: anything that was not produced by this module
//
// Only CodeIO is retryable by default. The others describe conditions that
// will not change by trying again.
//
// # Standard Library Compatibility
//
// StreamError implements Unwrap, so errors.Is and errors.As traverse the chain:
//
//	n, err := f.Write(data)
//	if errors.GetCode(err) == errors.CodeClosed {
//		// reopen
//	}
//
//	var se errors.StreamError
//	if errors.As(err, &se) {
//		log.Printf("%s: %s", se.Code(), se.Message())
//	}
package errors
