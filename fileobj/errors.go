package fileobj

import (
	"bytes"
	"errors"
	"fmt"

	streamerrors "github.com/jmgilman/go/streamio/errors"
)

var (
	// ErrTypeMismatch is returned when the object given to New is not a stream.
	ErrTypeMismatch = streamerrors.New(streamerrors.CodeTypeMismatch, "expected a stream object")

	// ErrInvalidHandle is returned when the object given to New is a stream
	// type whose handle is nil or incomplete.
	ErrInvalidHandle = streamerrors.New(streamerrors.CodeTypeMismatch, "invalid stream handle")

	// ErrNotBytes is returned by WriteValues for an item that is not a byte sequence.
	ErrNotBytes = streamerrors.New(streamerrors.CodeTypeMismatch, "a bytes-like object is required")

	// ErrClosed is returned by any operation on a closed File.
	ErrClosed = streamerrors.New(streamerrors.CodeClosed, "I/O operation on closed file")

	// ErrNotReadable is returned by read operations on a File with no input.
	ErrNotReadable = streamerrors.New(streamerrors.CodeUnsupported, "stream is not readable")

	// ErrNotWritable is returned by write operations on a File with no output.
	ErrNotWritable = streamerrors.New(streamerrors.CodeUnsupported, "stream is not writable")

	// ErrNotSeekable is returned by Tell, Seek and Truncate when no direction can seek.
	ErrNotSeekable = streamerrors.New(streamerrors.CodeUnsupported, "underlying stream is not seekable")

	// ErrCannotTruncate is returned by Truncate when the output cannot be truncated.
	ErrCannotTruncate = streamerrors.New(streamerrors.CodeUnsupported, "underlying stream cannot be truncated")

	// ErrNotDescriptorBased is returned by Fileno when a direction has no descriptor.
	ErrNotDescriptorBased = streamerrors.New(streamerrors.CodeUnsupported, "underlying stream is not based on a file descriptor")

	// ErrInvalidWhence is returned by Seek for a whence other than io.SeekStart,
	// io.SeekCurrent or io.SeekEnd.
	ErrInvalidWhence = streamerrors.New(streamerrors.CodeInvalidArgument, "invalid whence value")

	// ErrNegativeSize is returned by Truncate for a negative size.
	ErrNegativeSize = streamerrors.New(streamerrors.CodeInvalidArgument, "negative size")
)

// opError prefixes a sentinel with the operation name, keeping errors.Is intact.
func opError(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// ioError classifies a transport failure. The stream name set with WithName,
// if any, is attached as the "stream" context field.
func (f *File) ioError(op string, err error) error {
	wrapped := streamerrors.Wrapf(err, streamerrors.CodeIO, "%s failed", op)
	if f.cfg.name == "" {
		return wrapped
	}
	return streamerrors.WithContext(wrapped, "stream", f.cfg.name)
}

// catchTooLarge converts the bytes.ErrTooLarge panic raised by bytes.Buffer
// on allocation failure into an out-of-memory error. Any other panic is
// re-raised.
func catchTooLarge(op string, errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if err, ok := r.(error); ok && errors.Is(err, bytes.ErrTooLarge) {
		*errp = streamerrors.Wrapf(err, streamerrors.CodeOutOfMemory, "%s: cannot allocate result buffer", op)
		return
	}
	panic(r)
}
