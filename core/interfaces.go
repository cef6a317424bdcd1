package core

import "io"

// Stream is the lifecycle contract shared by every stream direction.
type Stream interface {
	// Close closes the stream. Closing an already-closed stream should
	// return nil.
	Close() error

	// IsClosed reports whether the stream has been closed.
	IsClosed() bool
}

// InputStream is a readable stream.
//
// Read follows the io.Reader contract. A read returning zero bytes, with
// either io.EOF or a nil error, marks the end of the stream.
type InputStream interface {
	Stream
	io.Reader
}

// OutputStream is a writable stream.
//
// Unlike a strict io.Writer, Write may accept fewer bytes than requested
// without an error; callers retry with the remainder.
type OutputStream interface {
	Stream
	io.Writer
}

// IOStream is a bidirectional stream whose two ends are coupled.
//
// Close on the IOStream closes both ends, and IsClosed on the IOStream is
// authoritative for the pair. The ends must not be closed individually as a
// substitute.
type IOStream interface {
	Stream

	// InputStream returns the readable end. It must not return nil for a
	// valid stream.
	InputStream() InputStream

	// OutputStream returns the writable end. It must not return nil for a
	// valid stream.
	OutputStream() OutputStream
}

// Seekable is an optional trait for streams with a cursor.
//
// Use type assertion to check for it:
//
//	if s, ok := stream.(Seekable); ok && s.CanSeek() {
//	    pos, err := s.Seek(0, io.SeekEnd)
//	}
type Seekable interface {
	// Tell returns the current absolute position.
	Tell() (int64, error)

	// CanSeek reports whether Seek is actually supported.
	CanSeek() bool

	// Seek sets the position for the next read or write, interpreting
	// offset according to whence (io.SeekStart, io.SeekCurrent, io.SeekEnd).
	// It returns the new absolute position.
	Seek(offset int64, whence int) (int64, error)

	// CanTruncate reports whether Truncate is actually supported.
	CanTruncate() bool

	// Truncate changes the size of the stream. It does not move the cursor.
	Truncate(size int64) error
}

// DescriptorBased is an optional trait for streams backed by an OS file
// descriptor.
type DescriptorBased interface {
	// Fd returns the native file descriptor.
	Fd() uintptr
}

// Buffered is an optional trait for streams that keep their own buffer.
// The adapter sizes its read chunks and write staging to match it.
type Buffered interface {
	// BufferSize returns the size of the stream's buffer in bytes.
	BufferSize() int
}

// Flusher is an optional trait for output streams that buffer writes.
//
// Flush may return an error wrapping ErrUnsupported to indicate the stream
// does not implement flushing; that case is not treated as a failure.
type Flusher interface {
	Flush() error
}
