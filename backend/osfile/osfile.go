// Package osfile provides streams over *os.File.
//
// Every stream from this package is descriptor-based. Seekability is
// probed once when the stream is created, so regular files seek and pipes,
// sockets and terminals do not. Writable regular files can be truncated.
//
// Writes to an *os.File are not buffered in user space, so these streams
// do not implement core.Flusher.
package osfile

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/jmgilman/go/streamio/core"
)

// handle is the state shared by every view of one *os.File.
type handle struct {
	file        *os.File
	seekable    bool
	truncatable bool
	keepOpen    bool

	mu     sync.Mutex
	closed bool
}

func newHandle(f *os.File, writable bool) *handle {
	h := &handle{file: f}
	if _, err := f.Seek(0, io.SeekCurrent); err == nil {
		h.seekable = true
	}
	if writable && h.seekable {
		if fi, err := f.Stat(); err == nil && fi.Mode().IsRegular() {
			h.truncatable = true
		}
	}
	return h
}

// Close closes the file once. Streams returned by Stdin, Stdout and Stderr
// are marked closed without closing the descriptor.
func (h *handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	if !h.keepOpen {
		if err := h.file.Close(); err != nil {
			return err
		}
	}
	h.closed = true
	return nil
}

// IsClosed reports whether the stream has been closed.
func (h *handle) IsClosed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closed
}

// Name returns the name of the file.
func (h *handle) Name() string {
	return h.file.Name()
}

// Fd returns the file descriptor.
func (h *handle) Fd() uintptr {
	return h.file.Fd()
}

// Tell returns the current offset.
func (h *handle) Tell() (int64, error) {
	return h.file.Seek(0, io.SeekCurrent)
}

// CanSeek reports whether the file supports seeking.
func (h *handle) CanSeek() bool {
	return h.seekable
}

// Seek implements io.Seeker.
func (h *handle) Seek(offset int64, whence int) (int64, error) {
	return h.file.Seek(offset, whence)
}

// CanTruncate reports whether the file is a writable regular file.
func (h *handle) CanTruncate() bool {
	return h.truncatable
}

// Truncate resizes the file.
func (h *handle) Truncate(size int64) error {
	if !h.truncatable {
		return fmt.Errorf("truncate %s: %w", h.file.Name(), core.ErrUnsupported)
	}
	return h.file.Truncate(size)
}

// Reader is a read-only stream over an *os.File.
type Reader struct {
	*handle
}

// NewReader wraps f as an input stream. The Reader owns f.
func NewReader(f *os.File) *Reader {
	return &Reader{handle: newHandle(f, false)}
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	return r.file.Read(p)
}

// Writer is a write-only stream over an *os.File.
type Writer struct {
	*handle
}

// NewWriter wraps f as an output stream. The Writer owns f.
func NewWriter(f *os.File) *Writer {
	return &Writer{handle: newHandle(f, true)}
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	return w.file.Write(p)
}

// Stream is a read/write *os.File. Its two ends share the file and its
// cursor.
type Stream struct {
	*handle
	r *Reader
	w *Writer
}

// NewStream wraps f, which must be open for reading and writing, as a
// combined stream. The Stream owns f.
func NewStream(f *os.File) *Stream {
	h := newHandle(f, true)
	return &Stream{handle: h, r: &Reader{handle: h}, w: &Writer{handle: h}}
}

// InputStream returns the reading end.
func (s *Stream) InputStream() core.InputStream {
	return s.r
}

// OutputStream returns the writing end.
func (s *Stream) OutputStream() core.OutputStream {
	return s.w
}

// Open opens name for reading.
func Open(name string) (*Reader, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	return NewReader(f), nil
}

// OpenMode opens name with a file-object mode string such as "r", "w+b" or
// "a" (see core.ParseMode). It returns a *Reader for read-only modes, a
// *Writer for write-only modes and a *Stream when the mode contains '+'.
//
// Directories are rejected with core.ErrIsDir, "x" fails with fs.ErrExist
// when name exists, and "r" fails with fs.ErrNotExist when it does not.
func OpenMode(name, mode string) (core.Stream, error) {
	m, err := core.ParseMode(mode)
	if err != nil {
		return nil, err
	}
	if err := m.Check(name, os.Stat); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(name, m.Flag(), 0o644)
	if err != nil {
		return nil, err
	}
	switch {
	case m.Update:
		return NewStream(f), nil
	case m.Read:
		return NewReader(f), nil
	default:
		return NewWriter(f), nil
	}
}

// Create creates or truncates name and opens it for writing.
func Create(name string) (*Writer, error) {
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}
	return NewWriter(f), nil
}

// OpenFile opens name with os.O_RDWR plus any extra flags and returns a
// combined Stream.
func OpenFile(name string, flag int, perm os.FileMode) (*Stream, error) {
	f, err := os.OpenFile(name, flag|os.O_RDWR, perm)
	if err != nil {
		return nil, err
	}
	return NewStream(f), nil
}

// Pipe returns the two ends of an OS pipe.
func Pipe() (*Reader, *Writer, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, nil, err
	}
	return NewReader(r), NewWriter(w), nil
}

// Stdin returns a stream over os.Stdin. Closing it does not close the
// descriptor.
func Stdin() *Reader {
	r := NewReader(os.Stdin)
	r.keepOpen = true
	return r
}

// Stdout returns a stream over os.Stdout. Closing it does not close the
// descriptor.
func Stdout() *Writer {
	w := NewWriter(os.Stdout)
	w.keepOpen = true
	return w
}

// Stderr returns a stream over os.Stderr. Closing it does not close the
// descriptor.
func Stderr() *Writer {
	w := NewWriter(os.Stderr)
	w.keepOpen = true
	return w
}

// Compile-time interface checks.
var (
	_ core.InputStream     = (*Reader)(nil)
	_ core.OutputStream    = (*Writer)(nil)
	_ core.IOStream        = (*Stream)(nil)
	_ core.Seekable        = (*Reader)(nil)
	_ core.DescriptorBased = (*Writer)(nil)
)
