package billy

import (
	"fmt"
	"io"
	"sync"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/jmgilman/go/streamio/core"
)

// handle is the state shared by every view of one billy.File.
type handle struct {
	file     billy.File
	writable bool

	mu     sync.Mutex
	closed bool
}

// Close closes the file once. Later calls return nil.
func (h *handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	if err := h.file.Close(); err != nil {
		return err
	}
	h.closed = true
	return nil
}

// IsClosed reports whether the file has been closed.
func (h *handle) IsClosed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closed
}

// Name returns the name of the file.
func (h *handle) Name() string {
	return h.file.Name()
}

// Tell returns the current offset.
func (h *handle) Tell() (int64, error) {
	return h.file.Seek(0, io.SeekCurrent)
}

// CanSeek reports true; every billy.File can seek.
func (h *handle) CanSeek() bool {
	return true
}

// Seek implements io.Seeker.
func (h *handle) Seek(offset int64, whence int) (int64, error) {
	return h.file.Seek(offset, whence)
}

// CanTruncate reports whether the file was opened for writing.
func (h *handle) CanTruncate() bool {
	return h.writable
}

// Truncate resizes the file.
func (h *handle) Truncate(size int64) error {
	if !h.writable {
		return fmt.Errorf("truncate %s: %w", h.file.Name(), core.ErrUnsupported)
	}
	return h.file.Truncate(size)
}

// Reader is a read-only view of a billy.File.
type Reader struct {
	*handle
}

// NewReader wraps f as an input stream. The Reader owns f.
func NewReader(f billy.File) *Reader {
	return &Reader{handle: &handle{file: f}}
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	return r.file.Read(p)
}

// Writer is a write-only view of a billy.File.
type Writer struct {
	*handle
}

// NewWriter wraps f as an output stream. The Writer owns f.
func NewWriter(f billy.File) *Writer {
	return &Writer{handle: &handle{file: f, writable: true}}
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	return w.file.Write(p)
}

// Flush syncs the file when the backend supports it (osfs) and reports
// core.ErrUnsupported otherwise (memfs).
func (w *Writer) Flush() error {
	if syncer, ok := w.file.(interface{ Sync() error }); ok {
		return syncer.Sync()
	}
	return core.ErrUnsupported
}

// Stream is a read/write billy.File. Its Reader and Writer share the file
// and its cursor; closing the Stream closes the file.
type Stream struct {
	*handle
	r *Reader
	w *Writer
}

// NewStream wraps f, which must be open for reading and writing, as a
// combined stream. The Stream owns f.
func NewStream(f billy.File) *Stream {
	h := &handle{file: f, writable: true}
	return &Stream{handle: h, r: &Reader{handle: h}, w: &Writer{handle: h}}
}

// InputStream returns the reading view.
func (s *Stream) InputStream() core.InputStream {
	return s.r
}

// OutputStream returns the writing view.
func (s *Stream) OutputStream() core.OutputStream {
	return s.w
}

func readFile(bfs billy.Basic, name string) ([]byte, error) {
	data, err := util.ReadFile(bfs, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

// Compile-time interface checks.
var (
	_ core.InputStream  = (*Reader)(nil)
	_ core.OutputStream = (*Writer)(nil)
	_ core.IOStream     = (*Stream)(nil)
	_ core.Seekable     = (*Reader)(nil)
	_ core.Seekable     = (*Writer)(nil)
	_ core.Flusher      = (*Writer)(nil)
)
