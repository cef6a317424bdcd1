package streamtest

import (
	"errors"
	"fmt"
	"io"

	"github.com/jmgilman/go/streamio/core"
)

// Buffer is an in-memory stream with a single cursor shared by reads and
// writes. It implements every optional trait in package core except
// core.DescriptorBased (see FdBuffer), and counts calls so tests can assert
// on how the adapter drives it.
//
// Buffer satisfies both core.InputStream and core.OutputStream, so the
// default probe classifies it as input-only. Wrap it in fileobj.OutputOnly
// or a Duplex to use the other shapes.
type Buffer struct {
	data   []byte
	pos    int64
	closed bool

	// MaxChunk limits the bytes moved by a single Read or Write. Zero means
	// no limit.
	MaxChunk int

	// BufSize is returned by BufferSize. Zero means the stream does not
	// report a size.
	BufSize int

	// ZeroEOF makes Read report the end of the stream as (0, nil) instead of
	// (0, io.EOF).
	ZeroEOF bool

	// NoSeek makes CanSeek report false and Seek fail.
	NoSeek bool

	// NoTruncate makes CanTruncate report false and Truncate fail.
	NoTruncate bool

	// Injected failures, returned by the matching method when non-nil.
	ReadErr     error
	WriteErr    error
	CloseErr    error
	FlushErr    error
	SeekErr     error
	TruncateErr error

	// Call counters.
	Reads     int
	Writes    int
	Closes    int
	Flushes   int
	Seeks     int
	Truncates int
}

// NewBuffer returns an open Buffer holding a copy of data with the cursor
// at the start.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: append([]byte(nil), data...)}
}

// Bytes returns a copy of the full contents, independent of the cursor.
func (b *Buffer) Bytes() []byte {
	return append([]byte(nil), b.data...)
}

// Len returns the size of the contents.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Read implements io.Reader.
func (b *Buffer) Read(p []byte) (int, error) {
	b.Reads++
	if b.closed {
		return 0, core.ErrClosed
	}
	if b.ReadErr != nil {
		return 0, b.ReadErr
	}
	if b.pos >= int64(len(b.data)) {
		if b.ZeroEOF {
			return 0, nil
		}
		return 0, io.EOF
	}

	n := copy(b.limit(p), b.data[b.pos:])
	b.pos += int64(n)
	return n, nil
}

// Write implements io.Writer. With MaxChunk set it accepts fewer bytes than
// requested without an error.
func (b *Buffer) Write(p []byte) (int, error) {
	b.Writes++
	if b.closed {
		return 0, core.ErrClosed
	}
	if b.WriteErr != nil {
		return 0, b.WriteErr
	}

	p = b.limit(p)
	end := b.pos + int64(len(p))
	if end > int64(len(b.data)) {
		b.data = append(b.data, make([]byte, end-int64(len(b.data)))...)
	}
	n := copy(b.data[b.pos:], p)
	b.pos += int64(n)
	return n, nil
}

func (b *Buffer) limit(p []byte) []byte {
	if b.MaxChunk > 0 && len(p) > b.MaxChunk {
		return p[:b.MaxChunk]
	}
	return p
}

// Close marks the buffer closed. Closing twice is a no-op.
func (b *Buffer) Close() error {
	b.Closes++
	if b.CloseErr != nil {
		return b.CloseErr
	}
	b.closed = true
	return nil
}

// IsClosed reports whether Close has succeeded.
func (b *Buffer) IsClosed() bool {
	return b.closed
}

// Tell returns the cursor position.
func (b *Buffer) Tell() (int64, error) {
	if b.closed {
		return 0, core.ErrClosed
	}
	if b.SeekErr != nil {
		return 0, b.SeekErr
	}
	return b.pos, nil
}

// CanSeek reports whether Seek is supported.
func (b *Buffer) CanSeek() bool {
	return !b.NoSeek
}

// Seek moves the cursor.
func (b *Buffer) Seek(offset int64, whence int) (int64, error) {
	b.Seeks++
	if b.closed {
		return 0, core.ErrClosed
	}
	if b.NoSeek {
		return 0, core.ErrUnsupported
	}
	if b.SeekErr != nil {
		return 0, b.SeekErr
	}

	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = b.pos + offset
	case io.SeekEnd:
		abs = int64(len(b.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence %d", whence)
	}
	if abs < 0 {
		return 0, errors.New("negative position")
	}
	b.pos = abs
	return abs, nil
}

// CanTruncate reports whether Truncate is supported.
func (b *Buffer) CanTruncate() bool {
	return !b.NoTruncate
}

// Truncate resizes the contents, padding with zeros when growing.
func (b *Buffer) Truncate(size int64) error {
	b.Truncates++
	if b.closed {
		return core.ErrClosed
	}
	if b.NoTruncate {
		return core.ErrUnsupported
	}
	if b.TruncateErr != nil {
		return b.TruncateErr
	}

	if size <= int64(len(b.data)) {
		b.data = b.data[:size]
	} else {
		b.data = append(b.data, make([]byte, size-int64(len(b.data)))...)
	}
	return nil
}

// BufferSize returns BufSize.
func (b *Buffer) BufferSize() int {
	return b.BufSize
}

// Flush counts the call and returns FlushErr.
func (b *Buffer) Flush() error {
	b.Flushes++
	if b.closed {
		return core.ErrClosed
	}
	return b.FlushErr
}

// FdBuffer is a Buffer that also reports a file descriptor.
type FdBuffer struct {
	*Buffer
	FD uintptr
}

// Fd returns FD.
func (b *FdBuffer) Fd() uintptr {
	return b.FD
}

// Reader is an input stream over an io.Reader with no optional traits.
type Reader struct {
	r      io.Reader
	closed bool

	Reads  int
	Closes int
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	r.Reads++
	if r.closed {
		return 0, core.ErrClosed
	}
	return r.r.Read(p)
}

// Close marks the reader closed.
func (r *Reader) Close() error {
	r.Closes++
	r.closed = true
	return nil
}

// IsClosed reports whether Close was called.
func (r *Reader) IsClosed() bool {
	return r.closed
}

// Writer is an output stream over an io.Writer with no optional traits.
type Writer struct {
	w      io.Writer
	closed bool

	Writes int
	Closes int
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	w.Writes++
	if w.closed {
		return 0, core.ErrClosed
	}
	return w.w.Write(p)
}

// Close marks the writer closed.
func (w *Writer) Close() error {
	w.Closes++
	w.closed = true
	return nil
}

// IsClosed reports whether Close was called.
func (w *Writer) IsClosed() bool {
	return w.closed
}

// Duplex couples an input and an output into a core.IOStream. Closing the
// Duplex closes both ends.
type Duplex struct {
	In  core.InputStream
	Out core.OutputStream

	// CloseErr is returned by Close when non-nil; the ends are left open.
	CloseErr error
	Closes   int

	closed bool
}

// NewDuplex couples in and out.
func NewDuplex(in core.InputStream, out core.OutputStream) *Duplex {
	return &Duplex{In: in, Out: out}
}

// NewShared returns a Duplex whose two ends are the same Buffer, modelling
// a read/write file with one cursor.
func NewShared(b *Buffer) *Duplex {
	return &Duplex{In: b, Out: b}
}

// InputStream returns the input end.
func (d *Duplex) InputStream() core.InputStream {
	return d.In
}

// OutputStream returns the output end.
func (d *Duplex) OutputStream() core.OutputStream {
	return d.Out
}

// Close closes both ends.
func (d *Duplex) Close() error {
	d.Closes++
	if d.CloseErr != nil {
		return d.CloseErr
	}
	d.closed = true
	return errors.Join(d.In.Close(), d.Out.Close())
}

// IsClosed reports whether Close has succeeded.
func (d *Duplex) IsClosed() bool {
	return d.closed
}
