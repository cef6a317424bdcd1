package fileobj

import (
	"bufio"
	"errors"
	"io"
	"log/slog"

	"github.com/jmgilman/go/streamio/core"
)

// File is a file-like view over a classified stream.
//
// The zero value is not usable; create one with New.
type File struct {
	in       core.InputStream
	out      core.OutputStream
	combined core.IOStream

	// lines buffers every read from in. It is nil when in is nil.
	lines *bufio.Reader
	chunk int

	cfg *config
	log *slog.Logger
}

// Compile-time interface checks.
var (
	_ io.Reader = (*File)(nil)
	_ io.Writer = (*File)(nil)
	_ io.Seeker = (*File)(nil)
	_ io.Closer = (*File)(nil)
)

// New classifies obj and wraps it.
//
// obj is classified by the configured ProbeFunc (Probe by default). An
// object that is not a stream, a nil handle, or a combined stream with a
// missing end fails with an error matching ErrTypeMismatch or
// ErrInvalidHandle. The File takes ownership of the stream: closing the File
// closes it.
func New(obj any, opts ...Option) (*File, error) {
	cfg := newConfig(opts...)

	in, out, combined, err := classify(cfg.probe, obj)
	if err != nil {
		return nil, err
	}

	f := &File{
		in:       in,
		out:      out,
		combined: combined,
		chunk:    cfg.chunkSize,
		cfg:      cfg,
		log:      cfg.logger,
	}
	if cfg.name != "" {
		f.log = f.log.With(slog.String("stream", cfg.name))
	}

	if in != nil {
		if n := bufferSize(in); n > 0 {
			f.chunk = n
		}
		f.lines = bufio.NewReaderSize(eofReader{in}, f.chunk)
	} else {
		f.chunk = f.stagingSize()
	}

	caps := f.Capabilities()
	f.log.Debug("stream opened",
		slog.String("shape", string(caps.Shape)),
		slog.Bool("readable", caps.Readable),
		slog.Bool("writable", caps.Writable),
		slog.Bool("seekable", caps.Seekable),
		slog.Bool("fd_based", caps.FdBased),
		slog.Int("chunk_size", f.chunk),
	)

	return f, nil
}

// With wraps obj, calls fn with the File and closes it when fn returns. The
// close error, if any, is joined with the error returned by fn.
func With(obj any, fn func(*File) error, opts ...Option) (err error) {
	f, err := New(obj, opts...)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return fn(f)
}

// Shape returns the shape chosen at construction.
func (f *File) Shape() Shape {
	switch {
	case f.combined != nil:
		return ShapeCombined
	case f.in != nil:
		return ShapeInput
	default:
		return ShapeOutput
	}
}

// Capabilities summarises what the wrapped stream supports.
type Capabilities struct {
	Shape       Shape
	Readable    bool
	Writable    bool
	Seekable    bool
	Truncatable bool
	FdBased     bool

	// BufferSize is the read chunk size, or the write staging size for an
	// output-only stream.
	BufferSize int
}

// Capabilities returns the capability set of the wrapped stream.
func (f *File) Capabilities() Capabilities {
	return Capabilities{
		Shape:       f.Shape(),
		Readable:    f.Readable(),
		Writable:    f.Writable(),
		Seekable:    f.Seekable(),
		Truncatable: f.truncatable(),
		FdBased:     f.FdBased(),
		BufferSize:  f.chunk,
	}
}

// Readable reports whether the File has an input direction.
func (f *File) Readable() bool {
	return f.in != nil
}

// Writable reports whether the File has an output direction.
func (f *File) Writable() bool {
	return f.out != nil
}

// Closed reports whether the wrapped stream is closed. For a combined stream
// the combined handle decides; otherwise every owned direction must report
// itself closed.
func (f *File) Closed() bool {
	if f.combined != nil {
		return f.combined.IsClosed()
	}
	if f.in != nil && !f.in.IsClosed() {
		return false
	}
	if f.out != nil && !f.out.IsClosed() {
		return false
	}
	return true
}

// Close closes the wrapped stream. Closing a closed File is a no-op.
//
// A combined stream is closed with a single call on the combined handle.
// Otherwise the input is closed before the output and a direction that
// already reports itself closed is skipped, so a Close that failed part way
// can be retried. Failures are reported with code errors.CodeIO.
func (f *File) Close() error {
	if f.Closed() {
		return nil
	}

	if err := f.closeStreams(); err != nil {
		f.log.Warn("stream close failed", slog.String("error", err.Error()))
		return err
	}

	if f.lines != nil {
		f.lines.Reset(eofReader{f.in})
	}
	f.log.Debug("stream closed")
	return nil
}

func (f *File) closeStreams() error {
	if f.combined != nil {
		if err := f.combined.Close(); err != nil {
			return f.ioError("close", err)
		}
		return nil
	}

	if f.in != nil && !f.in.IsClosed() {
		if err := f.in.Close(); err != nil {
			return f.ioError("close input", err)
		}
	}
	if f.out != nil && !f.out.IsClosed() {
		if err := f.out.Close(); err != nil {
			return f.ioError("close output", err)
		}
	}
	return nil
}

// guard checks the closed state.
func (f *File) guard(op string) error {
	if f.Closed() {
		return opError(op, ErrClosed)
	}
	return nil
}

// bufferSize returns the buffer size a stream reports, or 0.
func bufferSize(s any) int {
	if b, ok := s.(core.Buffered); ok {
		return b.BufferSize()
	}
	return 0
}

// eofReader reports a zero-length, error-free read as io.EOF.
type eofReader struct {
	r io.Reader
}

func (e eofReader) Read(p []byte) (int, error) {
	n, err := e.r.Read(p)
	if n == 0 && err == nil && len(p) > 0 {
		return 0, io.EOF
	}
	return n, err
}
