// Package pipe provides in-memory pipes as streams.
//
// Pipe returns the two ends of a one-way pipe: an input-only Reader and an
// output-only Writer. New returns two connected Ports, each a combined
// stream whose writes are read by the other Port. Neither can seek.
//
// A blocking pipe waits in Read until data arrives or the writing end is
// closed. A non-blocking pipe reports EOF whenever it is empty.
package pipe

import "github.com/jmgilman/go/streamio/core"

// Pipe creates a one-way, in-memory pipe. Closing the Writer lets the
// Reader drain what is left and then report EOF. Closing the Reader makes
// further writes fail with io.ErrClosedPipe.
func Pipe(block bool) (*Reader, *Writer) {
	b := newBuffer(block)
	return &Reader{buf: b}, &Writer{buf: b}
}

// New creates a synchronous, in-memory, full duplex connection.
func New(block bool) (*Port, *Port) {
	r1, w1 := Pipe(block)
	r2, w2 := Pipe(block)

	return &Port{reader: r1, writer: w2}, &Port{reader: r2, writer: w1}
}

// Reader is the reading end of a pipe.
type Reader struct {
	buf *buffer
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	return r.buf.read(p)
}

// Close closes the reading end.
func (r *Reader) Close() error {
	r.buf.closeRead()
	return nil
}

// IsClosed reports whether the reading end is closed.
func (r *Reader) IsClosed() bool {
	return r.buf.readClosed()
}

// Buffered returns the number of bytes waiting to be read.
func (r *Reader) Buffered() int {
	return r.buf.size()
}

// Writer is the writing end of a pipe.
type Writer struct {
	buf *buffer
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	return w.buf.write(p)
}

// Close closes the writing end.
func (w *Writer) Close() error {
	w.buf.closeWrite()
	return nil
}

// IsClosed reports whether the writing end is closed.
func (w *Writer) IsClosed() bool {
	return w.buf.writeClosed()
}

// Port is one side of a duplex connection created by New.
type Port struct {
	reader *Reader
	writer *Writer
}

// InputStream returns the end that receives the peer's writes.
func (p *Port) InputStream() core.InputStream {
	return p.reader
}

// OutputStream returns the end that the peer reads from.
func (p *Port) OutputStream() core.OutputStream {
	return p.writer
}

// Read reads data written by the peer.
func (p *Port) Read(b []byte) (int, error) {
	return p.reader.Read(b)
}

// Write writes data for the peer.
func (p *Port) Write(b []byte) (int, error) {
	return p.writer.Write(b)
}

// Close closes both ends. The peer sees EOF once it has drained what was
// written.
func (p *Port) Close() error {
	err1 := p.reader.Close()
	err2 := p.writer.Close()
	if err1 != nil {
		return err1
	}
	return err2
}

// IsClosed reports whether Close has been called.
func (p *Port) IsClosed() bool {
	return p.reader.IsClosed() && p.writer.IsClosed()
}

// Size returns the number of bytes waiting to be read by this Port.
func (p *Port) Size() int {
	return p.reader.Buffered()
}
