package fileobj

import (
	"errors"
	"fmt"
	"io"

	"github.com/jmgilman/go/streamio/core"
)

var errInvalidWrite = errors.New("invalid write result")

func (f *File) checkWrite(op string) error {
	if err := f.guard(op); err != nil {
		return err
	}
	if f.out == nil {
		return opError(op, ErrNotWritable)
	}
	return nil
}

// Write writes all of p, retrying until the stream has accepted every byte.
// An empty p returns 0 without touching the stream. On failure Write
// returns 0: the amount already written is not reported.
func (f *File) Write(p []byte) (int, error) {
	if err := f.checkWrite("write"); err != nil {
		return 0, err
	}
	if len(p) == 0 {
		return 0, nil
	}

	if err := f.syncReadBuffer("write"); err != nil {
		return 0, err
	}
	if err := f.writeAll("write", p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteLines writes each item in order. No delimiter is added. The items
// are coalesced into a staging buffer the size of the output's own buffer
// (or the configured chunk size), which is written out whenever it fills
// and once more at the end.
func (f *File) WriteLines(lines [][]byte) error {
	if err := f.checkWrite("writelines"); err != nil {
		return err
	}
	if err := f.syncReadBuffer("writelines"); err != nil {
		return err
	}

	s := f.newStager("writelines")
	for _, line := range lines {
		if err := s.add(line); err != nil {
			return err
		}
	}
	return s.flush()
}

// WriteValues is WriteLines for dynamically typed items. Each item must be
// a []byte or provide a Bytes() []byte method. The first item that is
// neither fails with ErrNotBytes; staging buffers already written stay
// written and the unwritten remainder is dropped.
func (f *File) WriteValues(items []any) error {
	if err := f.checkWrite("writelines"); err != nil {
		return err
	}
	if err := f.syncReadBuffer("writelines"); err != nil {
		return err
	}

	s := f.newStager("writelines")
	for i, item := range items {
		var b []byte
		switch v := item.(type) {
		case []byte:
			b = v
		case interface{ Bytes() []byte }:
			b = v.Bytes()
		default:
			return fmt.Errorf("writelines: item %d is %T: %w", i, item, ErrNotBytes)
		}
		if err := s.add(b); err != nil {
			return err
		}
	}
	return s.flush()
}

// Flush asks the output to flush its buffers. It is a no-op for a File
// without an output, or whose output does not flush or reports
// core.ErrUnsupported.
func (f *File) Flush() error {
	if err := f.guard("flush"); err != nil {
		return err
	}
	if f.out == nil {
		return nil
	}

	fl, ok := f.out.(core.Flusher)
	if !ok {
		if fl, ok = f.combined.(core.Flusher); !ok {
			return nil
		}
	}
	if err := fl.Flush(); err != nil && !errors.Is(err, core.ErrUnsupported) {
		return f.ioError("flush", err)
	}
	return nil
}

// writeAll writes p in as many calls as the output needs.
func (f *File) writeAll(op string, p []byte) error {
	for len(p) > 0 {
		n, err := f.out.Write(p)
		switch {
		case err != nil:
			return f.ioError(op, err)
		case n < 0 || n > len(p):
			return f.ioError(op, errInvalidWrite)
		case n == 0:
			return f.ioError(op, io.ErrShortWrite)
		}
		p = p[n:]
	}
	return nil
}

// syncReadBuffer gives back read-ahead before a write on a combined stream,
// so the write lands at the position the caller has read up to. It only
// applies when the input can seek; otherwise the two directions are
// independent and the buffer is kept.
func (f *File) syncReadBuffer(op string) error {
	if f.lines == nil || f.lines.Buffered() == 0 {
		return nil
	}
	s, ok := seekable(f.in)
	if !ok {
		return nil
	}
	if _, err := s.Seek(-int64(f.lines.Buffered()), io.SeekCurrent); err != nil {
		return f.ioError(op, err)
	}
	f.lines.Reset(eofReader{f.in})
	return nil
}

// stagingSize is the output's own buffer size, or the configured chunk size.
func (f *File) stagingSize() int {
	if n := bufferSize(f.out); n > 0 {
		return n
	}
	return f.cfg.chunkSize
}

// stager coalesces small writes into fixed-size chunks.
type stager struct {
	f   *File
	op  string
	buf []byte
}

func (f *File) newStager(op string) *stager {
	return &stager{f: f, op: op, buf: make([]byte, 0, f.stagingSize())}
}

func (s *stager) add(b []byte) error {
	for len(b) > 0 {
		n := copy(s.buf[len(s.buf):cap(s.buf)], b)
		s.buf = s.buf[:len(s.buf)+n]
		b = b[n:]
		if len(s.buf) == cap(s.buf) {
			if err := s.flush(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *stager) flush() error {
	if len(s.buf) == 0 {
		return nil
	}
	if err := s.f.writeAll(s.op, s.buf); err != nil {
		return err
	}
	s.buf = s.buf[:0]
	return nil
}
