package fileobj

import (
	"fmt"
	"io"

	"github.com/jmgilman/go/streamio/core"
)

// seekable returns s as a core.Seekable if it implements the trait and
// confirms it can seek.
func seekable(s any) (core.Seekable, bool) {
	sk, ok := s.(core.Seekable)
	if !ok || !sk.CanSeek() {
		return nil, false
	}
	return sk, true
}

// Seekable reports whether at least one direction can seek.
func (f *File) Seekable() bool {
	_, in := seekable(f.in)
	_, out := seekable(f.out)
	return in || out
}

func (f *File) truncatable() bool {
	t, ok := f.out.(core.Seekable)
	return ok && t.CanTruncate()
}

func (f *File) checkSeek(op string) error {
	if err := f.guard(op); err != nil {
		return err
	}
	if !f.Seekable() {
		return opError(op, ErrNotSeekable)
	}
	return nil
}

// Tell returns the current position. When the input can seek its position
// is used, less any bytes read ahead but not yet returned; otherwise the
// output's position is used.
func (f *File) Tell() (int64, error) {
	if err := f.checkSeek("tell"); err != nil {
		return 0, err
	}
	return f.tell("tell")
}

func (f *File) tell(op string) (int64, error) {
	if s, ok := seekable(f.in); ok {
		pos, err := s.Tell()
		if err != nil {
			return 0, f.ioError(op, err)
		}
		return pos - int64(f.lines.Buffered()), nil
	}

	s, _ := seekable(f.out)
	pos, err := s.Tell()
	if err != nil {
		return 0, f.ioError(op, err)
	}
	return pos, nil
}

// Seek implements io.Seeker and returns the new position.
//
// When the input can seek, offset and whence are applied to it and the
// output, if it can seek too, is moved to the same absolute position. A
// failure on either side stops the operation. Any read-ahead is discarded.
//
// The input position is authoritative. With two independent cursors the
// output is realigned to the input even for Seek(0, io.SeekCurrent), so an
// output that had moved ahead of or behind the input loses its own position.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	if err := f.checkSeek("seek"); err != nil {
		return 0, err
	}
	switch whence {
	case io.SeekStart, io.SeekCurrent, io.SeekEnd:
	default:
		return 0, fmt.Errorf("seek: whence %d: %w", whence, ErrInvalidWhence)
	}

	in, inOK := seekable(f.in)
	out, outOK := seekable(f.out)

	if !inOK {
		pos, err := out.Seek(offset, whence)
		if err != nil {
			return 0, f.ioError("seek", err)
		}
		return pos, nil
	}

	if whence == io.SeekCurrent {
		offset -= int64(f.lines.Buffered())
	}
	pos, err := in.Seek(offset, whence)
	if err != nil {
		return 0, f.ioError("seek", err)
	}
	f.lines.Reset(eofReader{f.in})

	if outOK {
		if _, err := out.Seek(pos, io.SeekStart); err != nil {
			return 0, f.ioError("seek", err)
		}
	}
	return pos, nil
}

// Truncate resizes the stream to size bytes and returns size. The position
// is not moved. The output must support truncation.
func (f *File) Truncate(size int64) (int64, error) {
	if err := f.checkTruncate("truncate"); err != nil {
		return 0, err
	}
	if size < 0 {
		return 0, fmt.Errorf("truncate: size %d: %w", size, ErrNegativeSize)
	}
	return f.truncate("truncate", size)
}

// TruncateCurrent truncates the stream at the current position.
func (f *File) TruncateCurrent() (int64, error) {
	if err := f.checkTruncate("truncate"); err != nil {
		return 0, err
	}
	pos, err := f.tell("truncate")
	if err != nil {
		return 0, err
	}
	return f.truncate("truncate", pos)
}

func (f *File) checkTruncate(op string) error {
	if err := f.checkSeek(op); err != nil {
		return err
	}
	if !f.truncatable() {
		return opError(op, ErrCannotTruncate)
	}
	return nil
}

func (f *File) truncate(op string, size int64) (int64, error) {
	if err := f.syncReadBuffer(op); err != nil {
		return 0, err
	}
	if err := f.out.(core.Seekable).Truncate(size); err != nil {
		return 0, f.ioError(op, err)
	}
	return size, nil
}
