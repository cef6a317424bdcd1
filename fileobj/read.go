package fileobj

import (
	"bytes"
	"errors"
	"io"
)

func (f *File) checkRead(op string) error {
	if err := f.guard(op); err != nil {
		return err
	}
	if f.in == nil {
		return opError(op, ErrNotReadable)
	}
	return nil
}

// ReadN reads up to size bytes.
//
// A negative size reads until EOF, like ReadAll. A size of 0 returns an
// empty slice without touching the stream. Otherwise ReadN keeps reading
// until size bytes have arrived or the stream reaches EOF; a short result
// caused by EOF is not an error.
func (f *File) ReadN(size int) ([]byte, error) {
	if err := f.checkRead("read"); err != nil {
		return nil, err
	}

	switch {
	case size < 0:
		return f.readAll("read")
	case size == 0:
		return []byte{}, nil
	}
	return f.readFull("read", size)
}

// ReadAll reads in fixed-size chunks until EOF and returns everything read.
// The chunk size is the input's own buffer size when it reports one, and
// the configured chunk size otherwise.
func (f *File) ReadAll() ([]byte, error) {
	if err := f.checkRead("readall"); err != nil {
		return nil, err
	}
	return f.readAll("readall")
}

// Read1 returns at most size bytes using at most one read of the stream. A
// negative size reads at most one chunk, and a larger size is limited to one
// chunk or the read-ahead, whichever is bigger. An empty result means EOF.
func (f *File) Read1(size int) ([]byte, error) {
	if err := f.checkRead("read1"); err != nil {
		return nil, err
	}

	if size < 0 {
		size = f.chunk
	}
	if size == 0 {
		return []byte{}, nil
	}

	if limit := max(f.lines.Buffered(), f.chunk); size > limit {
		size = limit
	}

	p := make([]byte, size)
	n, err := f.lines.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, f.ioError("read1", err)
	}
	return p[:n], nil
}

// ReadInto fills p, reading until p is full or the stream reaches EOF, and
// returns the number of bytes stored. A short count caused by EOF is not an
// error.
func (f *File) ReadInto(p []byte) (int, error) {
	if err := f.checkRead("readinto"); err != nil {
		return 0, err
	}
	if len(p) == 0 {
		return 0, nil
	}

	n, err := io.ReadFull(f.lines, p)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return n, f.ioError("readinto", err)
	}
	return n, nil
}

// ReadInto1 stores into p using at most one read of the stream.
func (f *File) ReadInto1(p []byte) (int, error) {
	if err := f.checkRead("readinto1"); err != nil {
		return 0, err
	}
	if len(p) == 0 {
		return 0, nil
	}

	n, err := f.lines.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		return n, f.ioError("readinto1", err)
	}
	return n, nil
}

// Read implements io.Reader. It performs at most one read of the stream and
// returns io.EOF at the end of the stream.
func (f *File) Read(p []byte) (int, error) {
	if err := f.checkRead("read"); err != nil {
		return 0, err
	}
	if len(p) == 0 {
		return 0, nil
	}

	n, err := f.lines.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		return n, f.ioError("read", err)
	}
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

// readFull reads until size bytes have been read or EOF.
func (f *File) readFull(op string, size int) (b []byte, err error) {
	defer catchTooLarge(op, &err)

	var buf bytes.Buffer
	buf.Grow(min(size, f.chunk))
	if _, err := io.CopyN(&buf, f.lines, int64(size)); err != nil && !errors.Is(err, io.EOF) {
		return nil, f.ioError(op, err)
	}
	return result(&buf), nil
}

// readAll reads fixed-size chunks until a read returns nothing.
func (f *File) readAll(op string) (b []byte, err error) {
	defer catchTooLarge(op, &err)

	var buf bytes.Buffer
	chunk := make([]byte, f.chunk)
	for {
		n, rerr := f.lines.Read(chunk)
		buf.Write(chunk[:n])
		if rerr != nil {
			if errors.Is(rerr, io.EOF) {
				break
			}
			return nil, f.ioError(op, rerr)
		}
		if n == 0 {
			break
		}
	}
	return result(&buf), nil
}

// result returns the contents of buf, never nil.
func result(buf *bytes.Buffer) []byte {
	if buf.Len() == 0 {
		return []byte{}
	}
	return buf.Bytes()
}
