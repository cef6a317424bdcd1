package fileobj

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"iter"
)

// ReadLine reads through the next Delimiter, or to EOF, and returns the
// line with its delimiter. At EOF it returns an empty slice.
//
// A positive size caps the result: the whole line is consumed from the
// stream and anything past size bytes is dropped. A size of 0 returns an
// empty slice without touching the stream; a negative size means no cap.
func (f *File) ReadLine(size int) ([]byte, error) {
	if err := f.checkRead("readline"); err != nil {
		return nil, err
	}
	if size == 0 {
		return []byte{}, nil
	}

	line, err := f.readLine("readline")
	if err != nil {
		return nil, err
	}
	if size > 0 && len(line) > size {
		line = line[:size]
	}
	return line, nil
}

// ReadLines reads lines until EOF. If hint is positive, it stops once the
// total size of the lines read reaches hint.
func (f *File) ReadLines(hint int) ([][]byte, error) {
	if err := f.checkRead("readlines"); err != nil {
		return nil, err
	}

	var (
		lines [][]byte
		total int
	)
	for {
		line, err := f.readLine("readlines")
		if err != nil {
			return nil, err
		}
		if len(line) == 0 {
			break
		}
		lines = append(lines, line)
		total += len(line)
		if hint > 0 && total >= hint {
			break
		}
	}
	return lines, nil
}

// Lines returns an iterator over the remaining lines. Iteration ends at EOF
// or after yielding the first error. Closing the File between steps ends
// iteration with ErrClosed.
func (f *File) Lines() iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		if err := f.checkRead("lines"); err != nil {
			yield(nil, err)
			return
		}
		for {
			if err := f.guard("lines"); err != nil {
				yield(nil, err)
				return
			}
			line, err := f.readLine("lines")
			if err != nil {
				yield(nil, err)
				return
			}
			if len(line) == 0 {
				return
			}
			if !yield(line, nil) {
				return
			}
		}
	}
}

// readLine returns the next line including its delimiter. Lines longer than
// the read buffer are assembled from successive fragments.
func (f *File) readLine(op string) (line []byte, err error) {
	defer catchTooLarge(op, &err)

	var buf bytes.Buffer
	for {
		frag, rerr := f.lines.ReadSlice(Delimiter)
		buf.Write(frag)
		switch {
		case rerr == nil, errors.Is(rerr, io.EOF):
			return result(&buf), nil
		case errors.Is(rerr, bufio.ErrBufferFull):
			continue
		default:
			return nil, f.ioError(op, rerr)
		}
	}
}
