// Package streamtest provides fake streams and a conformance suite for
// stream back-ends.
//
// The fakes in this package implement the contracts in package core with
// call counters and injectable failures, for exercising fileobj.File
// against every combination of capabilities.
//
// The suite checks that a back-end behaves correctly once wrapped in a
// fileobj.File: reads to EOF are complete at any chunk size, lines split on
// the delimiter, close is idempotent and, where supported, writes round-trip
// and seek agrees with tell.
//
// Example usage:
//
//	func TestMyBackend(t *testing.T) {
//	    streamtest.TestBackend(t, streamtest.Factory{
//	        NewReader: func(t *testing.T, data []byte) any {
//	            return mybackend.NewReader(data)
//	        },
//	    })
//	}
package streamtest

import (
	"bytes"
	"errors"
	"io"
	"slices"
	"testing"

	"github.com/jmgilman/go/streamio/fileobj"
)

// Factory creates streams of the back-end under test.
type Factory struct {
	// NewReader returns a fresh input stream whose contents are exactly
	// data. Required.
	NewReader func(t *testing.T, data []byte) any

	// NewWriter returns a fresh output stream and a function that reports
	// what was written. The function is called after the stream has been
	// closed. Optional; write tests are skipped when nil.
	NewWriter func(t *testing.T) (stream any, written func() []byte)

	// Seekable indicates streams from NewReader can seek.
	Seekable bool

	// SkipTests lists subtests to skip, by name (e.g. "Lines").
	SkipTests []string
}

// TestBackend runs the conformance suite against a back-end.
func TestBackend(t *testing.T, factory Factory) {
	if factory.NewReader == nil {
		t.Fatal("streamtest: Factory.NewReader is required")
	}

	run := func(name string, fn func(t *testing.T, factory Factory)) {
		t.Run(name, func(t *testing.T) {
			if slices.Contains(factory.SkipTests, name) {
				t.Skip("Skipped by back-end configuration")
				return
			}
			fn(t, factory)
		})
	}

	run("ReadAll", testReadAll)
	run("ReadInto", testReadInto)
	run("Lines", testLines)
	run("Close", testClose)
	run("Write", testWrite)
	run("Seek", testSeek)
}

// open wraps a stream or fails the test.
func open(t *testing.T, stream any, opts ...fileobj.Option) *fileobj.File {
	t.Helper()
	f, err := fileobj.New(stream, opts...)
	if err != nil {
		t.Fatalf("fileobj.New(%T): got error %v, want nil", stream, err)
	}
	return f
}

// testReadAll checks that reading to EOF returns exactly what was stored,
// with chunk sizes smaller and larger than the contents.
func testReadAll(t *testing.T, factory Factory) {
	data := bytes.Repeat([]byte("0123456789"), 50)

	for _, chunk := range []int{16, 64, 4096} {
		f := open(t, factory.NewReader(t, data), fileobj.WithChunkSize(chunk))

		got, err := f.ReadN(-1)
		if err != nil {
			t.Errorf("ReadN(-1) with chunk %d: got error %v, want nil", chunk, err)
		} else if !bytes.Equal(got, data) {
			t.Errorf("ReadN(-1) with chunk %d: got %d bytes, want %d", chunk, len(got), len(data))
		}

		got, err = f.ReadN(-1)
		if err != nil || len(got) != 0 {
			t.Errorf("ReadN(-1) at EOF: got %q, %v, want empty, nil", got, err)
		}

		if err := f.Close(); err != nil {
			t.Errorf("Close(): got error %v, want nil", err)
		}
	}
}

// testReadInto checks that a small buffer is filled exactly and the next
// read continues where the first stopped.
func testReadInto(t *testing.T, factory Factory) {
	f := open(t, factory.NewReader(t, []byte("hello world")))
	defer f.Close()

	buf := make([]byte, 5)
	n, err := f.ReadInto(buf)
	if err != nil || n != 5 || string(buf) != "hello" {
		t.Errorf("ReadInto(5): got %d, %q, %v, want 5, %q, nil", n, buf[:n], err, "hello")
	}

	n, err = f.ReadInto(buf)
	if err != nil || n != 5 || string(buf) != " worl" {
		t.Errorf("second ReadInto(5): got %d, %q, %v, want 5, %q, nil", n, buf[:n], err, " worl")
	}

	n, err = f.ReadInto(buf)
	if err != nil || n != 1 || string(buf[:n]) != "d" {
		t.Errorf("ReadInto at EOF: got %d, %q, %v, want 1, %q, nil", n, buf[:n], err, "d")
	}
}

// testLines checks line splitting with and without a final delimiter.
func testLines(t *testing.T, factory Factory) {
	cases := []struct {
		data string
		want []string
	}{
		{"a\nb\nc", []string{"a\n", "b\n", "c"}},
		{"a\nb\n", []string{"a\n", "b\n"}},
		{"", nil},
	}

	for _, tc := range cases {
		f := open(t, factory.NewReader(t, []byte(tc.data)))

		lines, err := f.ReadLines(0)
		if err != nil {
			t.Errorf("ReadLines(0) over %q: got error %v, want nil", tc.data, err)
		}
		var got []string
		for _, l := range lines {
			got = append(got, string(l))
		}
		if !slices.Equal(got, tc.want) {
			t.Errorf("ReadLines(0) over %q: got %q, want %q", tc.data, got, tc.want)
		}

		_ = f.Close()
	}
}

// testClose checks close idempotence and the closed-state guard.
func testClose(t *testing.T, factory Factory) {
	f := open(t, factory.NewReader(t, []byte("data")))

	for i := range 3 {
		if err := f.Close(); err != nil {
			t.Errorf("Close() #%d: got error %v, want nil", i+1, err)
		}
	}
	if !f.Closed() {
		t.Errorf("Closed(): got false, want true")
	}

	if _, err := f.ReadN(-1); !errors.Is(err, fileobj.ErrClosed) {
		t.Errorf("ReadN after Close: got error %v, want ErrClosed", err)
	}
	if _, err := f.ReadLine(-1); !errors.Is(err, fileobj.ErrClosed) {
		t.Errorf("ReadLine after Close: got error %v, want ErrClosed", err)
	}
	if _, err := f.Tell(); !errors.Is(err, fileobj.ErrClosed) {
		t.Errorf("Tell after Close: got error %v, want ErrClosed", err)
	}
	if _, err := f.Fileno(); !errors.Is(err, fileobj.ErrClosed) {
		t.Errorf("Fileno after Close: got error %v, want ErrClosed", err)
	}
}

// testWrite checks that bytes written through a File reach the back-end.
func testWrite(t *testing.T, factory Factory) {
	if factory.NewWriter == nil {
		t.Skip("back-end has no output streams")
	}

	stream, written := factory.NewWriter(t)
	f := open(t, stream)

	n, err := f.Write(nil)
	if err != nil || n != 0 {
		t.Errorf("Write(nil): got %d, %v, want 0, nil", n, err)
	}

	data := []byte("first\n")
	if n, err := f.Write(data); err != nil || n != len(data) {
		t.Errorf("Write(%q): got %d, %v, want %d, nil", data, n, err, len(data))
	}
	if err := f.WriteLines([][]byte{[]byte("second\n"), []byte("third")}); err != nil {
		t.Errorf("WriteLines(): got error %v, want nil", err)
	}
	if err := f.Flush(); err != nil {
		t.Errorf("Flush(): got error %v, want nil", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close(): got error %v, want nil", err)
	}

	want := "first\nsecond\nthird"
	if got := string(written()); got != want {
		t.Errorf("written: got %q, want %q", got, want)
	}
}

// testSeek checks seek and tell agree on a seekable back-end.
func testSeek(t *testing.T, factory Factory) {
	data := []byte("0123456789abcdef")
	f := open(t, factory.NewReader(t, data))
	defer f.Close()

	if !factory.Seekable {
		if f.Seekable() {
			t.Errorf("Seekable(): got true, want false")
		}
		if _, err := f.Tell(); !errors.Is(err, fileobj.ErrNotSeekable) {
			t.Errorf("Tell(): got error %v, want ErrNotSeekable", err)
		}
		return
	}

	if !f.Seekable() {
		t.Fatalf("Seekable(): got false, want true")
	}

	pos, err := f.Seek(0, io.SeekEnd)
	if err != nil || pos != int64(len(data)) {
		t.Errorf("Seek(0, SeekEnd): got %d, %v, want %d, nil", pos, err, len(data))
	}
	if pos, err := f.Tell(); err != nil || pos != int64(len(data)) {
		t.Errorf("Tell() at end: got %d, %v, want %d, nil", pos, err, len(data))
	}

	if _, err := f.Seek(5, io.SeekStart); err != nil {
		t.Errorf("Seek(5, SeekStart): got error %v, want nil", err)
	}
	if pos, err := f.Tell(); err != nil || pos != 5 {
		t.Errorf("Tell() after Seek(5): got %d, %v, want 5, nil", pos, err)
	}

	// Read-ahead must not move the reported position past what was returned.
	line, err := f.ReadN(3)
	if err != nil || string(line) != "567" {
		t.Errorf("ReadN(3) at 5: got %q, %v, want %q, nil", line, err, "567")
	}
	if pos, err := f.Tell(); err != nil || pos != 8 {
		t.Errorf("Tell() after ReadN(3): got %d, %v, want 8, nil", pos, err)
	}

	if _, err := f.Seek(-2, io.SeekCurrent); err != nil {
		t.Errorf("Seek(-2, SeekCurrent): got error %v, want nil", err)
	}
	rest, err := f.ReadN(-1)
	if err != nil || string(rest) != "6789abcdef" {
		t.Errorf("ReadN(-1) after Seek(-2, SeekCurrent): got %q, %v, want %q, nil", rest, err, "6789abcdef")
	}
}
