package fileobj_test

import (
	"bytes"
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	streamerrors "github.com/jmgilman/go/streamio/errors"
	"github.com/jmgilman/go/streamio/fileobj"
	"github.com/jmgilman/go/streamio/streamtest"
)

func newFile(t *testing.T, obj any, opts ...fileobj.Option) *fileobj.File {
	t.Helper()
	f, err := fileobj.New(obj, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestReadN_RoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("abcdefghij"), 100)

	tests := []struct {
		name     string
		chunk    int
		maxChunk int
		zeroEOF  bool
	}{
		{name: "chunk smaller than data", chunk: 7},
		{name: "chunk larger than data", chunk: 8192},
		{name: "default chunk", chunk: 0},
		{name: "short underlying reads", chunk: 64, maxChunk: 5},
		{name: "zero-length read marks EOF", chunk: 32, zeroEOF: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := streamtest.NewBuffer(data)
			b.MaxChunk = tt.maxChunk
			b.ZeroEOF = tt.zeroEOF
			f := newFile(t, b, fileobj.WithChunkSize(tt.chunk))

			got, err := f.ReadN(-1)
			require.NoError(t, err)
			assert.Equal(t, data, got)

			got, err = f.ReadAll()
			require.NoError(t, err)
			assert.Empty(t, got)
			assert.NotNil(t, got)
		})
	}
}

func TestReadN_Sizes(t *testing.T) {
	b := streamtest.NewBuffer([]byte("0123456789"))
	b.MaxChunk = 3
	f := newFile(t, b)

	got, err := f.ReadN(0)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, b.Reads, "size 0 must not touch the stream")

	got, err = f.ReadN(4)
	require.NoError(t, err)
	assert.Equal(t, "0123", string(got))

	got, err = f.ReadN(100)
	require.NoError(t, err, "a short read caused by EOF is not an error")
	assert.Equal(t, "456789", string(got))

	got, err = f.ReadN(5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadAll_BufferSize(t *testing.T) {
	b := streamtest.NewBuffer(bytes.Repeat([]byte("x"), 1000))
	b.BufSize = 100
	f := newFile(t, b)

	assert.Equal(t, 100, f.Capabilities().BufferSize)

	got, err := f.ReadAll()
	require.NoError(t, err)
	assert.Len(t, got, 1000)
	assert.Equal(t, 11, b.Reads, "ten full chunks and one empty read")
}

func TestReadInto(t *testing.T) {
	b := streamtest.NewBuffer([]byte("hello world"))
	b.MaxChunk = 2
	f := newFile(t, b)

	buf := make([]byte, 4)
	n, err := f.ReadInto(buf)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, "hell", string(buf))

	n, err = f.ReadInto(buf)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, "o wo", string(buf))

	n, err = f.ReadInto(buf)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "rld", string(buf[:n]))

	n, err = f.ReadInto(buf)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = f.ReadInto(nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRead1(t *testing.T) {
	b := streamtest.NewBuffer([]byte("abcdefgh"))
	f := newFile(t, b, fileobj.WithChunkSize(16))

	got, err := f.Read1(3)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
	assert.Equal(t, 1, b.Reads)

	got, err = f.Read1(-1)
	require.NoError(t, err)
	assert.Equal(t, "defgh", string(got))
	assert.Equal(t, 1, b.Reads, "served from read-ahead")

	got, err = f.Read1(4)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRead1_LargeSize(t *testing.T) {
	t.Run("empty read-ahead", func(t *testing.T) {
		b := streamtest.NewBuffer([]byte("abc"))
		f := newFile(t, b)

		got, err := f.Read1(math.MaxInt)
		require.NoError(t, err)
		assert.Equal(t, "abc", string(got))
		assert.Equal(t, 1, b.Reads)

		got, err = f.Read1(math.MaxInt)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("served from read-ahead", func(t *testing.T) {
		b := streamtest.NewBuffer([]byte("abcdefghij"))
		f := newFile(t, b, fileobj.WithChunkSize(4))

		got, err := f.Read1(1)
		require.NoError(t, err)
		assert.Equal(t, "a", string(got))

		got, err = f.Read1(math.MaxInt)
		require.NoError(t, err)
		assert.Equal(t, "bcdefghij", string(got))
		assert.Equal(t, 1, b.Reads)
	})
}

func TestReadInto1(t *testing.T) {
	b := streamtest.NewBuffer([]byte("abcdefgh"))
	b.MaxChunk = 3
	f := newFile(t, b, fileobj.WithChunkSize(16))

	buf := make([]byte, 8)
	n, err := f.ReadInto1(buf)
	require.NoError(t, err)
	assert.Equal(t, 3, n, "one underlying read")
	assert.Equal(t, "abc", string(buf[:n]))
}

func TestRead_IOReader(t *testing.T) {
	b := streamtest.NewBuffer([]byte("stream contents"))
	b.MaxChunk = 4
	f := newFile(t, b)

	got, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "stream contents", string(got))

	n, err := f.Read(make([]byte, 1))
	assert.Zero(t, n)
	assert.ErrorIs(t, err, io.EOF)
}

func TestRead_NotReadable(t *testing.T) {
	w := streamtest.NewWriter(&bytes.Buffer{})
	f := newFile(t, w)

	ops := []struct {
		name string
		op   func() error
	}{
		{"ReadN", func() error { _, err := f.ReadN(1); return err }},
		{"ReadAll", func() error { _, err := f.ReadAll(); return err }},
		{"Read1", func() error { _, err := f.Read1(1); return err }},
		{"ReadInto", func() error { _, err := f.ReadInto(make([]byte, 1)); return err }},
		{"ReadInto1", func() error { _, err := f.ReadInto1(make([]byte, 1)); return err }},
		{"Read", func() error { _, err := f.Read(make([]byte, 1)); return err }},
		{"ReadLine", func() error { _, err := f.ReadLine(-1); return err }},
		{"ReadLines", func() error { _, err := f.ReadLines(0); return err }},
	}

	for _, tc := range ops {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.op()
			assert.ErrorIs(t, err, fileobj.ErrNotReadable)
			assert.Equal(t, streamerrors.CodeUnsupported, streamerrors.GetCode(err))
		})
	}
	assert.False(t, f.Readable())
}

func TestRead_TransportError(t *testing.T) {
	boom := errors.New("connection reset")
	b := streamtest.NewBuffer([]byte("data"))
	b.ReadErr = boom
	f := newFile(t, b)

	_, err := f.ReadN(-1)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, streamerrors.CodeIO, streamerrors.GetCode(err))
	assert.True(t, streamerrors.IsRetryable(err))
	assert.Contains(t, err.Error(), "connection reset")

	_, err = f.ReadN(2)
	assert.ErrorIs(t, err, boom)

	_, err = f.ReadInto(make([]byte, 2))
	assert.ErrorIs(t, err, boom)

	_, err = f.ReadLine(-1)
	assert.ErrorIs(t, err, boom)
}

func TestRead_TransportErrorNamed(t *testing.T) {
	boom := errors.New("connection reset")
	b := streamtest.NewBuffer([]byte("data"))
	b.ReadErr = boom
	f := newFile(t, b, fileobj.WithName("upload.bin"))

	_, err := f.ReadAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.True(t, streamerrors.IsRetryable(err))

	var se streamerrors.StreamError
	require.True(t, streamerrors.As(err, &se))
	assert.Equal(t, streamerrors.CodeIO, se.Code())
	assert.Equal(t, "upload.bin", se.Context()["stream"])
}

func TestRead_PlainReader(t *testing.T) {
	f := newFile(t, streamtest.NewReader(strings.NewReader("no traits here")))

	assert.False(t, f.Seekable())
	assert.False(t, f.Writable())
	assert.False(t, f.FdBased())

	got, err := f.ReadN(-1)
	require.NoError(t, err)
	assert.Equal(t, "no traits here", string(got))
}
