package fileobj_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	streamerrors "github.com/jmgilman/go/streamio/errors"
	"github.com/jmgilman/go/streamio/fileobj"
	"github.com/jmgilman/go/streamio/streamtest"
)

func TestSeekTell(t *testing.T) {
	data := []byte("0123456789")
	f := newFile(t, streamtest.NewBuffer(data))

	require.True(t, f.Seekable())

	pos, err := f.Seek(0, io.SeekEnd)
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), pos)

	pos, err = f.Tell()
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), pos)

	pos, err = f.Seek(5, io.SeekStart)
	require.NoError(t, err)
	assert.Equal(t, int64(5), pos)

	pos, err = f.Tell()
	require.NoError(t, err)
	assert.Equal(t, int64(5), pos)

	got, err := f.ReadN(2)
	require.NoError(t, err)
	assert.Equal(t, "56", string(got))
}

func TestTell_AccountsForReadAhead(t *testing.T) {
	f := newFile(t, streamtest.NewBuffer([]byte("ab\ncd\nef\n")))

	_, err := f.ReadLine(-1)
	require.NoError(t, err)

	pos, err := f.Tell()
	require.NoError(t, err)
	assert.Equal(t, int64(3), pos)

	pos, err = f.Seek(1, io.SeekCurrent)
	require.NoError(t, err)
	assert.Equal(t, int64(4), pos)

	line, err := f.ReadLine(-1)
	require.NoError(t, err)
	assert.Equal(t, "d\n", string(line), "no line content survives a seek")
}

func TestSeek_Combined(t *testing.T) {
	in := streamtest.NewBuffer([]byte("0123456789"))
	out := streamtest.NewBuffer([]byte("abcdefghij"))
	f := newFile(t, streamtest.NewDuplex(in, out))

	pos, err := f.Seek(-4, io.SeekEnd)
	require.NoError(t, err)
	assert.Equal(t, int64(6), pos)

	outPos, err := out.Tell()
	require.NoError(t, err)
	assert.Equal(t, int64(6), outPos, "the output follows the input")

	_, err = f.Write([]byte("X"))
	require.NoError(t, err)
	assert.Equal(t, "abcdefXhij", string(out.Bytes()))

	pos, err = f.Tell()
	require.NoError(t, err)
	assert.Equal(t, int64(6), pos, "the input position is authoritative")
}

func TestSeek_CombinedRealignsOutput(t *testing.T) {
	in := streamtest.NewBuffer([]byte("0123456789"))
	out := streamtest.NewBuffer(nil)
	f := newFile(t, streamtest.NewDuplex(in, out))

	_, err := f.Write([]byte("abcd"))
	require.NoError(t, err)
	outPos, err := out.Tell()
	require.NoError(t, err)
	require.Equal(t, int64(4), outPos)

	pos, err := f.Seek(0, io.SeekCurrent)
	require.NoError(t, err)
	assert.Equal(t, int64(0), pos)

	outPos, err = out.Tell()
	require.NoError(t, err)
	assert.Equal(t, int64(0), outPos, "the output is moved to the input position")
}

func TestSeek_OutputOnly(t *testing.T) {
	b := streamtest.NewBuffer([]byte("0123456789"))
	f := newFile(t, fileobj.OutputOnly{Stream: b})

	pos, err := f.Seek(-2, io.SeekEnd)
	require.NoError(t, err)
	assert.Equal(t, int64(8), pos)

	_, err = f.Write([]byte("XY"))
	require.NoError(t, err)

	pos, err = f.Tell()
	require.NoError(t, err)
	assert.Equal(t, int64(10), pos)
	assert.Equal(t, "01234567XY", string(b.Bytes()))
}

func TestSeek_InputFailureStops(t *testing.T) {
	in := streamtest.NewBuffer([]byte("data"))
	out := streamtest.NewBuffer(nil)
	in.SeekErr = errors.New("seek failed")
	f := newFile(t, streamtest.NewDuplex(in, out))

	_, err := f.Seek(0, io.SeekStart)
	require.Error(t, err)
	assert.ErrorIs(t, err, in.SeekErr)
	assert.Equal(t, streamerrors.CodeIO, streamerrors.GetCode(err))
	assert.Zero(t, out.Seeks, "the output is not touched after a failure")
}

func TestSeek_InvalidWhence(t *testing.T) {
	b := streamtest.NewBuffer([]byte("data"))
	f := newFile(t, b)

	_, err := f.Seek(0, 42)
	assert.ErrorIs(t, err, fileobj.ErrInvalidWhence)
	assert.Equal(t, streamerrors.CodeInvalidArgument, streamerrors.GetCode(err))
	assert.Zero(t, b.Seeks)
}

func TestSeek_NotSeekable(t *testing.T) {
	tests := []struct {
		name string
		obj  any
	}{
		{name: "no trait", obj: streamtest.NewReader(strings.NewReader("x"))},
		{name: "trait reports cannot seek", obj: func() any {
			b := streamtest.NewBuffer([]byte("x"))
			b.NoSeek = true
			return b
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFile(t, tt.obj)
			assert.False(t, f.Seekable())

			_, err := f.Tell()
			assert.ErrorIs(t, err, fileobj.ErrNotSeekable)
			assert.Equal(t, streamerrors.CodeUnsupported, streamerrors.GetCode(err))

			_, err = f.Seek(0, io.SeekStart)
			assert.ErrorIs(t, err, fileobj.ErrNotSeekable)

			_, err = f.Truncate(0)
			assert.ErrorIs(t, err, fileobj.ErrNotSeekable, "seekability is checked before truncation support")
		})
	}
}

func TestTruncate(t *testing.T) {
	b := streamtest.NewBuffer([]byte("0123456789"))
	f := newFile(t, fileobj.OutputOnly{Stream: b})

	size, err := f.Truncate(4)
	require.NoError(t, err)
	assert.Equal(t, int64(4), size)
	assert.Equal(t, "0123", string(b.Bytes()))

	_, err = f.Truncate(-1)
	assert.ErrorIs(t, err, fileobj.ErrNegativeSize)
	assert.Equal(t, streamerrors.CodeInvalidArgument, streamerrors.GetCode(err))
	assert.Equal(t, 1, b.Truncates)
}

func TestTruncateCurrent(t *testing.T) {
	b := streamtest.NewBuffer([]byte("keep\ndrop\n"))
	f := newFile(t, streamtest.NewShared(b))

	line, err := f.ReadLine(-1)
	require.NoError(t, err)
	assert.Equal(t, "keep\n", string(line))

	size, err := f.TruncateCurrent()
	require.NoError(t, err)
	assert.Equal(t, int64(5), size)
	assert.Equal(t, "keep\n", string(b.Bytes()))

	pos, err := f.Tell()
	require.NoError(t, err)
	assert.Equal(t, int64(5), pos)

	rest, err := f.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, rest)
}

func TestTruncate_Unsupported(t *testing.T) {
	b := streamtest.NewBuffer([]byte("data"))
	b.NoTruncate = true
	f := newFile(t, fileobj.OutputOnly{Stream: b})

	_, err := f.Truncate(0)
	assert.ErrorIs(t, err, fileobj.ErrCannotTruncate)
	assert.Zero(t, b.Truncates)
}

func TestTruncate_Failure(t *testing.T) {
	b := streamtest.NewBuffer([]byte("data"))
	b.TruncateErr = errors.New("read-only file system")
	f := newFile(t, fileobj.OutputOnly{Stream: b})

	_, err := f.Truncate(0)
	assert.ErrorIs(t, err, b.TruncateErr)
	assert.Equal(t, streamerrors.CodeIO, streamerrors.GetCode(err))
}
