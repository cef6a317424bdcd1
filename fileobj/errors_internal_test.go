package fileobj

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	streamerrors "github.com/jmgilman/go/streamio/errors"
)

func TestCatchTooLarge(t *testing.T) {
	run := func(fn func()) (err error) {
		defer catchTooLarge("read", &err)
		fn()
		return nil
	}

	err := run(func() { panic(bytes.ErrTooLarge) })
	require.Error(t, err)
	assert.ErrorIs(t, err, bytes.ErrTooLarge)
	assert.Equal(t, streamerrors.CodeOutOfMemory, streamerrors.GetCode(err))

	assert.NoError(t, run(func() {}))

	assert.PanicsWithValue(t, "other", func() {
		_ = run(func() { panic("other") })
	})
}

func TestEOFReader(t *testing.T) {
	r := eofReader{r: readerFunc(func([]byte) (int, error) { return 0, nil })}

	n, err := r.Read(make([]byte, 4))
	assert.Zero(t, n)
	assert.ErrorIs(t, err, io.EOF)

	n, err = r.Read(nil)
	assert.Zero(t, n)
	assert.NoError(t, err)
}

type readerFunc func([]byte) (int, error)

func (f readerFunc) Read(p []byte) (int, error) { return f(p) }

func TestProbeIsNil(t *testing.T) {
	var p *bytes.Buffer
	assert.True(t, isNil(nil))
	assert.True(t, isNil(p))
	assert.False(t, isNil(bytes.NewBuffer(nil)))
	assert.False(t, isNil(42))
	assert.True(t, errors.Is(opError("x", ErrClosed), ErrClosed))
}
