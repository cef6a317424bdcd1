package fileobj_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	streamerrors "github.com/jmgilman/go/streamio/errors"
	"github.com/jmgilman/go/streamio/fileobj"
	"github.com/jmgilman/go/streamio/streamtest"
)

func fdBuffer(fd uintptr) *streamtest.FdBuffer {
	return &streamtest.FdBuffer{Buffer: streamtest.NewBuffer(nil), FD: fd}
}

func TestFileno(t *testing.T) {
	f := newFile(t, fdBuffer(5))

	assert.True(t, f.FdBased())
	fd, err := f.Fileno()
	require.NoError(t, err)
	assert.Equal(t, uintptr(5), fd)
}

func TestFileno_CombinedUsesInput(t *testing.T) {
	f := newFile(t, streamtest.NewDuplex(fdBuffer(3), fdBuffer(4)))

	fd, err := f.Fileno()
	require.NoError(t, err)
	assert.Equal(t, uintptr(3), fd)
}

func TestFileno_NotDescriptorBased(t *testing.T) {
	tests := []struct {
		name string
		obj  any
	}{
		{name: "plain buffer", obj: streamtest.NewBuffer(nil)},
		{name: "one end without descriptor", obj: streamtest.NewDuplex(fdBuffer(3), streamtest.NewWriter(&bytes.Buffer{}))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFile(t, tt.obj)
			assert.False(t, f.FdBased())

			_, err := f.Fileno()
			assert.ErrorIs(t, err, fileobj.ErrNotDescriptorBased)
			assert.Equal(t, streamerrors.CodeUnsupported, streamerrors.GetCode(err))

			tty, err := f.IsATTY()
			require.NoError(t, err)
			assert.False(t, tty)
		})
	}
}

func TestIsATTY(t *testing.T) {
	var checked uintptr
	check := func(fd uintptr) bool {
		checked = fd
		return fd == 9
	}

	f := newFile(t, fdBuffer(9), fileobj.WithTerminalCheck(check))
	tty, err := f.IsATTY()
	require.NoError(t, err)
	assert.True(t, tty)
	assert.Equal(t, uintptr(9), checked)

	f = newFile(t, fdBuffer(8), fileobj.WithTerminalCheck(check))
	tty, err = f.IsATTY()
	require.NoError(t, err)
	assert.False(t, tty)
}

func TestIsATTY_DefaultCheck(t *testing.T) {
	// A descriptor this large is never open, so it is never a terminal.
	f := newFile(t, fdBuffer(1<<20))

	tty, err := f.IsATTY()
	require.NoError(t, err)
	assert.False(t, tty)
}
