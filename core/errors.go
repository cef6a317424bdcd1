package core

import (
	"errors"
	"io/fs"
)

var (
	// ErrClosed is returned by a primitive used after Close.
	// Re-exported from io/fs for convenience.
	ErrClosed = fs.ErrClosed

	// ErrUnsupported is returned when a primitive does not implement an
	// optional operation.
	ErrUnsupported = errors.New("operation not supported")
)
