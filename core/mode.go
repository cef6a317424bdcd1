package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	streamerrors "github.com/jmgilman/go/streamio/errors"
)

var (
	// ErrInvalidMode is returned by ParseMode for a malformed mode string.
	ErrInvalidMode = streamerrors.New(streamerrors.CodeInvalidArgument, "invalid mode")

	// ErrIsDir is returned by Mode.Check when the target is a directory.
	ErrIsDir = errors.New("is a directory")
)

// Mode is a parsed file-object mode string such as "r", "w+b" or "a".
//
// Exactly one of Create ('x'), Read ('r'), Write ('w') and Append ('a') is
// set. Update ('+') opens the file for both reading and writing. Binary
// ('b') and Text ('t') are accepted and recorded; streams always carry raw
// bytes.
type Mode struct {
	Create bool
	Read   bool
	Write  bool
	Append bool
	Update bool
	Binary bool
	Text   bool
}

// ParseMode parses a mode string made of the characters "xrwab+t". Each
// character may appear once, 'b' and 't' exclude each other, and exactly one
// of 'x', 'r', 'w' and 'a' is required.
func ParseMode(s string) (Mode, error) {
	var m Mode
	seen := make(map[rune]bool, len(s))
	for _, c := range s {
		if seen[c] {
			return Mode{}, modeError(s, fmt.Sprintf("repeated %q", c))
		}
		seen[c] = true

		switch c {
		case 'x':
			m.Create = true
		case 'r':
			m.Read = true
		case 'w':
			m.Write = true
		case 'a':
			m.Append = true
		case '+':
			m.Update = true
		case 'b':
			m.Binary = true
		case 't':
			m.Text = true
		default:
			return Mode{}, modeError(s, fmt.Sprintf("unknown character %q", c))
		}
	}

	if m.Binary && m.Text {
		return Mode{}, modeError(s, "cannot have text and binary mode at once")
	}

	n := 0
	for _, set := range []bool{m.Create, m.Read, m.Write, m.Append} {
		if set {
			n++
		}
	}
	if n != 1 {
		return Mode{}, modeError(s, "must have exactly one of create/read/write/append mode")
	}
	return m, nil
}

func modeError(mode, reason string) error {
	return fmt.Errorf("mode %q: %s: %w", mode, reason, ErrInvalidMode)
}

// Readable reports whether a file opened with m can be read.
func (m Mode) Readable() bool {
	return m.Read || m.Update
}

// Writable reports whether a file opened with m can be written.
func (m Mode) Writable() bool {
	return !m.Read || m.Update
}

// Flag returns the os.OpenFile flags for m.
func (m Mode) Flag() int {
	var flag int
	switch {
	case m.Update:
		flag = os.O_RDWR
	case m.Read:
		flag = os.O_RDONLY
	default:
		flag = os.O_WRONLY
	}

	switch {
	case m.Create:
		flag |= os.O_CREATE | os.O_EXCL
	case m.Write:
		flag |= os.O_CREATE | os.O_TRUNC
	case m.Append:
		flag |= os.O_CREATE | os.O_APPEND
	}
	return flag
}

// Check runs the checks made before opening name with m, using stat to look
// the name up. Directories are rejected, exclusive creation fails when name
// exists, and reading fails when it does not. Errors are *fs.PathError
// values wrapping ErrIsDir, fs.ErrExist or fs.ErrNotExist.
func (m Mode) Check(name string, stat func(string) (fs.FileInfo, error)) error {
	info, err := stat(name)
	switch {
	case err == nil:
		if info.IsDir() {
			return &fs.PathError{Op: "open", Path: name, Err: ErrIsDir}
		}
		if m.Create {
			return &fs.PathError{Op: "open", Path: name, Err: fs.ErrExist}
		}
	case errors.Is(err, fs.ErrNotExist):
		if m.Read {
			return &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
		}
	default:
		return err
	}
	return nil
}
