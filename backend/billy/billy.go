package billy

import (
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/jmgilman/go/streamio/core"
)

// FS opens streams on a billy.Filesystem.
type FS struct {
	bfs billy.Filesystem
}

// New wraps an existing billy.Filesystem.
func New(bfs billy.Filesystem) *FS {
	return &FS{bfs: bfs}
}

// NewLocal creates an FS over the local filesystem rooted at root.
func NewLocal(root string) *FS {
	return &FS{bfs: osfs.New(root)}
}

// NewMemory creates an empty in-memory FS.
func NewMemory() *FS {
	return &FS{bfs: memfs.New()}
}

// Unwrap returns the underlying billy.Filesystem.
func (fsys *FS) Unwrap() billy.Filesystem {
	return fsys.bfs
}

// Open opens name for reading.
func (fsys *FS) Open(name string) (*Reader, error) {
	f, err := fsys.bfs.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	return NewReader(f), nil
}

// Create creates or truncates name and opens it for writing.
func (fsys *FS) Create(name string) (*Writer, error) {
	f, err := fsys.bfs.Create(name)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", name, err)
	}
	return NewWriter(f), nil
}

// Append opens name for writing at its end, creating it if needed.
func (fsys *FS) Append(name string) (*Writer, error) {
	f, err := fsys.bfs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("append %s: %w", name, err)
	}
	return NewWriter(f), nil
}

// OpenFile opens name with os.O_RDWR plus any extra flags (such as
// os.O_CREATE or os.O_TRUNC) and returns a combined Stream.
func (fsys *FS) OpenFile(name string, flag int, perm os.FileMode) (*Stream, error) {
	f, err := fsys.bfs.OpenFile(name, flag|os.O_RDWR, perm)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	return NewStream(f), nil
}

// OpenMode opens name with a file-object mode string such as "r", "w+b" or
// "a" (see core.ParseMode). It returns a *Reader for read-only modes, a
// *Writer for write-only modes and a *Stream when the mode contains '+'.
//
// Directories are rejected with core.ErrIsDir, "x" fails with fs.ErrExist
// when name exists, and "r" fails with fs.ErrNotExist when it does not.
func (fsys *FS) OpenMode(name, mode string) (core.Stream, error) {
	m, err := core.ParseMode(mode)
	if err != nil {
		return nil, err
	}
	if err := m.Check(name, fsys.bfs.Stat); err != nil {
		return nil, err
	}

	f, err := fsys.bfs.OpenFile(name, m.Flag(), 0o644)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	switch {
	case m.Update:
		return NewStream(f), nil
	case m.Read:
		return NewReader(f), nil
	default:
		return NewWriter(f), nil
	}
}

// ReadFile returns the contents of name.
func (fsys *FS) ReadFile(name string) ([]byte, error) {
	return readFile(fsys.bfs, name)
}

// WriteFile writes data to name, creating or truncating it.
func (fsys *FS) WriteFile(name string, data []byte) error {
	w, err := fsys.Create(name)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	return w.Close()
}
