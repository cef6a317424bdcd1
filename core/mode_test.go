package core_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmgilman/go/streamio/core"
	streamerrors "github.com/jmgilman/go/streamio/errors"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		mode     string
		want     core.Mode
		flag     int
		readable bool
		writable bool
	}{
		{"r", core.Mode{Read: true}, os.O_RDONLY, true, false},
		{"rb", core.Mode{Read: true, Binary: true}, os.O_RDONLY, true, false},
		{"rt", core.Mode{Read: true, Text: true}, os.O_RDONLY, true, false},
		{"r+", core.Mode{Read: true, Update: true}, os.O_RDWR, true, true},
		{"w", core.Mode{Write: true}, os.O_WRONLY | os.O_CREATE | os.O_TRUNC, false, true},
		{"w+b", core.Mode{Write: true, Update: true, Binary: true}, os.O_RDWR | os.O_CREATE | os.O_TRUNC, true, true},
		{"x", core.Mode{Create: true}, os.O_WRONLY | os.O_CREATE | os.O_EXCL, false, true},
		{"x+", core.Mode{Create: true, Update: true}, os.O_RDWR | os.O_CREATE | os.O_EXCL, true, true},
		{"a", core.Mode{Append: true}, os.O_WRONLY | os.O_CREATE | os.O_APPEND, false, true},
		{"ab+", core.Mode{Append: true, Binary: true, Update: true}, os.O_RDWR | os.O_CREATE | os.O_APPEND, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			got, err := core.ParseMode(tt.mode)
			if err != nil {
				t.Fatalf("ParseMode(%q) error = %v", tt.mode, err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
			if got.Flag() != tt.flag {
				t.Errorf("Flag() = %#x, want %#x", got.Flag(), tt.flag)
			}
			if got.Readable() != tt.readable {
				t.Errorf("Readable() = %v, want %v", got.Readable(), tt.readable)
			}
			if got.Writable() != tt.writable {
				t.Errorf("Writable() = %v, want %v", got.Writable(), tt.writable)
			}
		})
	}
}

func TestParseMode_Invalid(t *testing.T) {
	for _, mode := range []string{"", "b", "+", "rw", "ra", "xw", "rr", "r++", "rbt", "rz", "U"} {
		t.Run(mode, func(t *testing.T) {
			_, err := core.ParseMode(mode)
			if !errors.Is(err, core.ErrInvalidMode) {
				t.Fatalf("ParseMode(%q) error = %v, want ErrInvalidMode", mode, err)
			}
			if got := streamerrors.GetCode(err); got != streamerrors.CodeInvalidArgument {
				t.Errorf("code = %s, want %s", got, streamerrors.CodeInvalidArgument)
			}
		})
	}
}

func TestMode_Check(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "existing.txt")
	if err := os.WriteFile(existing, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "missing.txt")

	tests := []struct {
		name string
		mode string
		path string
		want error
	}{
		{"read existing", "r", existing, nil},
		{"read missing", "r", missing, fs.ErrNotExist},
		{"update missing", "r+", missing, fs.ErrNotExist},
		{"write missing", "w", missing, nil},
		{"append missing", "a", missing, nil},
		{"create missing", "x", missing, nil},
		{"create existing", "x", existing, fs.ErrExist},
		{"read directory", "r", dir, core.ErrIsDir},
		{"write directory", "w", dir, core.ErrIsDir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := core.ParseMode(tt.mode)
			if err != nil {
				t.Fatal(err)
			}
			err = m.Check(tt.path, os.Stat)
			if tt.want == nil {
				if err != nil {
					t.Errorf("Check() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Check() error = %v, want %v", err, tt.want)
			}
			var pathErr *fs.PathError
			if !errors.As(err, &pathErr) || pathErr.Path != tt.path {
				t.Errorf("Check() error = %v, want *fs.PathError for %s", err, tt.path)
			}
		})
	}
}
