package fileobj

import "github.com/jmgilman/go/streamio/core"

// FdBased reports whether every direction is backed by a file descriptor.
func (f *File) FdBased() bool {
	if f.in != nil {
		if _, ok := f.in.(core.DescriptorBased); !ok {
			return false
		}
	}
	if f.out != nil {
		if _, ok := f.out.(core.DescriptorBased); !ok {
			return false
		}
	}
	return true
}

// Fileno returns the native file descriptor. For a combined stream this is
// the input's descriptor.
func (f *File) Fileno() (uintptr, error) {
	if err := f.guard("fileno"); err != nil {
		return 0, err
	}
	if !f.FdBased() {
		return 0, opError("fileno", ErrNotDescriptorBased)
	}
	return f.fd(), nil
}

// IsATTY reports whether the descriptor refers to a terminal. It returns
// false for a stream that is not descriptor-based.
func (f *File) IsATTY() (bool, error) {
	if err := f.guard("isatty"); err != nil {
		return false, err
	}
	if !f.FdBased() {
		return false, nil
	}
	return f.cfg.isTerminal(f.fd()), nil
}

func (f *File) fd() uintptr {
	if d, ok := f.in.(core.DescriptorBased); ok {
		return d.Fd()
	}
	return f.out.(core.DescriptorBased).Fd()
}
