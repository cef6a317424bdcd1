package proc

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"sync"

	"github.com/jmgilman/go/streamio/backend/osfile"
	"github.com/jmgilman/go/streamio/core"
)

// Process is a running child process as a combined stream.
type Process struct {
	cmd    *exec.Cmd
	stdin  *osfile.Writer
	stdout *osfile.Reader
	stderr bytes.Buffer

	mu     sync.Mutex
	closed bool
}

// Start starts name with args. The process is killed if ctx is cancelled
// before it exits.
func Start(ctx context.Context, name string, args []string, opts ...Option) (*Process, error) {
	cfg := newConfig(opts...)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = cfg.dir
	if cfg.inheritEnv || len(cfg.env) > 0 || cfg.disableColors {
		cmd.Env = cfg.environ(os.Environ())
	}

	inR, inW, err := os.Pipe()
	if err != nil {
		return nil, err
	}
	outR, outW, err := os.Pipe()
	if err != nil {
		_ = inR.Close()
		_ = inW.Close()
		return nil, err
	}

	p := &Process{cmd: cmd}
	cmd.Stdin = inR
	cmd.Stdout = outW
	if cfg.stderr != nil {
		cmd.Stderr = cfg.stderr
	} else {
		cmd.Stderr = &p.stderr
	}

	if err := cmd.Start(); err != nil {
		for _, f := range []*os.File{inR, inW, outR, outW} {
			_ = f.Close()
		}
		return nil, &ExecError{Command: cmd.Args, ExitCode: -1, Err: err}
	}

	// The child holds its own copies of these ends.
	_ = inR.Close()
	_ = outW.Close()

	p.stdin = osfile.NewWriter(inW)
	p.stdout = osfile.NewReader(outR)
	return p, nil
}

// InputStream returns the child's stdout.
func (p *Process) InputStream() core.InputStream {
	return p.stdout
}

// OutputStream returns the child's stdin.
func (p *Process) OutputStream() core.OutputStream {
	return p.stdin
}

// Pid returns the child's process ID.
func (p *Process) Pid() int {
	return p.cmd.Process.Pid
}

// CloseWrite closes the child's stdin, signalling end of input, while
// leaving its stdout open for reading.
func (p *Process) CloseWrite() error {
	return p.stdin.Close()
}

// Close closes stdin, discards any unread output and waits for the child.
// A non-zero exit is reported as an *ExecError. Later calls return nil.
func (p *Process) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	_ = p.stdin.Close()
	_, _ = io.Copy(io.Discard, p.stdout)
	_ = p.stdout.Close()

	if err := p.cmd.Wait(); err != nil {
		execErr := &ExecError{
			Command:  p.cmd.Args,
			ExitCode: -1,
			Stderr:   p.stderr.String(),
			Err:      err,
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			execErr.ExitCode = exitErr.ExitCode()
		}
		return execErr
	}
	return nil
}

// IsClosed reports whether Close has been called.
func (p *Process) IsClosed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

// ExitCode returns the child's exit code, or -1 if it has not exited.
func (p *Process) ExitCode() int {
	if p.cmd.ProcessState == nil {
		return -1
	}
	return p.cmd.ProcessState.ExitCode()
}

// Compile-time interface checks.
var _ core.IOStream = (*Process)(nil)
