// Package proc runs a child process and exposes its standard input and
// output as one combined stream.
//
// Writes go to the child's stdin and reads come from its stdout. Both ends
// are OS pipes, so the stream is descriptor-based but cannot seek:
//
//	p, err := proc.Start(ctx, "sort", nil)
//	if err != nil {
//		return err
//	}
//	f, err := fileobj.New(p)
//	...
//	f.WriteLines(lines)
//	p.CloseWrite()
//	sorted, err := f.ReadLines(0)
//	err = f.Close() // waits for the child
//
// Closing the stream closes stdin, drains stdout, and waits for the child.
// A non-zero exit status is reported as an *ExecError carrying the
// command's stderr unless WithStderr redirected it.
package proc
