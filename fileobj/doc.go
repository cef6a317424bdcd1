// Package fileobj adapts an arbitrary stream into a single file-like object.
//
// The wrapped stream may be input-only, output-only or a coupled
// bidirectional pair, and may independently offer seeking, truncation, a
// native file descriptor, its own buffer size and flushing (see package
// core). File inspects the stream once, at construction, and then presents
// one coherent contract on top of whatever subset it found:
//
//	f, err := fileobj.New(stream)
//	if err != nil {
//		return err
//	}
//	defer f.Close()
//
//	for line, err := range f.Lines() {
//		if err != nil {
//			return err
//		}
//		fmt.Print(string(line))
//	}
//
// # Checks
//
// Every data operation checks, in order: that the stream is open
// (ErrClosed), that the required capability is present (ErrNotReadable,
// ErrNotWritable, ErrNotSeekable, ErrCannotTruncate, ErrNotDescriptorBased),
// any operation-specific argument, and only then touches the stream.
// Transport failures are reported with code errors.CodeIO and keep the
// transport error in the chain.
//
// # Reads
//
// Reads retry until the requested amount has arrived or the stream reaches
// EOF; a short result caused by EOF is never an error. All reads share one
// buffer that also backs line splitting, so mixing ReadLine with ReadN or
// ReadInto never loses bytes. Seek discards that buffer and Tell accounts
// for it.
//
// # Writes
//
// Writes retry until every byte has been accepted. WriteLines coalesces its
// items into a staging buffer the size of the stream's own buffer (or
// DefaultBufferSize) and flushes it whenever it fills.
//
// # Concurrency
//
// A File is not safe for concurrent use. It assumes a single owner drives
// it at a time; blocking calls wait for as long as the transport does.
package fileobj
