// Package core defines the stream contracts that the fileobj adapter is built on.
//
// A stream is any transport primitive that offers some subset of sequential
// read, sequential write, seek-to-offset and native-handle exposure. The base
// contracts describe the direction of a stream:
//
//   - InputStream: a readable stream
//   - OutputStream: a writable stream
//   - IOStream: a single handle exposing a readable and a writable end that
//     must be closed as one unit
//
// Everything else is an optional trait discovered by type assertion, in the
// same way io.Seeker is discovered on an io.Reader:
//
//   - Seekable: position queries, seeking and truncation
//   - DescriptorBased: exposes a native file descriptor
//   - Buffered: reports the stream's own buffer size
//   - Flusher: pushes buffered output to the transport
//
// A trait may be present but disabled at runtime. Seekable.CanSeek reports
// whether seeking actually works (a pipe wrapped in a seekable type answers
// false), and CanTruncate does the same for truncation.
package core
