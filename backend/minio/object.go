package minio

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"sync"

	"github.com/minio/minio-go/v7"
	"golang.org/x/sync/errgroup"

	"github.com/jmgilman/go/streamio/core"
)

// ObjectReader is a seekable input stream over an object.
type ObjectReader struct {
	key    string
	obj    *minio.Object
	info   minio.ObjectInfo
	offset int64
	closed bool
}

// Open opens the object at key for reading. A missing object fails with an
// error matching fs.ErrNotExist.
func (s *Store) Open(ctx context.Context, key string) (*ObjectReader, error) {
	info, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return nil, pathError("open", key, translate(err))
	}

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, pathError("open", key, translate(err))
	}

	return &ObjectReader{key: key, obj: obj, info: info}, nil
}

// Read implements io.Reader.
func (r *ObjectReader) Read(p []byte) (int, error) {
	if r.closed {
		return 0, pathError("read", r.key, fs.ErrClosed)
	}
	n, err := r.obj.Read(p)
	r.offset += int64(n)

	if n > 0 && errors.Is(err, io.EOF) {
		return n, nil
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return n, pathError("read", r.key, translate(err))
	}
	return n, err
}

// Close releases the object. Later calls return nil.
func (r *ObjectReader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.obj.Close()
}

// IsClosed reports whether Close has been called.
func (r *ObjectReader) IsClosed() bool {
	return r.closed
}

// Key returns the object key.
func (r *ObjectReader) Key() string {
	return r.key
}

// Size returns the object size recorded when it was opened.
func (r *ObjectReader) Size() int64 {
	return r.info.Size
}

// Tell returns the read offset.
func (r *ObjectReader) Tell() (int64, error) {
	return r.offset, nil
}

// CanSeek reports true; objects support ranged reads.
func (r *ObjectReader) CanSeek() bool {
	return true
}

// Seek implements io.Seeker.
func (r *ObjectReader) Seek(offset int64, whence int) (int64, error) {
	if r.closed {
		return 0, pathError("seek", r.key, fs.ErrClosed)
	}
	pos, err := r.obj.Seek(offset, whence)
	if err != nil {
		return 0, pathError("seek", r.key, err)
	}
	r.offset = pos
	return pos, nil
}

// CanTruncate reports false; objects are immutable.
func (r *ObjectReader) CanTruncate() bool {
	return false
}

// Truncate always fails with core.ErrUnsupported.
func (r *ObjectReader) Truncate(int64) error {
	return pathError("truncate", r.key, core.ErrUnsupported)
}

// WriteOption configures an ObjectWriter.
type WriteOption func(*minio.PutObjectOptions)

// WithContentType sets the object's content type.
func WithContentType(contentType string) WriteOption {
	return func(o *minio.PutObjectOptions) {
		o.ContentType = contentType
	}
}

// WithPartSize sets the multipart upload part size, overriding the Store's.
func WithPartSize(size uint64) WriteOption {
	return func(o *minio.PutObjectOptions) {
		o.PartSize = size
	}
}

// WithMetadata adds user metadata to the object.
func WithMetadata(meta map[string]string) WriteOption {
	return func(o *minio.PutObjectOptions) {
		if o.UserMetadata == nil {
			o.UserMetadata = make(map[string]string, len(meta))
		}
		for k, v := range meta {
			o.UserMetadata[k] = v
		}
	}
}

// ObjectWriter is an output stream that uploads an object. Data is streamed
// to the store as it is written; the object appears once Close returns nil.
type ObjectWriter struct {
	key string
	pw  *io.PipeWriter
	eg  *errgroup.Group

	mu     sync.Mutex
	closed bool
	info   minio.UploadInfo
}

// Create starts uploading the object at key. The upload runs until the
// writer is closed or aborted, or ctx is cancelled.
func (s *Store) Create(ctx context.Context, key string, opts ...WriteOption) *ObjectWriter {
	putOpts := minio.PutObjectOptions{
		ContentType: "application/octet-stream",
		PartSize:    s.partSize,
	}
	for _, opt := range opts {
		opt(&putOpts)
	}

	pr, pw := io.Pipe()
	eg, egCtx := errgroup.WithContext(ctx)
	w := &ObjectWriter{key: key, pw: pw, eg: eg}

	eg.Go(func() error {
		info, err := s.client.PutObject(egCtx, s.bucket, key, pr, -1, putOpts)
		err = translate(err)
		// Unblock writers if the upload stopped early.
		_ = pr.CloseWithError(err)
		if err != nil {
			return pathError("upload", key, err)
		}
		w.mu.Lock()
		w.info = info
		w.mu.Unlock()
		return nil
	})

	return w
}

// Write implements io.Writer.
func (w *ObjectWriter) Write(p []byte) (int, error) {
	if w.IsClosed() {
		return 0, pathError("write", w.key, fs.ErrClosed)
	}
	n, err := w.pw.Write(p)
	if err != nil {
		return n, pathError("write", w.key, err)
	}
	return n, nil
}

// Flush reports core.ErrUnsupported; data is only committed by Close.
func (w *ObjectWriter) Flush() error {
	return core.ErrUnsupported
}

// Close completes the upload and waits for it. Later calls return nil.
func (w *ObjectWriter) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	_ = w.pw.Close()
	return w.eg.Wait()
}

// Abort cancels the upload. No object is created.
func (w *ObjectWriter) Abort(cause error) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	if cause == nil {
		cause = errors.New("upload aborted")
	}
	_ = w.pw.CloseWithError(cause)
	_ = w.eg.Wait()
	return nil
}

// IsClosed reports whether Close or Abort has been called.
func (w *ObjectWriter) IsClosed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

// Info returns the result of a completed upload.
func (w *ObjectWriter) Info() minio.UploadInfo {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.info
}

// Compile-time interface checks.
var (
	_ core.InputStream  = (*ObjectReader)(nil)
	_ core.Seekable     = (*ObjectReader)(nil)
	_ core.OutputStream = (*ObjectWriter)(nil)
	_ core.Flusher      = (*ObjectWriter)(nil)
)
