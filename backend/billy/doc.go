// Package billy provides go-billy-backed file streams.
//
// Files opened through an FS are seekable. Files opened for writing can
// also be truncated, and on backends whose files support Sync (osfs),
// flushed. The in-memory filesystem is useful for tests:
//
//	fsys := billy.NewMemory()
//	w, err := fsys.Create("notes.txt")
//	...
//	f, err := fileobj.New(w)
//
// OpenFile with os.O_RDWR returns a combined Stream whose two ends share
// one cursor.
//
// # Thread Safety
//
// FS instances are safe for concurrent use by multiple goroutines. Streams
// are not.
package billy
