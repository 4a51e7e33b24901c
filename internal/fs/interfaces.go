// internal/fs/interfaces.go

package fs

import (
	"bazil.org/fuse"
)

// Stream is an open directory handle with a forward-only cursor.
type Stream interface {
	// Next advances the cursor. It returns false once the stream is
	// exhausted or a read fails; the two cases are not told apart here.
	Next() (fuse.Dirent, bool)

	// Err returns the read error that ended iteration early, if any.
	Err() error

	// Close releases the handle. Only the first call releases anything;
	// later calls return ErrClosed.
	Close() error
}

// Opener opens directory streams by path.
type Opener interface {
	Open(path string) (Stream, error)
}
