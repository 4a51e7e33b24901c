package fs

import (
	"errors"
	"io"
	iofs "io/fs"

	"bazil.org/fuse"
)

// FSOpener opens directory streams on an io/fs file system. Types are
// derived from the mode bits reported by ReadDir. io/fs never reports "."
// or "..", so neither appears in the stream.
type FSOpener struct {
	FS iofs.FS
}

// Open implements Opener.
func (o FSOpener) Open(path string) (Stream, error) {
	f, err := o.FS.Open(path)
	if err != nil {
		return nil, NewFSError(OpOpen, path, err)
	}
	dir, ok := f.(iofs.ReadDirFile)
	if !ok {
		f.Close()
		return nil, NewFSError(OpOpen, path, ErrNotDirectory)
	}
	// Files may still implement ReadDirFile, so check the stat as well.
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, NewFSError(OpOpen, path, err)
	}
	if !info.IsDir() {
		f.Close()
		return nil, NewFSError(OpOpen, path, ErrNotDirectory)
	}
	return &fsStream{dir: dir, path: path}, nil
}

type fsStream struct {
	dir    iofs.ReadDirFile
	path   string
	err    error
	closed bool
}

// Next implements Stream.
func (s *fsStream) Next() (fuse.Dirent, bool) {
	if s.closed || s.err != nil {
		return fuse.Dirent{}, false
	}
	entries, err := s.dir.ReadDir(1)
	if len(entries) == 0 {
		if err != nil && !errors.Is(err, io.EOF) {
			s.err = NewFSError(OpReadDir, s.path, err)
		}
		return fuse.Dirent{}, false
	}
	e := entries[0]
	return fuse.Dirent{
		Type: TypeFromMode(e.Type()),
		Name: e.Name(),
	}, true
}

// Err implements Stream.
func (s *fsStream) Err() error {
	return s.err
}

// Close implements Stream.
func (s *fsStream) Close() error {
	if s.closed {
		return NewFSError(OpClose, s.path, ErrClosed)
	}
	s.closed = true
	if err := s.dir.Close(); err != nil {
		return NewFSError(OpClose, s.path, err)
	}
	return nil
}
