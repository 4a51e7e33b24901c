//go:build linux || freebsd

package fs

import (
	"bazil.org/fuse"
	"golang.org/x/sys/unix"

	"dirlist/internal/logging"
)

var (
	streamLogger = logging.GetLogger().WithPrefix("stream")
)

// direntBufSize matches the block size os.File uses for getdents.
const direntBufSize = 8192

// OSOpener opens kernel directory streams. Entries come back exactly as
// the kernel reports them, "." and ".." included.
type OSOpener struct{}

// Open implements Opener.
func (OSOpener) Open(path string) (Stream, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_DIRECTORY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, NewFSError(OpOpen, path, err)
	}
	streamLogger.Trace("Opened %q as fd %d", path, fd)
	return &dirStream{
		fd:   fd,
		path: path,
		buf:  make([]byte, direntBufSize),
	}, nil
}

// dirStream walks the records returned by ReadDirent one at a time.
type dirStream struct {
	fd     int
	path   string
	buf    []byte
	bufp   int // next unread byte in buf
	nbuf   int // valid bytes in buf
	err    error
	closed bool
}

// Next implements Stream.
func (s *dirStream) Next() (fuse.Dirent, bool) {
	if s.closed || s.err != nil {
		return fuse.Dirent{}, false
	}
	for {
		if s.bufp >= s.nbuf {
			n, err := unix.ReadDirent(s.fd, s.buf)
			if err != nil {
				s.err = NewFSError(OpReadDir, s.path, err)
				return fuse.Dirent{}, false
			}
			if n <= 0 {
				return fuse.Dirent{}, false
			}
			s.bufp, s.nbuf = 0, n
		}

		rec := s.buf[s.bufp:s.nbuf]
		reclen, ok := readUint16(rec, direntReclenOff)
		if !ok || reclen == 0 || int(reclen) > len(rec) {
			streamLogger.Warn("Truncated directory record in %q", s.path)
			s.bufp = s.nbuf
			return fuse.Dirent{}, false
		}
		s.bufp += int(reclen)

		entry, ok := parseDirent(rec[:reclen])
		if !ok {
			continue
		}
		return entry, true
	}
}

// Err implements Stream.
func (s *dirStream) Err() error {
	return s.err
}

// Close implements Stream.
func (s *dirStream) Close() error {
	if s.closed {
		return NewFSError(OpClose, s.path, ErrClosed)
	}
	s.closed = true
	streamLogger.Trace("Closing fd %d for %q", s.fd, s.path)
	if err := unix.Close(s.fd); err != nil {
		return NewFSError(OpClose, s.path, err)
	}
	return nil
}

// parseDirent decodes one record. It reports false for records readdir(3)
// would skip.
func parseDirent(rec []byte) (fuse.Dirent, bool) {
	ino, ok := direntIno(rec)
	if !ok || ino == 0 {
		return fuse.Dirent{}, false
	}
	if uintptr(len(rec)) <= direntTypeOff {
		return fuse.Dirent{}, false
	}
	name, ok := direntName(rec)
	if !ok || len(name) == 0 {
		return fuse.Dirent{}, false
	}
	return fuse.Dirent{
		Inode: ino,
		Type:  fuse.DirentType(rec[direntTypeOff]),
		Name:  string(name),
	}, true
}
