package fs

import (
	"bytes"
	"unsafe"

	"golang.org/x/sys/unix"
)

const (
	direntInoOff    = unsafe.Offsetof(unix.Dirent{}.Ino)
	direntReclenOff = unsafe.Offsetof(unix.Dirent{}.Reclen)
	direntTypeOff   = unsafe.Offsetof(unix.Dirent{}.Type)
	direntNameOff   = unsafe.Offsetof(unix.Dirent{}.Name)
)

func direntIno(rec []byte) (uint64, bool) {
	return readUint64(rec, direntInoOff)
}

// direntName returns the NUL-terminated name; getdents64 pads records,
// so there is no length field.
func direntName(rec []byte) ([]byte, bool) {
	if uintptr(len(rec)) <= direntNameOff {
		return nil, false
	}
	name := rec[direntNameOff:]
	if i := bytes.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	return name, true
}
