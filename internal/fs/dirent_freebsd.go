package fs

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

const (
	direntInoOff    = unsafe.Offsetof(unix.Dirent{}.Fileno)
	direntReclenOff = unsafe.Offsetof(unix.Dirent{}.Reclen)
	direntTypeOff   = unsafe.Offsetof(unix.Dirent{}.Type)
	direntNamlenOff = unsafe.Offsetof(unix.Dirent{}.Namlen)
	direntNameOff   = unsafe.Offsetof(unix.Dirent{}.Name)
)

func direntIno(rec []byte) (uint64, bool) {
	return readUint64(rec, direntInoOff)
}

func direntName(rec []byte) ([]byte, bool) {
	namlen, ok := readUint16(rec, direntNamlenOff)
	if !ok {
		return nil, false
	}
	end := direntNameOff + uintptr(namlen)
	if uintptr(len(rec)) < end {
		return nil, false
	}
	return rec[direntNameOff:end], true
}
