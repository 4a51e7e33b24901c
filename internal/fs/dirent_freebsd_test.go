package fs

import "encoding/binary"

func setTestIno(rec []byte, ino uint64) {
	binary.NativeEndian.PutUint64(rec[direntInoOff:], ino)
}

func setTestNamlen(rec []byte, n uint16) {
	binary.NativeEndian.PutUint16(rec[direntNamlenOff:], n)
}
