package fs

import "encoding/binary"

func setTestIno(rec []byte, ino uint64) {
	binary.NativeEndian.PutUint64(rec[direntInoOff:], ino)
}

// Linux records carry no name length.
func setTestNamlen([]byte, uint16) {}
