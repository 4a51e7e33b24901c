package fs

import "encoding/binary"

// readUint16 decodes a native-endian uint16 at off, reporting false when
// the record is too short.
func readUint16(rec []byte, off uintptr) (uint16, bool) {
	if uintptr(len(rec)) < off+2 {
		return 0, false
	}
	return binary.NativeEndian.Uint16(rec[off:]), true
}

func readUint64(rec []byte, off uintptr) (uint64, bool) {
	if uintptr(len(rec)) < off+8 {
		return 0, false
	}
	return binary.NativeEndian.Uint64(rec[off:]), true
}
