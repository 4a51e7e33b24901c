package fs

import (
	iofs "io/fs"

	"bazil.org/fuse"
)

// Entry type tags, numerically identical to the d_type values of dirent.h.
const (
	TypeUnknown = fuse.DT_Unknown
	TypeFIFO    = fuse.DT_FIFO
	TypeChar    = fuse.DT_Char
	TypeDir     = fuse.DT_Dir
	TypeBlock   = fuse.DT_Block
	TypeFile    = fuse.DT_File
	TypeLink    = fuse.DT_Link
	TypeSocket  = fuse.DT_Socket

	// TypeWhiteout marks a deleted entry on union filesystems. The fuse
	// package has no name for it.
	TypeWhiteout fuse.DirentType = 14
)

// TypeFromMode derives an entry type tag from the type bits of a file mode.
// Modes with no matching tag map to TypeUnknown.
func TypeFromMode(mode iofs.FileMode) fuse.DirentType {
	switch mode.Type() {
	case 0:
		return TypeFile
	case iofs.ModeDir:
		return TypeDir
	case iofs.ModeSymlink:
		return TypeLink
	case iofs.ModeNamedPipe:
		return TypeFIFO
	case iofs.ModeSocket:
		return TypeSocket
	case iofs.ModeDevice:
		return TypeBlock
	case iofs.ModeDevice | iofs.ModeCharDevice:
		return TypeChar
	default:
		return TypeUnknown
	}
}
