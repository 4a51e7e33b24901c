package fs

import (
	"fmt"
	"io"

	"dirlist/internal/logging"
)

var (
	dirLogger = logging.GetLogger().WithPrefix("dir")
)

// Process exit codes. ExitNotFound is the normal ending under the legacy
// scheme even though nothing is searched for.
const (
	ExitOK       = 0
	ExitError    = 1
	ExitNotFound = 2
)

// ExitScheme selects the status returned after a complete listing.
type ExitScheme string

const (
	// SchemeLegacy ends a complete listing with ExitNotFound.
	SchemeLegacy ExitScheme = "legacy"
	// SchemeConventional ends a complete listing with ExitOK.
	SchemeConventional ExitScheme = "conventional"
)

// ParseExitScheme validates a scheme name.
func ParseExitScheme(name string) (ExitScheme, error) {
	switch s := ExitScheme(name); s {
	case SchemeLegacy, SchemeConventional:
		return s, nil
	default:
		return "", fmt.Errorf("unknown exit scheme %q (want %q or %q)", name, SchemeLegacy, SchemeConventional)
	}
}

// SuccessCode returns the exit code for a complete listing.
func (s ExitScheme) SuccessCode() int {
	if s == SchemeConventional {
		return ExitOK
	}
	return ExitNotFound
}

// Lister prints the entries of one directory stream at a time.
type Lister struct {
	opener Opener
	out    io.Writer
	scheme ExitScheme
}

// NewLister creates a Lister reading streams from opener and printing to out.
func NewLister(opener Opener, out io.Writer, scheme ExitScheme) *Lister {
	if scheme == "" {
		scheme = SchemeLegacy
	}
	return &Lister{
		opener: opener,
		out:    out,
		scheme: scheme,
	}
}

// List prints one "entry: <type> <name>" line per entry of the directory
// at path and returns the process exit code. If the directory cannot be
// opened it prints "dirp: NULL" and returns ExitError.
func (l *Lister) List(path string) int {
	dirLogger.Debug("Listing directory: %q", path)

	stream, err := l.opener.Open(path)
	if err != nil {
		dirLogger.Debug("Open failed: %v", err)
		fmt.Fprint(l.out, "dirp: NULL")
		return ExitError
	}
	defer func() {
		if closeErr := stream.Close(); closeErr != nil {
			dirLogger.Warn("Failed to close %q: %v", path, closeErr)
		}
	}()

	count := 0
	for {
		entry, ok := stream.Next()
		if !ok {
			break
		}
		dirLogger.Trace("Entry %q type=%d inode=%d", entry.Name, entry.Type, entry.Inode)
		fmt.Fprintf(l.out, "entry: %d %s\n", uint32(entry.Type), entry.Name)
		count++
	}

	// A failed read ends the listing like end-of-stream does.
	if readErr := stream.Err(); readErr != nil {
		dirLogger.Debug("Listing of %q stopped early: %v", path, readErr)
	}

	dirLogger.Debug("Directory %q contains %d entries", path, count)
	return l.scheme.SuccessCode()
}
