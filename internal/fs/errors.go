// Package fs provides directory streams and the directory lister.
//
// This file contains error types and error handling utilities.
package fs

import (
	"errors"
	"fmt"

	"dirlist/internal/logging"
)

var (
	errLogger = logging.GetLogger().WithPrefix("error")

	// ErrClosed indicates use of a directory stream after Close
	ErrClosed = errors.New("directory stream already closed")

	// ErrNotDirectory indicates an open target that cannot be enumerated
	ErrNotDirectory = errors.New("not a directory")
)

// Error wraps a directory operation failure with the operation and
// affected path.
type Error struct {
	Op   string // Operation that failed (e.g., "opendir", "readdir")
	Path string // Affected path
	Err  error  // Underlying error
}

// Error implements the error interface, providing a formatted error message
func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("operation %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("operation %s on %s failed: %v", e.Op, e.Path, e.Err)
}

// Unwrap implements error unwrapping for the errors.Is/As functions
func (e *Error) Unwrap() error {
	return e.Err
}

// NewFSError creates a new Error with the given operation, path, and underlying error
func NewFSError(op string, path string, err error) *Error {
	fsErr := &Error{
		Op:   op,
		Path: path,
		Err:  err,
	}
	errLogger.Debug("Created new FSError: %v", fsErr)
	return fsErr
}

// Operation names for consistent logging and error reporting
const (
	OpOpen    = "opendir"  // Opening a directory stream
	OpReadDir = "readdir"  // Advancing the cursor
	OpClose   = "closedir" // Releasing the stream
)

// IsOpenFailure reports whether err is the failure to open a directory
// stream. Missing paths, permission errors and non-directories are not
// told apart.
func IsOpenFailure(err error) bool {
	var fsErr *Error
	if errors.As(err, &fsErr) {
		return fsErr.Op == OpOpen
	}
	return false
}
