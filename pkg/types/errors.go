package types

import (
	"errors"
	"fmt"
)

// Domain errors for scanning
var (
	// File errors (the file is skipped, the run continues)
	ErrUnreadableFile = errors.New("file is not readable")
	ErrIsDirectory    = errors.New("path is a directory")

	// Run errors (the run stops, already scanned hylites are kept)
	ErrScanAborted = errors.New("scan aborted")
)

// FileError reports a single input file that was skipped
type FileError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (fe *FileError) Error() string {
	return fmt.Sprintf("%s: %v", fe.Path, fe.Err)
}

// Unwrap returns the underlying cause
func (fe *FileError) Unwrap() error {
	return fe.Err
}
