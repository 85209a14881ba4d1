package scan

import "fmt"

// ScanError reports a fatal I/O failure with operation and path context.
// Parse failures are tolerated during scanning; I/O failures are not, and
// abort the run with one of these. It supports errors.Is/As through Unwrap.
type ScanError struct {
	Op   string // "stat", "list", "read"
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ScanError) Error() string {
	return fmt.Sprintf("scan %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ScanError) Unwrap() error { return e.Err }

// NewScanError creates a ScanError for the given operation and path.
func NewScanError(op, path string, err error) *ScanError {
	return &ScanError{Op: op, Path: path, Err: err}
}
