package util

import "errors"

// Sentinel errors for package util.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// File and directory errors
	ErrExpectedFile      = errors.New("expected file, got directory")
	ErrExpectedDirectory = errors.New("expected directory, got file")

	// Write errors
	ErrShortWrite = errors.New("incomplete write")

	// String errors
	ErrEmptyString = errors.New("empty string")
)

// IOError is the single failure kind returned by the file and path helpers.
// It records the operation, the offending path and the underlying system error.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Err == nil {
		return e.Op + " " + e.Path
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error { return e.Err }

func ioError(op, path string, err error) error {
	return &IOError{Op: op, Path: path, Err: err}
}
