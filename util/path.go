package util

import "os"

// PathExists reports whether path can be stat-ed and is a directory when
// expectDir is set, or a non-directory otherwise.
func PathExists(path string, expectDir bool) bool {
	return CheckPath(path, expectDir) == nil
}

// CheckPath is the asserting form of PathExists. A stat failure is
// returned as an *IOError, and so is a type mismatch, wrapping
// ErrExpectedDirectory or ErrExpectedFile.
func CheckPath(path string, expectDir bool) error {
	info, err := os.Stat(path)
	if err != nil {
		return ioError("stat", path, err)
	}
	switch {
	case expectDir && !info.IsDir():
		return ioError("stat", path, ErrExpectedDirectory)
	case !expectDir && info.IsDir():
		return ioError("stat", path, ErrExpectedFile)
	}
	return nil
}
