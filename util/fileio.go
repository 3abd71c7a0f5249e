package util

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
)

// ReadWholeFile opens the file at path and reads it to the end.
func ReadWholeFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioError("open", path, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, ioError("read", path, err)
	}
	return data, nil
}

// ReadTextFile is ReadWholeFile returning a string.
func ReadTextFile(path string) (string, error) {
	data, err := ReadWholeFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteWholeFile truncates or creates the file at path and writes data to
// it. Writing fewer bytes than len(data) is a failure wrapping ErrShortWrite.
func WriteWholeFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return ioError("open", path, err)
	}
	n, err := f.Write(data)
	if n < len(data) {
		f.Close()
		return ioError("write", path, errors.Join(ErrShortWrite, err))
	}
	if err != nil {
		f.Close()
		return ioError("write", path, err)
	}
	if err := f.Close(); err != nil {
		return ioError("close", path, err)
	}
	return nil
}

// WriteTextFile is WriteWholeFile for string contents.
func WriteTextFile(path, contents string) error {
	return WriteWholeFile(path, []byte(contents))
}

// WriteJSONFile writes any value as JSON to the specified file path.
func WriteJSONFile(path string, v any) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		return err
	}
	return WriteWholeFile(path, buf.Bytes())
}
