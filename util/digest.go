package util

import (
	"crypto/md5"
	"io"
	"os"
)

// MD5 returns the RFC 1321 digest of data.
func MD5(data []byte) [md5.Size]byte {
	return md5.Sum(data)
}

// MD5Hex returns the MD5 digest of data as 32 lowercase hex characters.
//
// MD5 is used for identifiers and content addressing only, never for
// integrity protection.
func MD5Hex(data []byte) string {
	sum := MD5(data)
	return HexEncode(sum[:])
}

// MD5HexString hashes the bytes of s.
func MD5HexString(s string) string {
	return MD5Hex([]byte(s))
}

// MD5HexReader calculates the MD5 digest of everything read from r.
func MD5HexReader(r io.Reader) (string, error) {
	h := md5.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return HexEncode(h.Sum(nil)), nil
}

// FileMD5Hex hashes the contents of the file at path.
func FileMD5Hex(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", ioError("stat", path, err)
	}
	if info.IsDir() {
		return "", ioError("hash", path, ErrExpectedFile)
	}
	file, err := os.Open(path)
	if err != nil {
		return "", ioError("open", path, err)
	}
	defer file.Close()
	sum, err := MD5HexReader(file)
	if err != nil {
		return "", ioError("read", path, err)
	}
	return sum, nil
}
