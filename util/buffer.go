package util

import "strings"

const (
	lowerHexDigits = "0123456789abcdef"
	upperHexDigits = "0123456789ABCDEF"
)

// newBuffer returns a builder with room for n bytes.
func newBuffer(n int) *strings.Builder {
	var b strings.Builder
	b.Grow(n)
	return &b
}

// appendHex writes c as two digits from the given table, high nibble first.
func appendHex(b *strings.Builder, c byte, digits string) {
	b.WriteByte(digits[c>>4])
	b.WriteByte(digits[c&0x0f])
}

// hexCharToInt converts a hex character to its integer value.
// Characters outside [0-9a-fA-F] map to 0.
func hexCharToInt(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c - 'a' + 10)
	case c >= 'A' && c <= 'F':
		return int(c - 'A' + 10)
	default:
		return 0
	}
}
