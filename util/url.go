package util

// isUnreserved reports whether c passes through URLEscape unchanged.
// '.' and '~' are escaped as %2E and %7E.
func isUnreserved(c byte) bool {
	return (c >= '0' && c <= '9') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= 'a' && c <= 'z') ||
		c == '_' || c == '-'
}

// URLEscape percent-encodes every byte of s outside [0-9A-Za-z_-] as %XY
// with uppercase hex digits. Multi-byte UTF-8 sequences are escaped byte by
// byte.
func URLEscape(s string) string {
	buf := newBuffer(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			buf.WriteByte(c)
			continue
		}
		buf.WriteByte('%')
		appendHex(buf, c, upperHexDigits)
	}
	return buf.String()
}

// URLUnescape reverses URLEscape and also decodes '+' as a space.
// Invalid hex digits decode as 0. A '%' followed by fewer than two
// characters ends decoding and the remainder is dropped.
func URLUnescape(s string) string {
	buf := newBuffer(len(s))
	for i := 0; i < len(s); {
		c := s[i]
		i++
		switch c {
		case '%':
			if i+2 > len(s) {
				return buf.String()
			}
			buf.WriteByte(byte(hexCharToInt(s[i])<<4 | hexCharToInt(s[i+1])))
			i += 2
		case '+':
			buf.WriteByte(' ')
		default:
			buf.WriteByte(c)
		}
	}
	return buf.String()
}
