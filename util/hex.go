package util

// HexEncode renders data as lowercase hex, high nibble first.
// The result is always exactly twice as long as the input.
func HexEncode(data []byte) string {
	buf := newBuffer(len(data) * 2)
	for _, c := range data {
		appendHex(buf, c, lowerHexDigits)
	}
	return buf.String()
}

// HexDecode converts a hex string back into bytes. It never fails:
// characters that are not hex digits contribute a nibble value of 0, and
// a trailing unpaired character is decoded as a high nibble with a low
// nibble of 0.
func HexDecode(encoded string) []byte {
	out := make([]byte, 0, (len(encoded)+1)/2)
	for i := 0; i < len(encoded); i += 2 {
		hi := hexCharToInt(encoded[i])
		lo := 0
		if i+1 < len(encoded) {
			lo = hexCharToInt(encoded[i+1])
		}
		out = append(out, byte(hi<<4|lo))
	}
	return out
}

// HexDecodeString is HexDecode returning the decoded bytes as a string.
func HexDecodeString(encoded string) string {
	return string(HexDecode(encoded))
}
