package util

// isWhitespace matches the ASCII whitespace set stripped by TrimString.
func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// SplitString tokenizes s on sep. Runs of separators are collapsed, leading
// and trailing separators are skipped, and empty tokens are never returned.
// An empty input yields an empty, non-nil slice.
func SplitString(s string, sep byte) []string {
	parts := []string{}
	start := -1
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			if start >= 0 {
				parts = append(parts, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		parts = append(parts, s[start:])
	}
	return parts
}

// TrimString strips spaces, tabs, carriage returns and line feeds from both
// ends of s.
func TrimString(s string) string {
	start := 0
	for start < len(s) && isWhitespace(s[start]) {
		start++
	}
	end := len(s)
	for end > start && isWhitespace(s[end-1]) {
		end--
	}
	return s[start:end]
}

// TrimStringPtr is TrimString for optional values: nil stays nil.
func TrimStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := TrimString(*s)
	return &trimmed
}

// StringOK reports whether s is non-empty.
func StringOK(s string) bool {
	return s != ""
}

// RequireString returns ErrEmptyString if s is empty.
func RequireString(s string) error {
	if !StringOK(s) {
		return ErrEmptyString
	}
	return nil
}
