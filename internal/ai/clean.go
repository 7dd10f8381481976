package ai

import (
	"strings"
	"unicode"
)

// StripCodeFence removes a markdown code fence that wraps the whole string,
// including an optional language tag on the opening fence. Text that is not
// fully fenced is returned trimmed but otherwise untouched.
func StripCodeFence(s string) string {
	t := strings.TrimSpace(s)
	if len(t) < 6 || !strings.HasPrefix(t, "```") || !strings.HasSuffix(t, "```") {
		return t
	}

	t = strings.TrimPrefix(t, "```")
	t = strings.TrimSuffix(t, "```")

	// Drop a language tag (```json) if the opening fence has its own line.
	if i := strings.IndexByte(t, '\n'); i >= 0 && isLanguageTag(strings.TrimSpace(t[:i])) {
		t = t[i+1:]
	}

	return strings.TrimSpace(t)
}

func isLanguageTag(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ExtractJSONObject returns the first balanced {...} group in s, honoring
// string literals and escapes, or "" when no balanced object exists. Used
// when the model wraps its JSON in prose instead of a fence.
func ExtractJSONObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case inString:
			if c == '\\' {
				escaped = true
			} else if c == '"' {
				inString = false
			}
		case c == '"':
			inString = true
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}

	return ""
}
