package ai

import "strings"

const (
	reasoningOpen  = "<think>"
	reasoningClose = "</think>"
)

// StripReasoning removes reasoning/scratchpad blocks some models emit
// before their answer, including the delimiters, then trims surrounding
// whitespace. An unterminated open tag drops the rest of the text.
// Idempotent, and a no-op on text without the delimiter.
func StripReasoning(s string) string {
	for {
		start := strings.Index(s, reasoningOpen)
		if start < 0 {
			break
		}
		rest := s[start+len(reasoningOpen):]
		end := strings.Index(rest, reasoningClose)
		if end < 0 {
			s = s[:start]
			break
		}
		s = s[:start] + rest[end+len(reasoningClose):]
	}
	return strings.TrimSpace(s)
}
