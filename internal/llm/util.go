// Package llm - util.go provides helpers for cleaning model output.
package llm

import (
	"regexp"
	"strings"
)

var (
	thinkBlockRe = regexp.MustCompile(`(?s)<think>.*?</think>`)
	thinkOpenRe  = regexp.MustCompile(`(?s)<think>.*`)
)

// StripThinkTags removes reasoning blocks emitted by models such as
// deepseek-r1. Both closed <think>...</think> blocks and a dangling
// unclosed <think> tag are stripped.
func StripThinkTags(s string) string {
	s = thinkBlockRe.ReplaceAllString(s, "")
	s = thinkOpenRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// CleanJSONBlock strips markdown code fences that models often wrap
// around JSON output, returning the bare JSON text.
func CleanJSONBlock(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "```") {
		// Drop the opening fence line, including a language tag.
		if idx := strings.Index(s, "\n"); idx >= 0 {
			s = s[idx+1:]
		} else {
			s = strings.TrimPrefix(s, "```json")
			s = strings.TrimPrefix(s, "```")
		}
		// Drop everything from the closing fence on. Unfenced input is
		// left alone; a fence inside a JSON string is legitimate content.
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
	}

	return strings.TrimSpace(s)
}
