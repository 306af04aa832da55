// Package output writes generated documents to the output directory layout.
package output

import (
	"crypto/md5"
	"encoding/hex"
	"regexp"
	"strings"
)

// maxFilenameLength caps cleaned filename components.
const maxFilenameLength = 50

var (
	thinkBlockRe  = regexp.MustCompile(`(?s)<think>.*?</think>`)
	thinkOpenRe   = regexp.MustCompile(`(?s)<think>.*`)
	punctuationRe = regexp.MustCompile(`[,.;!?()\[\]{}]`)
	underscoresRe = regexp.MustCompile(`_+`)
)

// illegal filename characters on Windows and Unix filesystems
var illegalChars = []string{`\`, `/`, `:`, `*`, `?`, `"`, `<`, `>`, `|`}

// CleanFilename turns an arbitrary string (often model output) into a safe
// filename component. Reasoning tags, illegal characters, punctuation, and
// whitespace become underscores; empty input yields "unknown".
func CleanFilename(name string) string {
	if name == "" {
		return "unknown"
	}

	cleaned := thinkBlockRe.ReplaceAllString(name, "")
	cleaned = thinkOpenRe.ReplaceAllString(cleaned, "")

	cleaned = strings.TrimSpace(strings.ReplaceAll(cleaned, "\n", "_"))

	for _, char := range illegalChars {
		cleaned = strings.ReplaceAll(cleaned, char, "_")
	}
	cleaned = punctuationRe.ReplaceAllString(cleaned, "_")
	cleaned = strings.ReplaceAll(cleaned, " ", "_")
	cleaned = underscoresRe.ReplaceAllString(cleaned, "_")
	cleaned = strings.Trim(cleaned, "_")

	if cleaned == "" {
		return "unknown"
	}

	// Truncate on rune boundaries; company and role names are not
	// always ASCII.
	if runes := []rune(cleaned); len(runes) > maxFilenameLength {
		cleaned = string(runes[:maxFilenameLength-3]) + "..."
	}

	if strings.HasPrefix(cleaned, ".") {
		cleaned = "file_" + cleaned
	}

	return cleaned
}

// SuggestedName derives a short stable identifier from the job URL, so runs
// against the same posting land in the same directory.
func SuggestedName(jobURL string) string {
	sum := md5.Sum([]byte(jobURL))
	return hex.EncodeToString(sum[:])[:10]
}
