// Package generator - html.go assembles complete HTML documents.
package generator

import (
	"fmt"
	"html"
	"strings"
)

// cleanFragment strips markdown code fences and surrounding whitespace from
// model output. Models occasionally wrap HTML in ```html fences despite
// being told not to.
func cleanFragment(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx >= 0 {
			s = s[idx+1:]
		}
	}
	if strings.HasSuffix(strings.TrimSpace(s), "```") {
		trimmed := strings.TrimSpace(s)
		s = trimmed[:len(trimmed)-3]
	}

	return strings.TrimSpace(s)
}

// ComposeDocument wraps a body fragment into a complete standalone HTML
// document with the stylesheet inlined, ready for PDF rendering.
func ComposeDocument(title, css, body string) string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n")
	sb.WriteString("<html lang=\"en\">\n<head>\n")
	sb.WriteString("<meta charset=\"utf-8\">\n")
	sb.WriteString(fmt.Sprintf("<title>%s</title>\n", html.EscapeString(title)))
	sb.WriteString("<style>\n")
	sb.WriteString(css)
	sb.WriteString("\n</style>\n</head>\n<body>\n")
	sb.WriteString(body)
	sb.WriteString("\n</body>\n</html>\n")
	return sb.String()
}

// CoverLetterHTML converts the plain-text letter into an HTML body fragment.
// The text is escaped and paragraph breaks become <p> elements, so the same
// stylesheet pipeline renders both document types.
func CoverLetterHTML(letter string) string {
	paragraphs := strings.Split(letter, "\n\n")

	var sb strings.Builder
	sb.WriteString("<main class=\"cover-letter\">\n")
	for _, para := range paragraphs {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		escaped := html.EscapeString(para)
		// Single newlines inside a paragraph become line breaks, which
		// keeps address and signature blocks intact.
		escaped = strings.ReplaceAll(escaped, "\n", "<br>\n")
		sb.WriteString("<p>")
		sb.WriteString(escaped)
		sb.WriteString("</p>\n")
	}
	sb.WriteString("</main>")
	return sb.String()
}
