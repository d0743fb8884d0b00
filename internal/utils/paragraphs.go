package utils

import (
	"html"
	"strings"
)

// ParagraphsToHTML wraps each line of plain text in a <p> element.
// The text is escaped first.
func ParagraphsToHTML(content string) string {
	escaped := html.EscapeString(strings.ReplaceAll(content, "\r\n", "\n"))
	return "<p>" + strings.ReplaceAll(escaped, "\n", "</p><p>") + "</p>"
}
