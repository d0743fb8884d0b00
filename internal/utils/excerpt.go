package utils

import (
	"strings"

	"golang.org/x/net/html"
)

// DefaultExcerptLength is the number of characters kept for meta descriptions.
const DefaultExcerptLength = 160

// Excerpt returns the visible text of an HTML fragment, cut to length runes
// and suffixed with "..." when it was cut.
func Excerpt(fragment string, length int) string {
	text := TextContent(fragment)
	runes := []rune(text)
	if len(runes) <= length {
		return text
	}
	return strings.TrimRight(string(runes[:length]), " \t\n\r") + "..."
}

// TextContent concatenates the text nodes of an HTML fragment, skipping
// script and style elements.
func TextContent(fragment string) string {
	z := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	skip := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.StartTagToken:
			if name, _ := z.TagName(); isRawTextTag(string(name)) {
				skip++
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); isRawTextTag(string(name)) && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		}
	}
}

func isRawTextTag(name string) bool {
	return name == "script" || name == "style"
}
