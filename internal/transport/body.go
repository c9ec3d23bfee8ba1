package transport

import (
	"mime"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// maxErrorBodyBytes bounds how much of a failed response is read.
const maxErrorBodyBytes = 64 * 1024

// ErrorText turns an error response body into a readable message. HTML pages, such as
// framework debug or proxy error pages, are reduced to their title or visible text.
func ErrorText(contentType string, body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return ""
	}
	if !isHTML(contentType, text) {
		return text
	}
	if extracted := extractHTMLText(text); extracted != "" {
		return extracted
	}
	return text
}

func isHTML(contentType, body string) bool {
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		if mediaType == "text/html" || mediaType == "application/xhtml+xml" {
			return true
		}
	}
	lower := strings.ToLower(body)
	return strings.HasPrefix(lower, "<!doctype html") || strings.HasPrefix(lower, "<html")
}

func extractHTMLText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return cleanWhitespace(title)
	}
	doc.Find("script, style, noscript").Remove()
	for _, selector := range []string{"main", "h1", "body"} {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			if text := cleanWhitespace(sel.Text()); text != "" {
				return text
			}
		}
	}
	return ""
}

// cleanWhitespace collapses the text onto non-empty trimmed lines.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
