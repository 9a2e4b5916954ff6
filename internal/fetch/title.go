package fetch

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ExtractTitle returns the text of the first <title> element in the
// document, trimmed of surrounding whitespace. It returns an empty
// string when the document has no title or cannot be parsed.
// golang.org/x/net/html tolerates the malformed markup common on the
// web, so garbage input degrades to an empty title rather than an error.
func ExtractTitle(content io.Reader) string {
	doc, err := html.Parse(content)
	if err != nil {
		return ""
	}

	var title string
	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "title" {
			if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
				title = strings.TrimSpace(n.FirstChild.Data)
			}
			return true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(doc)

	return title
}
