package analyzer

import (
	"strings"

	"golang.org/x/net/html"
)

// ExtractWords walks the document depth-first in document order and returns
// the normalized word tokens of every text node the filter keeps.
//
// Splitting is on single spaces, not whitespace runs, so runs of spaces
// produce empty tokens. These are emitted on purpose: totals count them, and
// callers that want non-trivial words must filter separately.
func ExtractWords(root *html.Node, filter TextFilter) []string {
	var words []string

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode && filter.Keep(n) {
			trimmed := strings.TrimSpace(n.Data)
			if trimmed != "" {
				for _, raw := range strings.Split(trimmed, " ") {
					words = append(words, NormalizeWord(raw))
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return words
}

// NormalizeWord converts a raw word candidate into a token: surrounding
// whitespace trimmed, every comma and period removed, lowercased. The result
// may be empty.
func NormalizeWord(raw string) string {
	w := strings.TrimSpace(raw)
	w = strings.ReplaceAll(w, ",", "")
	w = strings.ReplaceAll(w, ".", "")
	return strings.ToLower(w)
}
