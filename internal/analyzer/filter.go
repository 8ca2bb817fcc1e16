// Package analyzer extracts word statistics, metadata, and hyperlinks from a
// parsed HTML document. It implements the content analysis pipeline: text
// nodes are classified for visibility, normalized into word tokens, tallied,
// and reconciled against the keywords declared in meta tags.
package analyzer

import (
	"regexp"

	"golang.org/x/net/html"
)

// commentPattern matches raw text that looks like an HTML comment block.
var commentPattern = regexp.MustCompile(`^<!--.*-->`)

// TextFilter decides whether a text node contributes to page content.
type TextFilter interface {
	Keep(n *html.Node) bool
}

// VisibleText keeps only text a browser would render. Text inside head,
// title, style, and script elements is excluded, as is text directly under
// the document root and anything shaped like a comment.
type VisibleText struct{}

// ignoredParents are the enclosing tags whose text is never rendered.
var ignoredParents = map[string]bool{
	"head":   true,
	"title":  true,
	"style":  true,
	"script": true,
}

// Keep reports whether the text node is user-visible. A detached node with
// no parent is treated as visible unless it matches the comment pattern.
func (VisibleText) Keep(n *html.Node) bool {
	if p := n.Parent; p != nil {
		if p.Type == html.DocumentNode {
			return false
		}
		if p.Type == html.ElementNode && ignoredParents[p.Data] {
			return false
		}
	}
	return !commentPattern.MatchString(n.Data)
}

// AllText keeps every text node, visible or not. Useful when the report
// should cover all source text rather than rendered content.
type AllText struct{}

// Keep always returns true.
func (AllText) Keep(*html.Node) bool { return true }
