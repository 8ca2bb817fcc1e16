package analyzer

import "github.com/PuerkitoBio/goquery"

// Hyperlink is one anchor element: its text content and href target. Either
// side may be absent; absence is reported, not dropped.
type Hyperlink struct {
	Text      string
	HasText   bool
	Target    string
	HasTarget bool
}

// ExtractLinks returns every anchor in document order. The text is the
// concatenation of the anchor's descendant text nodes; an anchor with no
// text nodes has HasText false. The target is the raw href attribute,
// unvalidated and unresolved.
func ExtractLinks(doc *goquery.Document) []Hyperlink {
	var links []Hyperlink
	doc.Find("a").Each(func(_ int, s *goquery.Selection) {
		text := s.Text()
		target, hasTarget := s.Attr("href")
		links = append(links, Hyperlink{
			Text:      text,
			HasText:   text != "",
			Target:    target,
			HasTarget: hasTarget,
		})
	})
	return links
}
