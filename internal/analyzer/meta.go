package analyzer

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// keywordsMetaName is matched exactly and case-sensitively.
const keywordsMetaName = "keywords"

// MetaTag is one meta element as declared in the document.
type MetaTag struct {
	Name    string // name attribute, empty if absent
	Content string // content attribute, empty if absent
	Raw     string // source-order rendering of the tag for display
}

// ExtractMeta returns every meta tag in document order together with the
// combined keyword list. Each meta named "keywords" contributes its content
// attribute split on commas; the substrings are kept untrimmed, and an empty
// content still contributes one empty keyword.
func ExtractMeta(doc *goquery.Document) (tags []MetaTag, keywords []string) {
	doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
		name, _ := s.Attr("name")
		content, _ := s.Attr("content")

		tags = append(tags, MetaTag{
			Name:    name,
			Content: content,
			Raw:     renderTag(s),
		})

		if name == keywordsMetaName {
			keywords = append(keywords, strings.Split(content, ",")...)
		}
	})
	return tags, keywords
}

// renderTag rebuilds the tag's source form with attributes in parsed order.
func renderTag(s *goquery.Selection) string {
	n := s.Get(0)
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(n.Data)
	for _, attr := range n.Attr {
		b.WriteByte(' ')
		b.WriteString(attr.Key)
		b.WriteString(`="`)
		b.WriteString(attr.Val)
		b.WriteByte('"')
	}
	b.WriteByte('>')
	return b.String()
}

// MissingKeywords reports, in declaration order, every keyword whose
// lowercased and trimmed form does not occur in the extracted token
// sequence. The returned strings are the originals trimmed for display;
// duplicates across keyword tags are preserved.
//
// Membership is a direct scan of the token slice rather than a lookup in
// the tally, so matching stays tied to what was actually extracted.
func MissingKeywords(keywords, words []string) []string {
	var missing []string
	for _, kw := range keywords {
		needle := strings.ToLower(strings.TrimSpace(kw))
		if !contains(words, needle) {
			missing = append(missing, strings.TrimSpace(kw))
		}
	}
	return missing
}

func contains(words []string, w string) bool {
	for _, candidate := range words {
		if candidate == w {
			return true
		}
	}
	return false
}
