package analyzer

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/PuerkitoBio/goquery"
)

// TopWordCount is how many ranked words the report carries.
const TopWordCount = 5

// Analyze parses the page body and runs the full pipeline: text extraction
// through the given filter, word tally, keyword reconciliation, and link
// collection. contentLength is the declared Content-Length header value,
// -1 when the response did not declare one.
func Analyze(body []byte, contentLength int64, filter TextFilter) (*Report, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	report := &Report{ContentLength: contentLength}

	// First title element only
	if title := doc.Find("title").First(); title.Length() > 0 {
		report.Title = title.Text()
		report.HasTitle = true
	}

	words := ExtractWords(doc.Get(0), filter)
	tally := NewTally(words)

	report.TotalWords = len(words)
	report.UniqueWords = tally.Unique()
	report.TopWords = tally.Top(TopWordCount)

	var keywords []string
	report.MetaTags, keywords = ExtractMeta(doc)
	report.MissingKeywords = MissingKeywords(keywords, words)

	report.Links = ExtractLinks(doc)

	slog.Debug("analyzed page",
		"total_words", report.TotalWords,
		"unique_words", report.UniqueWords,
		"meta_tags", len(report.MetaTags),
		"keywords", len(keywords),
		"links", len(report.Links))

	return report, nil
}
