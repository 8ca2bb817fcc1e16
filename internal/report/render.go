// Package report renders an analyzed page as a human-readable console
// report. Rendering is pure: the same Report always produces the same bytes.
package report

import (
	"fmt"
	"io"

	"pagereport/internal/analyzer"
)

// wordFieldWidth is the minimum width of the quoted word column in the
// most-common-words listing.
const wordFieldWidth = 8

// placeholder stands in for absent link text or targets.
const placeholder = "null"

// Render writes the full report to w.
func Render(w io.Writer, rep *analyzer.Report) {
	if rep.HasTitle {
		fmt.Fprintf(w, "\nPAGE TITLE: %q\n", rep.Title)
	} else {
		fmt.Fprintf(w, "\nPAGE TITLE: not found!\n")
	}

	if kb, ok := rep.SizeKB(); ok {
		fmt.Fprintf(w, "PAGE SIZE: %.2fK\n", kb)
	} else {
		fmt.Fprintf(w, "PAGE SIZE: not found!\n")
	}

	fmt.Fprintf(w, "\nMETA TAGS FOUND:\n\n")
	for _, tag := range rep.MetaTags {
		fmt.Fprintf(w, "%s\n\n", tag.Raw)
	}

	fmt.Fprintf(w, "\nPAGE CONTENT - WORD SUMMARY\n\n")
	fmt.Fprintf(w, "%d words found in page content\n", rep.TotalWords)
	fmt.Fprintf(w, "%d unique words in page\n", rep.UniqueWords)

	fmt.Fprintf(w, "\nFive most common words:\n\n")
	for _, wc := range rep.TopWords {
		fmt.Fprintf(w, "%-*s - occurs %d times\n", wordFieldWidth, fmt.Sprintf(" %q", wc.Word), wc.Count)
	}

	fmt.Fprintf(w, "\nMETA keywords not in content:\n\n")
	for _, kw := range rep.MissingKeywords {
		fmt.Fprintf(w, " - %q\n", kw)
	}

	fmt.Fprintf(w, "\n\nPAGE HYPERLINKS:\n\n")
	for _, link := range rep.Links {
		text := placeholder
		if link.HasText {
			text = link.Text
		}
		target := placeholder
		if link.HasTarget {
			target = link.Target
		}
		fmt.Fprintf(w, "%q,  %q\n", text, target)
	}
}
