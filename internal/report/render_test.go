package report

import (
	"bytes"
	"strings"
	"testing"

	"pagereport/internal/analyzer"
)

func renderToString(rep *analyzer.Report) string {
	var buf bytes.Buffer
	Render(&buf, rep)
	return buf.String()
}

func TestRenderFullReport(t *testing.T) {
	rep := &analyzer.Report{
		Title:         "Sample Page",
		HasTitle:      true,
		ContentLength: 3072,
		MetaTags: []analyzer.MetaTag{
			{Name: "keywords", Content: "Cat, Bird", Raw: `<meta name="keywords" content="Cat, Bird">`},
		},
		TotalWords:      6,
		UniqueWords:     5,
		TopWords:        []analyzer.WordCount{{Word: "cat", Count: 2}, {Word: "dog", Count: 1}},
		MissingKeywords: []string{"Bird"},
		Links: []analyzer.Hyperlink{
			{Text: "About us", HasText: true, Target: "/about", HasTarget: true},
		},
	}

	out := renderToString(rep)

	wantLines := []string{
		`PAGE TITLE: "Sample Page"`,
		`PAGE SIZE: 3.00K`,
		`META TAGS FOUND:`,
		`<meta name="keywords" content="Cat, Bird">`,
		`PAGE CONTENT - WORD SUMMARY`,
		`6 words found in page content`,
		`5 unique words in page`,
		`Five most common words:`,
		` "cat"   - occurs 2 times`,
		` "dog"   - occurs 1 times`,
		`META keywords not in content:`,
		` - "Bird"`,
		`PAGE HYPERLINKS:`,
		`"About us",  "/about"`,
	}

	for _, line := range wantLines {
		if !strings.Contains(out, line+"\n") {
			t.Errorf("Report missing line %q\nfull output:\n%s", line, out)
		}
	}
}

func TestRenderNotFoundMarkers(t *testing.T) {
	rep := &analyzer.Report{ContentLength: -1}

	out := renderToString(rep)

	if !strings.Contains(out, "PAGE TITLE: not found!") {
		t.Errorf("Missing title marker in:\n%s", out)
	}
	if !strings.Contains(out, "PAGE SIZE: not found!") {
		t.Errorf("Missing size marker in:\n%s", out)
	}
}

func TestRenderLinkPlaceholders(t *testing.T) {
	rep := &analyzer.Report{
		ContentLength: -1,
		Links: []analyzer.Hyperlink{
			{Target: "/only-target", HasTarget: true},
			{Text: "only text", HasText: true},
		},
	}

	out := renderToString(rep)

	if !strings.Contains(out, `"null",  "/only-target"`) {
		t.Errorf("Missing text placeholder in:\n%s", out)
	}
	if !strings.Contains(out, `"only text",  "null"`) {
		t.Errorf("Missing target placeholder in:\n%s", out)
	}
}

func TestRenderWordColumnPadding(t *testing.T) {
	rep := &analyzer.Report{
		ContentLength: -1,
		TopWords: []analyzer.WordCount{
			{Word: "a", Count: 3},
			{Word: "longerword", Count: 1},
		},
	}

	out := renderToString(rep)

	// short words pad to the fixed column width, long words extend past it
	if !strings.Contains(out, ` "a"     - occurs 3 times`) {
		t.Errorf("Short word not padded in:\n%s", out)
	}
	if !strings.Contains(out, ` "longerword" - occurs 1 times`) {
		t.Errorf("Long word mangled in:\n%s", out)
	}
}

func TestRenderDeterministic(t *testing.T) {
	rep := &analyzer.Report{
		Title:       "Same",
		HasTitle:    true,
		TotalWords:  1,
		UniqueWords: 1,
		TopWords:    []analyzer.WordCount{{Word: "same", Count: 1}},
	}

	if renderToString(rep) != renderToString(rep) {
		t.Error("Rendering the same report twice produced different bytes")
	}
}
