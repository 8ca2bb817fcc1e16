package analyzer

import (
	"reflect"
	"testing"
)

func TestNormalizeWord(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain word", "cat", "cat"},
		{"uppercase", "Cat", "cat"},
		{"trailing period", "dog.", "dog"},
		{"trailing comma", "dog,", "dog"},
		{"interior punctuation", "e.g,x", "egx"},
		{"surrounding whitespace", "  bird\t", "bird"},
		{"empty input", "", ""},
		{"only punctuation", ".,.", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeWord(tt.input); got != tt.want {
				t.Errorf("NormalizeWord(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractWords(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "simple body",
			content: `<html><body><p>Cat cat dog.</p></body></html>`,
			want:    []string{"cat", "cat", "dog"},
		},
		{
			name:    "double space yields empty token",
			content: `<html><body><p>one  two</p></body></html>`,
			want:    []string{"one", "", "two"},
		},
		{
			name:    "script and style excluded",
			content: `<html><head><style>p { }</style></head><body><script>var x = 1;</script><p>kept</p></body></html>`,
			want:    []string{"kept"},
		},
		{
			name:    "title excluded",
			content: `<html><head><title>Page Title</title></head><body>body words</body></html>`,
			want:    []string{"body", "words"},
		},
		{
			name:    "whitespace-only nodes skipped",
			content: "<html><body><p>a</p>\n\t<p>b</p></body></html>",
			want:    []string{"a", "b"},
		},
		{
			name:    "document order across elements",
			content: `<html><body><div>first <b>second</b></div><p>third</p></body></html>`,
			want:    []string{"first", "second", "third"},
		},
		{
			name:    "empty body",
			content: `<html><body></body></html>`,
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parseDoc(t, tt.content)
			got := ExtractWords(doc, VisibleText{})
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractWords() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractWordsAllText(t *testing.T) {
	doc := parseDoc(t, `<html><head><title>hidden</title></head><body><p>shown</p></body></html>`)

	got := ExtractWords(doc, AllText{})
	want := []string{"hidden", "shown"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractWords(AllText) = %q, want %q", got, want)
	}
}
