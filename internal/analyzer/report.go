package analyzer

// Report is the complete analysis of a single fetched page. It is built
// once per run and never mutated afterwards.
type Report struct {
	Title    string
	HasTitle bool

	// ContentLength is the declared Content-Length header value in bytes,
	// -1 when the response did not declare one. The actual payload length
	// is never substituted.
	ContentLength int64

	MetaTags        []MetaTag
	TotalWords      int
	UniqueWords     int
	TopWords        []WordCount
	MissingKeywords []string
	Links           []Hyperlink
}

// SizeKB returns the declared page size in kilobytes. The second return is
// false when no positive Content-Length was declared.
func (r *Report) SizeKB() (float64, bool) {
	if r.ContentLength <= 0 {
		return 0, false
	}
	return float64(r.ContentLength) / 1024, true
}
