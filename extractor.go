package mdlesson

// ExtractResult holds the extracted content from an HTML lesson.
type ExtractResult struct {
	// Title is taken from <title>, falling back to the first <h1>.
	Title string

	// ContentHTML is the lesson body as HTML with navigation, headers,
	// footers, scripts and styles removed.
	ContentHTML string
}

// Extractor extracts the lesson body from an HTML page.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
