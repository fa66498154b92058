package mdlesson

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML lesson into Markdown.
	// The input should be clean HTML (e.g., from an Extractor).
	// Returns EINVALID for empty input.
	Convert(html string) (string, error)
}
