// Package goquery extracts lesson content from HTML pages.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mdlesson"
)

// Ensure Extractor implements mdlesson.Extractor at compile time.
var _ mdlesson.Extractor = (*Extractor)(nil)

// contentSelectors are tried in order to find the lesson body.
var contentSelectors = []string{"main", "article", "[role='main']", "body"}

// boilerplateSelector matches elements that never belong to a lesson body.
const boilerplateSelector = "nav, header, footer, script, style, noscript, aside"

// Extractor pulls the title and main content out of an HTML lesson.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses html and returns its title and body content.
func (e *Extractor) Extract(html string) (*mdlesson.ExtractResult, error) {
	if strings.TrimSpace(html) == "" {
		return nil, mdlesson.Errorf(mdlesson.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, mdlesson.Errorf(mdlesson.EINVALID, "failed to parse HTML: %v", err)
	}

	result := &mdlesson.ExtractResult{Title: title(doc)}

	for _, sel := range contentSelectors {
		content := doc.Find(sel).First()
		if content.Length() == 0 {
			continue
		}
		content.Find(boilerplateSelector).Remove()
		body, err := content.Html()
		if err != nil {
			return nil, mdlesson.Errorf(mdlesson.EINVALID, "failed to render HTML: %v", err)
		}
		result.ContentHTML = strings.TrimSpace(body)
		break
	}

	return result, nil
}

func title(doc *goquery.Document) string {
	if t := normalizeSpace(doc.Find("head title").First().Text()); t != "" {
		return t
	}
	return normalizeSpace(doc.Find("h1").First().Text())
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
