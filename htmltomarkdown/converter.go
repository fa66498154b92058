// Package htmltomarkdown converts HTML lessons to markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/strikethrough"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mdlesson"
)

// Ensure Converter implements mdlesson.Converter at compile time.
var _ mdlesson.Converter = (*Converter)(nil)

// Converter turns HTML lessons into markdown the Renderer understands:
// ATX headings, backtick fences tagged with the sample's language, GFM
// tables and strikethrough.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(
				commonmark.WithHeadingStyle(commonmark.HeadingStyleATX),
				commonmark.WithCodeBlockFence("```"),
				commonmark.WithBulletListMarker("-"),
			),
			strikethrough.NewStrikethroughPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", mdlesson.Errorf(mdlesson.EINVALID, "empty HTML input")
	}

	html, err := normalizeCodeLanguages(html)
	if err != nil {
		return "", err
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return result, nil
}

// languagePrefixes are class prefixes highlighters use to tag a code
// sample's language, besides the language- and lang- forms the converter
// reads natively.
var languagePrefixes = []string{"highlight-source-", "highlight-", "brush:", "sourceCode "}

// normalizeCodeLanguages copies language hints found on a <pre>, its
// wrapper or a data-lang attribute onto the <code> element as a
// language-* class so fenced code keeps its info string. The input is
// returned unchanged when no hint needs moving.
func normalizeCodeLanguages(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", mdlesson.Errorf(mdlesson.EINVALID, "failed to parse HTML: %v", err)
	}

	changed := false
	doc.Find("pre").Each(func(_ int, pre *goquery.Selection) {
		code := pre.ChildrenFiltered("code").First()
		if code.Length() == 0 || hasLanguageClass(code) || hasLanguageClass(pre) {
			return
		}
		lang := languageHint(pre)
		if lang == "" {
			lang = languageHint(pre.Parent())
		}
		if lang == "" {
			return
		}
		code.AddClass("language-" + lang)
		changed = true
	})
	if !changed {
		return html, nil
	}

	return doc.Find("body").Html()
}

func hasLanguageClass(s *goquery.Selection) bool {
	for _, class := range strings.Fields(s.AttrOr("class", "")) {
		if strings.Contains(class, "language-") || strings.Contains(class, "lang-") {
			return true
		}
	}
	return false
}

// languageHint reads a language from data-lang or a highlighter class.
func languageHint(s *goquery.Selection) string {
	if lang := strings.TrimSpace(s.AttrOr("data-lang", "")); lang != "" {
		return strings.ToLower(lang)
	}
	class := s.AttrOr("class", "")
	for _, prefix := range languagePrefixes {
		i := strings.Index(class, prefix)
		if i < 0 {
			continue
		}
		rest := strings.Fields(strings.TrimSpace(class[i+len(prefix):]))
		if len(rest) > 0 {
			return strings.ToLower(strings.TrimSuffix(rest[0], ";"))
		}
	}
	return ""
}
