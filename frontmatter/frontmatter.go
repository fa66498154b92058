// Package frontmatter separates lesson metadata from markdown content.
package frontmatter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/fwojciec/mdlesson"
)

type envelope struct {
	Title   string   `yaml:"title" toml:"title"`
	Summary string   `yaml:"summary" toml:"summary"`
	Tags    []string `yaml:"tags" toml:"tags"`
}

// Parse extracts YAML (---) or TOML (+++) frontmatter from source. It
// returns the metadata and the markdown body without delimiters. Sources
// without frontmatter are returned unchanged with empty metadata.
func Parse(source []byte) (mdlesson.Meta, []byte, error) {
	var env envelope

	body, err := frontmatter.Parse(bytes.NewReader(source), &env)
	if err != nil {
		return mdlesson.Meta{}, nil, mdlesson.Errorf(mdlesson.EINVALID, "parse frontmatter: %v", err)
	}

	return toMeta(env), body, nil
}

// Split is the lenient form of Parse: malformed frontmatter is not an
// error, the whole source is treated as the body instead.
func Split(source []byte) (mdlesson.Meta, []byte) {
	meta, body, err := Parse(source)
	if err != nil {
		return mdlesson.Meta{}, source
	}
	return meta, body
}

func toMeta(env envelope) mdlesson.Meta {
	var tags []string
	for _, tag := range env.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return mdlesson.Meta{
		Title:   strings.TrimSpace(env.Title),
		Summary: strings.TrimSpace(env.Summary),
		Tags:    tags,
	}
}

// Format renders metadata as a YAML frontmatter block, or nothing when the
// metadata is empty.
func Format(meta mdlesson.Meta) string {
	if meta.Title == "" && meta.Summary == "" && len(meta.Tags) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("---\n")
	if meta.Title != "" {
		fmt.Fprintf(&b, "title: %q\n", meta.Title)
	}
	if meta.Summary != "" {
		fmt.Fprintf(&b, "summary: %q\n", meta.Summary)
	}
	if len(meta.Tags) > 0 {
		b.WriteString("tags:\n")
		for _, tag := range meta.Tags {
			fmt.Fprintf(&b, "  - %q\n", tag)
		}
	}
	b.WriteString("---\n\n")
	return b.String()
}
