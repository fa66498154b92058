package mdlesson

import (
	"strconv"
	"strings"
	"unicode"
)

// Section represents a heading-delimited subdivision of a lesson.
// Blocks holds the content following the heading, up to the next heading.
// Content before the first heading forms a leading section with Level 0.
type Section struct {
	Level  int     `json:"level"`
	Title  string  `json:"title"`
	Anchor string  `json:"anchor"`
	Blocks []Block `json:"blocks,omitempty"`
}

// Heading returns the heading block that opens the section.
// The leading Level 0 section has none and returns false.
func (s Section) Heading() (Block, bool) {
	if s.Level == 0 {
		return Block{}, false
	}
	return Block{Kind: BlockHeading, Level: s.Level, Text: s.Title}, true
}

// GroupSections splits a block sequence into sections at every heading.
func GroupSections(blocks []Block) []Section {
	if len(blocks) == 0 {
		return nil
	}

	var sections []Section
	anchors := anchorSet{}
	current := -1

	for _, b := range blocks {
		if b.Kind == BlockHeading {
			sections = append(sections, Section{
				Level:  b.Level,
				Title:  b.Text,
				Anchor: anchors.next(b.Text),
			})
			current = len(sections) - 1
			continue
		}
		if current < 0 {
			sections = append(sections, Section{})
			current = 0
		}
		sections[current].Blocks = append(sections[current].Blocks, b)
	}

	return sections
}

// Flatten reproduces the block sequence a set of sections was grouped from.
func Flatten(sections []Section) []Block {
	var blocks []Block
	for _, s := range sections {
		if h, ok := s.Heading(); ok {
			blocks = append(blocks, h)
		}
		blocks = append(blocks, s.Blocks...)
	}
	return blocks
}

// anchorSet hands out anchors that are unique within one lesson. It
// records every anchor returned, so a heading whose own text slugs to a
// suffixed form ("Loop 1" after two "Loop" headings) still gets a fresh one.
type anchorSet map[string]bool

// fallbackAnchor is used for headings with no letters or digits.
const fallbackAnchor = "section"

func (a anchorSet) next(title string) string {
	base := GenerateAnchor(title)
	if base == "" {
		base = fallbackAnchor
	}
	anchor := base
	for n := 1; a[anchor]; n++ {
		anchor = base + "-" + strconv.Itoa(n)
	}
	a[anchor] = true
	return anchor
}

// GenerateAnchor creates a URL-safe anchor from a title.
// Converts to lowercase, replaces spaces with hyphens, removes special chars.
func GenerateAnchor(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}
