package catalog

import "github.com/fwojciec/mdlesson"

// slugClaims records which file claimed each slug during one run.
type slugClaims map[string]string

// claim reserves slug for path. Two files that reduce to the same slug,
// such as a.md and a.html, conflict and the later one is rejected.
func (c slugClaims) claim(slug, path string) error {
	if first, ok := c[slug]; ok {
		return mdlesson.Errorf(mdlesson.ECONFLICT, "%s and %s both map to slug %q", first, path, slug)
	}
	c[slug] = path
	return nil
}
