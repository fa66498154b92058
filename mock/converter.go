package mock

import "github.com/fwojciec/mdlesson"

var _ mdlesson.Converter = (*Converter)(nil)

// Converter is a mock implementation of mdlesson.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
