package mock

import "github.com/fwojciec/mdlesson"

var _ mdlesson.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of mdlesson.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*mdlesson.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*mdlesson.ExtractResult, error) {
	return e.ExtractFn(html)
}
