package mock

import (
	"context"

	"github.com/fwojciec/mdlesson"
)

var _ mdlesson.PageStore = (*PageStore)(nil)

// PageStore is a mock implementation of mdlesson.PageStore.
type PageStore struct {
	SaveFn      func(ctx context.Context, page *mdlesson.Page) error
	SaveIndexFn func(ctx context.Context, title string, pages []*mdlesson.Page) error
	CommitFn    func() error
	AbortFn     func() error
}

func (s *PageStore) Save(ctx context.Context, page *mdlesson.Page) error {
	return s.SaveFn(ctx, page)
}

func (s *PageStore) SaveIndex(ctx context.Context, title string, pages []*mdlesson.Page) error {
	return s.SaveIndexFn(ctx, title, pages)
}

func (s *PageStore) Commit() error {
	return s.CommitFn()
}

func (s *PageStore) Abort() error {
	return s.AbortFn()
}
