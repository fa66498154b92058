// Package bloom provides a probabilistic set of lesson content hashes.
package bloom

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// minCapacity keeps tiny catalogs from producing degenerate filters.
const minCapacity = 64

// Filter wraps a Bloom filter of content hashes. It is safe for concurrent
// use.
type Filter struct {
	mu sync.RWMutex
	f  *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	if n < minCapacity {
		n = minCapacity
	}
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// NewFilterFrom creates a filter holding the given hashes.
func NewFilterFrom(hashes []string, fpRate float64) *Filter {
	f := NewFilter(uint(len(hashes)), fpRate)
	for _, h := range hashes {
		f.f.AddString(h)
	}
	return f
}

// Add adds a hash to the filter.
func (f *Filter) Add(hash string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.f.AddString(hash)
}

// Test returns true if the hash might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(hash string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.f.TestString(hash)
}
