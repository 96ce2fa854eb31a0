// Package dedupe tracks employee identifiers already accepted within a
// single evaluation batch.
package dedupe

import (
	"context"
	"sync"
)

// Deduper records seen employee IDs so a batch evaluates each employee
// at most once. One Deduper is created per batch call; nothing carries
// over between evaluation runs.
type Deduper interface {
	// SeenAndRecord atomically checks if id was seen and records it if not.
	// Returns true if id was already seen, false if it was newly recorded.
	SeenAndRecord(ctx context.Context, id string) bool

	// Size returns the number of recorded IDs.
	Size() int
}

// inMemoryDeduper implements Deduper with a plain map. Batches are
// bounded by the caller-supplied record set, so no eviction is needed.
type inMemoryDeduper struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// NewInMemoryDeduper creates a new in-memory deduper with configuration
// options.
func NewInMemoryDeduper(opts ...Option) Deduper {
	cfg := settings{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &inMemoryDeduper{
		seen: make(map[string]struct{}, cfg.initialCapacity),
	}
}

func (d *inMemoryDeduper) SeenAndRecord(_ context.Context, id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.seen[id]; ok {
		return true
	}
	d.seen[id] = struct{}{}
	return false
}

func (d *inMemoryDeduper) Size() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.seen)
}
