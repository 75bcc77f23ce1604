package finboard

import (
	"container/list"
	"sync"
)

// MetricsCache memoizes aggregator outputs keyed by the snapshot
// version plus an operation key. Whenever a lookup arrives for a newer
// snapshot version the whole cache is dropped: a result computed from
// one snapshot is never served for another. Eviction beyond that is
// LRU with a bounded size.
type MetricsCache[T any] struct {
	mu      sync.Mutex
	maxSize int
	version uint64
	items   map[string]*list.Element
	lru     *list.List
}

type metricsItem[T any] struct {
	key  string
	data T
}

// NewMetricsCache creates a cache holding at most maxSize entries.
func NewMetricsCache[T any](maxSize int) *MetricsCache[T] {
	return &MetricsCache[T]{
		maxSize: maxSize,
		items:   make(map[string]*list.Element),
		lru:     list.New(),
	}
}

// Get retrieves a value computed from the given snapshot. It always
// misses when the snapshot version differs from the one the cache
// holds entries for.
func (c *MetricsCache[T]) Get(snap *Snapshot, key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	if snap.Version() != c.version {
		return zero, false
	}
	elem, exists := c.items[key]
	if !exists {
		return zero, false
	}
	c.lru.MoveToFront(elem)
	return elem.Value.(*metricsItem[T]).data, true
}

// Set stores a value computed from the given snapshot. A newer
// snapshot version invalidates every previous entry wholesale.
func (c *MetricsCache[T]) Set(snap *Snapshot, key string, data T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if snap.Version() != c.version {
		c.items = make(map[string]*list.Element)
		c.lru.Init()
		c.version = snap.Version()
	}

	if elem, exists := c.items[key]; exists {
		elem.Value = &metricsItem[T]{key: key, data: data}
		c.lru.MoveToFront(elem)
		return
	}

	elem := c.lru.PushFront(&metricsItem[T]{key: key, data: data})
	c.items[key] = elem

	for c.lru.Len() > c.maxSize {
		oldest := c.lru.Back()
		c.lru.Remove(oldest)
		delete(c.items, oldest.Value.(*metricsItem[T]).key)
	}
}

// Size returns the current number of entries.
func (c *MetricsCache[T]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// Memo returns the cached value when present, otherwise computes it
// with fn and stores it.
func (c *MetricsCache[T]) Memo(snap *Snapshot, key string, fn func() T) T {
	if v, ok := c.Get(snap, key); ok {
		return v
	}
	v := fn()
	c.Set(snap, key, v)
	return v
}
