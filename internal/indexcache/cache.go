package indexcache

type (
	// Sink receives cache activity.
	// Implementations must not call back into the cache.
	Sink interface {
		Hit()
		Miss()
		Invalidate()
		Size(entries int)
	}

	// Cache memoizes positions on top of a [Store]
	// and reports its activity to a [Sink].
	// The cache is either empty or consistent with the
	// current list order; it is never partially invalidated.
	Cache[Key comparable] struct {
		store Store[Key]
		sink  Sink
	}
)

// New wraps store. Sink must not be nil.
func New[Key comparable](store Store[Key], sink Sink) *Cache[Key] {
	return &Cache[Key]{
		store: store,
		sink:  sink,
	}
}

// Resolve returns the memoized position for lookup,
// calling compute and storing its result on a miss.
// Negative results are memoized too.
func (c *Cache[Key]) Resolve(lookup Lookup[Key], compute func() int) int {
	if index, ok := c.store.Get(lookup); ok {
		c.sink.Hit()
		return index
	}
	c.sink.Miss()
	index := compute()
	c.store.Add(lookup, index)
	c.sink.Size(c.store.Len())
	return index
}

// Peek returns the memoized position without computing it.
func (c *Cache[Key]) Peek(lookup Lookup[Key]) (int, bool) {
	return c.store.Get(lookup)
}

// Invalidate drops every memoized position.
func (c *Cache[Key]) Invalidate() bool {
	if c.store.Len() == 0 {
		return false
	}
	c.store.Purge()
	c.sink.Invalidate()
	c.sink.Size(0)
	return true
}

// Len returns the number of memoized positions.
func (c *Cache[Key]) Len() int { return c.store.Len() }
