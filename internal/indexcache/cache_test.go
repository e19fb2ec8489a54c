package indexcache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type countingSink struct {
	hits, misses, invalidations, size int
}

func (s *countingSink) Hit()             { s.hits++ }
func (s *countingSink) Miss()            { s.misses++ }
func (s *countingSink) Invalidate()      { s.invalidations++ }
func (s *countingSink) Size(entries int) { s.size = entries }

func TestCache_ResolveMemoizes(t *testing.T) {
	t.Parallel()

	for _, policy := range []Policy{Unbounded, LRU, ARC} {
		t.Run(policy.String(), func(t *testing.T) {
			t.Parallel()

			store, err := NewStore[string](policy, 8)
			require.NoError(t, err)
			var (
				sink    = new(countingSink)
				cache   = New(store, sink)
				lookup  = Lookup[string]{Kind: ByKey, Key: "b"}
				calls   int
				compute = func() int { calls++; return 1 }
			)
			require.Equal(t, 1, cache.Resolve(lookup, compute))
			require.Equal(t, 1, cache.Resolve(lookup, compute))
			require.Equal(t, 1, calls, "second resolve must be served from the store")
			require.Equal(t, 1, sink.hits)
			require.Equal(t, 1, sink.misses)
			require.Equal(t, 1, sink.size)

			index, ok := cache.Peek(lookup)
			require.True(t, ok)
			require.Equal(t, 1, index)
		})
	}
}

func TestCache_NegativeResultsAreMemoized(t *testing.T) {
	t.Parallel()

	store, err := NewStore[int](Unbounded, 0)
	require.NoError(t, err)
	var (
		cache  = New(store, new(countingSink))
		lookup = Lookup[int]{Kind: ByKey, Key: 99}
		calls  int
	)
	for range 3 {
		require.Equal(t, -1, cache.Resolve(lookup, func() int { calls++; return -1 }))
	}
	require.Equal(t, 1, calls)
}

func TestCache_KindsDoNotCollide(t *testing.T) {
	t.Parallel()

	store, err := NewStore[int](Unbounded, 0)
	require.NoError(t, err)
	cache := New(store, new(countingSink))
	cache.Resolve(Lookup[int]{Kind: ByIndex, Index: 1}, func() int { return 1 })
	_, ok := cache.Peek(Lookup[int]{Kind: ByKey, Key: 1})
	require.False(t, ok, "index lookups must not satisfy key lookups")
}

func TestCache_InvalidatePurgesEverything(t *testing.T) {
	t.Parallel()

	store, err := NewStore[string](Unbounded, 0)
	require.NoError(t, err)
	var (
		sink  = new(countingSink)
		cache = New(store, sink)
	)
	require.False(t, cache.Invalidate(), "empty cache has nothing to purge")
	for i, key := range []string{"a", "b", "c"} {
		cache.Resolve(Lookup[string]{Kind: ByKey, Key: key}, func() int { return i })
	}
	require.Equal(t, 3, cache.Len())
	require.True(t, cache.Invalidate())
	require.Zero(t, cache.Len())
	require.Equal(t, 1, sink.invalidations)
	require.Zero(t, sink.size)
}

func TestCache_BoundedStoresEvict(t *testing.T) {
	t.Parallel()

	for _, policy := range []Policy{LRU, ARC} {
		t.Run(policy.String(), func(t *testing.T) {
			t.Parallel()

			const capacity = 2
			store, err := NewStore[int](policy, capacity)
			require.NoError(t, err)
			cache := New(store, new(countingSink))
			for key := range capacity * 4 {
				cache.Resolve(Lookup[int]{Kind: ByKey, Key: key}, func() int { return key })
			}
			require.LessOrEqual(t, cache.Len(), capacity)
		})
	}
}

func TestNewStore_Errors(t *testing.T) {
	t.Parallel()

	_, err := NewStore[int](Policy(42), 1)
	require.ErrorIs(t, err, ErrUnknownPolicy)

	for _, policy := range []Policy{LRU, ARC} {
		_, err := NewStore[int](policy, 0)
		require.Error(t, err, "bounded policy %s must reject a zero capacity", policy)
	}
}
