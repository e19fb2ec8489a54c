// Package indexcache memoizes resolved list positions.
//
// Entries are never updated in place; the owning list purges
// the whole cache whenever any element may have changed position.
package indexcache

import (
	"github.com/hashicorp/golang-lru/arc/v2"
	"github.com/hashicorp/golang-lru/v2/simplelru"
)

type (
	// Kind tags how a [Lookup] addresses an element.
	Kind uint8

	// Lookup is the memo key for a single resolution.
	// Index and key lookups are kept apart even when
	// the key type is int.
	Lookup[Key comparable] struct {
		Key   Key
		Index int
		Kind  Kind
	}

	// Store holds memoized positions.
	// Bounded implementations may drop entries at any time;
	// a dropped entry is simply recomputed.
	Store[Key comparable] interface {
		Get(Lookup[Key]) (int, bool)
		Add(Lookup[Key], int)
		Purge()
		Len() int
	}

	// Policy selects a [Store] implementation.
	Policy uint8

	mapStore[Key comparable] map[Lookup[Key]]int

	lruStore[Key comparable] struct {
		*simplelru.LRU[Lookup[Key], int]
	}

	arcStore[Key comparable] struct {
		*arc.ARCCache[Lookup[Key], int]
	}
)

const (
	ByIndex Kind = iota
	ByKey
)

const (
	// Unbounded keeps every resolution until the next purge.
	Unbounded Policy = iota
	// LRU bounds the store with a least recently used policy.
	LRU
	// ARC bounds the store with an adaptive replacement policy.
	ARC
)

func (p Policy) String() string {
	switch p {
	case Unbounded:
		return "unbounded"
	case LRU:
		return "lru"
	case ARC:
		return "arc"
	default:
		return "unknown"
	}
}

// NewStore constructs a store for the policy.
// Capacity is ignored by [Unbounded] and must be positive otherwise.
func NewStore[Key comparable](policy Policy, capacity int) (Store[Key], error) {
	switch policy {
	case Unbounded:
		return make(mapStore[Key]), nil
	case LRU:
		lru, err := simplelru.NewLRU[Lookup[Key], int](capacity, nil)
		if err != nil {
			return nil, err
		}
		return lruStore[Key]{LRU: lru}, nil
	case ARC:
		cache, err := arc.NewARC[Lookup[Key], int](capacity)
		if err != nil {
			return nil, err
		}
		return arcStore[Key]{ARCCache: cache}, nil
	default:
		return nil, unknownPolicyError(policy)
	}
}

func (s mapStore[Key]) Get(lookup Lookup[Key]) (int, bool) {
	index, ok := s[lookup]
	return index, ok
}

func (s mapStore[Key]) Add(lookup Lookup[Key], index int) { s[lookup] = index }

func (s mapStore[Key]) Purge() { clear(s) }

func (s mapStore[Key]) Len() int { return len(s) }

func (s lruStore[Key]) Add(lookup Lookup[Key], index int) { s.LRU.Add(lookup, index) }
