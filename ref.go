package wheelist

import "github.com/djdv/go-wheelist/internal/indexcache"

type (
	refKind uint8

	// Ref addresses an element of a [List] by position,
	// by key, or by a record carrying a key.
	// Construct one with [List.At], [List.Key], or [List.Record].
	// The zero value addresses position 0.
	Ref[Key comparable, Record any] struct {
		record Record
		key    Key
		index  int
		kind   refKind
	}
)

const (
	refIndex refKind = iota
	refKey
	refRecord
)

// At addresses the element at position index.
func (l *List[Key, Record]) At(index int) Ref[Key, Record] {
	return Ref[Key, Record]{kind: refIndex, index: index}
}

// Key addresses the first element whose key equals key.
func (l *List[Key, Record]) Key(key Key) Ref[Key, Record] {
	return Ref[Key, Record]{kind: refKey, key: key}
}

// Record addresses the first element whose key
// equals the key extracted from record.
func (l *List[Key, Record]) Record(record Record) Ref[Key, Record] {
	return Ref[Key, Record]{kind: refRecord, record: record}
}

// lookup reduces ref to a memo key.
// Records are reduced to their key since
// they are not required to be comparable.
func (l *List[Key, Record]) lookup(ref Ref[Key, Record]) indexcache.Lookup[Key] {
	switch ref.kind {
	case refIndex:
		return indexcache.Lookup[Key]{Kind: indexcache.ByIndex, Index: ref.index}
	case refKey:
		return indexcache.Lookup[Key]{Kind: indexcache.ByKey, Key: ref.key}
	case refRecord:
		return indexcache.Lookup[Key]{Kind: indexcache.ByKey, Key: l.keyOf(ref.record)}
	default:
		panic("unreachable: unknown reference kind")
	}
}
