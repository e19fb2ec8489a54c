package wheelist

import (
	"iter"

	"github.com/djdv/go-wheelist/internal/indexcache"
	"github.com/djdv/go-wheelist/internal/ring"
	"github.com/sirupsen/logrus"
)

type (
	// Node holds one record of a [List].
	// Its Value may be modified in place,
	// but changing its key requires [List.Update]
	// so memoized lookups stay consistent.
	Node[Record any] = ring.Ring[Record]

	// End selects which boundary [List.Add] appends to.
	End bool

	// List is a keyed circular doubly linked list.
	// Elements are addressable by position or by a key
	// extracted from the stored record. Keys need not be unique;
	// key lookups resolve to the first match from the head.
	// Concurrent access must be guarded by the caller.
	// Constructed by [New].
	List[Key comparable, Record any] struct {
		keyOf      func(Record) Key
		head, tail *Node[Record]
		cache      *indexcache.Cache[Key]
		log        logrus.FieldLogger
		observer   observer[Record]
		size       int
	}

	// observer is notified of node lifetime changes.
	observer[Record any] interface {
		linked(node *Node[Record])
		unlinked(node, successor *Node[Record])
	}
)

const (
	AtTail End = false
	AtHead End = true
)

func (end End) String() string {
	if end == AtHead {
		return "head"
	}
	return "tail"
}

// New creates an empty [List] whose lookup keys are extracted by keyOf.
func New[Key comparable, Record any](keyOf func(Record) Key, opt Options) (*List[Key, Record], error) {
	if keyOf == nil {
		return nil, ErrNilKeyFunc
	}
	opt = opt.withDefaults()
	policy, err := opt.storePolicy()
	if err != nil {
		return nil, err
	}
	store, err := indexcache.NewStore[Key](policy, opt.CacheCapacity)
	if err != nil {
		return nil, err
	}
	return &List[Key, Record]{
		keyOf: keyOf,
		cache: indexcache.New(store, opt.Metrics),
		log:   opt.Logger,
	}, nil
}

// Len returns the number of elements.
func (l *List[_, _]) Len() int { return l.size }

// Head returns the first node, or nil if the list is empty.
func (l *List[_, Record]) Head() *Node[Record] { return l.head }

// Tail returns the last node, or nil if the list is empty.
// Tail().Next() is always Head().
func (l *List[_, Record]) Tail() *Node[Record] { return l.tail }

// IsValidIndex reports whether index addresses an element.
func (l *List[_, _]) IsValidIndex(index int) bool {
	return index >= 0 && index < l.size
}

// IndexOf resolves ref to a position, or -1 if nothing matches.
// Results (including misses) are memoized until the next
// structural change.
func (l *List[Key, Record]) IndexOf(ref Ref[Key, Record]) int {
	lookup := l.lookup(ref)
	return l.cache.Resolve(lookup, func() int {
		return l.scan(lookup)
	})
}

func (l *List[Key, Record]) scan(lookup indexcache.Lookup[Key]) int {
	if lookup.Kind == indexcache.ByIndex {
		if l.IsValidIndex(lookup.Index) {
			return lookup.Index
		}
		return -1
	}
	for index, node := range l.All() {
		if l.keyOf(node.Value) == lookup.Key {
			return index
		}
	}
	return -1
}

// Has reports whether ref resolves to an element.
func (l *List[Key, Record]) Has(ref Ref[Key, Record]) bool {
	return l.IndexOf(ref) != -1
}

// ItemAt returns the node at index, or nil if index is invalid.
func (l *List[_, Record]) ItemAt(index int) *Node[Record] {
	if !l.IsValidIndex(index) {
		return nil
	}
	return l.nodeAt(index)
}

// nodeAt walks from whichever boundary is closer.
// index must be valid.
func (l *List[_, Record]) nodeAt(index int) *Node[Record] {
	if fromTail := l.size - 1 - index; fromTail < index {
		return l.tail.Move(-fromTail)
	}
	return l.head.Move(index)
}

// Item returns the node ref resolves to, or nil.
func (l *List[Key, Record]) Item(ref Ref[Key, Record]) *Node[Record] {
	return l.ItemAt(l.IndexOf(ref))
}

// Get returns the record ref resolves to.
// The boolean distinguishes absence from a zero record.
func (l *List[Key, Record]) Get(ref Ref[Key, Record]) (Record, bool) {
	if node := l.Item(ref); node != nil {
		return node.Value, true
	}
	var zero Record
	return zero, false
}

// KeyAt returns the key of the record at index.
func (l *List[Key, _]) KeyAt(index int) (Key, bool) {
	if node := l.ItemAt(index); node != nil {
		return l.keyOf(node.Value), true
	}
	var zero Key
	return zero, false
}

// Update replaces the record ref resolves to, in place.
// It returns false if ref does not resolve.
// Order is unaffected; memoized lookups are only
// dropped if the replacement carries a different key.
func (l *List[Key, Record]) Update(ref Ref[Key, Record], record Record) bool {
	node := l.Item(ref)
	if node == nil {
		return false
	}
	rekeyed := l.keyOf(node.Value) != l.keyOf(record)
	node.Value = record
	if rekeyed {
		l.invalidate("update")
	}
	return true
}

// Add appends record at the head or tail and returns its node.
func (l *List[_, Record]) Add(record Record, end End) *Node[Record] {
	node := ring.New(record, any(l))
	if l.size == 0 {
		l.head, l.tail = node, node
	} else {
		ring.Splice(l.tail, node, l.head)
		if end == AtHead {
			l.head = node
		} else {
			l.tail = node
		}
	}
	l.size++
	l.mutated("add", node)
	return node
}

// Insert places record before the element currently at index,
// so that it ends up at index. Index may equal [List.Len]
// to append at the tail.
func (l *List[_, Record]) Insert(index int, record Record) (*Node[Record], error) {
	switch {
	case index < 0 || index > l.size:
		return nil, indexError(index, l.size)
	case index == 0:
		return l.Add(record, AtHead), nil
	case index == l.size:
		return l.Add(record, AtTail), nil
	}
	var (
		prev = l.nodeAt(index - 1)
		node = ring.New(record, any(l))
	)
	ring.Splice(prev, node, prev.Next())
	l.size++
	l.mutated("insert", node)
	return node, nil
}

// Delete removes the element at index.
// On error the list is left untouched.
func (l *List[_, Record]) Delete(index int) error {
	if l.size == 0 {
		return emptyError(index)
	}
	if !l.IsValidIndex(index) {
		return indexError(index, l.size-1)
	}
	l.unlink(l.nodeAt(index))
	return nil
}

// DeleteItem removes the element ref resolves to.
// It returns false if ref does not resolve.
func (l *List[Key, Record]) DeleteItem(ref Ref[Key, Record]) bool {
	node := l.Item(ref)
	if node == nil {
		return false
	}
	l.unlink(node)
	return true
}

func (l *List[_, Record]) unlink(node *Node[Record]) {
	successor := node.Next()
	switch {
	case l.size == 1:
		l.head, l.tail = nil, nil
		successor = nil
	case node == l.head:
		l.head = successor
	case node == l.tail:
		l.tail = node.Prev()
	}
	// Joins predecessor to successor; for a boundary
	// node that is the new tail to head junction.
	ring.Detach(node)
	ring.Disown(node)
	l.size--
	if l.observer != nil {
		l.observer.unlinked(node, successor)
	}
	l.mutated("delete", nil)
}

// Move relocates the element at from so that it ends up at to.
// Indices are interpreted against the list before the move.
// Move is a no-op, reporting false, if from equals to
// or either index is invalid.
func (l *List[_, Record]) Move(from, to int) bool {
	if from == to || !l.IsValidIndex(from) || !l.IsValidIndex(to) {
		l.log.WithFields(logrus.Fields{
			"from": from,
			"to":   to,
			"size": l.size,
		}).Debug("move ignored")
		return false
	}
	node := l.nodeAt(from)
	if node == l.head {
		l.head = node.Next()
	}
	if node == l.tail {
		l.tail = node.Prev()
	}
	ring.Detach(node)
	l.size--
	if to == l.size {
		ring.Splice(l.tail, node, l.head)
		l.tail = node
	} else {
		target := l.nodeAt(to)
		ring.Splice(target.Prev(), node, target)
		if to == 0 {
			l.head = node
		}
	}
	l.size++
	l.mutated("move", nil)
	return true
}

// All returns an iterator over nodes from head to tail,
// paired with their position.
// The behavior of All is undefined if the list
// is structurally changed during iteration.
func (l *List[_, Record]) All() iter.Seq2[int, *Node[Record]] {
	return func(yield func(int, *Node[Record]) bool) {
		if l.size == 0 {
			return
		}
		for index, node := range l.tail.Next().Iter(l.size) {
			if !yield(index, node) {
				return
			}
		}
	}
}

// Values returns an iterator over records from head to tail,
// paired with their position.
func (l *List[_, Record]) Values() iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		for index, node := range l.All() {
			if !yield(index, node.Value) {
				return
			}
		}
	}
}

// Keys returns an iterator over record keys from head to tail.
func (l *List[Key, _]) Keys() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		for _, node := range l.All() {
			if !yield(l.keyOf(node.Value)) {
				return
			}
		}
	}
}

// Entries returns an iterator over key and record pairs from head to tail.
func (l *List[Key, Record]) Entries() iter.Seq2[Key, Record] {
	return func(yield func(Key, Record) bool) {
		for _, node := range l.All() {
			if !yield(l.keyOf(node.Value), node.Value) {
				return
			}
		}
	}
}

// mutated must be called after every structural change.
// linked is the node that was added, if any.
func (l *List[_, Record]) mutated(op string, linked *Node[Record]) {
	if linked != nil && l.observer != nil {
		l.observer.linked(linked)
	}
	l.invalidate(op)
	if debugging {
		l.checkLinks()
	}
}

func (l *List[_, _]) invalidate(op string) {
	if l.cache.Invalidate() {
		l.log.WithField("op", op).Debug("index cache purged")
	}
}

func (l *List[_, _]) checkLinks() {
	if l.size == 0 {
		assert(l.head == nil && l.tail == nil,
			"empty list retains boundary nodes")
		return
	}
	assert(l.tail.Next() == l.head && l.head.Prev() == l.tail,
		"tail and head are not adjacent")
	var (
		count int
		node  = l.head
	)
	for {
		assert(node.Next().Prev() == node,
			"next node does not link back")
		assert(node.Owned(any(l)),
			"node is not owned by its list")
		count++
		node = node.Next()
		if node == l.head || count > l.size {
			break
		}
	}
	assert(count == l.size, "traversal length does not match size")
}
