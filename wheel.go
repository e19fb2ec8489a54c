package wheelist

import "github.com/sirupsen/logrus"

// Wheel is a [List] with a cursor on one "current" element,
// supporting relative navigation independent of positions.
//
// The cursor starts on the first record added to an empty wheel.
// Deleting the current element moves the cursor to its successor
// (wrapping from tail to head); deleting the last element
// leaves the cursor empty. Moving the current element keeps the
// cursor on it.
// Constructed by [NewWheel].
type Wheel[Key comparable, Record any] struct {
	*List[Key, Record]
	current *Node[Record]
}

// NewWheel creates an empty [Wheel] whose lookup keys are extracted by keyOf.
func NewWheel[Key comparable, Record any](keyOf func(Record) Key, opt Options) (*Wheel[Key, Record], error) {
	list, err := New(keyOf, opt)
	if err != nil {
		return nil, err
	}
	wheel := &Wheel[Key, Record]{List: list}
	list.observer = wheel
	return wheel, nil
}

func (w *Wheel[_, Record]) linked(node *Node[Record]) {
	if w.current == nil {
		w.current = node
	}
}

func (w *Wheel[_, Record]) unlinked(node, successor *Node[Record]) {
	if node != w.current {
		return
	}
	w.current = successor
	w.log.WithFields(logrus.Fields{
		"orphaned": successor == nil,
		"size":     w.size,
	}).Debug("cursor repaired")
}

// Activate moves the cursor to the element ref resolves to
// and returns its record. If ref does not resolve,
// the cursor is unchanged and false is returned.
func (w *Wheel[Key, Record]) Activate(ref Ref[Key, Record]) (Record, bool) {
	node := w.Item(ref)
	if node == nil {
		var zero Record
		return zero, false
	}
	w.current = node
	return node.Value, true
}

// ActivateNode moves the cursor to node if it
// belongs to this wheel, and returns its record.
func (w *Wheel[_, Record]) ActivateNode(node *Node[Record]) (Record, bool) {
	if !node.Owned(any(w.List)) {
		var zero Record
		return zero, false
	}
	w.current = node
	return node.Value, true
}

// CurrentNode returns the node under the cursor, or nil if the wheel is empty.
func (w *Wheel[_, Record]) CurrentNode() *Node[Record] { return w.current }

// Current returns the record under the cursor.
func (w *Wheel[_, Record]) Current() (Record, bool) {
	return w.relative(0)
}

// Next returns the record after the cursor without moving it.
func (w *Wheel[_, Record]) Next() (Record, bool) {
	return w.relative(1)
}

// Prev returns the record before the cursor without moving it.
func (w *Wheel[_, Record]) Prev() (Record, bool) {
	return w.relative(-1)
}

func (w *Wheel[_, Record]) relative(steps int) (Record, bool) {
	if w.current == nil {
		var zero Record
		return zero, false
	}
	return w.current.Move(steps).Value, true
}

// Advance moves the cursor n steps forward (n > 0)
// or backward (n < 0), wrapping around the ring,
// and returns the new current record.
func (w *Wheel[_, Record]) Advance(n int) (Record, bool) {
	if w.current == nil {
		var zero Record
		return zero, false
	}
	if w.size > 0 {
		n %= w.size
	}
	w.current = w.current.Move(n)
	return w.current.Value, true
}

// CurrentIndex returns the position of the cursor, or -1 if the wheel is empty.
// The position is resolved through the (memoized) key lookup;
// if an earlier record shares the key, the position is found by identity.
func (w *Wheel[Key, Record]) CurrentIndex() int {
	if w.current == nil {
		return -1
	}
	index := w.IndexOf(w.Key(w.keyOf(w.current.Value)))
	if w.ItemAt(index) == w.current {
		return index
	}
	for index, node := range w.All() {
		if node == w.current {
			return index
		}
	}
	return -1
}
