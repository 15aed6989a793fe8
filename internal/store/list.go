// Package store provides the doubly-linked collection backing the
// in-memory record stores. Insertion order is preserved and length is
// maintained incrementally on every mutation.
package store

// Record is anything a List can hold, keyed by an integer id unique
// within its collection.
type Record interface {
	RecordID() int
}

type node[T Record] struct {
	value T
	next  *node[T]
	prev  *node[T]
}

// List is a doubly-linked collection exposing head, tail and length.
type List[T Record] struct {
	head   *node[T]
	tail   *node[T]
	length int
}

func New[T Record]() *List[T] {
	return &List[T]{}
}

func (l *List[T]) Len() int {
	return l.length
}

// Append adds v at the tail in O(1).
func (l *List[T]) Append(v T) {
	n := &node[T]{value: v}
	if l.head == nil {
		l.head = n
		l.tail = n
		l.length = 1
		return
	}
	l.tail.next = n
	n.prev = l.tail
	l.tail = n
	l.length++
}

// Prepend adds v at the head in O(1).
func (l *List[T]) Prepend(v T) {
	n := &node[T]{value: v}
	if l.head == nil {
		l.head = n
		l.tail = n
		l.length = 1
		return
	}
	n.next = l.head
	l.head.prev = n
	l.head = n
	l.length++
}

// Find locates the record with the given id by scanning from both ends
// at once: one cursor walks forward from the head, the other backward
// from the tail, both checked on every iteration, for at most
// length/2+1 iterations. This halves the expected scan cost of a plain
// forward walk.
func (l *List[T]) Find(id int) (T, bool) {
	if n := l.findNode(id); n != nil {
		return n.value, true
	}
	var zero T
	return zero, false
}

func (l *List[T]) findNode(id int) *node[T] {
	steps := 0
	for front, back := l.head, l.tail; front != nil && back != nil && steps < l.length/2+1; front, back = front.next, back.prev {
		if front.value.RecordID() == id {
			return front
		}
		if back.value.RecordID() == id {
			return back
		}
		steps++
	}
	return nil
}

// Remove detaches the record with the given id, splicing its neighbors
// together. An absent id is a no-op; the return value reports whether
// anything was removed.
func (l *List[T]) Remove(id int) bool {
	n := l.findNode(id)
	if n == nil {
		return false
	}
	switch {
	case n == l.head && n == l.tail:
		l.head = nil
		l.tail = nil
	case n == l.head:
		l.head = n.next
		l.head.prev = nil
	case n == l.tail:
		l.tail = n.prev
		l.tail.next = nil
	default:
		n.prev.next = n.next
		n.next.prev = n.prev
	}
	n.next = nil
	n.prev = nil
	l.length--
	return true
}

// Head returns the first record in insertion order.
func (l *List[T]) Head() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.value, true
}

// Tail returns the last record in insertion order.
func (l *List[T]) Tail() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	return l.tail.value, true
}

// Each walks head to tail, stopping early when fn returns false.
func (l *List[T]) Each(fn func(T) bool) {
	for n := l.head; n != nil; n = n.next {
		if !fn(n.value) {
			return
		}
	}
}

// All returns the records head to tail.
func (l *List[T]) All() []T {
	out := make([]T, 0, l.length)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

// Reversed returns the records tail to head.
func (l *List[T]) Reversed() []T {
	out := make([]T, 0, l.length)
	for n := l.tail; n != nil; n = n.prev {
		out = append(out, n.value)
	}
	return out
}
