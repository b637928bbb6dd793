package core

import "iter"

type listNode[E any] struct {
	edge       E
	prev, next *listNode[E]
}

// List is a doubly linked list of edges. The zero value is an empty list
// ready to use.
//
// Append, Prepend and Meld are O(1); Len is maintained incrementally.
type List[E any] struct {
	head, tail *listNode[E]
	size       int
}

// NewList returns a list holding edges in order.
func NewList[E any](edges ...E) *List[E] {
	l := &List[E]{}
	for _, e := range edges {
		l.Append(e)
	}

	return l
}

// CollectList drains seq into a new list.
func CollectList[E any](seq iter.Seq[E]) *List[E] {
	l := &List[E]{}
	for e := range seq {
		l.Append(e)
	}

	return l
}

// Len returns the number of edges in l.
func (l *List[E]) Len() int { return l.size }

// Append adds e at the tail.
func (l *List[E]) Append(e E) {
	n := &listNode[E]{edge: e, prev: l.tail}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// Prepend adds e at the head.
func (l *List[E]) Prepend(e E) {
	n := &listNode[E]{edge: e, next: l.head}
	if l.head == nil {
		l.tail = n
	} else {
		l.head.prev = n
	}
	l.head = n
	l.size++
}

// Meld moves every edge of other to the tail of l and leaves other empty.
// Melding a nil list or a list into itself does nothing.
func (l *List[E]) Meld(other *List[E]) {
	if other == nil || other == l || other.head == nil {
		return
	}
	if l.tail == nil {
		l.head = other.head
	} else {
		l.tail.next = other.head
		other.head.prev = l.tail
	}
	l.tail = other.tail
	l.size += other.size
	other.Clear()
}

// Clear empties l.
func (l *List[E]) Clear() {
	l.head, l.tail, l.size = nil, nil, 0
}

// Front returns the first edge and true, or the zero edge and false on an
// empty list.
func (l *List[E]) Front() (E, bool) {
	if l.head == nil {
		var zero E
		return zero, false
	}

	return l.head.edge, true
}

// All yields the edges from head to tail.
func (l *List[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.edge) {
				return
			}
		}
	}
}

// Backward yields the edges from tail to head.
func (l *List[E]) Backward() iter.Seq[E] {
	return func(yield func(E) bool) {
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n.edge) {
				return
			}
		}
	}
}

// Slice copies the edges into a new slice.
func (l *List[E]) Slice() []E {
	out := make([]E, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.edge)
	}

	return out
}

// Cursor walks a List from head to tail without allocating an iterator
// per step. A Cursor is invalidated by Meld or Clear of its list.
type Cursor[E any] struct {
	n *listNode[E]
}

// Cursor returns a cursor positioned before the first edge.
func (l *List[E]) Cursor() Cursor[E] { return Cursor[E]{n: l.head} }

// Next returns the next edge and true, or false once the list is exhausted.
func (c *Cursor[E]) Next() (E, bool) {
	if c.n == nil {
		var zero E
		return zero, false
	}
	e := c.n.edge
	c.n = c.n.next

	return e, true
}
