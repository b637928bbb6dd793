package pq

// Handle addresses an element inserted into a FibonacciHeap.
type Handle int

const none = -1

type fibNode[T any] struct {
	value         T
	parent, child int
	left, right   int
	degree        int
	marked        bool
	live          bool
}

// FibonacciHeap is an addressable min-heap. Nodes live in an arena and are
// addressed by Handle; a popped handle is never reused.
type FibonacciHeap[T any] struct {
	less  func(a, b T) bool
	nodes []fibNode[T]
	min   int
	size  int
}

// NewFibonacciHeap returns an empty heap ordered by less.
func NewFibonacciHeap[T any](less func(a, b T) bool) *FibonacciHeap[T] {
	return &FibonacciHeap[T]{less: less, min: none}
}

// Len returns the number of elements.
func (h *FibonacciHeap[T]) Len() int { return h.size }

// Empty reports whether the heap holds no elements.
func (h *FibonacciHeap[T]) Empty() bool { return h.size == 0 }

// Insert adds v and returns its handle.
//
// Complexity: O(1).
func (h *FibonacciHeap[T]) Insert(v T) Handle {
	id := len(h.nodes)
	h.nodes = append(h.nodes, fibNode[T]{
		value: v, parent: none, child: none, left: id, right: id, live: true,
	})
	h.addRoot(id)
	if h.min == none || h.less(v, h.nodes[h.min].value) {
		h.min = id
	}
	h.size++

	return Handle(id)
}

// Contains reports whether hd names an element still in the heap.
func (h *FibonacciHeap[T]) Contains(hd Handle) bool {
	return int(hd) >= 0 && int(hd) < len(h.nodes) && h.nodes[hd].live
}

// Value returns the current value stored under hd.
func (h *FibonacciHeap[T]) Value(hd Handle) (T, bool) {
	if !h.Contains(hd) {
		var zero T
		return zero, false
	}

	return h.nodes[hd].value, true
}

// Peek returns the minimum without removing it.
func (h *FibonacciHeap[T]) Peek() (T, error) {
	if h.min == none {
		var zero T
		return zero, ErrEmptyHeap
	}

	return h.nodes[h.min].value, nil
}

// Pop removes and returns the minimum.
//
// Complexity: O(log n) amortized.
func (h *FibonacciHeap[T]) Pop() (T, error) {
	var zero T
	if h.min == none {
		return zero, ErrEmptyHeap
	}
	z := h.min

	// 1. Move every child of z to the root list.
	if c := h.nodes[z].child; c != none {
		for {
			next := h.nodes[c].right
			h.nodes[c].parent = none
			h.nodes[c].marked = false
			h.unlink(c)
			h.addRoot(c)
			if next == c || next == h.nodes[z].child {
				break
			}
			c = next
		}
		h.nodes[z].child = none
	}

	// 2. Remove z from the root list.
	right := h.nodes[z].right
	h.unlink(z)
	if right == z {
		h.min = none
	} else {
		h.min = right
		h.consolidate()
	}

	v := h.nodes[z].value
	h.nodes[z].value = zero
	h.nodes[z].live = false
	h.size--

	return v, nil
}

// Decrease replaces the value stored under hd with v, which must not sort
// above the current value.
//
// Complexity: O(1) amortized.
func (h *FibonacciHeap[T]) Decrease(hd Handle, v T) error {
	if !h.Contains(hd) {
		return ErrInvalidHandle
	}
	x := int(hd)
	if h.less(h.nodes[x].value, v) {
		return ErrNotDecreased
	}
	h.nodes[x].value = v

	if p := h.nodes[x].parent; p != none && h.less(v, h.nodes[p].value) {
		h.cut(x, p)
		h.cascadingCut(p)
	}
	if h.less(v, h.nodes[h.min].value) {
		h.min = x
	}

	return nil
}

// addRoot splices the detached node x into the root list next to min.
func (h *FibonacciHeap[T]) addRoot(x int) {
	if h.min == none {
		h.nodes[x].left, h.nodes[x].right = x, x
		return
	}
	m := h.min
	r := h.nodes[m].right
	h.nodes[x].left, h.nodes[x].right = m, r
	h.nodes[m].right = x
	h.nodes[r].left = x
}

// unlink removes x from its sibling ring and leaves it as a ring of one.
func (h *FibonacciHeap[T]) unlink(x int) {
	l, r := h.nodes[x].left, h.nodes[x].right
	h.nodes[l].right = r
	h.nodes[r].left = l
	h.nodes[x].left, h.nodes[x].right = x, x
}

// consolidate links roots of equal degree until all degrees differ.
func (h *FibonacciHeap[T]) consolidate() {
	var roots []int
	for x := h.min; ; {
		roots = append(roots, x)
		x = h.nodes[x].right
		if x == h.min {
			break
		}
	}

	var byDegree []int
	for _, x := range roots {
		h.unlink(x)
		d := h.nodes[x].degree
		for d < len(byDegree) && byDegree[d] != none {
			y := byDegree[d]
			if h.less(h.nodes[y].value, h.nodes[x].value) {
				x, y = y, x
			}
			h.link(y, x)
			byDegree[d] = none
			d++
		}
		for len(byDegree) <= d {
			byDegree = append(byDegree, none)
		}
		byDegree[d] = x
	}

	// rebuild the root list
	h.min = none
	for _, x := range byDegree {
		if x == none {
			continue
		}
		h.addRoot(x)
		if h.min == none || h.less(h.nodes[x].value, h.nodes[h.min].value) {
			h.min = x
		}
	}
}

// link makes root y a child of root x.
func (h *FibonacciHeap[T]) link(y, x int) {
	h.nodes[y].parent = x
	h.nodes[y].marked = false
	if c := h.nodes[x].child; c == none {
		h.nodes[x].child = y
		h.nodes[y].left, h.nodes[y].right = y, y
	} else {
		r := h.nodes[c].right
		h.nodes[y].left, h.nodes[y].right = c, r
		h.nodes[c].right = y
		h.nodes[r].left = y
	}
	h.nodes[x].degree++
}

// cut moves x from the children of p to the root list.
func (h *FibonacciHeap[T]) cut(x, p int) {
	if h.nodes[p].child == x {
		if h.nodes[x].right == x {
			h.nodes[p].child = none
		} else {
			h.nodes[p].child = h.nodes[x].right
		}
	}
	h.unlink(x)
	h.nodes[p].degree--
	h.nodes[x].parent = none
	h.nodes[x].marked = false
	h.addRoot(x)
}

func (h *FibonacciHeap[T]) cascadingCut(y int) {
	for {
		p := h.nodes[y].parent
		if p == none {
			return
		}
		if !h.nodes[y].marked {
			h.nodes[y].marked = true
			return
		}
		h.cut(y, p)
		y = p
	}
}
