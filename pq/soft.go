package pq

import "math"

type softItem[T any] struct {
	value T
	next  *softItem[T]
}

// softNode is a node of one binary tree. Its items all carry the common
// key ckey, which is at least their own value.
type softNode[T any] struct {
	ckey        T
	rank, size  int
	count       int
	left, right *softNode[T]
	head, tail  *softItem[T]
}

func (x *softNode[T]) leaf() bool { return x.left == nil && x.right == nil }

// softTree is one entry of the root list. sufmin points at the tree with
// the smallest root ckey among this tree and all trees after it.
type softTree[T any] struct {
	root       *softNode[T]
	rank       int
	prev, next *softTree[T]
	sufmin     *softTree[T]
}

// SoftHeap is a Kaplan–Zwick soft heap.
//
// An item is corrupted while the common key of the node holding it sorts
// strictly above the item itself. Corruption never heals: items only move
// towards roots and common keys only grow. At most ErrorRate·n items are
// corrupted at any time, n being the number of insertions.
type SoftHeap[T any] struct {
	less      func(a, b T) bool
	errorRate float64
	threshold int
	first     *softTree[T]
	rank      int
	size      int
}

// NewSoftHeap returns an empty soft heap with the given error rate,
// ordered by less.
func NewSoftHeap[T any](errorRate float64, less func(a, b T) bool) (*SoftHeap[T], error) {
	if !(errorRate > 0 && errorRate < 1) {
		return nil, ErrInvalidErrorRate
	}

	return &SoftHeap[T]{
		less:      less,
		errorRate: errorRate,
		threshold: int(math.Ceil(math.Log2(1/errorRate))) + 5,
	}, nil
}

// ErrorRate returns the configured ε.
func (h *SoftHeap[T]) ErrorRate() float64 { return h.errorRate }

// Len returns the number of items.
func (h *SoftHeap[T]) Len() int { return h.size }

// Insert adds v.
//
// Complexity: O(log 1/ε) amortized.
func (h *SoftHeap[T]) Insert(v T) {
	it := &softItem[T]{value: v}
	x := &softNode[T]{ckey: v, size: 1, count: 1, head: it, tail: it}
	t := &softTree[T]{root: x}
	t.sufmin = t
	h.meld(t, 0)
	h.size++
}

// Meld moves every item of other into h and leaves other empty. Both heaps
// must share the same order. Melding nil or h itself does nothing.
func (h *SoftHeap[T]) Meld(other *SoftHeap[T]) {
	if other == nil || other == h || other.first == nil {
		return
	}
	h.meld(other.first, other.rank)
	h.size += other.size
	other.first, other.rank, other.size = nil, 0, 0
}

// Peek returns the item Pop would return next.
func (h *SoftHeap[T]) Peek() (T, error) {
	if h.first == nil {
		var zero T
		return zero, ErrEmptyHeap
	}

	return h.first.sufmin.root.head.value, nil
}

// Pop removes an item whose current key is minimal. corrupted reports
// whether that key had been raised above the item's own value.
//
// Complexity: O(1) amortized.
func (h *SoftHeap[T]) Pop() (v T, corrupted bool, err error) {
	if h.first == nil {
		return v, false, ErrEmptyHeap
	}

	t := h.first.sufmin
	x := t.root
	it := x.head
	x.head = it.next
	if x.head == nil {
		x.tail = nil
	}
	x.count--
	h.size--
	v = it.value
	corrupted = h.less(v, x.ckey)

	// refill a root that dropped to half its target size
	if 2*x.count <= x.size {
		if !x.leaf() {
			h.sift(x)
			h.updateSuffixMin(t)
		} else if x.count == 0 {
			prev := t.prev
			h.removeTree(t)
			if t.next == nil {
				if prev == nil {
					h.rank = 0
				} else {
					h.rank = prev.rank
				}
			}
			if prev != nil {
				h.updateSuffixMin(prev)
			}
		}
	}

	return v, corrupted, nil
}

// Corrupted returns the items currently held under a raised key.
//
// Complexity: O(n).
func (h *SoftHeap[T]) Corrupted() []T {
	var out []T
	h.walk(func(v T, ckey T) {
		if h.less(v, ckey) {
			out = append(out, v)
		}
	})

	return out
}

// CorruptedCount returns len(Corrupted()) without allocating.
func (h *SoftHeap[T]) CorruptedCount() int {
	n := 0
	h.walk(func(v T, ckey T) {
		if h.less(v, ckey) {
			n++
		}
	})

	return n
}

func (h *SoftHeap[T]) walk(fn func(v, ckey T)) {
	var visit func(x *softNode[T])
	visit = func(x *softNode[T]) {
		if x == nil {
			return
		}
		for it := x.head; it != nil; it = it.next {
			fn(it.value, x.ckey)
		}
		visit(x.left)
		visit(x.right)
	}
	for t := h.first; t != nil; t = t.next {
		visit(t.root)
	}
}

// meld merges the rank-ordered tree list starting at first into h.
func (h *SoftHeap[T]) meld(first *softTree[T], rank int) {
	if h.first == nil {
		h.first, h.rank = first, rank
		return
	}
	upTo := min(h.rank, rank)
	h.rank = max(h.rank, rank)
	h.first = mergeByRank(h.first, first)
	h.updateSuffixMin(h.repeatedCombine(upTo))
}

// mergeByRank interleaves two rank-ordered tree lists.
func mergeByRank[T any](a, b *softTree[T]) *softTree[T] {
	var head, tail *softTree[T]
	for a != nil || b != nil {
		var t *softTree[T]
		if b == nil || (a != nil && a.rank <= b.rank) {
			t, a = a, a.next
		} else {
			t, b = b, b.next
		}
		t.prev, t.next = tail, nil
		if tail == nil {
			head = t
		} else {
			tail.next = t
		}
		tail = t
	}

	return head
}

// repeatedCombine merges equal-rank neighbours until ranks are distinct.
// Only ranks up to upTo can repeat, apart from carries. It returns the
// last tree that changed.
func (h *SoftHeap[T]) repeatedCombine(upTo int) *softTree[T] {
	t := h.first
	for t.next != nil {
		if t.rank == t.next.rank {
			// of three equal ranks, combine the last two
			if t.next.next == nil || t.rank != t.next.next.rank {
				t.root = h.combine(t.root, t.next.root)
				t.rank = t.root.rank
				h.removeTree(t.next)
				continue
			}
		} else if t.rank > upTo {
			break
		}
		t = t.next
	}
	if t.rank > h.rank {
		h.rank = t.rank
	}

	return t
}

func (h *SoftHeap[T]) combine(x, y *softNode[T]) *softNode[T] {
	z := &softNode[T]{left: x, right: y, rank: x.rank + 1}
	if z.rank <= h.threshold {
		z.size = 1
	} else {
		z.size = (3*x.size + 1) / 2
	}
	h.sift(z)

	return z
}

// sift pulls items up from the children of x until x holds size items or
// becomes a leaf. The common key of x rises to that of the child drained.
func (h *SoftHeap[T]) sift(x *softNode[T]) {
	for x.count < x.size && !x.leaf() {
		if x.left == nil || (x.right != nil && h.less(x.right.ckey, x.left.ckey)) {
			x.left, x.right = x.right, x.left
		}
		c := x.left

		// concatenate c's items onto x
		if c.head != nil {
			if x.tail == nil {
				x.head = c.head
			} else {
				x.tail.next = c.head
			}
			x.tail = c.tail
			x.count += c.count
		}
		x.ckey = c.ckey
		c.head, c.tail, c.count = nil, nil, 0

		if c.leaf() {
			x.left = nil
		} else {
			h.sift(c)
		}
	}
}

func (h *SoftHeap[T]) removeTree(t *softTree[T]) {
	if t.prev == nil {
		h.first = t.next
	} else {
		t.prev.next = t.next
	}
	if t.next != nil {
		t.next.prev = t.prev
	}
}

// updateSuffixMin repairs sufmin from t back to the first tree.
func (h *SoftHeap[T]) updateSuffixMin(t *softTree[T]) {
	for ; t != nil; t = t.prev {
		if t.next == nil || !h.less(t.next.sufmin.root.ckey, t.root.ckey) {
			t.sufmin = t
		} else {
			t.sufmin = t.next.sufmin
		}
	}
}
