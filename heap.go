package binomial

import (
	"cmp"
	"fmt"
	"reflect"
)

// Heap is a min-heap of keys of type K, organized as a forest of binomial trees.
//
// The zero value is not usable; create heaps with New or NewOrdered.
type Heap[K any] struct {
	cfg   Config[K]
	roots *node[K] // root list, strictly increasing degree
	size  int
}

// New creates an empty heap with a validated configuration.
func New[K any](cfg Config[K]) (*Heap[K], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Heap[K]{cfg: cfg}, nil
}

// NewOrdered creates an empty heap for keys with a natural order.
func NewOrdered[K cmp.Ordered]() *Heap[K] {
	return &Heap[K]{cfg: OrderedConfig[K]()}
}

// Config returns the configuration of h.
func (h *Heap[K]) Config() Config[K] {
	return h.cfg
}

func (h *Heap[K]) less(a, b *node[K]) bool {
	return h.cfg.Compare(a.key(), b.key()) < 0
}

// IsEmpty reports whether the heap has no elements.
func (h *Heap[K]) IsEmpty() bool {
	return h == nil || h.roots == nil
}

// Len returns the number of elements in the heap.
func (h *Heap[K]) Len() int {
	if h == nil {
		return 0
	}
	return h.size
}

// Insert adds a key to the heap and returns a handle for it.
func (h *Heap[K]) Insert(key K) *Item[K] {
	n := newNode(key)
	roots, err := h.unionRoots(h.roots, n)
	assert(err == nil, "insert: root list broken")
	h.roots = roots
	h.size++
	T().Debugf("inserted %v, size now %d", key, h.size)
	return n.item
}

// FindMin returns the smallest key without removing it.
// It fails with ErrEmptyHeap for an empty heap.
func (h *Heap[K]) FindMin() (K, error) {
	var zero K
	if h.IsEmpty() {
		return zero, ErrEmptyHeap
	}
	_, min := h.minRoot()
	return min.key(), nil
}

// ExtractMin removes the smallest key from the heap and returns it.
// It fails with ErrEmptyHeap for an empty heap.
func (h *Heap[K]) ExtractMin() (K, error) {
	var zero K
	if h.IsEmpty() {
		return zero, ErrEmptyHeap
	}
	prev, min := h.minRoot()
	it, err := h.removeRoot(prev, min)
	if err != nil {
		return zero, err
	}
	return it.key, nil
}

// minRoot scans the root list for the root with the smallest key. It returns
// the root together with its predecessor in the root list, which is nil for the
// head of the list. Of several minimal roots the first one wins.
func (h *Heap[K]) minRoot() (prev, min *node[K]) {
	min = h.roots
	for r := h.roots; r.rightSib != nil; r = r.rightSib {
		if h.less(r.rightSib, min) {
			prev, min = r, r.rightSib
		}
	}
	return prev, min
}

// removeRoot splices root r out of the root list, makes its children roots of
// their own and unions them back into the heap. prev is r's predecessor in the
// root list or nil.
func (h *Heap[K]) removeRoot(prev, r *node[K]) (*Item[K], error) {
	if prev == nil {
		h.roots = r.rightSib
	} else {
		prev.rightSib = r.rightSib
	}
	r.rightSib = nil
	// children are in decreasing degree order, roots need increasing order
	var orphans *node[K]
	for c := r.leftChild; c != nil; {
		next := c.rightSib
		c.parent = nil
		c.rightSib = orphans
		orphans = c
		c = next
	}
	r.leftChild = nil
	r.degree = 0
	roots, err := h.unionRoots(h.roots, orphans)
	if err != nil {
		return nil, err
	}
	h.roots = roots
	h.size--
	it := r.detach()
	T().Debugf("removed root %v, size now %d", it.key, h.size)
	return it, nil
}

// Contains reports whether item is a live handle for a key of h.
func (h *Heap[K]) Contains(item *Item[K]) bool {
	if h.IsEmpty() || item.Detached() {
		return false
	}
	top := item.node
	for top.parent != nil {
		top = top.parent
	}
	for r := h.roots; r != nil; r = r.rightSib {
		if r == top {
			return true
		}
	}
	return false
}

// Meld moves all elements of other into h. other is left empty and may be
// re-used. Item handles of other stay valid and now refer to h.
//
// If other uses a different comparator function than h, its trees are not
// heap-ordered for h. Its keys are then re-inserted one by one under the
// comparator of h, which takes O(m log n) instead of O(log n). Comparators
// count as equal if they are the same function; two closures created from the
// same function literal are treated as equal as well.
//
// Melding a heap with itself is an ErrInvalidOperation.
func (h *Heap[K]) Meld(other *Heap[K]) error {
	if h == nil {
		return fmt.Errorf("%w: meld into nil heap", ErrInvalidOperation)
	}
	if other == h {
		return fmt.Errorf("%w: cannot meld a heap with itself", ErrInvalidOperation)
	}
	if other.IsEmpty() {
		return nil
	}
	if !h.sameOrder(other) {
		return h.adopt(other)
	}
	roots, err := h.unionRoots(h.roots, other.roots)
	if err != nil {
		return err
	}
	h.roots = roots
	h.size += other.size
	other.roots, other.size = nil, 0
	T().Debugf("melded heaps, size now %d", h.size)
	return nil
}

func (h *Heap[K]) sameOrder(other *Heap[K]) bool {
	return reflect.ValueOf(h.cfg.Compare).Pointer() == reflect.ValueOf(other.cfg.Compare).Pointer()
}

// adopt moves the keys of other into h one at a time. Every item gets a fresh
// node, so handles of other keep following their keys.
func (h *Heap[K]) adopt(other *Heap[K]) error {
	items := make([]*Item[K], 0, other.size)
	other.each(func(n *node[K], _ int) error {
		items = append(items, n.item)
		return nil
	})
	other.roots, other.size = nil, 0
	T().Infof("meld: re-inserting %d keys ordered by a different comparator", len(items))
	for _, it := range items {
		n := &node[K]{item: it}
		it.node = n
		roots, err := h.unionRoots(h.roots, n)
		if err != nil {
			return err
		}
		h.roots = roots
		h.size++
	}
	return nil
}

// Union merges two heaps into a new one, using the configuration of a.
// Both a and b are consumed: they are empty afterwards, and all item handles
// now refer to the resulting heap.
//
// Union of a heap with itself is an ErrInvalidOperation.
func Union[K any](a, b *Heap[K]) (*Heap[K], error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%w: union with nil heap", ErrInvalidOperation)
	}
	if a == b {
		return nil, fmt.Errorf("%w: cannot union a heap with itself", ErrInvalidOperation)
	}
	u := &Heap[K]{cfg: a.cfg}
	u.roots, u.size = a.roots, a.size
	a.roots, a.size = nil, 0
	if err := u.Meld(b); err != nil {
		return nil, err
	}
	return u, nil
}
