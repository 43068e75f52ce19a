package binomial

import "fmt"

// node is a vertex of a binomial tree. A node of degree k is the root of a
// subtree of order k and has exactly k children. Children are chained from
// leftChild via rightSib in strictly decreasing degree, i.e. k−1, k−2, …, 0.
// Roots are chained via rightSib as well, in strictly increasing degree.
//
// parent is a back-reference only, used for upward walks.
type node[K any] struct {
	item      *Item[K]
	degree    int
	parent    *node[K]
	leftChild *node[K]
	rightSib  *node[K]
}

func newNode[K any](key K) *node[K] {
	n := &node[K]{}
	n.item = &Item[K]{key: key, node: n}
	return n
}

func (n *node[K]) key() K {
	return n.item.key
}

// Item is a handle for a key inside a heap. It is returned by Insert and is
// needed for DecreaseKey and Delete.
//
// An item follows its key while the heap rearranges itself. Once the key has
// been removed from the heap, the item is detached and no longer usable.
type Item[K any] struct {
	key  K
	node *node[K] // nil if detached
}

// Key returns the current key of an item.
func (it *Item[K]) Key() K {
	return it.key
}

// Detached reports whether the item's key has left its heap.
func (it *Item[K]) Detached() bool {
	return it == nil || it.node == nil
}

// link merges two trees of equal degree into one tree of degree+1. The root with
// the greater key becomes the new leftmost child of the other root; on equal
// keys a stays on top. Both roots lose their sibling links, so callers have to
// read rightSib before linking.
func (h *Heap[K]) link(a, b *node[K]) (*node[K], error) {
	if a == nil || b == nil {
		T().Errorf("link called with nil tree")
		return nil, fmt.Errorf("%w: cannot link a nil tree", ErrInvalidOperation)
	}
	if a == b {
		T().Errorf("link called with identical trees")
		return nil, fmt.Errorf("%w: cannot link a tree to itself", ErrInvalidOperation)
	}
	if a.degree != b.degree {
		T().Errorf("link called with trees of degree %d and %d", a.degree, b.degree)
		return nil, fmt.Errorf("%w: cannot link trees of degree %d and %d",
			ErrInvalidOperation, a.degree, b.degree)
	}
	if h.less(b, a) {
		a, b = b, a
	}
	a.rightSib = nil
	b.parent = a
	b.rightSib = a.leftChild
	a.leftChild = b
	a.degree++
	T().Debugf("link: %v absorbs %v, degree now %d", a.key(), b.key(), a.degree)
	return a, nil
}

// swapItems exchanges the keys of two nodes, keeping item handles attached to
// their keys. Tree links are left untouched.
func swapItems[K any](a, b *node[K]) {
	a.item, b.item = b.item, a.item
	a.item.node = a
	b.item.node = b
}

// detach cuts all links of n. n has to be a root without children.
func (n *node[K]) detach() *Item[K] {
	assert(n.parent == nil && n.leftChild == nil, "detach called on linked node")
	it := n.item
	it.node = nil
	n.item = nil
	n.rightSib = nil
	return it
}
