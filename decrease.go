package binomial

import "fmt"

// DecreaseKey lowers the key of item to key and restores heap order.
//
// key must not be greater than the current key of item, otherwise the call
// fails with ErrInvalidOperation and the heap is left unmodified. An item which
// does not belong to h, or whose key has already been removed, is an
// ErrInvalidOperation as well.
func (h *Heap[K]) DecreaseKey(item *Item[K], key K) error {
	if !h.Contains(item) {
		return fmt.Errorf("%w: item is not part of this heap", ErrInvalidOperation)
	}
	if h.cfg.Compare(key, item.key) > 0 {
		T().Errorf("decrease-key called with greater key %v > %v", key, item.key)
		return fmt.Errorf("%w: new key %v is greater than current key %v",
			ErrInvalidOperation, key, item.key)
	}
	item.key = key
	h.siftUp(item.node, false)
	return nil
}

// Delete removes the key of item from the heap and returns it.
//
// Delete fails with ErrEmptyHeap on an empty heap and with ErrInvalidOperation
// if item is not a live handle of h.
func (h *Heap[K]) Delete(item *Item[K]) (K, error) {
	var zero K
	if h.IsEmpty() {
		return zero, ErrEmptyHeap
	}
	if !h.Contains(item) {
		return zero, fmt.Errorf("%w: item is not part of this heap", ErrInvalidOperation)
	}
	// Lift the item to the top of its tree, as if its key were −∞. The root
	// does not have to be the heap minimum, so it is removed directly.
	r := h.siftUp(item.node, true)
	var prev *node[K]
	for p := h.roots; p != r; p = p.rightSib {
		prev = p
	}
	it, err := h.removeRoot(prev, r)
	if err != nil {
		return zero, err
	}
	return it.key, nil
}

// siftUp moves the key at n upwards as long as it is smaller than its parent's
// key, or up to the root if force is set. Only item handles move, tree links
// stay unchanged. Returns the node holding the key afterwards.
func (h *Heap[K]) siftUp(n *node[K], force bool) *node[K] {
	steps := 0
	for n.parent != nil && (force || h.less(n, n.parent)) {
		swapItems(n, n.parent)
		n = n.parent
		steps++
	}
	T().Debugf("sift-up of %v took %d steps", n.key(), steps)
	return n
}
