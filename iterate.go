package binomial

// each walks the forest in pre-order, root by root. Children are visited in
// list order, i.e. from the highest to the lowest degree.
//
// Iteration stops at the first error returned by fn.
func (h *Heap[K]) each(fn func(n *node[K], depth int) error) error {
	if h.IsEmpty() || fn == nil {
		return nil
	}
	for r := h.roots; r != nil; r = r.rightSib {
		if err := eachNode(r, 0, fn); err != nil {
			return err
		}
	}
	return nil
}

func eachNode[K any](n *node[K], depth int, fn func(*node[K], int) error) error {
	if err := fn(n, depth); err != nil {
		return err
	}
	for c := n.leftChild; c != nil; c = c.rightSib {
		if err := eachNode(c, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}
