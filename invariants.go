package binomial

import "fmt"

// Check validates the structural invariants of the heap:
//
//   - roots are chained in strictly increasing degree and have no parent,
//   - every tree of degree k holds 2^k keys,
//   - every node of degree k has children of degrees k−1, …, 0, in this order,
//   - parent links match the tree structure,
//   - no child has a key smaller than its parent's key,
//   - item handles and nodes refer to each other,
//   - Len() equals the sum of 2^k over all roots.
//
// Check walks the whole forest and is meant to be used in tests.
func (h *Heap[K]) Check() error {
	if h == nil {
		return fmt.Errorf("%w: nil heap", ErrCorrupted)
	}
	if h.cfg.Compare == nil {
		return fmt.Errorf("%w: heap without comparator", ErrCorrupted)
	}
	total, prevDegree := 0, -1
	for r := h.roots; r != nil; r = r.rightSib {
		if r.parent != nil {
			return fmt.Errorf("%w: root %v has a parent", ErrCorrupted, r.key())
		}
		if r.degree <= prevDegree {
			return fmt.Errorf("%w: root degrees not strictly increasing (%d after %d)",
				ErrCorrupted, r.degree, prevDegree)
		}
		prevDegree = r.degree
		cnt, err := h.checkTree(r)
		if err != nil {
			return err
		}
		total += cnt
	}
	if total != h.size {
		return fmt.Errorf("%w: size mismatch (%d != %d)", ErrCorrupted, total, h.size)
	}
	return nil
}

func (h *Heap[K]) checkTree(n *node[K]) (int, error) {
	if n.item == nil || n.item.node != n {
		return 0, fmt.Errorf("%w: node of degree %d has a broken item link", ErrCorrupted, n.degree)
	}
	count, expect := 1, n.degree-1
	for c := n.leftChild; c != nil; c = c.rightSib {
		if c.parent != n {
			return 0, fmt.Errorf("%w: child %v of %v has wrong parent link",
				ErrCorrupted, c.key(), n.key())
		}
		if c.degree != expect {
			return 0, fmt.Errorf("%w: child of %v has degree %d, expected %d",
				ErrCorrupted, n.key(), c.degree, expect)
		}
		if h.less(c, n) {
			return 0, fmt.Errorf("%w: heap order violated, %v is a child of %v",
				ErrCorrupted, c.key(), n.key())
		}
		sub, err := h.checkTree(c)
		if err != nil {
			return 0, err
		}
		count += sub
		expect--
	}
	if expect != -1 {
		return 0, fmt.Errorf("%w: node %v of degree %d has %d children",
			ErrCorrupted, n.key(), n.degree, n.degree-1-expect)
	}
	if count != 1<<n.degree {
		return 0, fmt.Errorf("%w: tree of degree %d has %d nodes", ErrCorrupted, n.degree, count)
	}
	return count, nil
}
