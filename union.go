package binomial

// unionRoots merges two root lists, both in strictly increasing degree, into a
// single root list with at most one tree per degree.
//
// The merge works like the addition of two binary numbers. For every degree d,
// starting with the lowest one present, there are up to three trees of degree d:
// the heads of a and b and a carry from the previous degree.
//
//	one tree:    it is emitted as a root of the result
//	two trees:   they are linked into a carry of degree d+1
//	three trees: one is emitted, the other two become the carry
//
// When one of the lists is exhausted, the carry keeps rippling through the
// remaining trees of the other list. A carry left over at the end becomes the
// last root.
func (h *Heap[K]) unionRoots(a, b *node[K]) (*node[K], error) {
	var head, tail, carry *node[K]
	emit := func(n *node[K]) {
		n.rightSib = nil
		if tail == nil {
			head = n
		} else {
			tail.rightSib = n
		}
		tail = n
	}
	var trees [3]*node[K]
	for a != nil || b != nil || carry != nil {
		d := -1
		for _, n := range [...]*node[K]{a, b, carry} {
			if n != nil && (d < 0 || n.degree < d) {
				d = n.degree
			}
		}
		cnt := 0
		if a != nil && a.degree == d {
			trees[cnt], a = a, a.rightSib
			cnt++
		}
		if b != nil && b.degree == d {
			trees[cnt], b = b, b.rightSib
			cnt++
		}
		if carry != nil && carry.degree == d {
			trees[cnt], carry = carry, nil
			cnt++
		}
		var err error
		switch cnt {
		case 1:
			emit(trees[0])
		case 2:
			carry, err = h.link(trees[0], trees[1])
		case 3:
			emit(trees[0])
			carry, err = h.link(trees[1], trees[2])
		}
		if err != nil {
			return nil, err
		}
		if carry != nil {
			T().Debugf("union: carry of degree %d", carry.degree)
		}
	}
	return head, nil
}
