/*
Package binomial implements a mergeable priority queue on top of a forest of
binomial trees.

Binomial Heaps

A binomial tree of order k has exactly 2^k nodes. It is either a single node
(k = 0) or the result of linking two trees of order k−1, where the root with
the larger key becomes the leftmost child of the other root. A binomial heap is
a list of such trees, at most one per order, kept in strictly increasing order.
The layout of the root list therefore mirrors the binary representation of the
number of elements: bit i of Len() is set iff a tree of order i is present.

The interesting operation is union. A binary heap cannot be merged with another
one in less than linear time, whereas two binomial heaps are merged much like
two binary numbers are added: trees of equal order are linked into a "carry"
tree of the next order, and the carry is propagated upwards. This takes time
proportional to the number of distinct orders, i.e. O(log n).

	h := binomial.NewOrdered[int]()
	h.Insert(5)
	item := h.Insert(8)
	h.Insert(3)
	_ = h.DecreaseKey(item, 1)
	min, _ := h.ExtractMin() // min == 1

Insert returns an item handle. Handles stay attached to their key through
DecreaseKey and are detached when the key leaves the heap, either by ExtractMin
or by Delete.

Heaps are not safe for concurrent use. Clients sharing a heap between
goroutines have to serialize every access, including FindMin, under an
exclusive lock.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package binomial

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// HeapError is an error type for the binomial module
type HeapError string

func (e HeapError) Error() string {
	return string(e)
}

// ErrEmptyHeap is flagged when querying or extracting from a heap without
// elements.
const ErrEmptyHeap = HeapError("heap is empty")

// ErrInvalidOperation is flagged whenever an operation is called in violation
// of its contract, e.g. increasing a key with DecreaseKey or using an item
// handle which does not belong to the heap.
const ErrInvalidOperation = HeapError("invalid operation")

// ErrInvalidConfig is flagged by New for unusable configurations.
const ErrInvalidConfig = HeapError("invalid heap configuration")

// ErrCorrupted is returned by Check if a structural invariant does not hold.
const ErrCorrupted = HeapError("heap structure corrupted")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
