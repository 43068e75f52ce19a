package binomial

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// quietTracing redirects the core tracer to t for the duration of the test.
func quietTracing(t *testing.T) {
	t.Helper()
	gtrace.CoreTracer = gotestingadapter.New(t)
	t.Cleanup(gotestingadapter.RedirectTracing(t))
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
}

func heapOf(t *testing.T, keys ...int) (*Heap[int], []*Item[int]) {
	t.Helper()
	h := NewOrdered[int]()
	items := make([]*Item[int], len(keys))
	for i, k := range keys {
		items[i] = h.Insert(k)
		if err := h.Check(); err != nil {
			t.Fatalf("after insert of %d: %v", k, err)
		}
	}
	return h, items
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	quietTracing(t)
	_, err := New(Config[int]{})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestNewWithComparator(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	h, err := New(Config[string]{Compare: func(a, b string) int {
		return len(a) - len(b) // shortest string first
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h.Insert("three")
	h.Insert("a")
	h.Insert("to")
	if min, _ := h.FindMin(); min != "a" {
		t.Errorf("expected min to be 'a', is %q", min)
	}
	if h.Config().Compare == nil {
		t.Errorf("expected comparator to be kept in config")
	}
}

func TestEmptyHeap(t *testing.T) {
	quietTracing(t)
	h := NewOrdered[int]()
	if !h.IsEmpty() || h.Len() != 0 {
		t.Fatalf("new heap is not empty")
	}
	if err := h.Check(); err != nil {
		t.Fatalf("expected empty heap to be valid, got %v", err)
	}
	if _, err := h.FindMin(); !errors.Is(err, ErrEmptyHeap) {
		t.Errorf("expected FindMin to fail with ErrEmptyHeap, got %v", err)
	}
	if _, err := h.ExtractMin(); !errors.Is(err, ErrEmptyHeap) {
		t.Errorf("expected ExtractMin to fail with ErrEmptyHeap, got %v", err)
	}
}

func TestNegativeKeysAreNoSentinels(t *testing.T) {
	quietTracing(t)
	h, _ := heapOf(t, -1, 0, -1)
	min, err := h.FindMin()
	if err != nil || min != -1 {
		t.Errorf("expected min -1, got %d (%v)", min, err)
	}
}

func TestInsertFindExtract(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	h, _ := heapOf(t, 5, 3, 8, 1)
	if min, _ := h.FindMin(); min != 1 {
		t.Fatalf("expected min 1, is %d", min)
	}
	min, err := h.ExtractMin()
	if err != nil || min != 1 {
		t.Fatalf("expected to extract 1, got %d (%v)", min, err)
	}
	if err := h.Check(); err != nil {
		t.Fatal(err)
	}
	if min, _ := h.FindMin(); min != 3 {
		t.Errorf("expected min 3 after extract, is %d", min)
	}
	if h.Len() != 3 {
		t.Errorf("expected 3 elements left, have %d", h.Len())
	}
}

func TestRootListMirrorsSize(t *testing.T) {
	quietTracing(t)
	h := NewOrdered[int]()
	for i := 1; i <= 37; i++ {
		h.Insert(100 - i)
		var mask int
		for r := h.roots; r != nil; r = r.rightSib {
			mask |= 1 << r.degree
		}
		if mask != h.Len() {
			t.Fatalf("root degrees %b do not match size %b", mask, h.Len())
		}
	}
}

func TestExtractAllSorted(t *testing.T) {
	quietTracing(t)
	keys := []int{9, 4, 4, 17, 0, 3, 12, 8, 1, 1, 25, 6, 7}
	h, _ := heapOf(t, keys...)
	prev := -1
	for i := 0; i < len(keys); i++ {
		k, err := h.ExtractMin()
		if err != nil {
			t.Fatalf("extract #%d: %v", i, err)
		}
		if k < prev {
			t.Fatalf("extracted %d after %d", k, prev)
		}
		prev = k
		if err := h.Check(); err != nil {
			t.Fatal(err)
		}
	}
	if !h.IsEmpty() {
		t.Errorf("expected heap to be empty")
	}
}

func TestExtractDetachesItem(t *testing.T) {
	quietTracing(t)
	h, items := heapOf(t, 2, 1)
	if items[1].Detached() {
		t.Fatalf("item detached before extraction")
	}
	h.ExtractMin()
	if !items[1].Detached() {
		t.Errorf("expected extracted item to be detached")
	}
	if h.Contains(items[1]) {
		t.Errorf("heap still contains extracted item")
	}
	if !h.Contains(items[0]) {
		t.Errorf("heap lost remaining item")
	}
}

func TestUnion(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	x, xitems := heapOf(t, 4, 2)
	y, _ := heapOf(t, 7, 1, 9, 3)
	u, err := Union(x, y)
	if err != nil {
		t.Fatal(err)
	}
	if err := u.Check(); err != nil {
		t.Fatal(err)
	}
	if u.Len() != 6 {
		t.Errorf("expected union to have 6 elements, has %d", u.Len())
	}
	if min, _ := u.FindMin(); min != 1 {
		t.Errorf("expected min of union to be 1, is %d", min)
	}
	if !x.IsEmpty() || !y.IsEmpty() {
		t.Errorf("expected input heaps to be consumed")
	}
	if !u.Contains(xitems[0]) || x.Contains(xitems[0]) {
		t.Errorf("expected item handles to move to union")
	}
}

func TestUnionWithItself(t *testing.T) {
	quietTracing(t)
	h, _ := heapOf(t, 1, 2, 3)
	if _, err := Union(h, h); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("expected ErrInvalidOperation, got %v", err)
	}
	if err := h.Meld(h); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("expected ErrInvalidOperation, got %v", err)
	}
	if h.Len() != 3 {
		t.Errorf("failed union modified heap")
	}
}

func TestMeldEmpty(t *testing.T) {
	quietTracing(t)
	h, _ := heapOf(t, 1, 2, 3)
	if err := h.Meld(NewOrdered[int]()); err != nil {
		t.Fatal(err)
	}
	if err := h.Meld(nil); err != nil {
		t.Fatal(err)
	}
	e := NewOrdered[int]()
	if err := e.Meld(h); err != nil {
		t.Fatal(err)
	}
	if e.Len() != 3 || !h.IsEmpty() {
		t.Errorf("expected all elements to move, have %d/%d", e.Len(), h.Len())
	}
	if err := e.Check(); err != nil {
		t.Fatal(err)
	}
	// a consumed heap is reusable
	h.Insert(0)
	if min, _ := h.FindMin(); min != 0 || h.Len() != 1 {
		t.Errorf("consumed heap not reusable")
	}
}

func TestMeldWithDifferentComparator(t *testing.T) {
	quietTracing(t)
	h, _ := heapOf(t, 5, 6)
	g, err := New(Config[int]{Compare: func(a, b int) int {
		return b - a // max-heap
	}})
	if err != nil {
		t.Fatal(err)
	}
	one := g.Insert(1)
	g.Insert(9)
	if err := h.Meld(g); err != nil {
		t.Fatal(err)
	}
	if err := h.Check(); err != nil {
		t.Fatal(err)
	}
	if !g.IsEmpty() || h.Len() != 4 {
		t.Errorf("expected all keys to move, have %d/%d", h.Len(), g.Len())
	}
	if min, _ := h.FindMin(); min != 1 {
		t.Errorf("expected min 1, is %d", min)
	}
	if !h.Contains(one) {
		t.Fatalf("handle lost during meld")
	}
	if err := h.DecreaseKey(one, 0); err != nil {
		t.Fatal(err)
	}
	if min, _ := h.ExtractMin(); min != 0 {
		t.Errorf("expected min 0 after decrease, is %d", min)
	}
	if err := h.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestUnionWithDifferentComparator(t *testing.T) {
	quietTracing(t)
	a, _ := heapOf(t, 5, 6, 7)
	b, err := New(Config[int]{Compare: func(x, y int) int { return y - x }})
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []int{1, 9, 3, 8} {
		b.Insert(k)
	}
	u, err := Union(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if err := u.Check(); err != nil {
		t.Fatal(err)
	}
	prev := -1
	for !u.IsEmpty() {
		k, _ := u.ExtractMin()
		if k < prev {
			t.Fatalf("extracted %d after %d", k, prev)
		}
		prev = k
	}
}
