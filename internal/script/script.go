/*
Package script executes scripted sequences of heap operations on integer heaps.

Scripts are written in TOML. They declare a number of named heaps together with
their initial keys, followed by a list of steps:

	output = "console"

	[[heap]]
	name = "x"
	keys = [4, 2]

	[[heap]]
	name = "y"
	keys = [7, 1, 9, 3]

	[[step]]
	op = "union"
	heap = "x"
	with = "y"

	[[step]]
	op = "decrease"
	heap = "x"
	key = 9
	to = 0

Supported operations are "insert" (key), "extract", "decrease" (key, to),
"delete" (key) and "union" (with). Keys of decrease and delete address the first
live item holding that key. After a union the heap named by "with" is empty.
*/
package script

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/binomial"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Script is a parsed heap script.
type Script struct {
	Output string    `toml:"output"`
	Heaps  []HeapDef `toml:"heap"`
	Steps  []Step    `toml:"step"`
}

// HeapDef declares a named heap and its initial keys.
type HeapDef struct {
	Name string `toml:"name"`
	Keys []int  `toml:"keys"`
}

// Step is a single heap operation.
type Step struct {
	Op   string `toml:"op"`
	Heap string `toml:"heap"`
	With string `toml:"with"`
	Key  int    `toml:"key"`
	To   int    `toml:"to"`
}

// Parse reads a script from TOML source.
func Parse(src string) (*Script, error) {
	s := &Script{}
	md, err := toml.Decode(src, s)
	if err != nil {
		return nil, err
	}
	return s, s.validate(md)
}

// Load reads a script from a TOML file.
func Load(path string) (*Script, error) {
	s := &Script{}
	md, err := toml.DecodeFile(path, s)
	if err != nil {
		return nil, err
	}
	return s, s.validate(md)
}

func (s *Script) validate(md toml.MetaData) error {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown script entry %q", undecoded[0].String())
	}
	switch s.Output {
	case "":
		s.Output = "console"
	case "console", "dot":
	default:
		return fmt.Errorf("unknown output format %q", s.Output)
	}
	names := make(map[string]bool, len(s.Heaps))
	for _, def := range s.Heaps {
		if def.Name == "" {
			return fmt.Errorf("heap without name")
		}
		if names[def.Name] {
			return fmt.Errorf("heap %q declared twice", def.Name)
		}
		names[def.Name] = true
	}
	for i, step := range s.Steps {
		if !names[step.Heap] {
			return fmt.Errorf("step %d: unknown heap %q", i+1, step.Heap)
		}
		if step.Op == "union" && !names[step.With] {
			return fmt.Errorf("step %d: unknown heap %q", i+1, step.With)
		}
	}
	return nil
}

// Result holds the heaps after a script run.
type Result struct {
	Names     []string // in order of declaration
	Heaps     map[string]*binomial.Heap[int]
	Extracted []int // keys removed by extract and delete, in order
}

type state struct {
	Result
	items map[string][]*binomial.Item[int]
}

// Run executes the script. It stops at the first failing step.
func (s *Script) Run() (*Result, error) {
	st := &state{
		Result: Result{Heaps: make(map[string]*binomial.Heap[int])},
		items:  make(map[string][]*binomial.Item[int]),
	}
	for _, def := range s.Heaps {
		h := binomial.NewOrdered[int]()
		for _, k := range def.Keys {
			st.items[def.Name] = append(st.items[def.Name], h.Insert(k))
		}
		st.Names = append(st.Names, def.Name)
		st.Heaps[def.Name] = h
	}
	for i, step := range s.Steps {
		if err := st.exec(step); err != nil {
			return &st.Result, fmt.Errorf("step %d (%s): %w", i+1, step.Op, err)
		}
	}
	return &st.Result, nil
}

func (st *state) exec(step Step) error {
	h := st.Heaps[step.Heap]
	tracer().Debugf("script: %s on heap %s", step.Op, step.Heap)
	switch step.Op {
	case "insert":
		st.items[step.Heap] = append(st.items[step.Heap], h.Insert(step.Key))
	case "extract":
		k, err := h.ExtractMin()
		if err != nil {
			return err
		}
		st.Extracted = append(st.Extracted, k)
	case "decrease":
		it, err := st.lookup(step.Heap, step.Key)
		if err != nil {
			return err
		}
		return h.DecreaseKey(it, step.To)
	case "delete":
		it, err := st.lookup(step.Heap, step.Key)
		if err != nil {
			return err
		}
		k, err := h.Delete(it)
		if err != nil {
			return err
		}
		st.Extracted = append(st.Extracted, k)
	case "union":
		if err := h.Meld(st.Heaps[step.With]); err != nil {
			return err
		}
		if step.With != step.Heap {
			st.items[step.Heap] = append(st.items[step.Heap], st.items[step.With]...)
			st.items[step.With] = nil
		}
	default:
		return fmt.Errorf("unknown operation %q", step.Op)
	}
	return nil
}

// lookup finds the first live item of heap name holding key.
func (st *state) lookup(name string, key int) (*binomial.Item[int], error) {
	h := st.Heaps[name]
	live := st.items[name][:0]
	var found *binomial.Item[int]
	for _, it := range st.items[name] {
		if !h.Contains(it) {
			continue
		}
		live = append(live, it)
		if found == nil && it.Key() == key {
			found = it
		}
	}
	st.items[name] = live
	if found == nil {
		return nil, fmt.Errorf("%w: no key %d in heap %s", binomial.ErrInvalidOperation, key, name)
	}
	return found, nil
}
