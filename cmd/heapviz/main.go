/*
Heapviz runs a heap script and shows the resulting binomial heaps, either on the
console or in Graphviz DOT format.

	heapviz [-dot] [-t level] script.toml

See package internal/script for the script format.
*/
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/npillmayer/binomial"
	"github.com/npillmayer/binomial/internal/script"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func main() {
	log.SetFlags(0)
	dot := flag.Bool("dot", false, "Output DOT instead of console text")
	level := flag.String("t", "error", "Trace level (error, info, debug)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: heapviz [options] script.toml\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	gtrace.CoreTracer = gologadapter.New()
	setTraceLevel(*level)

	s, err := script.Load(flag.Arg(0))
	if err != nil {
		log.Fatalf("Cannot read script: %v", err)
	}
	if *dot {
		s.Output = "dot"
	}
	res, err := s.Run()
	if err != nil {
		log.Printf("Script aborted: %v", err)
	}
	if res == nil {
		os.Exit(1)
	}
	for _, name := range res.Names {
		h := res.Heaps[name]
		if s.Output == "dot" {
			fmt.Printf("// heap %s\n", name)
			binomial.Heap2Dot(h, os.Stdout)
			continue
		}
		fmt.Printf("heap %s (%d keys):\n", name, h.Len())
		if err := binomial.Fprint(os.Stdout, h, nil); err != nil {
			log.Fatal(err)
		}
	}
	if len(res.Extracted) > 0 {
		fmt.Printf("removed: %v\n", res.Extracted)
	}
	if err != nil {
		os.Exit(1)
	}
}

func setTraceLevel(s string) {
	switch s {
	case "debug":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	case "info":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	default:
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	}
}
