package binomial

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// PrintConfig controls console output of heaps with Fprint.
type PrintConfig struct {
	LineWidth int            // target line length in fixed-width positions
	Context   *uax11.Context // context for East Asian character widths
	RootColor *color.Color   // used for tree roots; may be nil
	KeyColor  *color.Color   // used for inner nodes; may be nil
}

// DefaultPrintConfig creates a print configuration from the current terminal's
// properties (if stdout is interactive) and the user environment.
func DefaultPrintConfig() *PrintConfig {
	config := &PrintConfig{
		Context:   uax11.ContextFromEnvironment(),
		RootColor: color.New(color.FgRed, color.Bold),
		KeyColor:  color.New(color.FgBlue),
	}
	fd := int(os.Stdout.Fd())
	config.LineWidth = 65
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 10 {
			config.LineWidth = w
		}
	}
	T().Debugf("setting line length to %d en", config.LineWidth)
	return config
}

var setupGraphemes sync.Once

// Fprint outputs the forest of h to w, one key per line. Every tree is
// introduced by its order, e.g.
//
//	B2 1
//	   ├─ 3
//	   │  └─ 7
//	   └─ 5
//
// Keys are formatted with %v and truncated if a line would exceed the
// configured line width. If config is nil, DefaultPrintConfig is used.
func Fprint[K any](w io.Writer, h *Heap[K], config *PrintConfig) error {
	if config == nil {
		config = DefaultPrintConfig()
	}
	cfg := *config
	if cfg.Context == nil {
		cfg.Context = uax11.LatinContext
	}
	config = &cfg
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	if h.IsEmpty() {
		_, err := io.WriteString(w, "(empty)\n")
		return err
	}
	var indent []bool // per depth: are there more siblings below?
	var tag string
	return h.each(func(n *node[K], depth int) error {
		var b strings.Builder
		if depth == 0 {
			tag = fmt.Sprintf("B%d ", n.degree)
			b.WriteString(tag)
		} else {
			b.WriteString(strings.Repeat(" ", len(tag)))
			for _, more := range indent[1:depth] {
				if more {
					b.WriteString("│  ")
				} else {
					b.WriteString("   ")
				}
			}
			if n.rightSib != nil {
				b.WriteString("├─ ")
			} else {
				b.WriteString("└─ ")
			}
		}
		indent = append(indent[:depth], n.rightSib != nil)
		prefix := b.String()
		avail := config.LineWidth - uax11.StringWidth(grapheme.StringFromString(prefix), config.Context)
		label := truncate(fmt.Sprintf("%v", n.key()), avail, config.Context)
		if _, err := io.WriteString(w, prefix); err != nil {
			return err
		}
		c := config.KeyColor
		if depth == 0 {
			c = config.RootColor
		}
		var err error
		if c != nil {
			_, err = c.Fprint(w, label)
		} else {
			_, err = io.WriteString(w, label)
		}
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, "\n")
		return err
	})
}

// truncate shortens s to at most width positions, marking the cut with '…'.
func truncate(s string, width int, context *uax11.Context) string {
	if uax11.StringWidth(grapheme.StringFromString(s), context) <= width {
		return s
	}
	if width <= 1 {
		return "…"
	}
	var b strings.Builder
	w := 1 // reserved for the ellipsis
	for _, r := range s {
		rw := uax11.StringWidth(grapheme.StringFromString(string(r)), context)
		if w+rw > width {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	b.WriteString("…")
	return b.String()
}
