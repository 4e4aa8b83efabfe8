package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// progressBar redraws a percentage line on a terminal. On anything else it
// stays silent so redirected output is not cluttered.
type progressBar struct {
	w       io.Writer
	enabled bool
	last    int
}

func newProgressBar(w io.Writer) *progressBar {
	p := &progressBar{w: w, last: -1}

	if f, ok := w.(*os.File); ok {
		p.enabled = term.IsTerminal(int(f.Fd()))
	}

	return p
}

func (p *progressBar) update(fraction float64) {
	if !p.enabled {
		return
	}

	pct := int(fraction * 100)
	if pct == p.last {
		return
	}

	p.last = pct
	fmt.Fprintf(p.w, "\rsynthesizing %3d%%", pct)
}

func (p *progressBar) finish() {
	if p.enabled && p.last >= 0 {
		fmt.Fprintln(p.w)
	}
}
