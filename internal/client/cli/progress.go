package cli

import (
	"fmt"
	"io"
	"strings"
)

// progressBar draws upload progress. On a terminal it redraws one line with
// '\r'; otherwise it prints a line at every quarter.
type progressBar struct {
	fancy  bool
	width  int
	active bool
	// shown is the last quarter printed in plain mode.
	shown int
}

func (p *progressBar) start() {
	p.active = false
	p.shown = 0
}

func (p *progressBar) draw(w io.Writer, pct float64) {
	if pct > 100 {
		pct = 100
	}

	if !p.fancy {
		q := int(pct) / 25
		if q > p.shown {
			p.shown = q
			fmt.Fprintf(w, "progress %d%%\n", q*25)
		}
		return
	}

	n := int(pct / 100 * float64(p.width))
	fmt.Fprintf(w, "\r[%s%s] %3.0f%%", strings.Repeat("#", n), strings.Repeat(".", p.width-n), pct)
	p.active = pct < 100
	if !p.active {
		fmt.Fprintln(w)
	}
}

// interrupt ends a partially drawn bar line so other output starts clean.
func (p *progressBar) interrupt(w io.Writer) {
	if p.active {
		fmt.Fprintln(w)
		p.active = false
	}
}
